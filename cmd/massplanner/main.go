package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/minjaecho/massplanner/internal/server"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "massplanner",
		Short: "Buildable-envelope and mass-generation engine for Korean parcels",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(massingCmd(&verbose))
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(zoningCmd())
	rootCmd.AddCommand(serveCmd(&verbose))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func massingCmd(verbose *bool) *cobra.Command {
	var asJSON bool
	var serviceDiscount bool

	cmd := &cobra.Command{
		Use:   "massing [project-path]",
		Short: "Generate the stepped building mass and print floor footprints",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMassing(args[0], asJSON, serviceDiscount, newLogger(*verbose))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")
	cmd.Flags().BoolVar(&serviceDiscount, "service-discount", false,
		"discount simplified-path total floor area by the service/common-area ratio")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [project-path]",
		Short: "Check a project against coverage, FAR, height, and setback rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(args[0])
		},
	}
}

func zoningCmd() *cobra.Command {
	var settlement bool

	cmd := &cobra.Command{
		Use:   "zoning [use-zone]",
		Short: "Show the legal limits for a use-zone classification",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runZoning(args[0], settlement)
		},
	}
	cmd.Flags().BoolVar(&settlement, "settlement", false, "apply the settlement-district special case")
	return cmd
}

func serveCmd(verbose *bool) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server for the interactive front end",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port, newLogger(*verbose))
			return srv.Start()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
