package main

import (
	"fmt"

	"github.com/minjaecho/massplanner/pkg/massing"
	"github.com/minjaecho/massplanner/pkg/regulation"
	"github.com/minjaecho/massplanner/pkg/validation"
)

func printMassing(m *massing.BuildingMassing, res massing.ComplianceResult) {
	fmt.Printf("Land area: %.1f m2   Stories: %d x %.1f m   Total height: %.1f m\n",
		m.LandArea, len(m.Floors), m.StoryHeight, m.TotalHeight)
	if m.Stepped {
		fmt.Println("Mode: stepped (rear boundary recedes with height)")
	}
	fmt.Println()

	fmt.Printf("%-6s %-10s %-10s %-12s %-12s\n", "Floor", "Width", "Depth", "Area", "Rear setback")
	fmt.Printf("%-6s %-10s %-10s %-12s %-12s\n", "-----", "--------", "--------", "----------", "------------")
	for _, f := range m.Floors {
		fmt.Printf("%-6d %-10.2f %-10.2f %-12.2f %-12.2f\n",
			f.Floor, f.Width, f.Depth, f.Area, f.RearSetback)
	}
	fmt.Println()

	fmt.Printf("Footprint area:   %10.2f m2\n", m.FootprintArea)
	fmt.Printf("Total floor area: %10.2f m2\n", m.TotalFloorArea)
	fmt.Printf("Coverage ratio:   %9.1f %%  (max %.0f%%)  %s\n",
		res.CoverageRatio, m.Limits.MaxCoverage, okMark(res.CoverageOK))
	fmt.Printf("Floor-area ratio: %9.1f %%  (max %.0f%%)  %s\n",
		res.FARRatio, m.Limits.MaxFAR, okMark(res.FAROK))
	fmt.Printf("Rear setback:     required %.1f m  %s\n",
		res.RequiredRearSetback, okMark(res.SetbackOK))
	if m.Limits.MaxStories > 0 {
		fmt.Printf("Story cap:        %d  %s\n", m.Limits.MaxStories, okMark(res.HeightOK))
	}
}

func okMark(ok bool) string {
	if ok {
		return "OK"
	}
	return "VIOLATION"
}

func printZoning(useZone string, limits regulation.Limits) {
	fmt.Printf("Use zone: %s\n", useZone)
	fmt.Printf("  Max coverage: %.0f%%\n", limits.MaxCoverage)
	fmt.Printf("  Max FAR:      %.0f%%\n", limits.MaxFAR)
	if limits.MaxStories > 0 {
		fmt.Printf("  Story cap:    %d\n", limits.MaxStories)
	}
	if limits.Note != "" {
		fmt.Printf("  Note:         %s\n", limits.Note)
	}
	if regulation.DaylightApplies(useZone) {
		fmt.Println("  Daylight-rights rear setback applies")
	}
}

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(e)
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			printResult(w)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(res validation.Result) {
	fmt.Printf("  [%s] %s\n", res.Level, res.Message)
	if res.Field != "" {
		fmt.Printf("    -> %s = %v\n", res.Field, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Printf("    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Printf("    * %s\n", s)
	}
}
