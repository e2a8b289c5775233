package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/minjaecho/massplanner/pkg/massing"
	"github.com/minjaecho/massplanner/pkg/parcel"
	"github.com/minjaecho/massplanner/pkg/regulation"
	"github.com/minjaecho/massplanner/pkg/scene"
	"github.com/minjaecho/massplanner/pkg/validation"
)

// loadAndValidate loads the project and runs schema validation.
func loadAndValidate(projectPath string) (*parcel.Project, *validation.Report, error) {
	proj, err := parcel.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	return proj, parcel.Validate(proj), nil
}

func runMassing(projectPath string, asJSON, serviceDiscount bool, logger *log.Logger) error {
	proj, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("project has validation errors")
	}

	opts := []massing.Option{massing.WithLogger(logger)}
	if serviceDiscount {
		opts = append(opts, massing.WithServiceDiscount())
	}

	env := massing.BuildEnvelope(proj.Parcel)
	m := massing.Generate(env, proj.Building, opts...)
	res := massing.CheckMassing(&m, proj.Building.Setbacks.Back, proj.Parcel.UseZone)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"massing":    m,
			"compliance": res,
			"scene":      scene.Assemble(&m, env.Polygon),
		})
	}

	printMassing(&m, res)
	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runCheck(projectPath string) error {
	proj, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	if report.Valid {
		m := massing.Compute(proj)
		in := massing.ComplianceInput{
			FootprintArea:  m.FootprintArea,
			TotalFloorArea: m.TotalFloorArea,
			LandArea:       m.LandArea,
			TotalHeight:    m.TotalHeight,
			Stories:        len(m.Floors),
			RearSetback:    proj.Building.Setbacks.Back,
			SteppedMode:    m.Stepped,
			UseZone:        proj.Parcel.UseZone,
			Limits:         m.Limits,
		}
		report.Merge(massing.Report(massing.Check(in), in))
	}

	printValidationReport(report)
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runZoning(useZone string, settlement bool) error {
	limits := regulation.LimitsForZone(useZone, settlement)
	printZoning(useZone, limits)
	return nil
}
