package massing

import (
	"fmt"
	"math"

	"github.com/minjaecho/massplanner/pkg/regulation"
	"github.com/minjaecho/massplanner/pkg/validation"
)

// ComplianceInput collects everything the checker reads. The rear setback is
// the configured (non-stepped) value; stepped mode satisfies the daylight
// rule by construction and always passes the setback check.
type ComplianceInput struct {
	FootprintArea  float64
	TotalFloorArea float64
	LandArea       float64
	TotalHeight    float64
	Stories        int
	RearSetback    float64
	SteppedMode    bool
	UseZone        string
	Limits         regulation.Limits
}

// Check derives coverage and floor-area ratios and the pass/fail flags.
// A non-positive land area yields zero ratios and passing flags rather than
// a division failure.
func Check(in ComplianceInput) ComplianceResult {
	var res ComplianceResult
	if in.LandArea > 0 {
		res.CoverageRatio = in.FootprintArea / in.LandArea * 100
		res.FARRatio = in.TotalFloorArea / in.LandArea * 100
	}
	res.CoverageOK = res.CoverageRatio <= in.Limits.MaxCoverage
	res.FAROK = res.FARRatio <= in.Limits.MaxFAR

	res.RequiredRearSetback = regulation.NorthSetback(in.TotalHeight, in.UseZone)
	res.SetbackOK = in.SteppedMode || in.RearSetback >= res.RequiredRearSetback

	res.HeightOK = in.Limits.MaxStories == 0 || in.Stories <= in.Limits.MaxStories
	return res
}

// CheckMassing runs the compliance check against a generated massing.
func CheckMassing(m *BuildingMassing, rearSetback float64, useZone string) ComplianceResult {
	return Check(ComplianceInput{
		FootprintArea:  m.FootprintArea,
		TotalFloorArea: m.TotalFloorArea,
		LandArea:       m.LandArea,
		TotalHeight:    m.TotalHeight,
		Stories:        len(m.Floors),
		RearSetback:    rearSetback,
		SteppedMode:    m.Stepped,
		UseZone:        useZone,
		Limits:         m.Limits,
	})
}

// MaxStoriesForFAR returns the largest story count whose total floor area
// stays within the legal floor-area ratio, given a fixed per-floor footprint.
func MaxStoriesForFAR(footprintArea, landArea, maxFAR float64) int {
	if footprintArea <= 0 || landArea <= 0 {
		return 0
	}
	return int(landArea * maxFAR / 100 / footprintArea)
}

// Report converts a compliance result into a finding report for display and
// API responses. Legal violations are regulatory errors; the report stays
// valid when every flag passes.
func Report(res ComplianceResult, in ComplianceInput) *validation.Report {
	r := validation.NewReport()

	if !res.CoverageOK {
		r.AddError(validation.Result{
			Level:       validation.LevelRegulatory,
			Message:     fmt.Sprintf("coverage ratio %.1f%% exceeds the legal maximum %.0f%%", res.CoverageRatio, in.Limits.MaxCoverage),
			Field:       "coverage_ratio",
			ActualValue: round2(res.CoverageRatio),
			Expected:    fmt.Sprintf("<= %.0f%%", in.Limits.MaxCoverage),
			Suggestions: []string{"Increase setbacks or reduce the footprint"},
		})
	}
	if !res.FAROK {
		maxStories := MaxStoriesForFAR(in.FootprintArea, in.LandArea, in.Limits.MaxFAR)
		r.AddError(validation.Result{
			Level:       validation.LevelRegulatory,
			Message:     fmt.Sprintf("floor-area ratio %.1f%% exceeds the legal maximum %.0f%%", res.FARRatio, in.Limits.MaxFAR),
			Field:       "far_ratio",
			ActualValue: round2(res.FARRatio),
			Expected:    fmt.Sprintf("<= %.0f%%", in.Limits.MaxFAR),
			Suggestions: []string{fmt.Sprintf("Reduce the story count to %d or shrink the footprint", maxStories)},
		})
	}
	if !res.SetbackOK {
		r.AddError(validation.Result{
			Level:       validation.LevelRegulatory,
			Message:     fmt.Sprintf("rear setback %.1f m is below the required daylight setback %.1f m at height %.1f m", in.RearSetback, res.RequiredRearSetback, in.TotalHeight),
			Field:       "setbacks.back",
			ActualValue: in.RearSetback,
			Expected:    fmt.Sprintf(">= %.1f m", res.RequiredRearSetback),
			Suggestions: []string{"Enable stepped massing or increase the rear setback"},
		})
	}
	if !res.HeightOK {
		r.AddError(validation.Result{
			Level:       validation.LevelRegulatory,
			Message:     fmt.Sprintf("%d stories exceeds the zone's story cap of %d", in.Stories, in.Limits.MaxStories),
			Field:       "building.stories",
			ActualValue: in.Stories,
			Expected:    fmt.Sprintf("<= %d", in.Limits.MaxStories),
		})
	}

	if r.Valid {
		r.AddInfo(validation.Result{
			Level:   validation.LevelRegulatory,
			Message: fmt.Sprintf("coverage %.1f%% and FAR %.1f%% within legal limits", res.CoverageRatio, res.FARRatio),
		})
	}
	return r
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
