package massing

import (
	"testing"

	"github.com/minjaecho/massplanner/pkg/regulation"
)

func TestCheckCoverageAtLegalBoundary(t *testing.T) {
	// 166.56 m2 on 277.6 m2 of land is exactly 60% coverage: at the limit
	// is still legal.
	in := ComplianceInput{
		FootprintArea:  166.56,
		TotalFloorArea: 166.56 * 3,
		LandArea:       277.6,
		TotalHeight:    9,
		Stories:        3,
		RearSetback:    1.5,
		UseZone:        residential,
		Limits:         regulation.Limits{MaxCoverage: 60, MaxFAR: 250},
	}
	res := Check(in)
	if !approxEqual(res.CoverageRatio, 60, 1e-9) {
		t.Errorf("expected coverage 60, got %f", res.CoverageRatio)
	}
	if !res.CoverageOK {
		t.Error("coverage at exactly the limit must pass")
	}
	if !approxEqual(res.FARRatio, 180, 1e-9) {
		t.Errorf("expected FAR 180, got %f", res.FARRatio)
	}
	if !res.FAROK || !res.SetbackOK || !res.HeightOK {
		t.Errorf("expected all flags passing, got %+v", res)
	}
}

func TestCheckCoverageViolation(t *testing.T) {
	in := ComplianceInput{
		FootprintArea: 170,
		LandArea:      277.6,
		Limits:        regulation.Limits{MaxCoverage: 60, MaxFAR: 250},
	}
	res := Check(in)
	if res.CoverageOK {
		t.Errorf("expected coverage violation at %f%%", res.CoverageRatio)
	}
}

func TestCheckFARViolation(t *testing.T) {
	in := ComplianceInput{
		FootprintArea:  150,
		TotalFloorArea: 1500,
		LandArea:       400,
		Limits:         regulation.Limits{MaxCoverage: 60, MaxFAR: 250},
	}
	res := Check(in)
	if res.FAROK {
		t.Errorf("expected FAR violation at %f%%", res.FARRatio)
	}
	if !approxEqual(res.FARRatio, 375, 1e-9) {
		t.Errorf("expected FAR 375, got %f", res.FARRatio)
	}
}

func TestCheckSetback(t *testing.T) {
	in := ComplianceInput{
		LandArea:    400,
		TotalHeight: 15,
		RearSetback: 1.5,
		UseZone:     residential,
		Limits:      regulation.Limits{MaxCoverage: 60, MaxFAR: 250},
	}
	res := Check(in)
	if res.SetbackOK {
		t.Error("1.5 m rear setback cannot satisfy a 15 m building")
	}
	if !approxEqual(res.RequiredRearSetback, 7.5, 1e-9) {
		t.Errorf("expected required setback 7.5, got %f", res.RequiredRearSetback)
	}

	// Stepped mode satisfies the rule by construction regardless of the
	// configured value.
	in.SteppedMode = true
	if res := Check(in); !res.SetbackOK {
		t.Error("stepped mode must always pass the setback check")
	}
}

func TestCheckStoryCap(t *testing.T) {
	in := ComplianceInput{
		LandArea: 400,
		Stories:  5,
		Limits:   regulation.Limits{MaxCoverage: 20, MaxFAR: 80, MaxStories: 4},
	}
	if res := Check(in); res.HeightOK {
		t.Error("expected story cap violation")
	}
	in.Limits.MaxStories = 0
	if res := Check(in); !res.HeightOK {
		t.Error("zero story cap means uncapped")
	}
}

func TestCheckZeroLandArea(t *testing.T) {
	res := Check(ComplianceInput{FootprintArea: 100, TotalFloorArea: 300})
	if res.CoverageRatio != 0 || res.FARRatio != 0 {
		t.Errorf("expected zero ratios without land area, got %+v", res)
	}
}

func TestCheckMassingFromGenerated(t *testing.T) {
	env := Envelope{
		LandArea: 400,
		UseZone:  residential,
		Limits:   regulation.LimitsForZone(residential, false),
	}
	m := Generate(env, steppedConfig())
	res := CheckMassing(&m, 0, residential)

	if !res.SetbackOK {
		t.Error("stepped massing must pass the setback check")
	}
	// The coverage clamp caps the lower floors at 240 m2, leaving
	// 1048 m2 of floor area: 262% FAR, above the 250% cap.
	if res.FAROK {
		t.Errorf("expected FAR violation at %f%%", res.FARRatio)
	}
	if !approxEqual(res.CoverageRatio, 60, 1e-9) || !res.CoverageOK {
		t.Errorf("expected coverage at the 60%% cap, got %f%%", res.CoverageRatio)
	}
}

func TestMaxStoriesForFAR(t *testing.T) {
	// 400 m2 land at FAR 250 allows 1000 m2; 248 m2 per floor fits 4 times.
	if got := MaxStoriesForFAR(248, 400, 250); got != 4 {
		t.Errorf("expected 4 stories, got %d", got)
	}
	if got := MaxStoriesForFAR(0, 400, 250); got != 0 {
		t.Errorf("expected 0 for zero footprint, got %d", got)
	}
}

func TestReportViolationsAndValid(t *testing.T) {
	in := ComplianceInput{
		FootprintArea:  300,
		TotalFloorArea: 1500,
		LandArea:       400,
		TotalHeight:    15,
		Stories:        5,
		RearSetback:    1,
		UseZone:        residential,
		Limits:         regulation.Limits{MaxCoverage: 60, MaxFAR: 250, MaxStories: 4},
	}
	r := Report(Check(in), in)
	if r.Valid {
		t.Fatal("expected invalid report")
	}
	if len(r.Errors) != 4 {
		t.Fatalf("expected 4 regulatory errors, got %d", len(r.Errors))
	}
	for _, e := range r.Errors {
		if e.Level != "regulatory" {
			t.Errorf("expected regulatory level, got %s", e.Level)
		}
	}

	ok := ComplianceInput{
		FootprintArea:  166.56,
		TotalFloorArea: 166.56 * 3,
		LandArea:       277.6,
		TotalHeight:    9,
		Stories:        3,
		RearSetback:    1.5,
		UseZone:        residential,
		Limits:         regulation.Limits{MaxCoverage: 60, MaxFAR: 250},
	}
	r = Report(Check(ok), ok)
	if !r.Valid {
		t.Fatalf("expected valid report, got errors %+v", r.Errors)
	}
	if len(r.Info) == 0 {
		t.Error("expected a summary info finding on a valid report")
	}
}
