package parcel

import (
	"fmt"

	"github.com/minjaecho/massplanner/pkg/geo"
	"github.com/minjaecho/massplanner/pkg/validation"
)

// Validate performs schema-level checks on a loaded project before any
// geometry runs. Degenerate parcels are warnings, not errors: the engine
// degrades to an area-derived square rather than refusing input.
func Validate(proj *Project) *validation.Report {
	r := validation.NewReport()

	validateParcel(&proj.Parcel, r)
	validateBuilding(&proj.Building, r)

	return r
}

func validateParcel(p *Parcel, r *validation.Report) {
	if len(p.Polygon) > 0 && len(p.Polygon) < 3 {
		r.AddWarning(validation.Result{
			Level:       validation.LevelGeometry,
			Message:     fmt.Sprintf("parcel polygon has %d vertices; falling back to square approximation from area", len(p.Polygon)),
			Field:       "parcel.polygon",
			ActualValue: len(p.Polygon),
			Expected:    ">= 3 vertices",
		})
	}
	if len(p.Polygon) == 0 && p.Area <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "parcel needs either a polygon or a positive area",
			Field:       "parcel.area",
			ActualValue: p.Area,
			Expected:    "> 0",
		})
	}
	if p.UseZone == "" {
		r.AddWarning(validation.Result{
			Level:    validation.LevelSchema,
			Message:  "use_zone is empty; default legal limits apply and the daylight rule is treated as not applicable",
			Field:    "parcel.use_zone",
			Expected: "a use-zone classification such as 제2종일반주거지역",
		})
	}
	for i, n := range p.Neighbors {
		if len(n.Polygon) > 0 && len(n.Polygon) < 3 {
			r.AddWarning(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     fmt.Sprintf("neighbors[%d] polygon has %d vertices and will be ignored", i, len(n.Polygon)),
				Field:       fmt.Sprintf("parcel.neighbors[%d].polygon", i),
				ActualValue: len(n.Polygon),
				Expected:    ">= 3 vertices",
			})
		}
	}
	if len(p.Polygon) >= 3 {
		pr := geo.Project(p.Polygon)
		if pr.Points.Area() < 1 {
			r.AddWarning(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     "parcel polygon area is under 1 m2; the polygon is likely degenerate",
				Field:       "parcel.polygon",
				ActualValue: pr.Points.Area(),
			})
		}
	}
}

func validateBuilding(b *BuildingConfig, r *validation.Report) {
	if b.Stories <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "building.stories must be at least 1",
			Field:       "building.stories",
			ActualValue: b.Stories,
			Expected:    ">= 1",
		})
	}
	if b.StoryHeight <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "building.story_height must be positive",
			Field:       "building.story_height",
			ActualValue: b.StoryHeight,
			Expected:    "> 0",
		})
	}
	for _, s := range []struct {
		name  string
		value float64
	}{
		{"front", b.Setbacks.Front},
		{"back", b.Setbacks.Back},
		{"left", b.Setbacks.Left},
		{"right", b.Setbacks.Right},
	} {
		if s.value < 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("building.setbacks.%s must be non-negative", s.name),
				Field:       fmt.Sprintf("building.setbacks.%s", s.name),
				ActualValue: s.value,
				Expected:    ">= 0",
			})
		}
	}
}
