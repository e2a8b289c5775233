package massing

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/minjaecho/massplanner/pkg/geo"
	"github.com/minjaecho/massplanner/pkg/parcel"
	"github.com/minjaecho/massplanner/pkg/regulation"
)

// ServiceAreaRatio is the fixed service/common-area discount applied to the
// total floor area on the simplified (no-polygon) path when enabled.
const ServiceAreaRatio = 0.85

type generator struct {
	logger          *log.Logger
	serviceDiscount bool
}

// Option configures mass generation.
type Option func(*generator)

// WithLogger attaches a structured trace logger. The engine emits per-floor
// debug lines to it; a nil logger disables tracing. Correctness never
// depends on the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *generator) { g.logger = l }
}

// WithServiceDiscount discounts the simplified-path total floor area by the
// service/common-area ratio.
func WithServiceDiscount() Option {
	return func(g *generator) { g.serviceDiscount = true }
}

// BuildEnvelope resolves the per-parcel inputs: projection into the local
// frame, road alignment, adjacent-parcel polygons, land area, and legal
// limits. A parcel without a usable polygon yields an empty envelope polygon
// and the generator falls back to a square approximation from area.
func BuildEnvelope(p parcel.Parcel) Envelope {
	env := Envelope{
		UseZone:      p.UseZone,
		LandArea:     p.Area,
		HasAdjacency: len(p.Neighbors) > 0,
		Limits:       regulation.LimitsForZone(p.UseZone, p.Settlement),
	}

	pr := geo.Project(p.Polygon)
	if pr.IsEmpty() {
		return env
	}

	env.Polygon = pr.Points
	env.Rotation = geo.EstimateRotation(pr.Points)
	env.Neighbors = p.AdjacentParcels(pr)
	if a := pr.Points.Area(); a > 0 {
		env.LandArea = a
	}
	return env
}

// Compute is the single entry point: parcel plus building configuration in,
// full building massing out. It never fails; malformed input degrades to
// bounding-box geometry and zeroed areas.
func Compute(proj *parcel.Project, opts ...Option) *BuildingMassing {
	env := BuildEnvelope(proj.Parcel)
	m := Generate(env, proj.Building, opts...)
	return &m
}

// Generate produces one footprint per story. In stepped mode the rear
// setback is recomputed at each floor's cumulative height, so the silhouette
// steps inward toward the roof once the daylight threshold is crossed.
func Generate(env Envelope, cfg parcel.BuildingConfig, opts ...Option) BuildingMassing {
	var g generator
	for _, opt := range opts {
		opt(&g)
	}

	stories := cfg.Stories
	if stories < 1 {
		stories = 1
	}
	storyHeight := cfg.StoryHeight
	if storyHeight <= 0 {
		storyHeight = regulation.DefaultStoryHeight
	}

	applies := regulation.DaylightApplies(env.UseZone)
	if applies && env.HasAdjacency && !env.Polygon.IsEmpty() {
		applies = rearEdgeBindsDaylight(env)
	}
	stepped := cfg.AutoStepped && applies

	maxFootprint := env.LandArea * env.Limits.MaxCoverage / 100

	floors := make([]FloorFootprint, 0, stories)
	for i := 1; i <= stories; i++ {
		cumHeight := float64(i) * storyHeight
		back := cfg.Setbacks.Back
		if stepped {
			back = regulation.SetbackAtHeight(cumHeight, cfg.Setbacks.Back, env.UseZone)
		}

		f := g.floorFootprint(env, cfg.Setbacks, back, i)
		clampToCoverage(&f, maxFootprint)

		if g.logger != nil {
			g.logger.Debug("floor footprint",
				"floor", i, "height", cumHeight, "back", back,
				"width", f.Width, "depth", f.Depth, "area", f.Area)
		}
		floors = append(floors, f)
	}

	m := BuildingMassing{
		Floors:      floors,
		Rotation:    env.Rotation,
		StoryHeight: storyHeight,
		TotalHeight: float64(stories) * storyHeight,
		LandArea:    env.LandArea,
		Limits:      env.Limits,
		Stepped:     stepped,
	}
	m.FootprintArea = floors[0].Area
	for _, f := range floors {
		m.TotalFloorArea += f.Area
	}
	if g.serviceDiscount && env.Polygon.IsEmpty() {
		m.TotalFloorArea *= ServiceAreaRatio
	}
	return m
}

// floorFootprint solves one floor: directional offset plus inscribed
// rectangle on the polygon path, or side-length subtraction on the square
// fallback.
func (g generator) floorFootprint(env Envelope, base geo.DirectionalSetback, back float64, floor int) FloorFootprint {
	sb := geo.DirectionalSetback{
		Front: base.Front,
		Back:  back,
		Left:  base.Left,
		Right: base.Right,
	}

	if env.Polygon.IsEmpty() {
		side := math.Sqrt(math.Max(0, env.LandArea))
		width := math.Max(0, side-sb.Left-sb.Right)
		depth := math.Max(0, side-sb.Front-sb.Back)
		return FloorFootprint{
			Floor:       floor,
			Width:       width,
			Depth:       depth,
			CenterX:     (sb.Left - sb.Right) / 2,
			CenterZ:     (sb.Front - sb.Back) / 2,
			Area:        width * depth,
			RearSetback: back,
		}
	}

	inset := geo.OffsetDirectional(env.Polygon, sb, env.Rotation)
	rect := geo.MaxInscribedRect(inset, env.Rotation)
	return FloorFootprint{
		Floor:       floor,
		Width:       math.Max(0, rect.Width),
		Depth:       math.Max(0, rect.Depth),
		CenterX:     rect.CenterX,
		CenterZ:     rect.CenterZ,
		Area:        math.Max(0, rect.Area()),
		RearSetback: back,
	}
}

// clampToCoverage scales a footprint down uniformly so its area never
// exceeds the legal maximum building area.
func clampToCoverage(f *FloorFootprint, maxFootprint float64) {
	if maxFootprint <= 0 || f.Area <= maxFootprint {
		return
	}
	scale := math.Sqrt(maxFootprint / f.Area)
	f.Width *= scale
	f.Depth *= scale
	f.Area = maxFootprint
}

// rearEdgeBindsDaylight probes each rear-facing parcel edge: the rule binds
// only if some rear edge faces an adjacent parcel rather than a road.
func rearEdgeBindsDaylight(env Envelope) bool {
	rearDir := geo.Pt(0, 1).Rotate(-env.Rotation)
	clean := env.Polygon.Dedup(0.01)
	ccw := clean.IsCounterClockwise()

	for _, e := range geo.AnalyzeEdges(clean) {
		d := e.End.Sub(e.Start)
		if d.Length() < 0.01 {
			continue
		}
		dir := d.Normalize()
		outward := dir.PerpCW()
		if !ccw {
			outward = dir.Perp()
		}
		if geo.ClassifyEdge(outward, env.Rotation) != geo.DirBack {
			continue
		}
		if regulation.RearRuleApplies(e.Mid, rearDir, env.Neighbors) {
			return true
		}
	}
	return false
}
