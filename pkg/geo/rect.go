package geo

import "math"

// defaultRayRadius bounds the rectangle when a cast ray misses every edge,
// which happens when the center falls outside a degenerate offset polygon.
const defaultRayRadius = 50.0

// InscribedRect is a rectangle aligned with the building rotation, expressed
// in the building's local (rotated) frame.
type InscribedRect struct {
	CenterX float64 `json:"center_x"`
	CenterZ float64 `json:"center_z"`
	Width   float64 `json:"width"`
	Depth   float64 `json:"depth"`
}

// Area returns the rectangle area.
func (r InscribedRect) Area() float64 {
	return r.Width * r.Depth
}

// MaxInscribedRect approximates the largest rectangle aligned with the given
// rotation that fits inside the polygon. Four rays are cast from the vertex
// mean along the rotated +-X and +-Z axes; each side of the rectangle is
// twice the smaller of the two opposing ray distances.
//
// This is an approximation (the exact problem is NP-hard in general) that
// works well for the near-convex quadrilaterals parcels are in practice.
func MaxInscribedRect(p Polygon, rotation float64) InscribedRect {
	if p.IsEmpty() {
		return InscribedRect{}
	}
	center := p.VertexMean()

	xPos := castRay(p, center, Pt(1, 0).Rotate(-rotation))
	xNeg := castRay(p, center, Pt(-1, 0).Rotate(-rotation))
	zPos := castRay(p, center, Pt(0, 1).Rotate(-rotation))
	zNeg := castRay(p, center, Pt(0, -1).Rotate(-rotation))

	local := center.Rotate(rotation)
	return InscribedRect{
		CenterX: local.X,
		CenterZ: local.Z,
		Width:   2 * math.Min(xPos, xNeg),
		Depth:   2 * math.Min(zPos, zNeg),
	}
}

// castRay returns the minimum positive distance from origin along dir to any
// polygon edge, or the default radius if nothing is hit.
func castRay(p Polygon, origin, dir Point2D) float64 {
	best := math.Inf(1)
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		if t, ok := raySegment(origin, dir, a, b); ok && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return defaultRayRadius
	}
	return best
}

// raySegment solves origin + t*dir = a + u*(b-a) for t >= 0, u in [0,1].
// Returns false for parallel or degenerate pairs.
func raySegment(origin, dir, a, b Point2D) (float64, bool) {
	seg := b.Sub(a)
	denom := dir.Cross(seg)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	ao := a.Sub(origin)
	t := ao.Cross(seg) / denom
	u := ao.Cross(dir) / denom
	if t < 0 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}
