package geo

import "math"

// DirectionalSetback holds inward offset distances in meters keyed by the
// building-relative direction of each parcel edge. Front faces the road.
type DirectionalSetback struct {
	Front float64 `json:"front" yaml:"front"`
	Back  float64 `json:"back" yaml:"back"`
	Left  float64 `json:"left" yaml:"left"`
	Right float64 `json:"right" yaml:"right"`
}

// EdgeDirection labels a parcel edge by its building-relative direction.
type EdgeDirection int

const (
	DirFront EdgeDirection = iota
	DirBack
	DirLeft
	DirRight
)

func (d EdgeDirection) String() string {
	switch d {
	case DirFront:
		return "front"
	case DirBack:
		return "back"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Distance returns the setback assigned to the given direction.
func (s DirectionalSetback) Distance(d EdgeDirection) float64 {
	switch d {
	case DirFront:
		return s.Front
	case DirBack:
		return s.Back
	case DirLeft:
		return s.Left
	case DirRight:
		return s.Right
	}
	return 0
}

const (
	// vertexDedupTol collapses near-coincident vertices that would produce
	// degenerate edge normals.
	vertexDedupTol = 0.01
	// miterLimit caps the miter scale at sharp corners so vertex
	// displacement stays bounded.
	miterLimit = 3.0
)

// AxisDirections returns the four building axes expressed in world
// coordinates for a building rotated by rotation radians: front is the
// building-local -Z, back +Z, left +X, right -X.
func AxisDirections(rotation float64) [4]Point2D {
	return [4]Point2D{
		DirFront: Pt(0, -1).Rotate(-rotation),
		DirBack:  Pt(0, 1).Rotate(-rotation),
		DirLeft:  Pt(1, 0).Rotate(-rotation),
		DirRight: Pt(-1, 0).Rotate(-rotation),
	}
}

// ClassifyEdge returns the building-relative direction of an edge given its
// outward unit normal: the axis with the largest dot product wins.
func ClassifyEdge(outwardNormal Point2D, rotation float64) EdgeDirection {
	axes := AxisDirections(rotation)
	best := DirFront
	bestDot := math.Inf(-1)
	for dir, axis := range axes {
		if d := outwardNormal.Dot(axis); d > bestDot {
			bestDot = d
			best = EdgeDirection(dir)
		}
	}
	return best
}

// OffsetDirectional shrinks the polygon inward by direction-dependent
// distances. Each edge is classified front/back/left/right by its outward
// normal against the rotated building axes, and each vertex moves inward
// along the average of its two incident edge normals by the larger of the
// two assigned distances.
//
// Degenerate input (fewer than 3 usable vertices after dedup) is returned
// unchanged; edges shorter than the dedup tolerance contribute a zero normal
// and are skipped. The result has the same vertex count and winding as the
// deduplicated input.
func OffsetDirectional(p Polygon, setbacks DirectionalSetback, rotation float64) Polygon {
	clean := p.Dedup(vertexDedupTol)
	if clean.IsEmpty() {
		return p
	}

	n := len(clean.Vertices)
	ccw := clean.IsCounterClockwise()

	normals := make([]Point2D, n)
	dists := make([]float64, n)
	for i := 0; i < n; i++ {
		a, b := clean.Edge(i)
		d := b.Sub(a)
		if d.Length() < vertexDedupTol {
			continue
		}
		dir := d.Normalize()
		var outward Point2D
		if ccw {
			outward = dir.PerpCW()
		} else {
			outward = dir.Perp()
		}
		normals[i] = outward
		dists[i] = setbacks.Distance(ClassifyEdge(outward, rotation))
	}

	out := make([]Point2D, n)
	for i := 0; i < n; i++ {
		prev := (i + n - 1) % n
		out[i] = offsetVertex(clean.Vertices[i], normals[prev], normals[i], dists[prev], dists[i])
	}
	return Polygon{Vertices: out}
}

// offsetVertex moves a vertex inward along the averaged normal of its two
// incident edges. The distance is the larger of the two edges' setbacks, a
// conservative choice at direction transitions.
func offsetVertex(v, nPrev, nCur Point2D, dPrev, dCur float64) Point2D {
	prevZero := nPrev.Length() < 1e-9
	curZero := nCur.Length() < 1e-9
	if prevZero && curZero {
		return v
	}

	dist := math.Max(dPrev, dCur)
	if dist == 0 {
		return v
	}

	if prevZero || curZero {
		normal := nPrev
		if prevZero {
			normal = nCur
		}
		return v.Sub(normal.Scale(dist))
	}

	avg := nPrev.Add(nCur)
	avgLen := avg.Length()
	if avgLen < 1e-9 {
		// Opposing normals (spike); fall back to the current edge normal.
		return v.Sub(nCur.Scale(dist))
	}

	// Miter: unit normals average to length 2*cos(half-angle), so the
	// displacement along the bisector is dist * 2/|avg|, clamped.
	scale := math.Min(2/avgLen, miterLimit)
	return v.Sub(avg.Normalize().Scale(dist * scale))
}
