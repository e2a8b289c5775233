package geo

import "math"

// EdgeInfo describes one polygon edge for alignment and classification.
type EdgeInfo struct {
	Index  int
	Start  Point2D
	End    Point2D
	Mid    Point2D
	Angle  float64 // direction angle, atan2(dz, dx)
	Length float64
}

// AnalyzeEdges returns per-edge midpoints, direction angles, and lengths.
func AnalyzeEdges(p Polygon) []EdgeInfo {
	n := len(p.Vertices)
	if n < 2 {
		return nil
	}
	edges := make([]EdgeInfo, 0, n)
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		d := b.Sub(a)
		edges = append(edges, EdgeInfo{
			Index:  i,
			Start:  a,
			End:    b,
			Mid:    MidPoint(a, b),
			Angle:  d.Angle(),
			Length: d.Length(),
		})
	}
	return edges
}

// EstimateRotation returns the rotation angle that aligns a rectangular
// building with the parcel's road-facing edge. The front edge is taken to be
// the longest edge whose midpoint lies south of the polygon's vertex mean;
// if no edge lies south, the globally longest edge is used.
//
// The edge angle is normalized mod pi into (-pi/2, pi/2] before negation, so
// a parcel whose south edge runs exactly east-west aligns at 0 regardless of
// winding direction.
func EstimateRotation(p Polygon) float64 {
	edges := AnalyzeEdges(p)
	if len(edges) == 0 {
		return 0
	}
	center := p.VertexMean()

	var front *EdgeInfo
	for i := range edges {
		e := &edges[i]
		if e.Mid.Z >= center.Z {
			continue
		}
		if front == nil || e.Length > front.Length {
			front = e
		}
	}
	if front == nil {
		for i := range edges {
			if front == nil || edges[i].Length > front.Length {
				front = &edges[i]
			}
		}
	}
	return -normalizeAxisAngle(front.Angle)
}

// normalizeAxisAngle maps an edge direction onto its undirected axis,
// returning an angle in (-pi/2, pi/2].
func normalizeAxisAngle(a float64) float64 {
	a = math.Mod(a, math.Pi)
	if a > math.Pi/2 {
		a -= math.Pi
	} else if a <= -math.Pi/2 {
		a += math.Pi
	}
	return a
}
