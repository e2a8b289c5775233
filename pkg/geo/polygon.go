package geo

import "math"

// Polygon is a closed polygon defined by its vertices in order.
// The closing edge from the last vertex back to the first is implicit.
type Polygon struct {
	Vertices []Point2D
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point2D) Polygon {
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// Edge returns the i-th edge as (start, end). Wraps around.
func (p Polygon) Edge(i int) (Point2D, Point2D) {
	n := len(p.Vertices)
	return p.Vertices[i%n], p.Vertices[(i+1)%n]
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Z
		area -= p.Vertices[j].X * p.Vertices[i].Z
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsCounterClockwise returns true if vertices are in CCW order.
func (p Polygon) IsCounterClockwise() bool {
	return p.SignedArea() > 0
}

// VertexMean returns the arithmetic mean of the vertices. This is not the
// area-weighted centroid; the envelope engine deliberately uses the vertex
// mean everywhere so that ray origins and projection centers agree.
func (p Polygon) VertexMean() Point2D {
	n := len(p.Vertices)
	if n == 0 {
		return Point2D{}
	}
	sum := Point2D{}
	for _, v := range p.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1.0 / float64(n))
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (p Polygon) BoundingBox() (Point2D, Point2D) {
	if len(p.Vertices) == 0 {
		return Point2D{}, Point2D{}
	}
	minP := p.Vertices[0]
	maxP := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		if v.X < minP.X {
			minP.X = v.X
		}
		if v.Z < minP.Z {
			minP.Z = v.Z
		}
		if v.X > maxP.X {
			maxP.X = v.X
		}
		if v.Z > maxP.Z {
			maxP.Z = v.Z
		}
	}
	return minP, maxP
}

// Contains returns true if the point is inside the polygon using ray casting.
func (p Polygon) Contains(pt Point2D) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Z > pt.Z) != (vj.Z > pt.Z) &&
			pt.X < (vj.X-vi.X)*(pt.Z-vi.Z)/(vj.Z-vi.Z)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// DistanceTo returns the distance from pt to the polygon boundary, or 0 if
// pt is inside the polygon.
func (p Polygon) DistanceTo(pt Point2D) float64 {
	if p.Contains(pt) {
		return 0
	}
	n := len(p.Vertices)
	if n == 0 {
		return math.Inf(1)
	}
	if n == 1 {
		return pt.Distance(p.Vertices[0])
	}
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		d := distancePointSegment(pt, a, b)
		if d < best {
			best = d
		}
	}
	return best
}

// distancePointSegment returns the distance from pt to segment a-b.
func distancePointSegment(pt, a, b Point2D) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < 1e-12 {
		return pt.Distance(a)
	}
	t := math.Max(0, math.Min(1, pt.Sub(a).Dot(ab)/lenSq))
	return pt.Distance(a.Lerp(b, t))
}

// Dedup returns the polygon with near-coincident consecutive vertices
// removed. Two vertices closer than tol are treated as one; the closing
// vertex pair is checked as well.
func (p Polygon) Dedup(tol float64) Polygon {
	n := len(p.Vertices)
	if n == 0 {
		return p
	}
	out := make([]Point2D, 0, n)
	for _, v := range p.Vertices {
		if len(out) > 0 && out[len(out)-1].Distance(v) < tol {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[0].Distance(out[len(out)-1]) < tol {
		out = out[:len(out)-1]
	}
	return Polygon{Vertices: out}
}

// Perimeter returns the total perimeter length.
func (p Polygon) Perimeter() float64 {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += p.Vertices[i].Distance(p.Vertices[j])
	}
	return total
}
