package geo

import (
	"math"
	"testing"
)

func square20() Polygon {
	return NewPolygon(Pt(-10, -10), Pt(10, -10), Pt(10, 10), Pt(-10, 10))
}

func TestOffsetUniformSquare(t *testing.T) {
	// Uniform setback on a square is an exact inset.
	sb := DirectionalSetback{Front: 2, Back: 2, Left: 2, Right: 2}
	out := OffsetDirectional(square20(), sb, 0)
	if out.Len() != 4 {
		t.Fatalf("expected 4 vertices, got %d", out.Len())
	}
	for _, v := range out.Vertices {
		if !approxEqual(math.Abs(v.X), 8, tolerance) || !approxEqual(math.Abs(v.Z), 8, tolerance) {
			t.Errorf("expected vertex at (+-8,+-8), got %v", v)
		}
	}
	if !approxEqual(out.Area(), 256, tolerance) {
		t.Errorf("expected area 256, got %f", out.Area())
	}
}

func TestOffsetContainmentAndWinding(t *testing.T) {
	p := square20()
	sb := DirectionalSetback{Front: 3, Back: 1.5, Left: 2, Right: 2}
	out := OffsetDirectional(p, sb, 0)

	if out.Len() != p.Len() {
		t.Fatalf("vertex count changed: %d -> %d", p.Len(), out.Len())
	}
	if out.IsCounterClockwise() != p.IsCounterClockwise() {
		t.Error("winding direction changed")
	}
	for _, v := range out.Vertices {
		if !p.Contains(v) {
			t.Errorf("offset vertex %v not inside original polygon", v)
		}
	}
}

func TestOffsetTakesLargerDistanceAtCorners(t *testing.T) {
	// Where a front edge (3 m) meets a side edge (2 m), the corner moves by
	// the larger distance along the averaged normal.
	sb := DirectionalSetback{Front: 3, Back: 1.5, Left: 2, Right: 2}
	out := OffsetDirectional(square20(), sb, 0)

	want := []Point2D{Pt(-7, -7), Pt(7, -7), Pt(8, 8), Pt(-8, 8)}
	for i, v := range out.Vertices {
		if !approxEqual(v.X, want[i].X, tolerance) || !approxEqual(v.Z, want[i].Z, tolerance) {
			t.Errorf("vertex %d: expected %v, got %v", i, want[i], v)
		}
	}
}

func TestOffsetZeroDistanceKeepsVertices(t *testing.T) {
	p := square20()
	out := OffsetDirectional(p, DirectionalSetback{}, 0)
	for i, v := range out.Vertices {
		if v != p.Vertices[i] {
			t.Errorf("vertex %d moved with zero setbacks: %v", i, v)
		}
	}
}

func TestOffsetClockwiseInput(t *testing.T) {
	cw := NewPolygon(Pt(-10, 10), Pt(10, 10), Pt(10, -10), Pt(-10, -10))
	sb := DirectionalSetback{Front: 2, Back: 2, Left: 2, Right: 2}
	out := OffsetDirectional(cw, sb, 0)
	if out.IsCounterClockwise() {
		t.Error("expected CW winding preserved")
	}
	if !approxEqual(out.Area(), 256, tolerance) {
		t.Errorf("expected area 256, got %f", out.Area())
	}
}

func TestOffsetDegenerateInputUnchanged(t *testing.T) {
	p := NewPolygon(Pt(0, 0), Pt(0.001, 0), Pt(0, 0.001))
	out := OffsetDirectional(p, DirectionalSetback{Front: 1, Back: 1, Left: 1, Right: 1}, 0)
	if out.Len() != p.Len() {
		t.Errorf("expected degenerate input returned unchanged, got %d vertices", out.Len())
	}
}

func TestOffsetDeduplicatesVertices(t *testing.T) {
	p := NewPolygon(Pt(-10, -10), Pt(-10, -10), Pt(10, -10), Pt(10, 10), Pt(-10, 10))
	sb := DirectionalSetback{Front: 2, Back: 2, Left: 2, Right: 2}
	out := OffsetDirectional(p, sb, 0)
	if out.Len() != 4 {
		t.Fatalf("expected 4 vertices after dedup, got %d", out.Len())
	}
	if !approxEqual(out.Area(), 256, tolerance) {
		t.Errorf("expected area 256, got %f", out.Area())
	}
}

func TestClassifyEdge(t *testing.T) {
	cases := []struct {
		normal Point2D
		want   EdgeDirection
	}{
		{Pt(0, -1), DirFront},
		{Pt(0, 1), DirBack},
		{Pt(1, 0), DirLeft},
		{Pt(-1, 0), DirRight},
	}
	for _, c := range cases {
		if got := ClassifyEdge(c.normal, 0); got != c.want {
			t.Errorf("normal %v: expected %s, got %s", c.normal, c.want, got)
		}
	}
}

func TestClassifyEdgeRotated(t *testing.T) {
	// With the building rotated -30 degrees, a normal along the rotated
	// front axis still classifies as front.
	rot := -math.Pi / 6
	frontWorld := Pt(0, -1).Rotate(-rot)
	if got := ClassifyEdge(frontWorld, rot); got != DirFront {
		t.Errorf("expected front, got %s", got)
	}
}
