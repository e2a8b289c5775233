package scene

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/minjaecho/massplanner/pkg/geo"
	"github.com/minjaecho/massplanner/pkg/massing"
)

// Assemble converts a building massing into the scene graph. Each floor
// becomes one box entity; the parcel boundary, when available, becomes a
// flat outline entity so the renderer can draw the lot.
func Assemble(m *massing.BuildingMassing, parcelPoly geo.Polygon) *Graph {
	g := NewGraph()

	for _, f := range m.Floors {
		// Floor centers are stored in the building's rotated frame; undo
		// the rotation to place them in world coordinates.
		world := geo.Pt(f.CenterX, f.CenterZ).Rotate(-m.Rotation)
		addEntity(g, Entity{
			ID:   uuid.NewString(),
			Type: EntityFloor,
			Position: Vec3{
				X: world.X,
				Y: (float64(f.Floor) - 0.5) * m.StoryHeight,
				Z: world.Z,
			},
			Dimensions: Vec3{X: f.Width, Y: m.StoryHeight, Z: f.Depth},
			Rotation:   yawQuat(-m.Rotation),
			Material:   "concrete",
			Metadata: map[string]any{
				"floor":        f.Floor,
				"area":         f.Area,
				"rear_setback": f.RearSetback,
			},
		})
	}

	if !parcelPoly.IsEmpty() {
		outline := make([]Vec3, len(parcelPoly.Vertices))
		for i, v := range parcelPoly.Vertices {
			outline[i] = Vec3{X: v.X, Y: 0, Z: v.Z}
		}
		addEntity(g, Entity{
			ID:       uuid.NewString(),
			Type:     EntityParcel,
			Rotation: yawQuat(0),
			Material: "ground",
			Outline:  outline,
			Metadata: map[string]any{"area": parcelPoly.Area()},
		})
	}

	g.Metadata = Metadata{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Bounds:      computeBounds(g.Entities),
	}
	return g
}

func addEntity(g *Graph, e Entity) {
	g.Entities = append(g.Entities, e)
}

// yawQuat returns the quaternion for a rotation about the Y axis.
func yawQuat(angle float64) [4]float64 {
	return [4]float64{0, math.Sin(angle / 2), 0, math.Cos(angle / 2)}
}

func computeBounds(entities []Entity) BoundingBox {
	if len(entities) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{
		Min: Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	grow := func(v Vec3) {
		b.Min.X = math.Min(b.Min.X, v.X)
		b.Min.Y = math.Min(b.Min.Y, v.Y)
		b.Min.Z = math.Min(b.Min.Z, v.Z)
		b.Max.X = math.Max(b.Max.X, v.X)
		b.Max.Y = math.Max(b.Max.Y, v.Y)
		b.Max.Z = math.Max(b.Max.Z, v.Z)
	}
	for _, e := range entities {
		for _, o := range e.Outline {
			grow(o)
		}
		if e.Dimensions == (Vec3{}) && len(e.Outline) > 0 {
			continue
		}
		half := Vec3{e.Dimensions.X / 2, e.Dimensions.Y / 2, e.Dimensions.Z / 2}
		grow(Vec3{e.Position.X - half.X, e.Position.Y - half.Y, e.Position.Z - half.Z})
		grow(Vec3{e.Position.X + half.X, e.Position.Y + half.Y, e.Position.Z + half.Z})
	}
	return b
}
