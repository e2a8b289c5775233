// Package scene converts a generated building massing into the box-list
// scene graph consumed by the 3D renderer and the CAD encoders. It is a thin
// serialization of engine output; no geometry is computed here.
package scene

// EntityType identifies the kind of entity.
type EntityType string

const (
	EntityFloor  EntityType = "floor"
	EntityParcel EntityType = "parcel"
)

// Vec3 is a 3D vector. Y is up.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// BoundingBox is an axis-aligned bounding box.
type BoundingBox struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// Entity is a single element in the scene graph. Floor entities are boxes
// centered at Position with extents Dimensions, rotated about Y.
type Entity struct {
	ID         string         `json:"id"`
	Type       EntityType     `json:"type"`
	Position   Vec3           `json:"position"`
	Dimensions Vec3           `json:"dimensions"`
	Rotation   [4]float64     `json:"rotation"` // quaternion [x, y, z, w]
	Material   string         `json:"material"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Outline    []Vec3         `json:"outline,omitempty"` // parcel boundary
}

// Metadata holds scene-level information.
type Metadata struct {
	GeneratedAt string      `json:"generated_at"`
	Bounds      BoundingBox `json:"bounds"`
}

// Graph is the complete scene output.
type Graph struct {
	Metadata Metadata `json:"metadata"`
	Entities []Entity `json:"entities"`
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{Entities: []Entity{}}
}
