// Package parcel defines the input model for the envelope engine: the
// cadastral parcel, its zoning attributes, adjacent parcels and roads, and
// the building configuration driven by the UI.
package parcel

import "github.com/minjaecho/massplanner/pkg/geo"

// RoadJimok is the land-category tag marking an adjacent feature as a road.
const RoadJimok = "도로"

// Neighbor is an adjacent parcel or road, used to decide where the
// daylight-rights rule binds.
type Neighbor struct {
	Jimok   string         `yaml:"jimok" json:"jimok"`
	Polygon geo.GeoPolygon `yaml:"-" json:"polygon"`

	// RawPolygon is the YAML form: a list of [lng, lat] pairs.
	RawPolygon [][2]float64 `yaml:"polygon" json:"-"`
}

// IsRoad returns true if the neighbor is tagged as a road.
func (n Neighbor) IsRoad() bool {
	return n.Jimok == RoadJimok
}

// Parcel is a single cadastral land unit.
type Parcel struct {
	PNU        string         `yaml:"pnu" json:"pnu"`
	Polygon    geo.GeoPolygon `yaml:"-" json:"polygon"`
	Area       float64        `yaml:"area" json:"area"` // m2; fallback when no polygon
	UseZone    string         `yaml:"use_zone" json:"use_zone"`
	Settlement bool           `yaml:"settlement_district" json:"settlement_district"`
	Neighbors  []Neighbor     `yaml:"neighbors" json:"neighbors"`

	RawPolygon [][2]float64 `yaml:"polygon" json:"-"`
}

// AdjacentParcels returns the non-road neighbor polygons projected into the
// parcel's local frame.
func (p Parcel) AdjacentParcels(pr geo.Projection) []geo.Polygon {
	var out []geo.Polygon
	for _, n := range p.Neighbors {
		if n.IsRoad() || len(n.Polygon) < 3 {
			continue
		}
		out = append(out, pr.ProjectInto(n.Polygon))
	}
	return out
}

// BuildingConfig is the user-driven massing configuration.
type BuildingConfig struct {
	Stories      int                    `yaml:"stories" json:"stories"`
	StoryHeight  float64                `yaml:"story_height" json:"story_height"`
	BuildingType string                 `yaml:"building_type" json:"building_type"`
	Units        int                    `yaml:"units" json:"units"`
	Setbacks     geo.DirectionalSetback `yaml:"setbacks" json:"setbacks"`

	// AutoStepped makes the generator recede the rear boundary per floor to
	// satisfy the daylight rule by construction.
	AutoStepped bool `yaml:"auto_stepped" json:"auto_stepped"`
}

// Project is a complete massing project: one parcel plus one building
// configuration.
type Project struct {
	Parcel   Parcel         `yaml:"parcel" json:"parcel"`
	Building BuildingConfig `yaml:"building" json:"building"`
}

// toGeoPolygon converts the raw YAML coordinate pairs.
func toGeoPolygon(raw [][2]float64) geo.GeoPolygon {
	if len(raw) == 0 {
		return nil
	}
	poly := make(geo.GeoPolygon, len(raw))
	for i, c := range raw {
		poly[i] = geo.GeoPoint{Lng: c[0], Lat: c[1]}
	}
	return poly
}
