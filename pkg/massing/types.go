// Package massing turns a parcel, its zoning attributes, and a building
// configuration into per-floor buildable footprints, aggregate area metrics,
// and a regulatory verdict. Every function is pure: no I/O, no state across
// calls, and no errors on malformed geometry; degraded inputs produce
// degraded-but-safe outputs.
package massing

import (
	"github.com/minjaecho/massplanner/pkg/geo"
	"github.com/minjaecho/massplanner/pkg/regulation"
)

// FloorFootprint is the buildable rectangle of one story in the building's
// local, rotated frame.
type FloorFootprint struct {
	Floor       int     `json:"floor"` // 1-indexed
	Width       float64 `json:"width"`
	Depth       float64 `json:"depth"`
	CenterX     float64 `json:"center_x"`
	CenterZ     float64 `json:"center_z"`
	Area        float64 `json:"area"`
	RearSetback float64 `json:"rear_setback"` // binding rear setback at this floor's top
}

// BuildingMassing is the full generated mass: one footprint per story plus
// the aggregate metrics downstream consumers read.
type BuildingMassing struct {
	Floors         []FloorFootprint `json:"floors"`
	Rotation       float64          `json:"rotation"` // radians, shared by all floors
	StoryHeight    float64          `json:"story_height"`
	TotalHeight    float64          `json:"total_height"`
	LandArea       float64          `json:"land_area"`
	FootprintArea  float64          `json:"footprint_area"`
	TotalFloorArea float64          `json:"total_floor_area"`
	Limits         regulation.Limits `json:"limits"`

	// Stepped records whether the generator receded the rear boundary per
	// floor; a stepped mass satisfies the daylight rule by construction.
	Stepped bool `json:"stepped"`
}

// ComplianceResult is the regulatory verdict. Violations are data, not
// errors.
type ComplianceResult struct {
	CoverageRatio       float64 `json:"coverage_ratio"` // percent
	FARRatio            float64 `json:"far_ratio"`      // percent
	CoverageOK          bool    `json:"coverage_ok"`
	FAROK               bool    `json:"far_ok"`
	SetbackOK           bool    `json:"setback_ok"`
	HeightOK            bool    `json:"height_ok"`
	RequiredRearSetback float64 `json:"required_rear_setback"`
}

// Envelope bundles the per-floor geometric inputs the generator resolves
// once per parcel.
type Envelope struct {
	Polygon   geo.Polygon   // projected parcel, empty for the square fallback
	Rotation  float64       // building rotation from road alignment
	Neighbors []geo.Polygon // adjacent parcels (roads excluded), local frame
	// HasAdjacency is true when neighbor data was supplied at all. Without
	// it the rear-edge road probe is skipped and the zone-level rule
	// applies unconditionally.
	HasAdjacency bool
	LandArea     float64
	UseZone      string
	Limits       regulation.Limits
}
