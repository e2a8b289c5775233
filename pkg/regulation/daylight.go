package regulation

import (
	"strings"

	"github.com/minjaecho/massplanner/pkg/geo"
)

// Daylight-rights setback constants (Building Act Enforcement Decree Art. 86).
const (
	// DaylightThresholdHeight is the building height at and below which the
	// flat minimum setback applies.
	DaylightThresholdHeight = 10.0
	// DaylightMinSetback is the flat rear setback below the threshold.
	DaylightMinSetback = 1.5
	// DaylightSlope is the height-to-setback ratio above the threshold
	// (setback = height / 2).
	DaylightSlope = 0.5
)

// roadProbeDistance is how far beyond a rear edge midpoint the adjacency
// probe point is placed, and the radius within which an adjacent parcel must
// lie for the daylight rule to bind. A heuristic, not a distance codified in
// the law.
const roadProbeDistance = 5.0

// DaylightApplies reports whether the daylight-rights rule binds in the
// given use zone: residential zones only, excluding quasi-residential.
func DaylightApplies(useZone string) bool {
	return strings.Contains(useZone, "주거") && !strings.Contains(useZone, "준주거")
}

// NorthSetback returns the required rear (north) setback in meters for a
// building of the given total height: at or below 10 m the flat minimum 1.5,
// strictly above it half the height. The rule applies uniformly; the stepped
// generator and the scalar checker share this function.
func NorthSetback(height float64, useZone string) float64 {
	if !DaylightApplies(useZone) {
		return 0
	}
	if height <= DaylightThresholdHeight {
		return DaylightMinSetback
	}
	return height * DaylightSlope
}

// SetbackAtHeight returns the binding rear setback for a given height when
// an explicit minimum has already been configured.
func SetbackAtHeight(height, currentBase float64, useZone string) float64 {
	if s := NorthSetback(height, useZone); s > currentBase {
		return s
	}
	return currentBase
}

// HeightLimitFromSetback inverts the daylight rule: given the distance to
// the north parcel boundary, it returns the maximum allowed building height.
// Non-residential zones are unconstrained.
func HeightLimitFromSetback(distance float64, useZone string) (float64, bool) {
	if !DaylightApplies(useZone) {
		return 0, false
	}
	return distance*2 + 8, true
}

// RearRuleApplies reports whether the daylight rule binds on a rear edge,
// given the edge midpoint, the building's rear direction in world
// coordinates, and the polygons of adjacent parcels (roads excluded). A
// probe point is placed beyond the midpoint in the rear direction; the rule
// binds only if the probe lands within the probe radius of some neighboring
// parcel. Edges facing a road are exempt.
//
// Callers with no adjacency data should not call this and instead apply the
// zone-level rule unconditionally.
func RearRuleApplies(edgeMid, rearDir geo.Point2D, neighbors []geo.Polygon) bool {
	probe := edgeMid.Add(rearDir.Normalize().Scale(roadProbeDistance))
	for _, nb := range neighbors {
		if nb.DistanceTo(probe) <= roadProbeDistance {
			return true
		}
	}
	return false
}
