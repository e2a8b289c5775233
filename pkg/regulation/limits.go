// Package regulation holds the Korean building-code rules the envelope
// engine checks against: per-zone coverage and floor-area ratio maxima,
// story-height limits, and the daylight-rights (north) setback of the
// Building Act Enforcement Decree Art. 86.
package regulation

import "strings"

// Limits is the set of legal maxima for one use zone.
type Limits struct {
	MaxCoverage float64 `json:"max_coverage"`          // 건폐율, percent
	MaxFAR      float64 `json:"max_far"`               // 용적률, percent
	MaxStories  int     `json:"max_stories,omitempty"` // 0 means no story cap
	Note        string  `json:"note,omitempty"`
}

// zoneLimits maps use-zone classifications to their legal maxima.
// Values follow the Jeju Special Self-Governing Province ordinance.
var zoneLimits = map[string]Limits{
	// Residential
	"제1종전용주거지역": {MaxCoverage: 40, MaxFAR: 80},
	"제2종전용주거지역": {MaxCoverage: 40, MaxFAR: 120},
	"제1종일반주거지역": {MaxCoverage: 60, MaxFAR: 200},
	"제2종일반주거지역": {MaxCoverage: 60, MaxFAR: 250},
	"제3종일반주거지역": {MaxCoverage: 50, MaxFAR: 300},
	"준주거지역":     {MaxCoverage: 60, MaxFAR: 500},

	// Commercial
	"중심상업지역": {MaxCoverage: 80, MaxFAR: 1300},
	"일반상업지역": {MaxCoverage: 80, MaxFAR: 1000},
	"근린상업지역": {MaxCoverage: 60, MaxFAR: 700},

	// Industrial
	"준공업지역": {MaxCoverage: 60, MaxFAR: 300},

	// Green / managed
	"자연녹지지역": {MaxCoverage: 20, MaxFAR: 80, MaxStories: 4},
	"계획관리지역": {MaxCoverage: 40, MaxFAR: 80, MaxStories: 4},
	"생산관리지역": {MaxCoverage: 20, MaxFAR: 60, MaxStories: 3},
	"보전관리지역": {MaxCoverage: 20, MaxFAR: 60, MaxStories: 3},
	"농림지역":   {MaxCoverage: 20, MaxFAR: 50, MaxStories: 3},
}

// defaultLimits applies to unknown use zones.
var defaultLimits = Limits{MaxCoverage: 20, MaxFAR: 80}

// Settlement-district (취락지구) special cases override the base zone.
var settlementLimits = map[bool]Limits{
	true:  {MaxCoverage: 50, MaxFAR: 100, Note: "취락지구 특례 적용"}, // within green zones
	false: {MaxCoverage: 60, MaxFAR: 100, Note: "취락지구 특례 적용"}, // within managed zones
}

// LimitsForZone returns the legal maxima for a use zone. Settlement
// districts get the special-case table regardless of base zone; unknown
// zones get conservative defaults.
func LimitsForZone(useZone string, settlement bool) Limits {
	if settlement {
		return settlementLimits[strings.Contains(useZone, "녹지")]
	}
	if l, ok := zoneLimits[useZone]; ok {
		return l
	}
	return defaultLimits
}

// DefaultStoryHeight is the assumed floor-to-floor height in meters when a
// project does not configure one.
const DefaultStoryHeight = 3.0

// ParkingRequirement returns the required parking stall count for a building
// type given total floor area in square meters and dwelling unit count.
func ParkingRequirement(buildingType string, totalFloorArea float64, units int) int {
	var n int
	switch buildingType {
	case "단독주택", "근린생활시설":
		n = int(totalFloorArea / 150)
	case "다세대주택", "다가구주택":
		n = int(float64(units) * 0.7)
	case "아파트":
		n = units
	case "업무시설":
		n = int(totalFloorArea / 100)
	default:
		n = int(totalFloorArea / 150)
	}
	if n < 1 {
		return 1
	}
	return n
}
