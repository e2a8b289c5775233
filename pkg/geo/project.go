package geo

import "math"

// metersPerDegreeLat is the equirectangular scale for one degree of latitude.
// Longitude degrees shrink by cos(latitude).
const metersPerDegreeLat = 111320.0

// GeoPoint is a geographic coordinate in degrees.
type GeoPoint struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// GeoPolygon is an ordered sequence of geographic coordinates, implicitly
// closed. The engine assumes well-formed input is simple; it never validates
// this and degrades gracefully on violation.
type GeoPolygon []GeoPoint

// Projection holds a parcel polygon projected into a local planar frame
// centered on the mean of its vertices, in meters.
type Projection struct {
	Points Polygon
	Center GeoPoint
}

// IsEmpty returns true if the projection produced no usable polygon.
func (pr Projection) IsEmpty() bool {
	return pr.Points.IsEmpty()
}

// Project converts a geographic polygon to local planar coordinates using an
// equirectangular approximation scaled at the centroid latitude. X is negated
// so increasing longitude maps to decreasing X, matching the renderer's
// east/west convention. A polygon with fewer than 3 vertices yields an empty
// projection; callers fall back to a square approximation from parcel area.
func Project(poly GeoPolygon) Projection {
	if len(poly) < 3 {
		return Projection{}
	}

	var sumLng, sumLat float64
	for _, gp := range poly {
		sumLng += gp.Lng
		sumLat += gp.Lat
	}
	center := GeoPoint{
		Lng: sumLng / float64(len(poly)),
		Lat: sumLat / float64(len(poly)),
	}

	mPerLat := metersPerDegreeLat
	mPerLng := metersPerDegreeLat * math.Cos(center.Lat*math.Pi/180)

	pts := make([]Point2D, len(poly))
	for i, gp := range poly {
		pts[i] = Point2D{
			X: -(gp.Lng - center.Lng) * mPerLng,
			Z: (gp.Lat - center.Lat) * mPerLat,
		}
	}
	return Projection{Points: Polygon{Vertices: pts}, Center: center}
}

// ProjectInto projects another geographic polygon into this projection's
// local frame, so adjacent parcels share the subject parcel's coordinates.
func (pr Projection) ProjectInto(poly GeoPolygon) Polygon {
	mPerLat := metersPerDegreeLat
	mPerLng := metersPerDegreeLat * math.Cos(pr.Center.Lat*math.Pi/180)
	pts := make([]Point2D, len(poly))
	for i, gp := range poly {
		pts[i] = Point2D{
			X: -(gp.Lng - pr.Center.Lng) * mPerLng,
			Z: (gp.Lat - pr.Center.Lat) * mPerLat,
		}
	}
	return Polygon{Vertices: pts}
}

// Unproject converts a local planar point back to geographic coordinates.
// It inverts Project within floating tolerance.
func (pr Projection) Unproject(pt Point2D) GeoPoint {
	mPerLat := metersPerDegreeLat
	mPerLng := metersPerDegreeLat * math.Cos(pr.Center.Lat*math.Pi/180)
	return GeoPoint{
		Lng: pr.Center.Lng - pt.X/mPerLng,
		Lat: pr.Center.Lat + pt.Z/mPerLat,
	}
}
