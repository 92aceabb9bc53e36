package geo

import (
	"math"
	"math/rand/v2"

	"github.com/golang/geo/s2"
)

// MetersPerDegree is the flat approximation used for jitter on both axes.
const MetersPerDegree = 111_000.0

// EarthRadiusMeters is the mean earth radius.
const EarthRadiusMeters = 6_371_008.8

// Jitter moves lat and lon independently by a uniform offset in
// [-radius, +radius] meters. The result is clamped to the poles and the
// longitude wrapped into [-180, 180]. A radius that is not a positive
// finite number leaves the point where it is.
func Jitter(lat, lon, radius float64, r *rand.Rand) (float64, float64) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return lat, lon
	}
	offset := radius / MetersPerDegree
	lat += (2*r.Float64() - 1) * offset
	lon += (2*r.Float64() - 1) * offset
	return math.Max(-90, math.Min(90, lat)), math.Remainder(lon, 360)
}

// DistanceMeters is the great-circle distance between two points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * EarthRadiusMeters
}
