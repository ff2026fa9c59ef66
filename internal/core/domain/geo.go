package domain

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two points using
// the haversine formula. Accurate to within ~0.5% of geodesic distance,
// which is sufficient for radius filtering at human-travel scales.
// Callers must validate coordinate ranges first; NaN inputs propagate.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
