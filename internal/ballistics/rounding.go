package ballistics

import "math"

// roundTo rounds v to places decimal digits using half-away-from-zero,
// applied only once at the reporting boundary (never during integration).
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	if v >= 0 {
		return math.Floor(v*scale+0.5) / scale
	}
	return math.Ceil(v*scale-0.5) / scale
}
