package sphere

import "math"

// RecoverValue inverts the normalization for a single z coordinate.
//
// z is clipped to [-1, 1], rescaled to [scale.Min, scale.Max] and rounded half
// to even.
func RecoverValue(z float64, scale Scale) int64 {
	n := clip(z, -1, 1)
	return int64(math.RoundToEven((n+1)*scale.Span()/2 + float64(scale.Min)))
}

// Recover applies RecoverValue to every z, preserving order.
func Recover(z []float64, scale Scale) []int64 {
	values := make([]int64, len(z))
	for i, v := range z {
		values[i] = RecoverValue(v, scale)
	}

	return values
}
