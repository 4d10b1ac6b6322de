package sphere

import (
	"fmt"

	"github.com/arloliu/spherecodec/errs"
)

// Scale is the value range observed by Map. It is immutable and must travel
// with the points (or their projection) to Recover.
type Scale struct {
	Min int64
	Max int64
}

// NewScale validates that lo <= hi.
func NewScale(lo, hi int64) (Scale, error) {
	if lo > hi {
		return Scale{}, fmt.Errorf("%w: min=%d max=%d", errs.ErrInvalidScale, lo, hi)
	}

	return Scale{Min: lo, Max: hi}, nil
}

// ScaleOf returns the min and max of values. values must not be empty.
func ScaleOf(values []int64) (Scale, error) {
	if len(values) == 0 {
		return Scale{}, errs.ErrEmptyValues
	}

	s := Scale{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}

	return s, nil
}

// Span returns Max − Min as a float64.
func (s Scale) Span() float64 {
	return float64(s.Max - s.Min)
}

// Degenerate reports whether every value was equal. Map still succeeds for a
// degenerate scale; every point lands on the south pole.
func (s Scale) Degenerate() bool {
	return s.Min == s.Max
}

func (s Scale) String() string {
	return fmt.Sprintf("[%d, %d]", s.Min, s.Max)
}
