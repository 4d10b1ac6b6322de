package sphere

import (
	"fmt"
	"math"

	"github.com/arloliu/spherecodec/errs"
	"github.com/golang/geo/r3"
)

// Radius is the only supported sphere radius.
const Radius = 1.0

// Points is a columnar set of 3D points. X, Y and Z share one length and are
// indexed by message position.
type Points struct {
	X []float64
	Y []float64
	Z []float64
}

// NewPoints allocates n zero points.
func NewPoints(n int) Points {
	return Points{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
}

// Len returns the number of points.
func (p Points) Len() int {
	return len(p.X)
}

// At returns point i as a vector.
func (p Points) At(i int) r3.Vector {
	return r3.Vector{X: p.X[i], Y: p.Y[i], Z: p.Z[i]}
}

// Set stores v at index i.
func (p Points) Set(i int, v r3.Vector) {
	p.X[i], p.Y[i], p.Z[i] = v.X, v.Y, v.Z
}

// Validate checks that the three columns have the same length.
func (p Points) Validate() error {
	if len(p.Y) != len(p.X) || len(p.Z) != len(p.X) {
		return fmt.Errorf("%w: x=%d y=%d z=%d", errs.ErrLengthMismatch, len(p.X), len(p.Y), len(p.Z))
	}

	return nil
}

// MaxResidual returns max |x²+y²+z² − radius²| over all points, or 0 when empty.
func (p Points) MaxResidual(radius float64) float64 {
	var worst float64
	for i := range p.Len() {
		worst = math.Max(worst, math.Abs(p.At(i).Norm2()-radius*radius))
	}

	return worst
}

// Clone returns a deep copy.
func (p Points) Clone() Points {
	return Points{
		X: append([]float64(nil), p.X...),
		Y: append([]float64(nil), p.Y...),
		Z: append([]float64(nil), p.Z...),
	}
}
