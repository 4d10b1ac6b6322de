package projection

import (
	"fmt"

	"github.com/arloliu/spherecodec/errs"
	"github.com/golang/geo/r2"
)

// Plane is a columnar set of projected points.
type Plane struct {
	X []float64
	Y []float64
}

// NewPlane allocates n zero points.
func NewPlane(n int) Plane {
	return Plane{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
}

// Len returns the number of points.
func (p Plane) Len() int {
	return len(p.X)
}

// At returns point i.
func (p Plane) At(i int) r2.Point {
	return r2.Point{X: p.X[i], Y: p.Y[i]}
}

// Set stores pt at index i.
func (p Plane) Set(i int, pt r2.Point) {
	p.X[i], p.Y[i] = pt.X, pt.Y
}

// Validate checks that both columns have the same length.
func (p Plane) Validate() error {
	if len(p.X) != len(p.Y) {
		return fmt.Errorf("%w: x=%d y=%d", errs.ErrLengthMismatch, len(p.X), len(p.Y))
	}

	return nil
}

// Stats describes what Forward had to clip.
type Stats struct {
	// MaxRange is the bound R used for clipping.
	MaxRange float64
	// Clipped is the number of points with at least one clipped coordinate.
	Clipped int
	// ClippedIndices lists those points in ascending order.
	ClippedIndices []int
}

// Lossy reports whether any point was clipped.
func (s Stats) Lossy() bool {
	return s.Clipped > 0
}
