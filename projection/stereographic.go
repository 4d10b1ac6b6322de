package projection

import (
	"fmt"
	"math"

	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/sphere"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Epsilon keeps z away from the poles before dividing by 1 − z.
const Epsilon = 1e-9

// ValidateRange checks that maxRange is a usable clip bound: greater than 0
// and not NaN. +Inf disables clipping.
func ValidateRange(maxRange float64) error {
	if !(maxRange > 0) {
		return fmt.Errorf("%w: got %v", errs.ErrInvalidProjectionRange, maxRange)
	}

	return nil
}

// ForwardPoint projects v onto the plane and reports whether either plane
// coordinate had to be clipped to [-maxRange, maxRange].
func ForwardPoint(v r3.Vector, maxRange float64) (r2.Point, bool) {
	z := clip(v.Z, -1+Epsilon, 1-Epsilon)
	u := v.X / (1 - z)
	w := v.Y / (1 - z)

	clipped := math.Abs(u) > maxRange || math.Abs(w) > maxRange

	return r2.Point{X: clip(u, -maxRange, maxRange), Y: clip(w, -maxRange, maxRange)}, clipped
}

// InversePoint maps a plane point back onto the unit sphere.
//
// It is the exact inverse of the unclipped forward map and is defined for
// every finite input.
func InversePoint(p r2.Point) r3.Vector {
	rr := p.X*p.X + p.Y*p.Y
	d := rr + 1

	return r3.Vector{
		X: 2 * p.X / d,
		Y: 2 * p.Y / d,
		Z: (rr - 1) / d,
	}
}

// Forward projects every point, preserving order.
func Forward(points sphere.Points, maxRange float64) (Plane, Stats, error) {
	if err := ValidateRange(maxRange); err != nil {
		return Plane{}, Stats{}, err
	}

	if err := points.Validate(); err != nil {
		return Plane{}, Stats{}, err
	}

	plane := NewPlane(points.Len())
	stats := Stats{MaxRange: maxRange}
	for i := range points.Len() {
		pt, clipped := ForwardPoint(points.At(i), maxRange)
		plane.Set(i, pt)
		if clipped {
			stats.Clipped++
			stats.ClippedIndices = append(stats.ClippedIndices, i)
		}
	}

	return plane, stats, nil
}

// Inverse maps every plane point back onto the sphere, preserving order.
func Inverse(plane Plane) (sphere.Points, error) {
	if err := plane.Validate(); err != nil {
		return sphere.Points{}, err
	}

	points := sphere.NewPoints(plane.Len())
	for i := range plane.Len() {
		points.Set(i, InversePoint(plane.At(i)))
	}

	return points, nil
}

func clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
