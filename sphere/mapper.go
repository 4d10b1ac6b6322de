package sphere

import (
	"fmt"
	"math"

	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/internal/options"
)

// Epsilon guards the normalization denominator against a zero value range.
const Epsilon = 1e-9

// MapConfig holds optional Map behavior.
type MapConfig struct {
	closedAzimuth bool
}

// MapOption configures Map.
type MapOption = options.Option[*MapConfig]

// WithClosedAzimuth spaces azimuths over the closed interval [0, 2π], so the
// last point shares the first point's meridian. The default is [0, 2π).
func WithClosedAzimuth() MapOption {
	return options.NoError(func(c *MapConfig) {
		c.closedAzimuth = true
	})
}

// Normalize rescales values linearly to [-1, 1] and returns the observed Scale.
//
// The denominator is (max − min + Epsilon), so a constant sequence maps every
// value to -1 instead of dividing by zero.
func Normalize(values []int64) ([]float64, Scale, error) {
	scale, err := ScaleOf(values)
	if err != nil {
		return nil, Scale{}, err
	}

	denom := scale.Span() + Epsilon
	norm := make([]float64, len(values))
	for i, v := range values {
		norm[i] = clip(2*float64(v-scale.Min)/denom-1, -1, 1)
	}

	return norm, scale, nil
}

// Azimuths returns n evenly spaced azimuth angles starting at 0.
// closed selects [0, 2π] instead of [0, 2π).
func Azimuths(n int, closed bool) []float64 {
	phi := make([]float64, n)
	if n == 0 {
		return phi
	}

	steps := float64(n)
	if closed {
		if n == 1 {
			return phi
		}
		steps = float64(n - 1)
	}

	for i := range phi {
		phi[i] = 2 * math.Pi * float64(i) / steps
	}

	return phi
}

// Map places every value on the sphere of the given radius.
//
// Point i has polar angle arccos(norm_i) and azimuth Azimuths(n)[i]. The radius
// must be exactly Radius; anything else is a configuration error.
func Map(values []int64, radius float64, opts ...MapOption) (Points, Scale, error) {
	if radius != Radius {
		return Points{}, Scale{}, fmt.Errorf("%w: got %v", errs.ErrInvalidRadius, radius)
	}

	cfg := &MapConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return Points{}, Scale{}, err
	}

	norm, scale, err := Normalize(values)
	if err != nil {
		return Points{}, Scale{}, err
	}

	phi := Azimuths(len(values), cfg.closedAzimuth)
	points := NewPoints(len(values))
	for i, n := range norm {
		theta := math.Acos(n)
		sinTheta, cosTheta := math.Sincos(theta)
		sinPhi, cosPhi := math.Sincos(phi[i])

		points.X[i] = radius * sinTheta * cosPhi
		points.Y[i] = radius * sinTheta * sinPhi
		points.Z[i] = radius * cosTheta
	}

	return points, scale, nil
}

func clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
