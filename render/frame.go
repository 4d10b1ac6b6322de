package render

import (
	"github.com/arloliu/spherecodec/projection"
	"github.com/arloliu/spherecodec/sphere"
)

// Kind identifies the coordinate space of a frame.
type Kind string

const (
	KindSphere Kind = "sphere"
	KindPlane  Kind = "plane"
)

// Frame titles published by the pipeline.
const (
	TitleOriginal   = "Original Points on Sphere"
	TitleProjection = "Stereographic Projection"
	TitleRecovered  = "Recovered 3D Points"
)

// Frame is one visualization snapshot. Z is empty for plane frames.
//
// Order[i] is the message position of point i.
type Frame struct {
	Title string    `yaml:"title"`
	Kind  Kind      `yaml:"kind"`
	X     []float64 `yaml:"x,flow"`
	Y     []float64 `yaml:"y,flow"`
	Z     []float64 `yaml:"z,flow,omitempty"`
	Order []int     `yaml:"order,flow"`
}

// Len returns the number of points in the frame.
func (f Frame) Len() int {
	return len(f.X)
}

// SphereFrame builds a frame from sphere points. The slices are copied.
func SphereFrame(title string, points sphere.Points) Frame {
	c := points.Clone()

	return Frame{
		Title: title,
		Kind:  KindSphere,
		X:     c.X,
		Y:     c.Y,
		Z:     c.Z,
		Order: sequence(points.Len()),
	}
}

// PlaneFrame builds a frame from plane points. The slices are copied.
func PlaneFrame(title string, plane projection.Plane) Frame {
	return Frame{
		Title: title,
		Kind:  KindPlane,
		X:     append([]float64(nil), plane.X...),
		Y:     append([]float64(nil), plane.Y...),
		Order: sequence(plane.Len()),
	}
}

func sequence(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return order
}
