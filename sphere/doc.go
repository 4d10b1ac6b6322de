// Package sphere maps integer sequences onto the unit sphere and back.
//
// Map normalizes values to [-1, 1] and uses the normalized value as the cosine
// of the polar angle, so z carries the magnitude. The azimuth is assigned by
// position, evenly spaced around the sphere, so it carries the order.
// Recover inverts the normalization from z alone.
//
// The value range seen by Map is returned as a Scale. Recover needs that exact
// Scale: recomputing it from recovered points would not reproduce the original
// range once any point has been altered downstream.
package sphere
