// Package projection implements the stereographic projection between the unit
// sphere and the plane, projecting from the north pole (0, 0, 1).
//
// The forward map is bounded: z is kept inside [-1+Epsilon, 1-Epsilon] and the
// plane coordinates are clipped to [-R, R]. Clipping is lossy. A clipped point
// still inverts to a point on the sphere, just not the original one. Forward
// reports every clipped index in Stats so callers can detect the loss.
package projection
