// Package spherecodec implements a reversible text transform through sphere
// geometry.
//
// A message is turned into integers (code point plus a key-derived offset),
// the integers are laid out on the unit sphere (polar angle encodes
// magnitude, azimuth encodes position), the sphere points are projected
// stereographically onto a bounded plane, and the inverse path reverses every
// step. The key only perturbs the offset. This is a teaching transform, not
// encryption.
//
// # Basic Usage
//
//	codec, err := spherecodec.New(spherecodec.WithMaxProjectionRange(10))
//	if err != nil {
//	    return err
//	}
//
//	enc, err := codec.Encode("Hello", "mysecretkey")
//	if err != nil {
//	    return err
//	}
//	if enc.Stats.Lossy() {
//	    // some plane points were clipped to [-R, R]
//	}
//
//	dec, err := codec.Decode(enc.Plane, enc.Scale, "mysecretkey")
//	fmt.Println(dec.Message)
//
// # Transport
//
// Marshal writes the plane and scale as a compact packet (see package packet)
// and Unmarshal runs the inverse half from such a packet.
//
// # Lossy Projection
//
// Points near the north pole project far out on the plane. Coordinates beyond
// the configured range are clipped, so the inverse lands on a different sphere
// point. Encoding.Stats reports how many points were clipped and which ones.
// Rounding at recovery often hides small errors; Result.Report and
// Result.Mismatches show what was actually lost.
package spherecodec

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/spherecodec/analysis"
	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/format"
	"github.com/arloliu/spherecodec/internal/options"
	"github.com/arloliu/spherecodec/packet"
	"github.com/arloliu/spherecodec/projection"
	"github.com/arloliu/spherecodec/render"
	"github.com/arloliu/spherecodec/sphere"
	"github.com/arloliu/spherecodec/text"
)

// Codec runs the forward and inverse pipelines.
//
// A Codec is immutable after New and safe for concurrent use, provided the
// configured renderer is.
type Codec struct {
	cfg     Config
	packets *packet.Encoder
}

// Encoding is the result of the forward pipeline.
type Encoding struct {
	// Values holds one integer per rune of the message.
	Values []int64
	// Sphere holds the mapped sphere points in message order.
	Sphere sphere.Points
	// Scale is the value range needed to invert the mapping.
	Scale sphere.Scale
	// Plane holds the projected points in message order.
	Plane projection.Plane
	// Stats reports clipped projections.
	Stats projection.Stats
	// Degenerate is true when all values were equal. Every point then sits on
	// the south pole and only the scale carries the value.
	Degenerate bool
}

// Decoding is the result of the inverse pipeline.
type Decoding struct {
	// Sphere holds the recovered sphere points.
	Sphere sphere.Points
	// Values holds the recovered integers.
	Values []int64
	// Message is the decoded text.
	Message string
}

// Result is a full round trip.
type Result struct {
	Encoding *Encoding
	Decoding *Decoding
	// Report compares the original and recovered sphere points.
	Report analysis.Report
	// Mismatches lists the message positions whose value did not survive.
	Mismatches []int
}

// Exact reports whether every value was recovered.
func (r *Result) Exact() bool {
	return len(r.Mismatches) == 0
}

// New creates a Codec.
//
// Returns a *ConfigError matching errs.ErrInvalidConfig when the radius is not
// 1, the projection range is not positive or the compression is unknown.
func New(opts ...Option) (*Codec, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	endianOpt := packet.WithLittleEndian()
	if cfg.bigEndian {
		endianOpt = packet.WithBigEndian()
	}

	packets, err := packet.NewEncoder(
		packet.WithCompression(cfg.compression),
		packet.WithClosedAzimuth(cfg.closedAzimuth),
		endianOpt,
	)
	if err != nil {
		return nil, err
	}

	return &Codec{cfg: *cfg, packets: packets}, nil
}

// SphereRadius returns the configured sphere radius.
func (c *Codec) SphereRadius() float64 {
	return c.cfg.radius
}

// MaxProjectionRange returns the configured clip bound R.
func (c *Codec) MaxProjectionRange() float64 {
	return c.cfg.maxRange
}

// Compression returns the packet compression used by Marshal.
func (c *Codec) Compression() format.CompressionType {
	return c.cfg.compression
}

// Encode runs the forward pipeline: text, integers, sphere, plane.
//
// Returns errs.ErrEmptyKey, errs.ErrEmptyMessage or errs.ErrInvalidMessage for
// bad input. Clipping and degenerate input are not errors; they are reported
// in the Encoding and logged at WARN.
func (c *Codec) Encode(message, key string) (*Encoding, error) {
	if message == "" {
		return nil, errs.ErrEmptyMessage
	}

	var textOpts []text.EncodeOption
	if c.cfg.nfc {
		textOpts = append(textOpts, text.WithNFC())
	}

	values, err := text.Encode(message, key, textOpts...)
	if err != nil {
		return nil, err
	}

	var mapOpts []sphere.MapOption
	if c.cfg.closedAzimuth {
		mapOpts = append(mapOpts, sphere.WithClosedAzimuth())
	}

	points, scale, err := sphere.Map(values, c.cfg.radius, mapOpts...)
	if err != nil {
		return nil, err
	}

	degenerate := scale.Degenerate()
	if degenerate {
		c.cfg.logger.Warn("degenerate input, all values equal", slog.Int("points", points.Len()))
	}
	c.cfg.logger.Debug("mapped values to sphere",
		slog.Int("points", points.Len()),
		slog.Float64("max_residual", points.MaxResidual(c.cfg.radius)),
	)
	c.cfg.renderer.Render(render.SphereFrame(render.TitleOriginal, points))

	plane, stats, err := projection.Forward(points, c.cfg.maxRange)
	if err != nil {
		return nil, err
	}

	if stats.Lossy() {
		c.cfg.logger.Warn("projection clipped points",
			slog.Int("clipped", stats.Clipped),
			slog.Any("indices", stats.ClippedIndices),
			slog.Float64("max_range", stats.MaxRange),
		)
	}
	c.cfg.logger.Debug("projected sphere to plane", slog.Int("points", plane.Len()))
	c.cfg.renderer.Render(render.PlaneFrame(render.TitleProjection, plane))

	return &Encoding{
		Values:     values,
		Sphere:     points,
		Scale:      scale,
		Plane:      plane,
		Stats:      stats,
		Degenerate: degenerate,
	}, nil
}

// Decode runs the inverse pipeline: plane, sphere, integers, text.
//
// scale must be the Scale returned with the plane. Returns errs.ErrEmptyKey,
// errs.ErrEmptyValues for an empty plane, errs.ErrInvalidScale,
// errs.ErrLengthMismatch, or a *text.InvalidCodepointError when the key does
// not fit the values.
func (c *Codec) Decode(plane projection.Plane, scale sphere.Scale, key string) (*Decoding, error) {
	if key == "" {
		return nil, errs.ErrEmptyKey
	}

	if plane.Len() == 0 {
		return nil, errs.ErrEmptyValues
	}

	if scale.Min > scale.Max {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidScale, scale)
	}

	points, err := projection.Inverse(plane)
	if err != nil {
		return nil, err
	}

	c.cfg.logger.Debug("inverted plane to sphere",
		slog.Int("points", points.Len()),
		slog.Float64("max_residual", points.MaxResidual(c.cfg.radius)),
	)
	c.cfg.renderer.Render(render.SphereFrame(render.TitleRecovered, points))

	values := sphere.Recover(points.Z, scale)

	message, err := text.Decode(values, key)
	if err != nil {
		return nil, err
	}

	return &Decoding{
		Sphere:  points,
		Values:  values,
		Message: message,
	}, nil
}

// RoundTrip encodes message and decodes the result with the same key.
func (c *Codec) RoundTrip(message, key string) (*Result, error) {
	enc, err := c.Encode(message, key)
	if err != nil {
		return nil, err
	}

	dec, err := c.Decode(enc.Plane, enc.Scale, key)
	if err != nil {
		return nil, err
	}

	report, err := analysis.Compare(enc.Sphere, dec.Sphere)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Encoding:   enc,
		Decoding:   dec,
		Report:     report,
		Mismatches: analysis.ValueMismatches(enc.Values, dec.Values),
	}

	if !result.Exact() {
		c.cfg.logger.Warn("round trip lost values",
			slog.Int("mismatches", len(result.Mismatches)),
			slog.Float64("max_deviation", report.MaxDeviation),
		)
	}

	return result, nil
}

// Marshal serializes the plane and scale of enc as a packet.
func (c *Codec) Marshal(enc *Encoding) ([]byte, error) {
	data, err := c.packets.Encode(enc.Plane, enc.Scale, enc.Stats)
	if err != nil {
		return nil, err
	}

	c.cfg.logger.Debug("marshaled packet",
		slog.Int("points", enc.Plane.Len()),
		slog.Int("bytes", len(data)),
		slog.String("compression", c.cfg.compression.String()),
	)

	return data, nil
}

// Unmarshal decodes a packet produced by Marshal and runs the inverse
// pipeline on it. Packets from any endianness or compression are accepted.
func (c *Codec) Unmarshal(data []byte, key string) (*Decoding, error) {
	pkt, err := packet.Decode(data)
	if err != nil {
		return nil, err
	}

	if pkt.Clipped() > 0 {
		c.cfg.logger.Warn("packet holds clipped points", slog.Int("clipped", pkt.Clipped()))
	}

	return c.Decode(pkt.Plane, pkt.Scale, key)
}
