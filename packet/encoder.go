package packet

import (
	"fmt"

	"github.com/arloliu/spherecodec/encoding"
	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/internal/hash"
	"github.com/arloliu/spherecodec/internal/options"
	"github.com/arloliu/spherecodec/projection"
	"github.com/arloliu/spherecodec/section"
	"github.com/arloliu/spherecodec/sphere"
)

// Encoder writes plane packets.
//
// An Encoder is immutable after NewEncoder and safe for concurrent use: each
// Encode call works on its own copy of the header template.
type Encoder struct {
	*EncoderConfig
}

// NewEncoder creates an Encoder.
//
// Parameters:
//   - opts: Optional configuration (compression, endianness, azimuth flag)
//
// Returns:
//   - *Encoder: Encoder ready for use
//   - error: Configuration error if an option is invalid
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{EncoderConfig: config}, nil
}

// Encode serializes plane together with the scale and projection statistics
// it was produced with.
//
// Returns errs.ErrLengthMismatch for malformed planes, errs.ErrInvalidScale
// when scale.Min > scale.Max, errs.ErrInvalidProjectionRange when
// stats.MaxRange is not positive and errs.ErrTooManyPoints when the plane does
// not fit the header fields.
func (e *Encoder) Encode(plane projection.Plane, scale sphere.Scale, stats projection.Stats) ([]byte, error) {
	if err := plane.Validate(); err != nil {
		return nil, err
	}

	if scale.Min > scale.Max {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidScale, scale)
	}

	if err := projection.ValidateRange(stats.MaxRange); err != nil {
		return nil, err
	}

	count := plane.Len()
	if uint64(count) > section.MaxPointCount || uint64(count)*section.BytesPerPoint > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d", errs.ErrTooManyPoints, count)
	}

	if stats.Clipped < 0 || stats.Clipped > count {
		return nil, fmt.Errorf("%w: clipped=%d points=%d", errs.ErrPointCountMismatch, stats.Clipped, count)
	}

	colEncoder := encoding.NewNumericRawEncoder(e.engine)
	defer colEncoder.Finish()

	colEncoder.WriteSlice(plane.X)
	colEncoder.WriteSlice(plane.Y)

	payload, err := e.codec.Compress(colEncoder.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress plane payload: %w", err)
	}

	if uint64(len(payload)) > section.MaxPayloadSize {
		return nil, fmt.Errorf("%w: payload %d bytes", errs.ErrTooManyPoints, len(payload))
	}

	header := *e.header
	header.PointCount = uint32(count)
	header.ScaleMin = scale.Min
	header.ScaleMax = scale.Max
	header.MaxProjectionRange = stats.MaxRange
	header.PayloadSize = uint32(len(payload))
	header.ClippedCount = uint32(stats.Clipped)
	header.Checksum = hash.Checksum(payload)

	// payload may alias the pooled column buffer, so copy before Finish.
	out := make([]byte, section.HeaderSize+len(payload))
	header.PutBytes(out[:section.HeaderSize])
	copy(out[section.HeaderSize:], payload)

	return out, nil
}
