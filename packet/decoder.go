package packet

import (
	"fmt"

	"github.com/arloliu/spherecodec/compress"
	"github.com/arloliu/spherecodec/encoding"
	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/internal/hash"
	"github.com/arloliu/spherecodec/projection"
	"github.com/arloliu/spherecodec/section"
	"github.com/arloliu/spherecodec/sphere"
)

// Packet is a decoded plane packet.
type Packet struct {
	Header section.PacketHeader
	Plane  projection.Plane
	Scale  sphere.Scale
}

// MaxProjectionRange returns the clip bound the plane was produced with.
func (p *Packet) MaxProjectionRange() float64 {
	return p.Header.MaxProjectionRange
}

// Clipped returns the number of points whose projection was clipped.
func (p *Packet) Clipped() int {
	return int(p.Header.ClippedCount)
}

// ClosedAzimuth reports whether the sphere points used closed azimuth spacing.
func (p *Packet) ClosedAzimuth() bool {
	return p.Header.Flag.ClosedAzimuth()
}

// Decode parses and verifies a packet produced by Encoder.Encode.
//
// Parameters:
//   - data: Complete packet bytes, header included
//
// Returns:
//   - *Packet: Decoded header, plane and scale
//   - error: Header errors, errs.ErrPayloadSizeMismatch, errs.ErrChecksumMismatch,
//     decompression errors or errs.ErrPointCountMismatch
func Decode(data []byte) (*Packet, error) {
	header, err := section.ParsePacketHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[section.HeaderSize:]
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header=%d actual=%d", errs.ErrPayloadSizeMismatch, header.PayloadSize, len(payload))
	}

	if hash.Checksum(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress plane payload: %w", err)
	}

	if len(raw) != header.RawPayloadSize() {
		return nil, fmt.Errorf("%w: %d points need %d bytes, got %d",
			errs.ErrPointCountMismatch, header.PointCount, header.RawPayloadSize(), len(raw))
	}

	count := int(header.PointCount)
	plane := projection.NewPlane(count)
	decoder := encoding.NewNumericRawDecoder(header.Flag.GetEndianEngine())
	colSize := count * 8
	if !decoder.DecodeInto(plane.X, raw[:colSize]) || !decoder.DecodeInto(plane.Y, raw[colSize:]) {
		return nil, errs.ErrPointCountMismatch
	}

	return &Packet{
		Header: header,
		Plane:  plane,
		Scale:  sphere.Scale{Min: header.ScaleMin, Max: header.ScaleMax},
	}, nil
}
