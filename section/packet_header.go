package section

import (
	"math"

	"github.com/arloliu/spherecodec/errs"
)

// PacketHeader is the fixed-size header at the start of a packet.
type PacketHeader struct {
	Flag PacketFlag // byte offset 0-3
	// PointCount is the number of plane points in the payload.
	PointCount uint32 // byte offset 4-7
	// ScaleMin and ScaleMax are the value range recorded at mapping time.
	ScaleMin int64 // byte offset 8-15
	ScaleMax int64 // byte offset 16-23
	// MaxProjectionRange is the clip bound R used by the forward projection.
	MaxProjectionRange float64 // byte offset 24-31
	// PayloadSize is the payload length in bytes as stored, after compression.
	PayloadSize uint32 // byte offset 32-35
	// ClippedCount is the number of points whose projection was clipped.
	ClippedCount uint32 // byte offset 36-39
	// Checksum is the xxHash64 of the stored payload bytes.
	Checksum uint64 // byte offset 40-47
}

// NewPacketHeader returns a header with a default flag and zero counts.
func NewPacketHeader() *PacketHeader {
	return &PacketHeader{Flag: NewPacketFlag()}
}

// Bytes serializes the header into a new HeaderSize slice.
func (h *PacketHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.PutBytes(b)

	return b
}

// PutBytes serializes the header into b, which must hold HeaderSize bytes.
func (h *PacketHeader) PutBytes(b []byte) {
	_ = b[HeaderSize-1]

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.EncodingType
	b[3] = h.Flag.CompressionType

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.PointCount)
	engine.PutUint64(b[8:16], uint64(h.ScaleMin))
	engine.PutUint64(b[16:24], uint64(h.ScaleMax))
	engine.PutUint64(b[24:32], math.Float64bits(h.MaxProjectionRange))
	engine.PutUint32(b[32:36], h.PayloadSize)
	engine.PutUint32(b[36:40], h.ClippedCount)
	engine.PutUint64(b[40:48], h.Checksum)
}

// Parse reads the header from data, which must be exactly HeaderSize bytes.
//
// Returns ErrInvalidHeaderSize, flag validation errors, or ErrInvalidHeaderFlags
// when the recorded scale or projection range is impossible.
func (h *PacketHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.EncodingType = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.PointCount = engine.Uint32(data[4:8])
	h.ScaleMin = int64(engine.Uint64(data[8:16]))
	h.ScaleMax = int64(engine.Uint64(data[16:24]))
	h.MaxProjectionRange = math.Float64frombits(engine.Uint64(data[24:32]))
	h.PayloadSize = engine.Uint32(data[32:36])
	h.ClippedCount = engine.Uint32(data[36:40])
	h.Checksum = engine.Uint64(data[40:48])

	if h.ScaleMin > h.ScaleMax {
		return errs.ErrInvalidHeaderFlags
	}

	if !(h.MaxProjectionRange > 0) {
		return errs.ErrInvalidHeaderFlags
	}

	if h.ClippedCount > h.PointCount {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// ParsePacketHeader parses the header at the start of data.
func ParsePacketHeader(data []byte) (PacketHeader, error) {
	if len(data) < HeaderSize {
		return PacketHeader{}, errs.ErrInvalidHeaderSize
	}

	var h PacketHeader
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return PacketHeader{}, err
	}

	return h, nil
}

// RawPayloadSize returns the uncompressed payload size implied by PointCount.
func (h *PacketHeader) RawPayloadSize() int {
	return int(h.PointCount) * BytesPerPoint
}
