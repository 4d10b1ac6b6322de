package section

import (
	"github.com/arloliu/spherecodec/endian"
	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/format"
)

// PacketFlag is the packed option/encoding/compression prefix of the header.
type PacketFlag struct {
	// Options holds the magic number (bits 4-15), reserved bits (2-3), the
	// endianness bit (1) and the closed-azimuth bit (0).
	Options uint16
	// EncodingType is the coordinate column encoding.
	EncodingType uint8
	// CompressionType is the payload compression.
	CompressionType uint8
}

// NewPacketFlag returns a little-endian, raw, uncompressed flag.
func NewPacketFlag() PacketFlag {
	return PacketFlag{
		Options:         MagicPlaneV1Opt,
		EncodingType:    EncodingRaw,
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsBigEndian reports whether the fields after Options are big-endian.
func (f PacketFlag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian selects little-endian byte order.
func (f *PacketFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian selects big-endian byte order.
func (f *PacketFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f PacketFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// ClosedAzimuth reports whether the sphere points were laid out over [0, 2π].
func (f PacketFlag) ClosedAzimuth() bool {
	return f.Options&ClosedAzimuthMask != 0
}

// SetClosedAzimuth records the azimuth spacing used at encode time.
func (f *PacketFlag) SetClosedAzimuth(closed bool) {
	if closed {
		f.Options |= ClosedAzimuthMask
	} else {
		f.Options &^= ClosedAzimuthMask
	}
}

// Compression returns the payload compression type.
func (f PacketFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *PacketFlag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Encoding returns the coordinate column encoding.
func (f PacketFlag) Encoding() format.EncodingType {
	return format.EncodingType(f.EncodingType)
}

// GetMagicNumber returns the magic number bits of Options.
func (f PacketFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks the magic number, reserved bits, encoding and compression.
func (f PacketFlag) Validate() error {
	if f.GetMagicNumber() != MagicPlaneV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if f.Encoding() != format.TypeRaw {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.Compression().Valid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
