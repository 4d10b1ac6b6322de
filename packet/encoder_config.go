package packet

import (
	"fmt"

	"github.com/arloliu/spherecodec/compress"
	"github.com/arloliu/spherecodec/endian"
	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/format"
	"github.com/arloliu/spherecodec/internal/options"
	"github.com/arloliu/spherecodec/section"
)

// EncoderConfig holds the header template and codec of an Encoder.
type EncoderConfig struct {
	header *section.PacketHeader
	codec  compress.Codec
	engine endian.EndianEngine
}

// NewEncoderConfig returns the default configuration: little endian, no
// compression, half-open azimuth spacing.
func NewEncoderConfig() *EncoderConfig {
	header := section.NewPacketHeader()

	return &EncoderConfig{
		header: header,
		codec:  compress.NewNoOpCompressor(),
		engine: header.Flag.GetEndianEngine(),
	}
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	codec, err := compress.CreateCodec(comp, "plane payload")
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}

	c.header.Flag.SetCompression(comp)
	c.codec = codec

	return nil
}

func (c *EncoderConfig) setEndianness(big bool) {
	if big {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}

	c.engine = c.header.Flag.GetEndianEngine()
}

// Compression returns the configured payload compression.
func (c *EncoderConfig) Compression() format.CompressionType {
	return c.header.Flag.Compression()
}

// IsBigEndian reports whether the encoder writes big-endian fields.
func (c *EncoderConfig) IsBigEndian() bool {
	return c.header.Flag.IsBigEndian()
}

// EncoderOption configures an EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the payload compression. It is CompressionNone by default.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian writes header fields and payload little-endian.
// It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(false)
	})
}

// WithBigEndian writes header fields and payload big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(true)
	})
}

// WithClosedAzimuth records that the sphere points were spaced over the
// closed interval [0, 2π]. The flag is informational for the decoder side.
func WithClosedAzimuth(closed bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.SetClosedAzimuth(closed)
	})
}
