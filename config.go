package spherecodec

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/format"
	"github.com/arloliu/spherecodec/internal/options"
	"github.com/arloliu/spherecodec/projection"
	"github.com/arloliu/spherecodec/render"
	"github.com/arloliu/spherecodec/sphere"
)

// DefaultMaxProjectionRange is the default clip bound R of the projection.
const DefaultMaxProjectionRange = 10.0

// Config holds the settings of a Codec.
type Config struct {
	radius        float64
	maxRange      float64
	closedAzimuth bool
	nfc           bool
	compression   format.CompressionType
	bigEndian     bool
	logger        *slog.Logger
	renderer      render.Renderer
}

func defaultConfig() *Config {
	return &Config{
		radius:      sphere.Radius,
		maxRange:    DefaultMaxProjectionRange,
		compression: format.CompressionNone,
		logger:      slog.New(slog.DiscardHandler),
		renderer:    render.Nop{},
	}
}

func (c *Config) validate() error {
	if c.radius != sphere.Radius {
		return &ConfigError{Field: "SphereRadius", Value: c.radius, Err: errs.ErrInvalidRadius}
	}

	if projection.ValidateRange(c.maxRange) != nil {
		return &ConfigError{Field: "MaxProjectionRange", Value: c.maxRange, Err: errs.ErrInvalidProjectionRange}
	}

	if !c.compression.Valid() {
		return &ConfigError{Field: "Compression", Value: c.compression, Err: errs.ErrInvalidCompression}
	}

	return nil
}

// ConfigError reports an invalid Codec setting.
//
// It matches both errs.ErrInvalidConfig and the specific sentinel in Err.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %v", errs.ErrInvalidConfig, e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return []error{errs.ErrInvalidConfig, e.Err}
}

// Option configures a Codec.
type Option = options.Option[*Config]

// WithSphereRadius sets the sphere radius. Only 1 is accepted; New rejects
// anything else.
func WithSphereRadius(radius float64) Option {
	return options.NoError(func(c *Config) {
		c.radius = radius
	})
}

// WithMaxProjectionRange sets the bound R that plane coordinates are clipped
// to. R must be greater than 0; +Inf disables clipping.
func WithMaxProjectionRange(maxRange float64) Option {
	return options.NoError(func(c *Config) {
		c.maxRange = maxRange
	})
}

// WithClosedAzimuth spaces azimuths over [0, 2π] inclusive instead of [0, 2π).
// The first and last points then share an azimuth.
func WithClosedAzimuth() Option {
	return options.NoError(func(c *Config) {
		c.closedAzimuth = true
	})
}

// WithNFC normalizes messages to Unicode NFC before encoding.
func WithNFC() Option {
	return options.NoError(func(c *Config) {
		c.nfc = true
	})
}

// WithCompression sets the packet payload compression used by Marshal.
func WithCompression(comp format.CompressionType) Option {
	return options.NoError(func(c *Config) {
		c.compression = comp
	})
}

// WithLittleEndian makes Marshal write little-endian packets. It is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = false
	})
}

// WithBigEndian makes Marshal write big-endian packets.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = true
	})
}

// WithLogger sets the structured logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		c.logger = logger
	})
}

// WithRenderer sets the renderer that receives a frame per pipeline stage.
// A nil renderer disables rendering.
func WithRenderer(r render.Renderer) Option {
	return options.NoError(func(c *Config) {
		if r == nil {
			r = render.Nop{}
		}
		c.renderer = r
	})
}
