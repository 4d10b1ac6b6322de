package spherecodec

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/arloliu/spherecodec/format"
)

// EnvConfig is the environment representation of a Codec configuration.
type EnvConfig struct {
	SphereRadius       float64    `env:"SPHERECODEC_SPHERE_RADIUS"        envDefault:"1"`
	MaxProjectionRange float64    `env:"SPHERECODEC_MAX_PROJECTION_RANGE" envDefault:"10"`
	ClosedAzimuth      bool       `env:"SPHERECODEC_CLOSED_AZIMUTH"`
	NFC                bool       `env:"SPHERECODEC_NFC"`
	Compression        string     `env:"SPHERECODEC_COMPRESSION"          envDefault:"none"`
	BigEndian          bool       `env:"SPHERECODEC_BIG_ENDIAN"`
	LogLevel           slog.Level `env:"SPHERECODEC_LOG_LEVEL"            envDefault:"INFO"`
}

// LoadEnvConfig reads SPHERECODEC_* variables, applying defaults for unset ones.
func LoadEnvConfig() (EnvConfig, error) {
	cfg, err := env.ParseAs[EnvConfig]()
	if err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Options converts the environment configuration into Codec options.
// Values are validated by New, except the compression name which must parse.
func (e EnvConfig) Options() ([]Option, error) {
	comp, err := format.ParseCompressionType(e.Compression)
	if err != nil {
		return nil, &ConfigError{Field: "Compression", Value: e.Compression, Err: err}
	}

	opts := []Option{
		WithSphereRadius(e.SphereRadius),
		WithMaxProjectionRange(e.MaxProjectionRange),
		WithCompression(comp),
	}
	if e.ClosedAzimuth {
		opts = append(opts, WithClosedAzimuth())
	}
	if e.NFC {
		opts = append(opts, WithNFC())
	}
	if e.BigEndian {
		opts = append(opts, WithBigEndian())
	}

	return opts, nil
}

// Logger returns a text logger writing to w at LogLevel.
func (e EnvConfig) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: e.LogLevel}))
}
