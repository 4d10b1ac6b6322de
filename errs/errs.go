// Package errs defines the sentinel errors returned by spherecodec packages.
//
// Callers should match with errors.Is; most errors are wrapped with context
// by the package that returns them.
package errs

import "errors"

// Configuration errors.
var (
	// ErrInvalidConfig is the parent of every configuration error.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidRadius is returned when the sphere radius is not exactly 1.
	ErrInvalidRadius = errors.New("sphere radius must be exactly 1")
	// ErrInvalidProjectionRange is returned when the max projection range is not a positive number.
	ErrInvalidProjectionRange = errors.New("max projection range must be greater than 0")
	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)

// Input errors.
var (
	ErrEmptyKey       = errors.New("key must not be empty")
	ErrEmptyMessage   = errors.New("message must not be empty")
	ErrInvalidMessage = errors.New("message is not valid UTF-8")
	ErrEmptyValues    = errors.New("numeric values must not be empty")
	// ErrInvalidCodepoint is returned when a recovered value minus the key offset
	// is not a valid Unicode code point.
	ErrInvalidCodepoint = errors.New("invalid codepoint")
	// ErrLengthMismatch is returned when parallel coordinate columns differ in length.
	ErrLengthMismatch = errors.New("coordinate column length mismatch")
	// ErrInvalidScale is returned when a scale has Min greater than Max.
	ErrInvalidScale = errors.New("invalid scale: min greater than max")
)

// Packet errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid packet header size")
	ErrInvalidMagicNumber  = errors.New("invalid packet magic number")
	ErrInvalidHeaderFlags  = errors.New("invalid packet header flags")
	ErrPayloadSizeMismatch = errors.New("packet payload size mismatch")
	ErrChecksumMismatch    = errors.New("packet checksum mismatch")
	ErrPointCountMismatch  = errors.New("packet point count mismatch")
	ErrTooManyPoints       = errors.New("too many points for a single packet")
)
