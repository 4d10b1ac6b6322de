package text

import (
	"github.com/arloliu/spherecodec/internal/options"
	"golang.org/x/text/unicode/norm"
)

// EncodeConfig holds optional encoder behavior.
type EncodeConfig struct {
	form  norm.Form
	apply bool
}

// EncodeOption configures Encode.
type EncodeOption = options.Option[*EncodeConfig]

// WithNormalization normalizes the message to form before encoding.
// Decoding yields the normalized message, not the original bytes.
func WithNormalization(form norm.Form) EncodeOption {
	return options.NoError(func(c *EncodeConfig) {
		c.form = form
		c.apply = true
	})
}

// WithNFC normalizes the message to Unicode Normalization Form C, so that
// composed and decomposed spellings of the same text encode identically.
func WithNFC() EncodeOption {
	return WithNormalization(norm.NFC)
}
