package text

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/internal/options"
)

// Encode maps each rune of message to its code point plus KeyOffset(key).
//
// The result has one value per rune, in message order. An empty message yields
// an empty, non-nil slice. Messages that are not valid UTF-8 are rejected with
// errs.ErrInvalidMessage.
func Encode(message, key string, opts ...EncodeOption) ([]int64, error) {
	offset, err := KeyOffset(key)
	if err != nil {
		return nil, err
	}

	cfg := &EncodeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.apply {
		message = cfg.form.String(message)
	}

	if !utf8.ValidString(message) {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidMessage, message)
	}

	values := make([]int64, 0, utf8.RuneCountInString(message))
	for _, r := range message {
		values = append(values, int64(r)+offset)
	}

	return values, nil
}
