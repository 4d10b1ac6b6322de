package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/spherecodec/errs"
)

// InvalidCodepointError reports a value that does not decode to a Unicode
// scalar value once the key offset is removed.
type InvalidCodepointError struct {
	Index     int   // position in the value sequence
	Value     int64 // recovered value
	Codepoint int64 // Value minus the key offset
}

func (e *InvalidCodepointError) Error() string {
	return fmt.Sprintf("invalid codepoint %d at index %d (value %d)", e.Codepoint, e.Index, e.Value)
}

// Unwrap returns errs.ErrInvalidCodepoint.
func (e *InvalidCodepointError) Unwrap() error {
	return errs.ErrInvalidCodepoint
}

// Decode subtracts KeyOffset(key) from every value and assembles the runes.
//
// A value whose code point is negative, above U+10FFFF, or a surrogate fails
// with *InvalidCodepointError. This happens with a wrong key or when lossy
// projection shifted a recovered value.
func Decode(values []int64, key string) (string, error) {
	offset, err := KeyOffset(key)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(values))

	for i, v := range values {
		cp := v - offset
		if cp < 0 || cp > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
			return "", &InvalidCodepointError{Index: i, Value: v, Codepoint: cp}
		}
		sb.WriteRune(rune(cp))
	}

	return sb.String(), nil
}
