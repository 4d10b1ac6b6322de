package text

import (
	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/internal/hash"
)

// KeyOffset derives the value offset for key.
//
// The offset is the first 32 bits of SHA-256 over the key's UTF-8 bytes,
// reduced modulo 256. Empty keys are rejected with errs.ErrEmptyKey.
func KeyOffset(key string) (int64, error) {
	if key == "" {
		return 0, errs.ErrEmptyKey
	}

	return int64(hash.KeyPrefix32(key) % 256), nil
}
