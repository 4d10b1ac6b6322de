package hash

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Checksum computes the xxHash64 of data. Used to detect packet payload corruption.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// KeyPrefix32 returns the first 32 bits of the SHA-256 digest of key, read big-endian.
//
// This equals parsing the first eight hex characters of the hex digest as an integer.
func KeyPrefix32(key string) uint32 {
	sum := sha256.Sum256([]byte(key))
	return binary.BigEndian.Uint32(sum[:4])
}
