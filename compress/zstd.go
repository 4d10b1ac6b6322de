package compress

// ZstdCompressor is a Zstandard codec.
//
// The default build uses the pure Go klauspost/compress/zstd implementation.
// Building with -tags gozstd and cgo enabled switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
