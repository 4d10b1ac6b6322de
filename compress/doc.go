// Package compress provides the payload codecs used by spherecodec packets.
//
// A packet payload is two raw float64 columns. Plane coordinates are rarely
// repetitive, so compression mostly pays off on long messages whose clipped
// points collapse onto ±R and on near-pole points with small exponents.
//
// Supported algorithms:
//   - None: payload stored as-is
//   - Zstd: best ratio (klauspost/compress/zstd, or valyala/gozstd when built
//     with the gozstd tag and cgo enabled)
//   - S2: fast, balanced (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4/v4)
//
// All codecs are stateless values and safe for concurrent use. Zstd and LZ4
// keep warmed encoder state in sync.Pools.
//
// Example:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "payload")
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
package compress
