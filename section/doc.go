// Package section defines the fixed binary header of a spherecodec packet.
//
// A packet carries only the planar half of the pipeline: the stereographic
// plane coordinates plus the value scale needed to recover integers. Layout:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (48 bytes, fixed)                     │
//	│  0  Options (2, always little-endian)        │
//	│  2  EncodingType (1)                         │
//	│  3  CompressionType (1)                      │
//	│  4  PointCount (4)                           │
//	│  8  ScaleMin (8, int64)                      │
//	│ 16  ScaleMax (8, int64)                      │
//	│ 24  MaxProjectionRange (8, float64 bits)     │
//	│ 32  PayloadSize (4)                          │
//	│ 36  ClippedCount (4)                         │
//	│ 40  Checksum (8, xxHash64 of payload)        │
//	├──────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes, maybe compressed)│
//	│  X column, then Y column, raw float64        │
//	└──────────────────────────────────────────────┘
//
// Every field after Options is written in the byte order selected by the
// endianness bit of Options.
package section
