package section

import (
	"math"

	"github.com/arloliu/spherecodec/format"
)

const (
	// Options bit masks.
	ClosedAzimuthMask = 0x0001 // bit 0: azimuths were spaced over the closed interval [0, 2π]
	EndiannessMask    = 0x0002 // bit 1: 0 = little-endian, 1 = big-endian
	ReservedBitsMask  = 0x000C // bits 2-3: reserved, must be zero
	MagicNumberMask   = 0xFFF0 // bits 4-15: magic number

	// MagicPlaneV1Opt identifies version 1 of the plane packet format.
	MagicPlaneV1Opt = 0xEC10

	EncodingRaw = uint8(format.TypeRaw)
)

const (
	HeaderSize     = 48             // fixed header size in bytes
	MaxPointCount  = math.MaxUint32 // upper bound imposed by the PointCount field
	BytesPerPoint  = 16             // X and Y float64 per point
	MaxPayloadSize = math.MaxUint32 // upper bound imposed by the PayloadSize field
)
