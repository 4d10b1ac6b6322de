package packet

import (
	"math"
	"testing"

	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/format"
	"github.com/arloliu/spherecodec/projection"
	"github.com/arloliu/spherecodec/section"
	"github.com/arloliu/spherecodec/sphere"
	"github.com/stretchr/testify/require"
)

func samplePlane(t *testing.T, values []int64, maxRange float64) (projection.Plane, sphere.Scale, projection.Stats) {
	t.Helper()

	points, scale, err := sphere.Map(values, sphere.Radius)
	require.NoError(t, err)

	plane, stats, err := projection.Forward(points, maxRange)
	require.NoError(t, err)

	return plane, scale, stats
}

// "Hello Ralf! How will be the weather today?" with key "mysecretkey"
var sentenceValues = []int64{238, 267, 274, 274, 277, 198, 248, 263, 274, 268, 199, 198, 238, 277, 285, 198, 285, 271, 274, 274, 198, 264, 267, 198, 282, 270, 267, 198, 285, 267, 263, 282, 270, 267, 280, 198, 282, 277, 266, 263, 287, 229}

func TestEncodeDecode_AllCompressions(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	endians := []struct {
		name string
		opt  EncoderOption
		big  bool
	}{
		{"little", WithLittleEndian(), false},
		{"big", WithBigEndian(), true},
	}

	plane, scale, stats := samplePlane(t, sentenceValues, 10)

	for _, comp := range compressions {
		for _, en := range endians {
			t.Run(comp.String()+"/"+en.name, func(t *testing.T) {
				enc, err := NewEncoder(WithCompression(comp), en.opt)
				require.NoError(t, err)
				require.Equal(t, comp, enc.Compression())
				require.Equal(t, en.big, enc.IsBigEndian())

				data, err := enc.Encode(plane, scale, stats)
				require.NoError(t, err)

				pkt, err := Decode(data)
				require.NoError(t, err)
				require.Equal(t, plane.X, pkt.Plane.X)
				require.Equal(t, plane.Y, pkt.Plane.Y)
				require.Equal(t, scale, pkt.Scale)
				require.Equal(t, 10.0, pkt.MaxProjectionRange())
				require.Equal(t, stats.Clipped, pkt.Clipped())
				require.Equal(t, comp, pkt.Header.Flag.Compression())
				require.Equal(t, en.big, pkt.Header.Flag.IsBigEndian())
				require.False(t, pkt.ClosedAzimuth())
			})
		}
	}
}

func TestEncodeDecode_InverseMatches(t *testing.T) {
	plane, scale, stats := samplePlane(t, []int64{113, 114}, 1e9)

	enc, err := NewEncoder(WithCompression(format.CompressionS2))
	require.NoError(t, err)
	data, err := enc.Encode(plane, scale, stats)
	require.NoError(t, err)

	pkt, err := Decode(data)
	require.NoError(t, err)

	points, err := projection.Inverse(pkt.Plane)
	require.NoError(t, err)
	require.Equal(t, []int64{113, 114}, sphere.Recover(points.Z, pkt.Scale))
}

func TestEncodeDecode_Empty(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	data, err := enc.Encode(projection.Plane{}, sphere.Scale{}, projection.Stats{MaxRange: 10})
	require.NoError(t, err)
	require.Len(t, data, section.HeaderSize)

	pkt, err := Decode(data)
	require.NoError(t, err)
	require.Zero(t, pkt.Plane.Len())
}

func TestEncode_InfiniteRange(t *testing.T) {
	plane, scale, stats := samplePlane(t, []int64{1, 2, 3}, math.Inf(1))

	enc, err := NewEncoder()
	require.NoError(t, err)
	data, err := enc.Encode(plane, scale, stats)
	require.NoError(t, err)

	pkt, err := Decode(data)
	require.NoError(t, err)
	require.True(t, math.IsInf(pkt.MaxProjectionRange(), 1))
}

func TestEncode_ClosedAzimuthFlag(t *testing.T) {
	plane, scale, stats := samplePlane(t, []int64{1, 2}, 10)

	enc, err := NewEncoder(WithClosedAzimuth(true))
	require.NoError(t, err)
	data, err := enc.Encode(plane, scale, stats)
	require.NoError(t, err)

	pkt, err := Decode(data)
	require.NoError(t, err)
	require.True(t, pkt.ClosedAzimuth())
}

func TestEncode_Errors(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	_, err = enc.Encode(projection.Plane{X: []float64{1}}, sphere.Scale{}, projection.Stats{MaxRange: 1})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	plane := projection.NewPlane(2)
	_, err = enc.Encode(plane, sphere.Scale{Min: 5, Max: 1}, projection.Stats{MaxRange: 1})
	require.ErrorIs(t, err, errs.ErrInvalidScale)

	_, err = enc.Encode(plane, sphere.Scale{}, projection.Stats{})
	require.ErrorIs(t, err, errs.ErrInvalidProjectionRange)

	_, err = enc.Encode(plane, sphere.Scale{}, projection.Stats{MaxRange: 1, Clipped: 3})
	require.ErrorIs(t, err, errs.ErrPointCountMismatch)
}

func TestNewEncoder_InvalidCompression(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(0x7f)))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func encodeSample(t *testing.T, opts ...EncoderOption) []byte {
	t.Helper()

	plane, scale, stats := samplePlane(t, sentenceValues, 10)
	enc, err := NewEncoder(opts...)
	require.NoError(t, err)
	data, err := enc.Encode(plane, scale, stats)
	require.NoError(t, err)

	return data
}

func TestDecode_Corruption(t *testing.T) {
	t.Run("short header", func(t *testing.T) {
		_, err := Decode(make([]byte, section.HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := encodeSample(t)
		data[1] ^= 0xFF
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("reserved bits", func(t *testing.T) {
		data := encodeSample(t)
		data[0] |= 0x04
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("truncated payload", func(t *testing.T) {
		data := encodeSample(t, WithCompression(format.CompressionZstd))
		_, err := Decode(data[:len(data)-1])
		require.ErrorIs(t, err, errs.ErrPayloadSizeMismatch)
	})

	t.Run("flipped payload byte", func(t *testing.T) {
		data := encodeSample(t)
		data[section.HeaderSize+5] ^= 0x01
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("point count", func(t *testing.T) {
		data := encodeSample(t)
		var h section.PacketHeader
		require.NoError(t, h.Parse(data[:section.HeaderSize]))
		h.PointCount--
		h.PutBytes(data[:section.HeaderSize])

		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrPointCountMismatch)
	})
}

func BenchmarkEncode(b *testing.B) {
	points, scale, err := sphere.Map(sentenceValues, sphere.Radius)
	require.NoError(b, err)
	plane, stats, err := projection.Forward(points, 10)
	require.NoError(b, err)

	enc, err := NewEncoder(WithCompression(format.CompressionS2))
	require.NoError(b, err)

	for b.Loop() {
		_, _ = enc.Encode(plane, scale, stats)
	}
}

func BenchmarkDecode(b *testing.B) {
	points, scale, err := sphere.Map(sentenceValues, sphere.Radius)
	require.NoError(b, err)
	plane, stats, err := projection.Forward(points, 10)
	require.NoError(b, err)

	enc, err := NewEncoder(WithCompression(format.CompressionS2))
	require.NoError(b, err)
	data, err := enc.Encode(plane, scale, stats)
	require.NoError(b, err)

	for b.Loop() {
		_, _ = Decode(data)
	}
}
