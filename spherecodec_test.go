package spherecodec

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/spherecodec/errs"
	"github.com/arloliu/spherecodec/format"
	"github.com/arloliu/spherecodec/projection"
	"github.com/arloliu/spherecodec/render"
	"github.com/arloliu/spherecodec/sphere"
	"github.com/arloliu/spherecodec/text"
)

const (
	demoKey     = "mysecretkey"
	demoMessage = "Hello Ralf! How will be the weather today?"
)

func newCodec(t *testing.T, opts ...Option) *Codec {
	t.Helper()

	codec, err := New(opts...)
	require.NoError(t, err)

	return codec
}

func TestNew_Defaults(t *testing.T) {
	codec := newCodec(t)
	require.Equal(t, 1.0, codec.SphereRadius())
	require.Equal(t, DefaultMaxProjectionRange, codec.MaxProjectionRange())
	require.Equal(t, format.CompressionNone, codec.Compression())
}

func TestNew_ConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		field string
		err   error
	}{
		{"radius 2", WithSphereRadius(2), "SphereRadius", errs.ErrInvalidRadius},
		{"radius 0", WithSphereRadius(0), "SphereRadius", errs.ErrInvalidRadius},
		{"radius NaN", WithSphereRadius(math.NaN()), "SphereRadius", errs.ErrInvalidRadius},
		{"range 0", WithMaxProjectionRange(0), "MaxProjectionRange", errs.ErrInvalidProjectionRange},
		{"range negative", WithMaxProjectionRange(-1), "MaxProjectionRange", errs.ErrInvalidProjectionRange},
		{"range NaN", WithMaxProjectionRange(math.NaN()), "MaxProjectionRange", errs.ErrInvalidProjectionRange},
		{"compression", WithCompression(format.CompressionType(0x7f)), "Compression", errs.ErrInvalidCompression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			require.ErrorIs(t, err, errs.ErrInvalidConfig)
			require.ErrorIs(t, err, tt.err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			require.Equal(t, tt.field, cfgErr.Field)
			require.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestNew_InfiniteRange(t *testing.T) {
	codec := newCodec(t, WithMaxProjectionRange(math.Inf(1)))
	require.True(t, math.IsInf(codec.MaxProjectionRange(), 1))
}

func TestRoundTrip_HI(t *testing.T) {
	codec := newCodec(t, WithMaxProjectionRange(10))

	res, err := codec.RoundTrip("HI", "k")
	require.NoError(t, err)
	require.Equal(t, []int64{113, 114}, res.Encoding.Values)
	require.Equal(t, sphere.Scale{Min: 113, Max: 114}, res.Encoding.Scale)
	require.Equal(t, []int64{113, 114}, res.Decoding.Values)
	require.Equal(t, "HI", res.Decoding.Message)
	require.True(t, res.Exact())

	// the larger value sits next to the north pole and clips at R=10,
	// yet still rounds back to 114
	require.Equal(t, 1, res.Encoding.Stats.Clipped)
	require.Equal(t, []int{1}, res.Encoding.Stats.ClippedIndices)
	require.Greater(t, res.Report.MaxDeviation, 1e-3)
	require.Equal(t, 1, res.Report.MaxDeviationIndex)
	require.Less(t, res.Report.MaxResidual, 1e-9)
}

func TestRoundTrip_NoClipping(t *testing.T) {
	codec := newCodec(t, WithMaxProjectionRange(1e9))

	for _, msg := range []string{"HI", demoMessage, "A", "héllo wörld", "a一"} {
		res, err := codec.RoundTrip(msg, demoKey)
		require.NoError(t, err, msg)
		require.Zero(t, res.Encoding.Stats.Clipped, msg)
		require.Equal(t, msg, res.Decoding.Message)
		require.True(t, res.Exact())
	}
}

func TestRoundTrip_DemoSentence(t *testing.T) {
	codec := newCodec(t)

	res, err := codec.RoundTrip(demoMessage, demoKey)
	require.NoError(t, err)
	require.Equal(t, sphere.Scale{Min: 198, Max: 287}, res.Encoding.Scale)
	require.Equal(t, demoMessage, res.Decoding.Message)
	require.Equal(t, 1, res.Encoding.Stats.Clipped)
	require.Len(t, res.Encoding.Values, len(demoMessage))
}

func TestRoundTrip_LossyClipping(t *testing.T) {
	codec := newCodec(t, WithMaxProjectionRange(10))

	res, err := codec.RoundTrip(" ~", "k")
	require.NoError(t, err)
	require.Equal(t, []int64{73, 167}, res.Encoding.Values)
	require.Equal(t, []int64{73, 166}, res.Decoding.Values)
	require.Equal(t, " }", res.Decoding.Message)
	require.Equal(t, 1, res.Encoding.Stats.Clipped)
	require.Equal(t, []int{1}, res.Mismatches)
	require.False(t, res.Exact())
}

func TestRoundTrip_WideRangeIsLossy(t *testing.T) {
	codec := newCodec(t)

	res, err := codec.RoundTrip("a一", "k")
	require.NoError(t, err)
	require.Equal(t, []int{1}, res.Mismatches)
	require.Equal(t, int64(20009), res.Encoding.Values[1])
	require.Equal(t, int64(19812), res.Decoding.Values[1])
}

func TestRoundTrip_Degenerate(t *testing.T) {
	codec := newCodec(t)

	for _, msg := range []string{"aaaa", "A"} {
		res, err := codec.RoundTrip(msg, "k")
		require.NoError(t, err)
		require.True(t, res.Encoding.Degenerate)
		require.Zero(t, res.Encoding.Stats.Clipped)
		for i := range res.Encoding.Sphere.Len() {
			require.InDelta(t, -1, res.Encoding.Sphere.Z[i], 1e-12)
		}
		require.Equal(t, msg, res.Decoding.Message)
	}
}

func TestRoundTrip_ClosedAzimuth(t *testing.T) {
	codec := newCodec(t, WithClosedAzimuth())

	res, err := codec.RoundTrip("HI", "k")
	require.NoError(t, err)
	require.Equal(t, "HI", res.Decoding.Message)

	// first and last point share the meridian φ = 0
	require.InDelta(t, 0, res.Encoding.Sphere.Y[1], 1e-12)
	require.GreaterOrEqual(t, res.Encoding.Sphere.X[1], 0.0)
}

func TestEncode_NFC(t *testing.T) {
	decomposed := "e\u0301"

	plain := newCodec(t)
	enc, err := plain.Encode(decomposed, "k")
	require.NoError(t, err)
	require.Len(t, enc.Values, 2)

	nfc := newCodec(t, WithNFC())
	res, err := nfc.RoundTrip(decomposed, "k")
	require.NoError(t, err)
	require.Len(t, res.Encoding.Values, 1)
	require.Equal(t, "\u00e9", res.Decoding.Message)
}

func TestEncode_Errors(t *testing.T) {
	codec := newCodec(t)

	_, err := codec.Encode("", "k")
	require.ErrorIs(t, err, errs.ErrEmptyMessage)

	_, err = codec.Encode("HI", "")
	require.ErrorIs(t, err, errs.ErrEmptyKey)

	_, err = codec.Encode("\xff", "k")
	require.ErrorIs(t, err, errs.ErrInvalidMessage)
}

func TestDecode_WrongKey(t *testing.T) {
	codec := newCodec(t, WithMaxProjectionRange(1e9))

	enc, err := codec.Encode("HI", "k")
	require.NoError(t, err)

	dec, err := codec.Decode(enc.Plane, enc.Scale, "a")
	require.NoError(t, err)
	require.Equal(t, "_`", dec.Message)

	_, err = codec.Decode(enc.Plane, enc.Scale, demoKey)
	require.ErrorIs(t, err, errs.ErrInvalidCodepoint)

	var cpErr *text.InvalidCodepointError
	require.ErrorAs(t, err, &cpErr)
	require.Equal(t, 0, cpErr.Index)
	require.Equal(t, int64(113-166), cpErr.Codepoint)
}

func TestDecode_Errors(t *testing.T) {
	codec := newCodec(t)

	_, err := codec.Decode(projection.NewPlane(1), sphere.Scale{}, "")
	require.ErrorIs(t, err, errs.ErrEmptyKey)

	_, err = codec.Decode(projection.Plane{}, sphere.Scale{}, "k")
	require.ErrorIs(t, err, errs.ErrEmptyValues)

	_, err = codec.Decode(projection.NewPlane(1), sphere.Scale{Min: 2, Max: 1}, "k")
	require.ErrorIs(t, err, errs.ErrInvalidScale)

	_, err = codec.Decode(projection.Plane{X: []float64{0}}, sphere.Scale{}, "k")
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestMarshalUnmarshal(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, comp := range compressions {
		t.Run(comp.String(), func(t *testing.T) {
			sender := newCodec(t, WithCompression(comp), WithBigEndian())
			enc, err := sender.Encode(demoMessage, demoKey)
			require.NoError(t, err)

			data, err := sender.Marshal(enc)
			require.NoError(t, err)

			receiver := newCodec(t)
			dec, err := receiver.Unmarshal(data, demoKey)
			require.NoError(t, err)
			require.Equal(t, demoMessage, dec.Message)
			require.Equal(t, enc.Values, dec.Values)
		})
	}
}

func TestUnmarshal_Corrupt(t *testing.T) {
	codec := newCodec(t)
	enc, err := codec.Encode("HI", "k")
	require.NoError(t, err)
	data, err := codec.Marshal(enc)
	require.NoError(t, err)

	data[len(data)-1] ^= 0x80
	_, err = codec.Unmarshal(data, "k")
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestRenderer_Frames(t *testing.T) {
	rec := render.NewRecorder()
	codec := newCodec(t, WithRenderer(rec))

	_, err := codec.RoundTrip("HI", "k")
	require.NoError(t, err)
	require.Equal(t, []string{render.TitleOriginal, render.TitleProjection, render.TitleRecovered}, rec.Titles())

	frames := rec.Frames()
	require.Equal(t, render.KindSphere, frames[0].Kind)
	require.Equal(t, render.KindPlane, frames[1].Kind)
	require.Equal(t, []int{0, 1}, frames[2].Order)
}

func TestNilOptions(t *testing.T) {
	codec := newCodec(t, WithLogger(nil), WithRenderer(nil))
	_, err := codec.RoundTrip("HI", "k")
	require.NoError(t, err)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	codec := newCodec(t, WithLogger(logger))

	_, err := codec.RoundTrip(" ~", "secret")
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "projection clipped points")
	require.Contains(t, out, "mapped values to sphere")
	require.NotContains(t, out, "secret")

	buf.Reset()
	_, err = codec.Encode("aaaa", "k")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "degenerate input")
}

func TestCodec_Concurrent(t *testing.T) {
	codec := newCodec(t, WithRenderer(render.NewRecorder()))

	var wg sync.WaitGroup
	errCh := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := codec.RoundTrip(demoMessage, demoKey)
			if err == nil && res.Decoding.Message != demoMessage {
				err = errors.New("message mismatch")
			}
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	codec, err := New()
	require.NoError(b, err)

	for b.Loop() {
		_, _ = codec.RoundTrip(demoMessage, demoKey)
	}
}
