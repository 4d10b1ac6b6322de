package encoding

import (
	"iter"
	"math"

	"github.com/arloliu/spherecodec/endian"
	"github.com/arloliu/spherecodec/internal/pool"
)

// NumericRawEncoder encodes float64 values as raw IEEE 754 words.
type NumericRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnEncoder[float64] = (*NumericRawEncoder)(nil)

// NewNumericRawEncoder creates an encoder writing in the byte order of engine.
// The internal buffer comes from the payload pool; call Finish to return it.
func NewNumericRawEncoder(engine endian.EndianEngine) *NumericRawEncoder {
	return &NumericRawEncoder{
		engine: engine,
		buf:    pool.GetPayloadBuffer(),
	}
}

// Write appends a single value.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.buf.Grow(8)
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(val))
	e.count++
}

// WriteSlice appends values, growing the buffer once for the whole slice.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(values) == 0 {
		return
	}

	e.buf.Grow(len(values) * 8)
	for _, v := range values {
		e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))
	}
	e.count += len(values)
}

// Bytes returns the encoded bytes.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *NumericRawEncoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Finish returns the buffer to the pool.
func (e *NumericRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutPayloadBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// NumericRawDecoder decodes columns produced by NumericRawEncoder.
// It is stateless and safe to copy.
type NumericRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnDecoder[float64] = NumericRawDecoder{}

// NewNumericRawDecoder creates a decoder for the byte order of engine.
func NewNumericRawDecoder(engine endian.EndianEngine) NumericRawDecoder {
	return NumericRawDecoder{engine: engine}
}

// All yields count values from data.
func (d NumericRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 || len(data) < count*8 {
			return
		}

		for i := range count {
			start := i * 8
			if !yield(math.Float64frombits(d.engine.Uint64(data[start : start+8]))) {
				return
			}
		}
	}
}

// At returns the value at index.
func (d NumericRawDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * 8
	if start+8 > len(data) {
		return 0, false
	}

	return math.Float64frombits(d.engine.Uint64(data[start : start+8])), true
}

// DecodeInto fills dst with len(dst) values from data and reports whether
// data held enough bytes.
func (d NumericRawDecoder) DecodeInto(dst []float64, data []byte) bool {
	if len(data) < len(dst)*8 {
		return false
	}

	for i := range dst {
		start := i * 8
		dst[i] = math.Float64frombits(d.engine.Uint64(data[start : start+8]))
	}

	return true
}
