package encoding

import "iter"

// ColumnEncoder appends values of type T to an internal buffer.
type ColumnEncoder[T comparable] interface {
	// Bytes returns the encoded bytes. The slice is owned by the encoder and is
	// only valid until the next write or Finish.
	Bytes() []byte

	// Len returns the number of values written.
	Len() int

	// Size returns the number of encoded bytes.
	Size() int

	// Finish returns buffer resources to the pool. The encoder is unusable afterwards.
	Finish()

	// Write appends a single value.
	Write(v T)

	// WriteSlice appends all values.
	WriteSlice(values []T)
}

// ColumnDecoder reads values of type T back from encoded bytes.
type ColumnDecoder[T comparable] interface {
	// All yields up to count values from data. It yields nothing when data is
	// shorter than count values.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index, or false when index is out of range.
	At(data []byte, index int, count int) (T, bool)
}
