// Package encoding writes and reads the float64 coordinate columns carried in
// a packet payload.
//
// Columns are stored raw: each value is its IEEE 754 bit pattern in the byte
// order of the supplied endian engine, 8 bytes per value, no separators. A
// plane payload is the X column immediately followed by the Y column.
package encoding
