// Package text converts between messages and the integer sequences fed to the
// sphere mapper.
//
// Every rune of a message becomes its code point plus a key-derived offset in
// [0, 255]. The offset only shifts values; it provides no confidentiality.
//
//	values, err := text.Encode("HI", "k")   // [113 114], offset 41
//	message, err := text.Decode(values, "k") // "HI"
package text
