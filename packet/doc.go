// Package packet serializes the projected half of a round trip so the inverse
// half can run somewhere else.
//
// A packet is a fixed 48-byte section.PacketHeader followed by one payload:
// the X column then the Y column of the plane points, raw IEEE 754 float64 in
// the header's byte order, compressed with the header's codec. The header
// also carries the value Scale and the projection bound, which is everything
// the inverse pipeline needs besides the key.
//
// Encoding:
//
//	enc, err := packet.NewEncoder(packet.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	data, err := enc.Encode(plane, scale, stats)
//
// Decoding:
//
//	pkt, err := packet.Decode(data)
//	if err != nil {
//	    return err
//	}
//	points, err := projection.Inverse(pkt.Plane)
package packet
