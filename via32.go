package bufrng

import "encoding/binary"

// Source32 is the interface implemented by generators whose native output is a single 32-bit draw.
// The helpers in this file build the wider operations from that primitive, so the byte-packing
// order is defined exactly once and shared by any conforming implementation.
type Source32 interface {
	Uint32() uint32
}

// Uint64Via32 builds a 64-bit draw from two consecutive 32-bit draws of s. The first draw becomes
// the high 32 bits and the second the low 32 bits.
func Uint64Via32(s Source32) uint64 {
	hi := uint64(s.Uint32())
	lo := uint64(s.Uint32())
	return hi<<32 | lo
}

// FillBytesVia32 fills dest with repeated 32-bit draws from s. Each draw is decomposed big-endian,
// matching the order in which a draw packs its bytes, and written sequentially until dest is full;
// a final partial draw is truncated to the remaining space. A zero-length dest draws nothing.
func FillBytesVia32(s Source32, dest []byte) {
	var buf [4]byte
	for len(dest) > 0 {
		binary.BigEndian.PutUint32(buf[:], s.Uint32())
		n := copy(dest, buf[:])
		dest = dest[n:]
	}
}
