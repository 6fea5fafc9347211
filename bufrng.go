// Package bufrng implements a "random" number generator which replays values from a caller-supplied
// buffer, then yields zeros once the buffer is exhausted.
//
// This generator is not suitable for anything other than testing and fuzzing. It is not suitable
// for cryptography and it is not suitable for generating pseudo-random numbers.
//
// The intended use is reinterpreting raw input bytes from a coverage-guided fuzzer as a source of
// randomness driving structure-aware test-case generators. The fuzzer mutates a flat byte buffer;
// replaying that buffer through the generator interface turns it into arbitrary structured values
// (colors, trees, protocol messages), combining coverage guidance with structure-aware generation.
// The fuzzutil subpackage provides glue for doing exactly that.
package bufrng

// Rand yields values copied from a fixed byte buffer. The buffer is borrowed, never copied and
// never written to; it must outlive the Rand. Once every buffer byte has been consumed, all further
// draws of any width yield zero, permanently.
//
// A Rand maintains a single forward-only cursor and is not safe for use by multiple goroutines
// without external synchronization.
type Rand struct {
	data []byte
	pos  int
}

// New returns a Rand positioned at the start of data. data may be empty or nil, in which case
// every draw yields zero. Construction cannot fail.
func New(data []byte) *Rand {
	return &Rand{data: data}
}

// next returns the next unread byte widened to a uint32, advancing the cursor by one. Past the end
// of the buffer it returns zero and the cursor stays put.
func (r *Rand) next() uint32 {
	if r.pos >= len(r.data) {
		return 0
	}
	b := r.data[r.pos]
	r.pos++
	return uint32(b)
}

// Uint32 draws four consecutive bytes a, b, c, d and packs them big-endian: the first byte read
// becomes the most significant byte, regardless of platform endianness. Bytes past the end of the
// buffer read as zero.
func (r *Rand) Uint32() uint32 {
	a := r.next()
	b := r.next()
	c := r.next()
	d := r.next()
	return a<<24 | b<<16 | c<<8 | d
}

// Uint64 combines two consecutive Uint32 draws, the first forming the high word and the second the
// low word. A buffer therefore replays as one contiguous big-endian stream across draw widths:
// the buffer [1, 2, 3, 4, 5, 6, 7, 8] yields 0x0102030405060708.
func (r *Rand) Uint64() uint64 {
	return Uint64Via32(r)
}

// Fill fills dest with bytes from repeated Uint32 draws, each decomposed in the same big-endian
// order used to build it. A final partial draw is truncated to the remaining space, so filling 6
// bytes still consumes two full draws (8 buffer bytes). An empty dest consumes nothing.
func (r *Rand) Fill(dest []byte) {
	FillBytesVia32(r, dest)
}

// Read implements io.Reader, filling p exactly as Fill does. It always returns len(p) and a nil
// error; an exhausted buffer reads as zeros rather than io.EOF. This allows a Rand to stand in for
// readers of randomness such as crypto/rand.Reader or tls.Config.Rand in deterministic harnesses.
func (r *Rand) Read(p []byte) (int, error) {
	r.Fill(p)
	return len(p), nil
}
