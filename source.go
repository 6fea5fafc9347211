package bufrng

import "math/rand"

// source adapts a Rand to math/rand.Source64 so that the replayed stream can drive math/rand.Rand
// and anything built on top of it (testing/quick, gofuzz, etc.).
type source struct {
	r *Rand
}

var _ rand.Source64 = source{}

func (s source) Uint64() uint64 {
	return s.r.Uint64()
}

// Int63 clears the top bit of a Uint64 draw rather than shifting, so the low 63 bits of the
// replayed stream pass through unchanged.
func (s source) Int63() int64 {
	return int64(s.r.Uint64() &^ (1 << 63))
}

// Seed is a no-op. A replay source has no seed, and the cursor never rewinds.
func (s source) Seed(int64) {}

// Source returns a math/rand.Source64 view of r. The view shares r's cursor: draws made through
// the source and draws made directly on r consume the same underlying bytes.
func (r *Rand) Source() rand.Source {
	return source{r}
}
