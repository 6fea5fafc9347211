package bufrng

import (
	mathRand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceUint64(t *testing.T) {
	t.Parallel()

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	direct := New(data)
	src := New(data).Source().(mathRand.Source64)
	for i := 0; i < 4; i++ {
		require.Equal(t, direct.Uint64(), src.Uint64(), "draw %d", i)
	}
}

func TestSourceInt63(t *testing.T) {
	t.Parallel()

	// 0xff... has the top bit set; Int63 must clear it and keep the low bits intact.
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	src := New(data).Source()
	require.Equal(t, int64(0x7fffffffffffffff), src.Int63())

	src = New([]byte{1, 2, 3, 4, 5, 6, 7, 8}).Source()
	require.Equal(t, int64(0x0102030405060708), src.Int63())

	src = New(nil).Source()
	require.Zero(t, src.Int63())
}

func TestSourceSeedIsNoOp(t *testing.T) {
	t.Parallel()

	r := New([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	src := r.Source()
	src.(mathRand.Source64).Uint64()
	src.Seed(42)

	// The cursor did not rewind; the next draw starts at offset 8.
	require.Equal(t, uint32(0x090a0b0c), r.Uint32())
}

func TestSourceSharesCursor(t *testing.T) {
	t.Parallel()

	r := New([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.Equal(t, uint32(0x01020304), r.Uint32())
	require.Equal(t, uint64(0x0506070800000000), r.Source().(mathRand.Source64).Uint64())
}

func TestSourceDrivesMathRand(t *testing.T) {
	t.Parallel()

	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	// Two math/rand.Rand instances over the same buffer replay identically.
	a := mathRand.New(New(data).Source())
	b := mathRand.New(New(data).Source())
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Int63(), b.Int63(), "draw %d", i)
	}

	// An exhausted buffer keeps math/rand fed with zeros rather than blocking or panicking.
	exhausted := mathRand.New(New(nil).Source())
	require.Zero(t, exhausted.Int63())
	require.Zero(t, exhausted.Uint64())
}
