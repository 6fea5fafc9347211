// Package fuzzutil provides glue between raw fuzzer input and structure-aware test-case
// generators. A coverage-guided fuzzer hands the harness a flat byte buffer; the helpers here
// reinterpret that buffer as the randomness behind math/rand and gofuzz, so existing generators
// can synthesize structured test values directly from fuzzer input.
package fuzzutil

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	mathRand "math/rand"
	"path/filepath"

	"github.com/getlantern/bufrng"
	"github.com/getlantern/golog"
	gofuzz "github.com/google/gofuzz"
	"golang.org/x/sync/errgroup"
)

var log = golog.LoggerFor("bufrng.fuzzutil")

// NewRand returns a math/rand generator whose randomness replays data. Once data is exhausted the
// generator keeps drawing zeros, so short fuzzer inputs remain valid.
func NewRand(data []byte) *mathRand.Rand {
	return mathRand.New(bufrng.New(data).Source())
}

// NewFuzzer returns a gofuzz Fuzzer whose randomness replays data. Populating the same value type
// from the same data always yields the same result, which keeps minimized fuzzer inputs stable.
func NewFuzzer(data []byte) *gofuzz.Fuzzer {
	return gofuzz.New().RandSource(bufrng.New(data).Source())
}

// VerifyInput replays data through independent generators and checks the replay contract: the
// first 32-bit draw packs the leading bytes big-endian, replays are deterministic, bulk fills
// reproduce the buffer verbatim, and exhaustion is a permanent all-zero tail. It accepts arbitrary
// input, including empty input; an error indicates a generator bug, not a bad input.
func VerifyInput(data []byte) error {
	var expected uint32
	for i := 0; i < 4; i++ {
		expected <<= 8
		if i < len(data) {
			expected |= uint32(data[i])
		}
	}
	first := bufrng.New(data).Uint32()
	if first != expected {
		return fmt.Errorf("first 32-bit draw was %#08x, expected %#08x", first, expected)
	}
	if again := bufrng.New(data).Uint32(); again != first {
		return fmt.Errorf("replay diverged: %#08x, then %#08x", first, again)
	}

	filled := make([]byte, len(data)+8)
	bufrng.New(data).Fill(filled)
	if !bytes.Equal(filled[:len(data)], data) {
		return errors.New("bulk fill did not replay the buffer verbatim")
	}
	if !bytes.Equal(filled[len(data):], make([]byte, 8)) {
		return errors.New("bulk fill tail past exhaustion was not all zeros")
	}

	r := bufrng.New(data)
	r.Fill(make([]byte, len(data)))
	for i := 0; i < 4; i++ {
		if v := r.Uint64(); v != 0 {
			return fmt.Errorf("draw %d after exhaustion yielded %#x", i, v)
		}
	}
	return nil
}

// VerifyCorpus runs VerifyInput over every regular file in dir, concurrently. The returned error,
// if any, names the first offending input.
func VerifyCorpus(dir string) error {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read corpus directory: %w", err)
	}
	g := new(errgroup.Group)
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		path := filepath.Join(dir, name)
		g.Go(func() error {
			data, err := ioutil.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read input %s: %w", name, err)
			}
			if err := VerifyInput(data); err != nil {
				return fmt.Errorf("input %s: %w", name, err)
			}
			log.Debugf("verified %s (%d bytes)", name, len(data))
			return nil
		})
	}
	return g.Wait()
}
