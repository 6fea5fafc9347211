// +build gofuzz

package fuzzutil

import "fmt"

// rgb is a sample structured test value, standing in for whatever types a downstream
// structure-aware generator would build.
type rgb struct {
	R, G, B uint8
}

// Fuzz is the entrypoint for go-fuzz. To generate and test input:
//
// - Install github.com/dvyukov/go-fuzz and github.com/dvyukov/go-fuzz-build.
// - In getlantern/bufrng/fuzzutil, run 'go-fuzz-build -o fuzzbin'.
// - In getlantern/bufrng/fuzzutil, run 'go-fuzz -bin fuzzbin -workdir workdir'.
//
// For more information, see github.com/dvyukov/go-fuzz.
func Fuzz(data []byte) int {
	if err := VerifyInput(data); err != nil {
		// Application-level error: the replay contract was violated.
		panic(err)
	}

	var a, b rgb
	NewFuzzer(data).Fuzz(&a)
	NewFuzzer(data).Fuzz(&b)
	if a != b {
		panic(fmt.Sprintf("same input built %+v, then %+v", a, b))
	}

	if len(data) == 0 {
		return 0
	}
	return 1
}
