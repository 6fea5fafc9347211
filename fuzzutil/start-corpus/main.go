// Command start-corpus was used to generate the initial fuzzing corpus. It is kept here for
// illustrative purposes.
//
// The corpus mixes fixed byte patterns which exercise the interesting generator states (empty
// input, sub-draw input, exhaustion boundaries) with crypto/rand filler inputs which give the
// fuzzer varied starting material. A README.md recording the generation parameters is written
// alongside the inputs.
package main

import (
	"bytes"
	cryptoRand "crypto/rand"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

var (
	outputDir      = flag.String("output-dir", "corpus", "the output directory for the initial corpus")
	randomInputs   = flag.Int("random-inputs", 8, "number of crypto/rand filler inputs")
	randomInputLen = flag.Int("random-input-len", 64, "length of each filler input")
)

func ascending(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func startCorpus(dirpath string) error {
	if err := os.MkdirAll(dirpath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	patterns := map[string][]byte{
		"empty":       {},
		"single-byte": {0xff},
		"sub-draw":    {1, 2},
		"one-draw":    {1, 2, 3, 4},
		"ascending":   ascending(64),
		"all-zero":    make([]byte, 32),
		"all-ones":    bytes.Repeat([]byte{0xff}, 32),
	}
	for name, data := range patterns {
		err := os.WriteFile(filepath.Join(dirpath, name), data, 0644)
		if err != nil {
			return fmt.Errorf("failed to write input %s: %w", name, err)
		}
	}

	for i := 0; i < *randomInputs; i++ {
		data := make([]byte, *randomInputLen)
		if _, err := cryptoRand.Read(data); err != nil {
			return fmt.Errorf("failed to generate random input: %w", err)
		}
		name := fmt.Sprintf("random-%02d", i)
		if err := os.WriteFile(filepath.Join(dirpath, name), data, 0644); err != nil {
			return fmt.Errorf("failed to write input %s: %w", name, err)
		}
	}

	return writeGenerationReport(dirpath)
}

func writeGenerationReport(dirpath string) error {
	params := struct {
		RandomInputs   int
		RandomInputLen int
	}{*randomInputs, *randomInputLen}

	var sb strings.Builder
	sb.WriteString("This corpus was generated under:\n\n")
	sb.WriteString(fmt.Sprintf("- Date: %v\n", time.Now().Format(time.UnixDate)))
	sb.WriteString(fmt.Sprintf("- Parameters: %v\n", spew.Sdump(params)))
	return os.WriteFile(filepath.Join(dirpath, "README.md"), []byte(sb.String()), 0644)
}

func main() {
	flag.Parse()

	if err := startCorpus(*outputDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
