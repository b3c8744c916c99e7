package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// loadCorpus reads a newline-delimited User-Agent corpus from path, "-" for
// stdin, or the bundled sample corpus when path is empty. Grounded on the
// teacher's tests/loadtest/loader.go file-loading shape (os.ReadFile,
// wrapped errors) simplified for a flat line format instead of CSV, since a
// UA corpus has no columns to detect.
func loadCorpus(path string) ([]string, error) {
	if path == "" {
		return sampleUserAgents, nil
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading corpus from stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading corpus file %s: %w", path, err)
		}
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	// A trailing newline produces one empty trailing element; drop it, but
	// keep interior blank lines since an empty User-Agent is itself a valid
	// corpus entry (§8 scenario 2).
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("corpus %s is empty", path)
	}
	return lines, nil
}
