package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 16 << 20

// bom is the UTF-8 byte order mark some editors prepend.
const bom = "\uFEFF"

// ReadClasses reads class 1 from the first line and class 2 from the second.
// Lines after the second are ignored. A UTF-8 BOM and trailing '\r' are stripped.
//
// Errors: ErrTooFewLines, any tuple grammar error (wrapped with the line number),
// or the reader's I/O error.
func ReadClasses(r io.Reader) (class1, class2 [][]float64, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lines := make([]string, 0, 2)
	for len(lines) < 2 && sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, bom)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("parse: read input: %w", err)
	}
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("got %d line(s): %w", len(lines), ErrTooFewLines)
	}

	if class1, err = ParseLine(lines[0]); err != nil {
		return nil, nil, fmt.Errorf("line 1: %w", err)
	}
	if class2, err = ParseLine(lines[1]); err != nil {
		return nil, nil, fmt.Errorf("line 2: %w", err)
	}

	return class1, class2, nil
}

// ReadFile opens path and delegates to ReadClasses.
// A missing file yields ErrFileNotFound (which also matches fs.ErrNotExist).
func ReadFile(path string) (class1, class2 [][]float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, fs.ErrNotExist)
		}
		return nil, nil, fmt.Errorf("parse: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadClasses(f)
}
