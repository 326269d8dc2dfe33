package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Longest accepted input line; a 4096-wide row of scientific notation fits
// comfortably.
const maxLineBytes = 16 << 20

// Load reads a whitespace-delimited text matrix from path.
// All failures are returned as *LoadError.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return m, nil
}

// Parse reads a text matrix: one row per line, values separated by
// whitespace and parsed as 32-bit floats. Blank lines and lines starting
// with '#' are skipped.
func Parse(r io.Reader) (*Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		data   []float64
		nx, ny int
		line   int
	)

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if ny == 0 {
			nx = len(fields)
		} else if len(fields) != nx {
			return nil, &LoadError{Line: line, Err: fmt.Errorf("%w: got %d values, want %d", ErrRaggedRow, len(fields), nx)}
		}

		for _, tok := range fields {
			v, err := parseFloat32(tok)
			if err != nil {
				return nil, &LoadError{Line: line, Err: fmt.Errorf("%w: %q", ErrNotNumeric, tok)}
			}
			data = append(data, v)
		}
		ny++
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Line: line, Err: err}
	}

	if ny == 0 {
		return nil, &LoadError{Err: ErrNoData}
	}
	return New(nx, ny, data)
}

// parseFloat32 parses tok at float32 precision. Out-of-range values
// become ±Inf or zero rather than failing.
func parseFloat32(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, err
	}
	return v, nil
}
