package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteText writes m in the format Parse reads, one row per line.
// Values are written at float32 precision.
func WriteText(w io.Writer, m *Matrix) error {
	bw := bufio.NewWriter(w)
	nx, ny := m.Dims()

	buf := make([]byte, 0, 32)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			buf = strconv.AppendFloat(buf[:0], m.At(x, y), 'g', -1, 32)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveText writes m to path as a text matrix.
func SaveText(path string, m *Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteText(f, m); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
