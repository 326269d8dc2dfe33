package spectrum

import (
	"fmt"

	"github.com/argusdusty/gofft"
	"github.com/linuxmatters/emberplot/internal/grid"
)

// PowerSpectrum returns |FFT2(m)|² with the zero wavenumber moved to the
// centre. Each axis is zero-padded to the next power of two first, so the
// result can be larger than m.
func PowerSpectrum(m *grid.Matrix) (*grid.Matrix, error) {
	nx, ny := m.Dims()
	px, py := nextPow2(nx), nextPow2(ny)

	rows := make([][]complex128, py)
	for y := range rows {
		rows[y] = make([]complex128, px)
		if y < ny {
			for x := 0; x < nx; x++ {
				rows[y][x] = complex(m.At(x, y), 0)
			}
		}
	}

	for y := range rows {
		if err := fft(rows[y]); err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
	}

	col := make([]complex128, py)
	for x := 0; x < px; x++ {
		for y := range rows {
			col[y] = rows[y][x]
		}
		if err := fft(col); err != nil {
			return nil, fmt.Errorf("column %d: %w", x, err)
		}
		for y := range rows {
			rows[y][x] = col[y]
		}
	}

	data := make([]float64, px*py)
	for y := range rows {
		sy := shift(y, py)
		for x, c := range rows[y] {
			re, im := real(c), imag(c)
			data[sy*px+shift(x, px)] = re*re + im*im
		}
	}
	return grid.New(px, py, data)
}

// fft transforms x in place; a single sample is its own transform.
func fft(x []complex128) error {
	if len(x) < 2 {
		return nil
	}
	return gofft.FFT(x)
}

// shift maps FFT bin i of n to its fftshift position.
func shift(i, n int) int {
	return (i + n/2) % n
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
