package grid

import (
	"image"
	"image/color"
	"os"

	"golang.org/x/image/tiff"
)

// LoadTIFF decodes a TIFF image into a matrix. Grey images contribute their
// raw intensity (0-255 or 0-65535); colour images contribute luminance on
// the 16-bit scale. Failures are returned as *LoadError.
func LoadTIFF(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	m, err := FromImage(img)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return m, nil
}

// FromImage converts img to a matrix, row 0 being the top of the image.
func FromImage(img image.Image) (*Matrix, error) {
	b := img.Bounds()
	nx, ny := b.Dx(), b.Dy()
	if nx <= 0 || ny <= 0 {
		return nil, ErrNoData
	}

	data := make([]float64, 0, nx*ny)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			data = append(data, intensity(img, x, y))
		}
	}
	return New(nx, ny, data)
}

func intensity(img image.Image, x, y int) float64 {
	switch src := img.(type) {
	case *image.Gray:
		return float64(src.GrayAt(x, y).Y)
	case *image.Gray16:
		return float64(src.Gray16At(x, y).Y)
	default:
		return float64(color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y)
	}
}
