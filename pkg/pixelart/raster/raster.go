// Package raster loads, saves, and resamples the pixel grids shared by
// both conversion directions.
package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// Load decodes the image at path into 8-bit RGBA pixels. The format is
// detected from the file contents.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

// Save encodes img to path, inferring the format from the file extension.
// An existing file is overwritten.
func Save(img *image.NRGBA, path string) error {
	return imaging.Save(img, path)
}

// Downsample shrinks src to exactly width x height samples using
// nearest-neighbor resampling. No neighboring pixels are blended, so
// every output color already exists in the source.
func Downsample(src image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(src, width, height, imaging.NearestNeighbor)
}

// Upsample grows img by an integer factor using nearest-neighbor
// resampling; each source pixel becomes a scale x scale block of
// identical color.
func Upsample(img image.Image, scale int) *image.NRGBA {
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
}

// NewWhite allocates a width x height image with every pixel opaque white.
func NewWhite(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

// EachPixel invokes fn for every pixel of img in row-major order,
// passing 0-based coordinates and the 8-bit RGB channels. It walks the
// flat pixel buffer directly instead of going through image.At, which
// matters when the grid is large. Alpha is ignored.
func EachPixel(img *image.NRGBA, fn func(x, y int, r, g, b uint8)) {
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			p := row[x*4 : x*4+4]
			fn(x, y, p[0], p[1], p[2])
		}
	}
}

// SetPixel writes an opaque RGB value at (x, y) via the flat buffer.
// Coordinates are 0-based and must be in bounds.
func SetPixel(img *image.NRGBA, x, y int, r, g, b uint8) {
	i := y*img.Stride + x*4
	img.Pix[i] = r
	img.Pix[i+1] = g
	img.Pix[i+2] = b
	img.Pix[i+3] = 0xff
}
