// SPDX-License-Identifier: MIT

package grid

import (
	"image"
	"image/color"
)

// FromGray copies an 8-bit grayscale image into a row-major grid.
// Complexity: O(w*h).
func FromGray(img *image.Gray) (p []uint8, rows, cols int) {
	b := img.Bounds()
	rows, cols = b.Dy(), b.Dx()
	p = make([]uint8, rows*cols)
	for y := 0; y < rows; y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(p[y*cols:(y+1)*cols], img.Pix[off:off+cols])
	}

	return p, rows, cols
}

// FromGray16 copies a 16-bit grayscale image into a row-major grid.
// Complexity: O(w*h).
func FromGray16(img *image.Gray16) (p []uint16, rows, cols int) {
	b := img.Bounds()
	rows, cols = b.Dy(), b.Dx()
	p = make([]uint16, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p[Index(y, x, cols)] = img.Gray16At(b.Min.X+x, b.Min.Y+y).Y
		}
	}

	return p, rows, cols
}

// FromImage converts any image to a 16-bit luminance grid.
// Gray and Gray16 images are widened losslessly; other color models go
// through color.Gray16Model.
// Complexity: O(w*h).
func FromImage(img image.Image) (p []uint16, rows, cols int) {
	switch m := img.(type) {
	case *image.Gray16:
		return FromGray16(m)
	case *image.Gray:
		g, r, c := FromGray(m)
		p = make([]uint16, len(g))
		for i, v := range g {
			p[i] = uint16(v) * 0x101
		}
		return p, r, c
	}

	b := img.Bounds()
	rows, cols = b.Dy(), b.Dx()
	p = make([]uint16, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			p[Index(y, x, cols)] = g.Y
		}
	}

	return p, rows, cols
}
