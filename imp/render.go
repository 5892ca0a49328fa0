// Package imp renders intensity grids as images and handles image
// file I/O.
package imp

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/oureatools/ourea/dem"
)

// Render draws an intensity grid as an 8-bit grayscale image of the
// same dimensions.
func Render(g *dem.IntensityGrid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols, g.Rows))
	copy(img.Pix, g.Pix)
	return img
}

// ToGray converts any image in a grayscale picture of the same size
func ToGray(src image.Image) *image.Gray {
	if dst, ok := src.(*image.Gray); ok {
		return dst
	}

	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	model := dst.ColorModel()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x, y, model.Convert(src.At(x, y)))
		}
	}
	return dst
}

// Shrink bounds img so its larger side fits maxSize pixels, keeping
// the aspect ratio. Images already within bounds come back unchanged.
// Resampling widens the pixels to RGBA, so the result is converted
// back to grayscale.
func Shrink(img *image.Gray, maxSize int) *image.Gray {
	b := img.Bounds()
	if b.Dx() <= maxSize && b.Dy() <= maxSize {
		return img
	}
	return ToGray(imaging.Fit(img, maxSize, maxSize, imaging.Box))
}
