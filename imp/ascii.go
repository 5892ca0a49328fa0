package imp

import (
	"image"
	"strings"
)

// asciiRamp orders characters from dark to bright.
const asciiRamp = " .:-=+*#%@"

// ASCII renders img as character art, width columns wide. Rows are
// sampled at half the column density to offset the tall aspect of
// terminal cells.
func ASCII(img image.Image, width int) string {
	gray := ToGray(img)
	b := gray.Bounds()
	if width <= 0 || width > b.Dx() {
		width = b.Dx()
	}
	height := b.Dy() * width / b.Dx() / 2
	if height < 1 {
		height = 1
	}
	scaleX := float64(b.Dx()) / float64(width)
	scaleY := float64(b.Dy()) / float64(height)

	var sb strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := b.Min.X + int(float64(x)*scaleX)
			py := b.Min.Y + int(float64(y)*scaleY)
			v := gray.GrayAt(px, py).Y
			sb.WriteByte(asciiRamp[int(v)*len(asciiRamp)/256])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
