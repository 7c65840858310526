package renderer

import (
	"image"
	"image/color"
)

// Placeholder draws a size×size stand-in for an icon that could not be
// resolved: a bordered transparent square with a centered cross, in the
// given foreground color.
func Placeholder(size int, fg color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	r, g, b, a := fg.RGBA()
	solid := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	border := color.RGBA{solid.R, solid.G, solid.B, uint8(float64(solid.A) * 0.6)}

	borderWidth := max(1, size/32)
	for i := 0; i < borderWidth; i++ {
		for x := 0; x < size; x++ {
			img.Set(x, i, border)
			img.Set(x, size-1-i, border)
		}
		for y := 0; y < size; y++ {
			img.Set(i, y, border)
			img.Set(size-1-i, y, border)
		}
	}

	crossWidth := max(2, size/16)
	center := size / 2
	arm := size / 3

	for i := -arm; i <= arm; i++ {
		for j := -crossWidth / 2; j <= crossWidth/2; j++ {
			if center+i < 0 || center+i >= size {
				continue
			}
			if x := center + i + j; x >= 0 && x < size {
				img.Set(x, center+i, solid)
			}
			if x := center - i + j; x >= 0 && x < size {
				img.Set(x, center+i, solid)
			}
		}
	}

	return img
}
