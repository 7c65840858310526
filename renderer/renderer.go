// Package renderer rasterizes resolved icon files to images. It sits
// strictly above the lookup engine: the engine hands over a path, this
// package reads it.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/tuxlif/fdicons"
)

// Render rasterizes the icon file at path to a size×size image. SVG files
// are rendered with oksvg, PNG files are decoded and resized when needed.
// XMP files have no decoder here and come back as a neutral placeholder.
func Render(path string, size int) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return renderSVG(path, size)
	case ".png":
		return renderPNG(path, size)
	case ".xmp":
		return Placeholder(size, color.Gray{Y: 128}), nil
	default:
		return nil, fmt.Errorf("unsupported icon format %q", filepath.Ext(path))
	}
}

// RenderNamed looks up the first resolvable name from the list and renders
// it. Symbolic SVG icons are recolored with fg. When no name resolves, the
// result is a placeholder image and an empty path.
func RenderNamed(names []string, size int, fg color.Color) (image.Image, string, error) {
	icon, ok := fdicons.FindBest(names, size, 1)
	if !ok {
		return Placeholder(size, fg), "", nil
	}

	if strings.HasSuffix(icon.Name, "-symbolic") && strings.HasSuffix(icon.Path, ".svg") {
		img, err := RenderSymbolic(icon.Path, size, fg)
		return img, icon.Path, err
	}

	img, err := Render(icon.Path, size)
	return img, icon.Path, err
}

// RenderSymbolic rasterizes a symbolic SVG icon with its stock colors
// replaced by fg, so the icon matches the caller's color scheme.
func RenderSymbolic(path string, size int, fg color.Color) (image.Image, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading svg: %w", err)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(recolor(string(content), fg)))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	return rasterize(icon, size), nil
}

// SavePNG encodes the image to a PNG file at path.
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()
	return png.Encode(file, img)
}

func renderSVG(path string, size int) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening svg: %w", err)
	}
	defer file.Close()

	icon, err := oksvg.ReadIconStream(file)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	return rasterize(icon, size), nil
}

func rasterize(icon *oksvg.SvgIcon, size int) image.Image {
	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img
}

func renderPNG(path string, size int) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening png: %w", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding png: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == size && bounds.Dy() == size {
		return img, nil
	}
	return resize(img, size), nil
}

// resize scales with nearest neighbour, which is adequate for the small
// integer factors icon work deals in.
func resize(src image.Image, size int) image.Image {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dst.Set(x, y, src.At(bounds.Min.X+x*srcW/size, bounds.Min.Y+y*srcH/size))
		}
	}
	return dst
}

// Stock colors symbolic icons ship with, replaced wholesale on recolor.
var symbolicColors = []string{"#bebebe", "#2e3436", "#000000", "#ffffff", "currentColor"}

func recolor(svg string, fg color.Color) string {
	r, g, b, _ := fg.RGBA()
	hex := fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
	for _, c := range symbolicColors {
		svg = strings.ReplaceAll(svg, c, hex)
	}
	return svg
}
