package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// ImageData contains a decoded image as packed 8-bit RGB triplets, row-major from the top row
type ImageData struct {
	Width  int
	Height int
	Pixels []uint8
}

// RGB returns the 8-bit components of the pixel at (x, y). Coordinates outside
// the image are clamped to the nearest edge.
func (d *ImageData) RGB(x, y int) (uint8, uint8, uint8) {
	x = clampIndex(x, d.Width)
	y = clampIndex(y, d.Height)
	i := 3 * (y*d.Width + x)
	return d.Pixels[i], d.Pixels[i+1], d.Pixels[i+2]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// LoadImage loads an image file and converts it to 8-bit RGB. The format is
// detected from the file header.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(img), nil
}

// FromImage converts any image.Image into ImageData, dropping alpha
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]uint8, 0, 3*width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			pixels = append(pixels, c.R, c.G, c.B)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}
