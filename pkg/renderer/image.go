package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// RGB is an 8-bit per channel pixel
type RGB [3]uint8

// PixelEvent reports a finished pixel during a streaming render
type PixelEvent struct {
	Index int // Row-major pixel index, j*width + i
	Color RGB
}

// Image is a row-major grid of pixels, top row first
type Image struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// At returns the pixel in column i of row j
func (img *Image) At(i, j int) RGB {
	return img.Pixels[j*img.Width+i]
}

// Set stores the pixel in column i of row j
func (img *Image) Set(i, j int, c RGB) {
	img.Pixels[j*img.Width+i] = c
}

// ToRGBA converts the image to an opaque *image.RGBA for standard encoders
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for j := 0; j < img.Height; j++ {
		for i := 0; i < img.Width; i++ {
			c := img.At(i, j)
			out.SetRGBA(i, j, color.RGBA{R: c[0], G: c[1], B: c[2], A: 255})
		}
	}
	return out
}

// WritePPM writes the image in plain-text P3 PPM format
func (img *Image) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	for _, c := range img.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", c[0], c[1], c[2]); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}

// WritePNG encodes the image as PNG
func (img *Image) WritePNG(w io.Writer) error {
	if err := png.Encode(w, img.ToRGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
