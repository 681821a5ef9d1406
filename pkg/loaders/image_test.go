package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"
)

func writeTestImage(t *testing.T, img image.Image, filename string, encode func(f *os.File, img image.Image) error) {
	t.Helper()
	f, err := os.Create(filename)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("Failed to encode image: %v", err)
	}
}

func quadrantImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // blue
	return img
}

// TestLoadImage writes small images in several formats and verifies the decoded pixels
func TestLoadImage(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name   string
		file   string
		encode func(f *os.File, img image.Image) error
	}{
		{"PNG", "test.png", func(f *os.File, img image.Image) error { return png.Encode(f, img) }},
		{"BMP", "test.bmp", func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }},
	}

	expected := []uint8{
		255, 255, 255, 255, 0, 0,
		0, 255, 0, 0, 0, 255,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.file)
			writeTestImage(t, quadrantImage(), path, tt.encode)

			data, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			if data.Width != 2 || data.Height != 2 {
				t.Errorf("Expected 2x2 image, got %dx%d", data.Width, data.Height)
			}
			if diff := cmp.Diff(expected, data.Pixels); diff != "" {
				t.Errorf("Pixels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImageData_RGB(t *testing.T) {
	data := FromImage(quadrantImage())

	tests := []struct {
		name    string
		x, y    int
		r, g, b uint8
	}{
		{"Top-left", 0, 0, 255, 255, 255},
		{"Top-right", 1, 0, 255, 0, 0},
		{"Bottom-left", 0, 1, 0, 255, 0},
		{"Bottom-right", 1, 1, 0, 0, 255},
		{"Clamped past right edge", 5, 0, 255, 0, 0},
		{"Clamped below zero", -3, -3, 255, 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := data.RGB(tt.x, tt.y)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("RGB(%d,%d) = (%d,%d,%d), want (%d,%d,%d)", tt.x, tt.y, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestLoadImage_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadImage(filepath.Join(tmpDir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	garbage := filepath.Join(tmpDir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadImage(garbage); err == nil {
		t.Error("Expected error for undecodable file")
	}
}
