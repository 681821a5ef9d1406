package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

// debugCyan is returned when an image texture has no pixel data
var debugCyan = core.NewVec3(0, 1, 1)

// unitInterval is the UV range image lookups are clamped to
var unitInterval = core.NewInterval(0, 1)

// ImageTexture provides color from a decoded 2D image
type ImageTexture struct {
	image *loaders.ImageData
}

// NewImageTexture creates a new image texture from already decoded pixels
func NewImageTexture(image *loaders.ImageData) *ImageTexture {
	return &ImageTexture{image: image}
}

// NewImageTextureFromFile decodes the image at filename. Decode failures are
// returned to the caller; a scene must not be built around a missing texture.
func NewImageTextureFromFile(filename string) (*ImageTexture, error) {
	image, err := loaders.LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load image texture %q: %w", filename, err)
	}
	return NewImageTexture(image), nil
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t.image == nil || t.image.Width <= 0 || t.image.Height <= 0 {
		return debugCyan
	}

	// Clamp to [0,1] and flip V: V=0 is the bottom of the image, row 0 is the top
	u = unitInterval.Clamp(u)
	v = 1.0 - unitInterval.Clamp(v)

	x := int(u * float64(t.image.Width))
	y := int(v * float64(t.image.Height))

	// u or v of exactly 1 lands one past the last pixel
	if x >= t.image.Width {
		x = t.image.Width - 1
	}
	if y >= t.image.Height {
		y = t.image.Height - 1
	}

	const colorScale = 1.0 / 255.0
	r, g, b := t.image.RGB(x, y)
	return core.NewVec3(
		colorScale*float64(r),
		colorScale*float64(g),
		colorScale*float64(b),
	)
}

func (t *ImageTexture) isTexture() {}
