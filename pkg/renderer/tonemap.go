package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// intensity is the range linear channel values are clamped to before quantization
var intensity = core.NewInterval(0.000, 0.999)

// ToneMap averages a sum of samples, applies gamma 2 and quantizes each channel to a byte.
// Quantization multiplies by 256 and truncates, so 0.999 maps to 255.
func ToneMap(sum core.Vec3, samples int) RGB {
	scale := 1.0 / float64(samples)
	return RGB{
		quantize(sum.X * scale),
		quantize(sum.Y * scale),
		quantize(sum.Z * scale),
	}
}

// quantize converts a linear channel to an 8-bit gamma corrected value
func quantize(linear float64) uint8 {
	// NaN from a degenerate sample reads as black
	if math.IsNaN(linear) || linear <= 0 {
		return 0
	}
	return uint8(256 * intensity.Clamp(math.Sqrt(linear)))
}
