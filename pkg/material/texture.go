package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials. The set of variants
// is closed: SolidColor, Checker, ImageTexture and NoiseTexture.
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and 3D point.
	// UV is used for image textures, point for procedural textures.
	Value(u, v float64, point core.Vec3) core.Vec3

	isTexture()
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

func (s *SolidColor) isTexture() {}

// Checker alternates between two textures on a 3D lattice of cubes
type Checker struct {
	invScale float64
	Even     Texture
	Odd      Texture
}

// NewChecker creates a checker texture whose cells are scale units wide
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker texture from two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value selects the even or odd texture from the parity of the lattice cell containing point
func (c *Checker) Value(u, v float64, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * point.X))
	y := int(math.Floor(c.invScale * point.Y))
	z := int(math.Floor(c.invScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, point)
	}
	return c.Odd.Value(u, v, point)
}

func (c *Checker) isTexture() {}
