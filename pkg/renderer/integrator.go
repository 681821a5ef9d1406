package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// shadowAcneEpsilon skips self-intersections caused by floating point error
const shadowAcneEpsilon = 0.001

// RayColor returns the radiance arriving along ray, following at most depth bounces
func (c *Camera) RayColor(ray core.Ray, depth int, world geometry.Hittable, random *rand.Rand) core.Vec3 {
	// Bounce limit exceeded: no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), random)
	if !ok {
		return c.config.Background
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, scattered := hit.Material.Scatter(ray, *hit, random)
	if !scattered {
		return emitted
	}

	incoming := c.RayColor(scatter.Scattered, depth-1, world, random)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

// SamplePixel sums SamplesPerPixel radiance samples through pixel (i, j)
func (c *Camera) SamplePixel(i, j int, world geometry.Hittable, random *rand.Rand) core.Vec3 {
	var sum core.Vec3
	for s := 0; s < c.config.SamplesPerPixel; s++ {
		ray := c.GetRay(i, j, random)
		sum = sum.Add(c.RayColor(ray, c.config.MaxDepth, world, random))
	}
	return sum
}

// RenderPixel samples pixel (i, j) and tone maps the result
func (c *Camera) RenderPixel(i, j int, world geometry.Hittable, random *rand.Rand) RGB {
	return ToneMap(c.SamplePixel(i, j, world, random), c.config.SamplesPerPixel)
}
