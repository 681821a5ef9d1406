package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Material describes how a surface responds to light. The set of variants is
// closed: Lambertian, Metal, Dielectric, DiffuseLight and Isotropic.
type Material interface {
	// Scatter produces the continuation ray and its attenuation.
	// A false result means the incoming ray was absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)

	// Emitted returns the radiance emitted at the surface point, black for non-emitters
	Emitted(u, v float64, point core.Vec3) core.Vec3

	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray, carrying the incoming ray's time
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always opposing the incoming ray
	Material  Material  // Material of the hit object
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface parametric coordinates
	FrontFace bool      // Whether the ray hit the outward-facing side
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// black is the emission of every non-emissive material
var black = core.Vec3{}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
