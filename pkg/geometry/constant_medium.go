package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// mediumExitEpsilon separates the exit search from the entry point
const mediumExitEpsilon = 0.0001

// ConstantMedium is a homogeneous participating medium filling a convex boundary
type ConstantMedium struct {
	Boundary      Hittable
	negInvDensity float64
	phase         material.Material
}

// NewConstantMedium fills boundary with a medium of the given density whose
// scattering albedo comes from albedo
func NewConstantMedium(boundary Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1 / density,
		phase:         material.NewTexturedIsotropic(albedo),
	}
}

// NewConstantMediumColor fills boundary with a medium of a single color
func NewConstantMediumColor(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// Hit samples a free-flight distance through the medium and reports a scattering
// event if it falls before the ray leaves the boundary
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(ray, core.UniverseInterval, random)
	if !ok {
		return nil, false
	}
	rec2, ok := m.Boundary.Hit(ray, core.NewInterval(rec1.T+mediumExitEpsilon, math.Inf(1)), random)
	if !ok {
		return nil, false
	}

	// Clip the segment inside the boundary to the caller's window
	t1 := math.Max(rec1.T, rayT.Min)
	t2 := math.Min(rec2.T, rayT.Max)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(random.Float64())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Material:  m.phase,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
