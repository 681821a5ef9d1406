package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly over the shutter interval
type Sphere struct {
	Center   core.Vec3 // Center at time 0
	Motion   core.Vec3 // Displacement of the center between time 0 and time 1
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return NewMovingSphere(center, center, radius, mat)
}

// NewMovingSphere creates a sphere whose center moves from center1 at time 0 to center2 at time 1.
// A negative radius flips the outward normal inward; a zero radius is never hit.
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) *Sphere {
	s := &Sphere{
		Center:   center1,
		Motion:   center2.Subtract(center1),
		Radius:   radius,
		Material: mat,
	}

	rvec := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box1 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))
	s.bbox = core.MergeAABB(box0, box1)
	return s
}

// CenterAt returns the sphere center at the given shutter time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.Motion.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	if s.Radius == 0 {
		return nil, false
	}
	center := s.CenterAt(ray.Time)

	// Quadratic equation coefficients: at² + 2hb·t + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the nearer root first, then the farther one
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	outwardNormal := hit.Point.Subtract(center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box swept by the sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting at -X; v runs from -Y (0) to +Y (1).
func sphereUV(p core.Vec3) (float64, float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
