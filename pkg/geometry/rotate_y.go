package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates an object about the world Y axis
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated by angle degrees about +Y
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Bound all 8 rotated corners of the inner box
	inner := object.BoundingBox()
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, x := range []float64{inner.X.Min, inner.X.Max} {
		for _, y := range []float64{inner.Y.Min, inner.Y.Max} {
			for _, z := range []float64{inner.Z.Min, inner.Z.Max} {
				corner := r.toWorld(core.NewVec3(x, y, z))
				min = core.MinVec(min, corner)
				max = core.MaxVec(max, corner)
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(min, max)

	return r
}

// toObject applies the inverse rotation
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld applies the forward rotation
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, delegates, and rotates the result back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*material.HitRecord, bool) {
	rotated := core.NewRayWithTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(rotated, rayT, random)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the axis-aligned extents of the rotated inner box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
