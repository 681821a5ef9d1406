package core

// minAABBThickness is the smallest extent Pad allows along any axis
const minAABBThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing and is the identity for MergeAABB
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates a new AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates the tightest AABB containing two corner points given in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	min := MinVec(a, b)
	max := MaxVec(a, b)
	return NewAABB(
		NewInterval(min.X, max.X),
		NewInterval(min.Y, max.Y),
		NewInterval(min.Z, max.Z),
	)
}

// MergeAABB returns the tightest AABB containing both boxes
func MergeAABB(a, b AABB) AABB {
	return NewAABB(
		MergeIntervals(a.X, b.X),
		MergeIntervals(a.Y, b.Y),
		MergeIntervals(a.Z, b.Z),
	)
}

// Axis returns the interval for axis n (0=X, 1=Y, 2=Z). Any other value selects X.
func (aabb AABB) Axis(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Pad returns a copy where every axis is at least minAABBThickness thick,
// so flat primitives still produce a box the slab test can hit
func (aabb AABB) Pad() AABB {
	pad := func(i Interval) Interval {
		if i.Size() >= minAABBThickness {
			return i
		}
		return i.Expand(minAABBThickness)
	}
	return AABB{X: pad(aabb.X), Y: pad(aabb.Y), Z: pad(aabb.Z)}
}

// Offset returns the box translated by v
func (aabb AABB) Offset(v Vec3) AABB {
	return AABB{
		X: aabb.X.Offset(v.X),
		Y: aabb.Y.Offset(v.Y),
		Z: aabb.Z.Offset(v.Z),
	}
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method.
// Zero direction components divide to signed infinity, which the comparisons handle.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		invD := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (slab.Min - origin) * invD
		t1 := (slab.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

