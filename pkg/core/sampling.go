package core

import (
	"math"
	"math/rand"
)

// RandomRange returns a uniform float64 in [min, max)
func RandomRange(random *rand.Rand, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

// RandomVec3 returns a vector with components uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return NewVec3(random.Float64(), random.Float64(), random.Float64())
}

// RandomVec3Range returns a vector with components uniform in [min, max)
func RandomVec3Range(random *rand.Rand, min, max float64) Vec3 {
	return NewVec3(
		RandomRange(random, min, max),
		RandomRange(random, min, max),
		RandomRange(random, min, max),
	)
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(random, -1, 1)
		lensq := p.LengthSquared()
		// Reject points so close to the origin that normalizing would blow up
		if 1e-160 < lensq && lensq <= 1 {
			return p.Divide(math.Sqrt(lensq))
		}
	}
}

// RandomOnHemisphere returns a unit vector in the hemisphere around normal
func RandomOnHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	onSphere := RandomUnitVector(random)
	if onSphere.Dot(normal) > 0 {
		return onSphere
	}
	return onSphere.Negate()
}

// RandomInUnitDisk generates a random point in the unit disk on the z=0 plane (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(RandomRange(random, -1, 1), RandomRange(random, -1, 1), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
