package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect. Implementations are immutable after
// construction and safe to share between render workers.
type Hittable interface {
	// Hit returns the closest intersection with t inside rayT. random is the
	// calling worker's generator, used by volumes that scatter stochastically.
	Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
