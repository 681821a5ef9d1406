package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

const gridSize = 6

// randomCells picks count distinct cells of the grid and returns a jittered center for each.
// Cells are 2 apart, so objects reaching less than 1 from their center never overlap.
func randomCells(random *rand.Rand, count int) []core.Vec3 {
	cells := random.Perm(gridSize * gridSize * gridSize)[:count]

	centers := make([]core.Vec3, 0, count)
	for _, cell := range cells {
		x := float64(cell % gridSize)
		y := float64((cell / gridSize) % gridSize)
		z := float64(cell / (gridSize * gridSize))
		centers = append(centers, core.NewVec3(x, y, z).Multiply(2).Add(core.RandomVec3Range(random, -0.3, 0.3)))
	}
	return centers
}

// randomDisjointSpheres places spheres in distinct cells of a grid so their boxes never overlap
func randomDisjointSpheres(random *rand.Rand, count int) []Hittable {
	objects := make([]Hittable, 0, count)
	for _, center := range randomCells(random, count) {
		radius := core.RandomRange(random, 0.1, 0.6)
		mat := material.NewLambertian(core.RandomVec3(random))
		objects = append(objects, NewSphere(center, radius, mat))
	}
	return objects
}

// randomDisjointObjects mixes spheres, arbitrarily oriented quads and rotated, translated boxes
func randomDisjointObjects(random *rand.Rand, count int) []Hittable {
	objects := make([]Hittable, 0, count)
	for _, center := range randomCells(random, count) {
		mat := material.NewLambertian(core.RandomVec3(random))

		switch random.Intn(3) {
		case 0:
			objects = append(objects, NewSphere(center, core.RandomRange(random, 0.1, 0.6), mat))
		case 1:
			u := core.RandomVec3Range(random, -0.3, 0.3)
			v := u.Cross(core.RandomUnitVector(random)).Normalize().Multiply(core.RandomRange(random, 0.1, 0.3))
			corner := center.Subtract(u.Add(v).Multiply(0.5))
			objects = append(objects, NewQuad(corner, u, v, mat))
		default:
			half := core.RandomRange(random, 0.1, 0.35)
			box := NewBox(core.NewVec3(-half, -half, -half), core.NewVec3(half, half, half), mat)
			rotated := NewRotateY(box, core.RandomRange(random, -180, 180))
			objects = append(objects, NewTranslate(rotated, center))
		}
	}
	return objects
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	interval := core.NewInterval(0.001, math.Inf(1))

	for config := 0; config < 120; config++ {
		count := 1 + random.Intn(60)
		objects := randomDisjointObjects(random, count)

		list := NewHittableList(objects...)
		bvh := NewBVHNode(objects, random)

		if diff := cmp.Diff(list.BoundingBox(), bvh.BoundingBox()); diff != "" {
			t.Fatalf("config %d: BVH box differs from list box (-list +bvh):\n%s", config, diff)
		}

		for r := 0; r < 50; r++ {
			// Aim most rays at an object so that hits are common
			origin := core.RandomVec3Range(random, -15, 25)
			target := objects[random.Intn(len(objects))].BoundingBox().Center()
			direction := target.Subtract(origin).Add(core.RandomVec3Range(random, -0.5, 0.5))
			ray := core.NewRayWithTime(origin, direction, random.Float64())

			listHit, listOK := list.Hit(ray, interval, nil)
			bvhHit, bvhOK := bvh.Hit(ray, interval, nil)

			if listOK != bvhOK {
				t.Fatalf("config %d ray %d: list hit=%v, BVH hit=%v", config, r, listOK, bvhOK)
			}
			if !listOK {
				continue
			}
			if listHit.T != bvhHit.T {
				t.Fatalf("config %d ray %d: list t=%v, BVH t=%v", config, r, listHit.T, bvhHit.T)
			}
			if listHit.Material != bvhHit.Material {
				t.Fatalf("config %d ray %d: materials differ", config, r)
			}
		}
	}
}

func TestBVH_SingleObjectLeaf(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	bvh := NewBVHNode([]Hittable{sphere}, rand.New(rand.NewSource(42)))

	if bvh.Left != sphere || bvh.Right != sphere {
		t.Fatal("Single object node should hold the object as both children")
	}

	hit, ok := bvh.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok || math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected hit at t=4, got ok=%v", ok)
	}

	stats := bvh.Stats()
	if stats.Leaves != 1 || stats.MaxDepth != 1 || stats.InternalNodes != 1 {
		t.Errorf("Unexpected stats for single object: %+v", stats)
	}
}

func TestBVH_TwoObjectsOrdered(t *testing.T) {
	a := NewSphere(core.NewVec3(-3, -3, -3), 1, testMaterial)
	b := NewSphere(core.NewVec3(3, 3, 3), 1, testMaterial)

	// Whichever axis is drawn, b has the larger minimum and goes left
	tests := []struct {
		name    string
		objects []Hittable
	}{
		{"larger first", []Hittable{b, a}},
		{"smaller first", []Hittable{a, b}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bvh := NewBVHNode(tt.objects, rand.New(rand.NewSource(42)))
			if bvh.Left != b || bvh.Right != a {
				t.Error("Expected two objects ordered by decreasing minimum bound")
			}
		})
	}
}

func TestBVH_SplitOrdersByDecreasingMinimum(t *testing.T) {
	// Spheres along the diagonal share their order on every axis
	var objects []Hittable
	for i := 0; i < 8; i++ {
		p := float64(i) * 3
		objects = append(objects, NewSphere(core.NewVec3(p, p, p), 1, testMaterial))
	}

	bvh := NewBVHNode(objects, rand.New(rand.NewSource(42)))
	left := bvh.Left.BoundingBox()
	right := bvh.Right.BoundingBox()
	if left.Center().X <= right.Center().X {
		t.Errorf("Expected the left subtree to hold the larger minimums, left X=%v right X=%v", left.X, right.X)
	}
	if left.X.Min != 11 || right.X.Max != 10 {
		t.Errorf("Expected a median split between the fourth and fifth sphere, left X=%v right X=%v", left.X, right.X)
	}
}

func TestBVH_DoesNotModifyInput(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	objects := randomDisjointSpheres(random, 20)
	original := make([]Hittable, len(objects))
	copy(original, objects)

	NewBVHNode(objects, random)

	for i := range objects {
		if objects[i] != original[i] {
			t.Fatal("NewBVHNode reordered the caller's slice")
		}
	}
}

func TestBVH_Stats(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	objects := randomDisjointSpheres(random, 64)
	stats := NewBVHNode(objects, random).Stats()

	if stats.Leaves != 64 {
		t.Errorf("Expected 64 leaves, got %d", stats.Leaves)
	}
	// Median splits keep the tree balanced
	if stats.MaxDepth != 6 {
		t.Errorf("Expected max depth 6, got %d", stats.MaxDepth)
	}
	if stats.AvgDepth <= 0 || stats.AvgDepth > float64(stats.MaxDepth) {
		t.Errorf("Average depth %f out of range", stats.AvgDepth)
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVHNode(nil, rand.New(rand.NewSource(42)))
	if _, ok := bvh.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), core.UniverseInterval, nil); ok {
		t.Error("Empty BVH should never report a hit")
	}
}
