package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight_ScatterAndEmit(t *testing.T) {
	tests := []struct {
		name     string
		emission core.Vec3
	}{
		{"Red emission", core.NewVec3(1.0, 0.0, 0.0)},
		{"White emission", core.NewVec3(1.0, 1.0, 1.0)},
		{"Zero emission", core.NewVec3(0.0, 0.0, 0.0)},
		{"High intensity emission", core.NewVec3(15.0, 15.0, 15.0)},
	}

	random := rand.New(rand.NewSource(42))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewDiffuseLight(tt.emission)

			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
			hit := HitRecord{
				Point:  core.NewVec3(1, 0, 0),
				Normal: core.NewVec3(-1, 0, 0),
			}

			if _, scattered := light.Scatter(ray, hit, random); scattered {
				t.Error("Diffuse lights should not scatter")
			}

			if got := light.Emitted(0.3, 0.7, hit.Point); got != tt.emission {
				t.Errorf("Expected emission %v, got %v", tt.emission, got)
			}
		})
	}
}

func TestNonEmitters_EmitBlack(t *testing.T) {
	materials := map[string]Material{
		"lambertian": NewLambertian(core.NewVec3(1, 1, 1)),
		"metal":      NewMetal(core.NewVec3(1, 1, 1), 0),
		"dielectric": NewDielectric(1.5),
		"isotropic":  NewIsotropic(core.NewVec3(1, 1, 1)),
	}

	for name, m := range materials {
		if e := m.Emitted(0.5, 0.5, core.NewVec3(1, 2, 3)); e != black {
			t.Errorf("%s: expected black emission, got %v", name, e)
		}
	}
}

func TestIsotropic_ScattersUniformly(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)
	iso := NewIsotropic(albedo)
	random := rand.New(rand.NewSource(42))

	ray := core.NewRayWithTime(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0.3)
	hit := HitRecord{Point: core.NewVec3(1, 0, 0), Normal: core.NewVec3(1, 0, 0)}

	var sum core.Vec3
	const n = 5000
	for i := 0; i < n; i++ {
		scatter, ok := iso.Scatter(ray, hit, random)
		if !ok {
			t.Fatal("Isotropic should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Time != 0.3 {
			t.Fatalf("Expected time to propagate, got %f", scatter.Scattered.Time)
		}
		sum = sum.Add(scatter.Scattered.Direction)
	}

	// Uniform directions average out near the origin
	if mean := sum.Divide(n); mean.Length() > 0.05 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	var front HitRecord
	front.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), outward)
	if !front.FrontFace || front.Normal != outward {
		t.Errorf("Expected front face with outward normal, got %+v", front)
	}

	var back HitRecord
	back.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), outward)
	if back.FrontFace || back.Normal != outward.Negate() {
		t.Errorf("Expected back face with flipped normal, got %+v", back)
	}
}
