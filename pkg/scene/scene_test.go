package scene

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// writeEarthTexture writes a small gradient JPEG named like the earth texture into dir
func writeEarthTexture(t *testing.T, dir string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 32), B: 128, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, EarthTextureFile))
	if err != nil {
		t.Fatalf("Failed to create texture: %v", err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatalf("Failed to encode texture: %v", err)
	}
}

func TestCatalogue(t *testing.T) {
	var names []string
	for _, entry := range Catalogue() {
		names = append(names, entry.Name)
	}

	want := []string{
		"cornell-box",
		"cornell-smoke",
		"earth",
		"final",
		"quads",
		"random-spheres",
		"simple-light",
		"two-perlin-spheres",
		"two-spheres",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Catalogue mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("teapot")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestBuild_AllScenes(t *testing.T) {
	textureDir := t.TempDir()
	writeEarthTexture(t, textureDir)

	for _, entry := range Catalogue() {
		t.Run(entry.Name, func(t *testing.T) {
			world, camera, err := entry.Build(Options{
				TextureDir: textureDir,
				Random:     rand.New(rand.NewSource(42)),
			})
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if world == nil {
				t.Fatal("Expected a scene root")
			}
			if err := camera.Validate(); err != nil {
				t.Errorf("Scene camera is invalid: %v", err)
			}

			bbox := world.BoundingBox()
			if bbox.X.IsEmpty() || bbox.Y.IsEmpty() || bbox.Z.IsEmpty() {
				t.Errorf("Expected a non-empty bounding box, got %v", bbox)
			}
		})
	}
}

func TestBuild_MissingTexture(t *testing.T) {
	for _, entry := range Catalogue() {
		if !entry.NeedsTexture {
			continue
		}
		t.Run(entry.Name, func(t *testing.T) {
			_, _, err := entry.Build(Options{TextureDir: t.TempDir()})
			if err == nil {
				t.Error("Expected an error when the texture file is missing")
			}
		})
	}
}

func TestBuild_DeterministicLayout(t *testing.T) {
	entry, err := Lookup("random-spheres")
	if err != nil {
		t.Fatal(err)
	}

	count := func(seed int64) int {
		world, _, err := entry.Build(Options{Random: rand.New(rand.NewSource(seed))})
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		return world.(*geometry.BVHNode).Stats().Leaves
	}

	if a, b := count(7), count(7); a != b {
		t.Errorf("Same seed gave %d and %d objects", a, b)
	}
}

func TestRender_Quads(t *testing.T) {
	entry, err := Lookup("quads")
	if err != nil {
		t.Fatal(err)
	}
	world, camera, err := entry.Build(Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	camera.Apply(
		renderer.WithImageWidth(12),
		renderer.WithSamplesPerPixel(2),
		renderer.WithMaxDepth(4),
	)

	config := renderer.DefaultRenderConfig()
	config.NumWorkers = 2
	config.ProgressInterval = 0

	img, stats, err := renderer.NewRenderer(camera, config, nil).Render(world)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.Pixels != 12*12 {
		t.Errorf("Expected %d pixels, got %d", 12*12, stats.Pixels)
	}

	// The green back wall fills the center of the view
	center := img.At(6, 6)
	if center[1] <= center[0] || center[1] <= center[2] {
		t.Errorf("Expected a green center pixel, got %v", center)
	}
}
