package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"sort"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// EarthTextureFile is the texture the earth scenes look for in Options.TextureDir
const EarthTextureFile = "earthmap.jpg"

// ErrUnknownScene is returned by Lookup for names not in the catalogue
var ErrUnknownScene = errors.New("unknown scene")

// Options are the inputs shared by all scene builders
type Options struct {
	TextureDir string     // Directory searched for image textures
	Random     *rand.Rand // Source for scene layout and BVH construction
}

// Builder assembles a scene root and the camera that frames it
type Builder func(opts Options) (geometry.Hittable, renderer.CameraConfig, error)

// Entry describes a scene in the catalogue
type Entry struct {
	Name         string
	Description  string
	NeedsTexture bool
	build        Builder
}

// Build assembles the scene. A nil Random is replaced by a fixed seed.
func (e Entry) Build(opts Options) (geometry.Hittable, renderer.CameraConfig, error) {
	if opts.Random == nil {
		opts.Random = rand.New(rand.NewSource(1))
	}
	world, camera, err := e.build(opts)
	if err != nil {
		return nil, renderer.CameraConfig{}, fmt.Errorf("failed to build scene %q: %w", e.Name, err)
	}
	return world, camera, nil
}

var registry = map[string]Entry{}

func register(name, description string, needsTexture bool, build Builder) {
	registry[name] = Entry{Name: name, Description: description, NeedsTexture: needsTexture, build: build}
}

func init() {
	register("random-spheres", "Field of random moving diffuse, metal and glass spheres", false, RandomSpheres)
	register("two-spheres", "Two checker textured spheres", false, TwoSpheres)
	register("earth", "Image textured globe", true, Earth)
	register("two-perlin-spheres", "Perlin noise textured ground and sphere", false, TwoPerlinSpheres)
	register("quads", "Five colored quads", false, Quads)
	register("simple-light", "Noise spheres lit by a sphere and a quad light", false, SimpleLight)
	register("cornell-box", "Cornell box with two rotated blocks", false, CornellBox)
	register("cornell-smoke", "Cornell box with two blocks of smoke", false, CornellSmoke)
	register("final", "Everything: boxes, media, textures and motion blur", true, FinalScene)
}

// Lookup returns the catalogue entry for name
func Lookup(name string) (Entry, error) {
	entry, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return entry, nil
}

// Catalogue returns every scene sorted by name
func Catalogue() []Entry {
	entries := make([]Entry, 0, len(registry))
	for _, entry := range registry {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// loadTexture loads an image texture from the options' texture directory
func loadTexture(opts Options, filename string) (*material.ImageTexture, error) {
	return material.NewImageTextureFromFile(filepath.Join(opts.TextureDir, filename))
}
