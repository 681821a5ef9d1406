package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// skyBlue is the background of the daylight scenes
var skyBlue = core.NewVec3(0.7, 0.8, 1.0)

// wideCamera is the 16:9 view shared by the sphere scenes
func wideCamera(opts ...renderer.CameraOption) renderer.CameraConfig {
	config := renderer.NewCameraConfig(
		renderer.WithAspectRatio(16.0/9.0),
		renderer.WithImageWidth(400),
		renderer.WithSamplesPerPixel(100),
		renderer.WithMaxDepth(50),
		renderer.WithVFov(20),
		renderer.WithView(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
		renderer.WithDefocus(0, 10),
		renderer.WithBackground(skyBlue),
	)
	config.Apply(opts...)
	return config
}

// RandomSpheres is a ground plane covered in small random spheres around three large ones.
// Diffuse spheres move upward during the shutter interval.
func RandomSpheres(opts Options) (geometry.Hittable, renderer.CameraConfig, error) {
	random := opts.Random
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				center2 := center.Add(core.NewVec3(0, core.RandomRange(random, 0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				// metal
				albedo := core.RandomVec3Range(random, 0.5, 1)
				fuzz := core.RandomRange(random, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// glass
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.6), 0.0)))

	return geometry.NewBVHFromList(world, random), wideCamera(renderer.WithDefocus(10, 10)), nil
}

// TwoSpheres stacks two large checkered spheres
func TwoSpheres(opts Options) (geometry.Hittable, renderer.CameraConfig, error) {
	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	surface := material.NewTexturedLambertian(checker)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, surface),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, surface),
	)
	return world, wideCamera(), nil
}

// Earth is a single globe wrapped in the earth map texture
func Earth(opts Options) (geometry.Hittable, renderer.CameraConfig, error) {
	texture, err := loadTexture(opts, EarthTextureFile)
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}

	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture))
	return geometry.NewHittableList(globe), wideCamera(), nil
}

// TwoPerlinSpheres is a marbled ground and sphere
func TwoPerlinSpheres(opts Options) (geometry.Hittable, renderer.CameraConfig, error) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, opts.Random))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
	return world, wideCamera(), nil
}
