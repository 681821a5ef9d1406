package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Quads shows five axis-aligned quads boxing in the camera's view
func Quads(opts Options) (geometry.Hittable, renderer.CameraConfig, error) {
	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	camera := renderer.NewCameraConfig(
		renderer.WithAspectRatio(1.0),
		renderer.WithImageWidth(400),
		renderer.WithSamplesPerPixel(100),
		renderer.WithMaxDepth(50),
		renderer.WithVFov(80),
		renderer.WithView(core.NewVec3(0, 0, 9), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
		renderer.WithDefocus(0, 10),
		renderer.WithBackground(skyBlue),
	)
	return world, camera, nil
}

// SimpleLight lights two noise textured spheres with a sphere and a quad emitter
func SimpleLight(opts Options) (geometry.Hittable, renderer.CameraConfig, error) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, opts.Random))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
	)

	camera := wideCamera(
		renderer.WithSamplesPerPixel(500),
		renderer.WithMaxDepth(500),
		renderer.WithView(core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0), core.NewVec3(0, 1, 0)),
		renderer.WithBackground(core.NewVec3(0, 0, 0)),
	)
	return world, camera, nil
}

// cornellCamera frames the 555 unit Cornell room
func cornellCamera() renderer.CameraConfig {
	return renderer.NewCameraConfig(
		renderer.WithAspectRatio(1.0),
		renderer.WithImageWidth(600),
		renderer.WithSamplesPerPixel(200),
		renderer.WithMaxDepth(50),
		renderer.WithVFov(40),
		renderer.WithView(core.NewVec3(278, 278, -800), core.NewVec3(278, 279, 0), core.NewVec3(0, 1, 0)),
		renderer.WithDefocus(0, 10),
		renderer.WithBackground(core.NewVec3(0, 0, 0)),
	)
}

// cornellRoom returns the walls and ceiling light of the Cornell box, plus its white material
func cornellRoom() (*geometry.HittableList, material.Material) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	room := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
	)
	return room, white
}

// cornellBlock builds a box of the given size rotated about Y and moved into place
func cornellBlock(size core.Vec3, angle float64, offset core.Vec3, mat material.Material) geometry.Hittable {
	block := geometry.NewBox(core.NewVec3(0, 0, 0), size, mat)
	return geometry.NewTranslate(geometry.NewRotateY(block, angle), offset)
}

// CornellBox is the classic Cornell box with a tall and a short block
func CornellBox(opts Options) (geometry.Hittable, renderer.CameraConfig, error) {
	world, white := cornellRoom()
	world.Add(cornellBlock(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), white))
	world.Add(cornellBlock(core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65), white))
	return world, cornellCamera(), nil
}

// CornellSmoke replaces the Cornell box blocks with dark and light smoke
func CornellSmoke(opts Options) (geometry.Hittable, renderer.CameraConfig, error) {
	world, white := cornellRoom()

	tall := cornellBlock(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), white)
	short := cornellBlock(core.NewVec3(165, 166, 165), -18, core.NewVec3(130, 0, 65), white)
	world.Add(geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)))

	return world, cornellCamera(), nil
}

// FinalScene combines every primitive, material and wrapper in one picture
func FinalScene(opts Options) (geometry.Hittable, renderer.CameraConfig, error) {
	random := opts.Random

	earthTexture, err := loadTexture(opts, EarthTextureFile)
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}

	// Ground of random height boxes
	groundBoxes := geometry.NewHittableList()
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := float64(1 + random.Intn(100))
			groundBoxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}

	world := geometry.NewHittableList()
	world.Add(geometry.NewBVHFromList(groundBoxes, random))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 145), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMediumColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthTexture)))
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(0.1, random))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, marble))

	// Cluster of small spheres, rotated and moved as one instance
	cluster := geometry.NewHittableList()
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	for n := 0; n < 1000; n++ {
		cluster.Add(geometry.NewSphere(core.RandomVec3Range(random, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVHFromList(cluster, random), 15),
		core.NewVec3(-100, 270, 395),
	))

	camera := renderer.NewCameraConfig(
		renderer.WithAspectRatio(1.0),
		renderer.WithImageWidth(800),
		renderer.WithSamplesPerPixel(10000),
		renderer.WithMaxDepth(40),
		renderer.WithVFov(40),
		renderer.WithView(core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), core.NewVec3(0, 1, 0)),
		renderer.WithDefocus(0, 10),
		renderer.WithBackground(core.NewVec3(0, 0, 0)),
	)
	return world, camera, nil
}
