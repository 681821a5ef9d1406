package renderer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidCamera is wrapped by every CameraConfig validation failure
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig holds the extrinsic and imaging parameters of a camera
type CameraConfig struct {
	AspectRatio     float64   // Ratio of image width over height
	ImageWidth      int       // Rendered image width in pixels
	SamplesPerPixel int       // Random samples for each pixel
	MaxDepth        int       // Maximum number of ray bounces
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	VUp             core.Vec3 // Camera-relative "up" direction
	DefocusAngle    float64   // Aperture cone angle through each pixel, in degrees
	FocusDist       float64   // Distance from LookFrom to the plane of perfect focus
	Background      core.Vec3 // Radiance returned by rays that escape the scene
}

// DefaultCameraConfig returns the default camera parameters
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 1,
		MaxDepth:        1,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, 0),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
		Background:      core.NewVec3(0, 0, 0),
	}
}

// CameraOption modifies a CameraConfig
type CameraOption func(*CameraConfig)

// NewCameraConfig applies opts on top of DefaultCameraConfig
func NewCameraConfig(opts ...CameraOption) CameraConfig {
	config := DefaultCameraConfig()
	config.Apply(opts...)
	return config
}

// Apply applies opts to the config in order
func (c *CameraConfig) Apply(opts ...CameraOption) {
	for _, opt := range opts {
		opt(c)
	}
}

func WithAspectRatio(ratio float64) CameraOption {
	return func(c *CameraConfig) { c.AspectRatio = ratio }
}

func WithImageWidth(width int) CameraOption {
	return func(c *CameraConfig) { c.ImageWidth = width }
}

func WithSamplesPerPixel(samples int) CameraOption {
	return func(c *CameraConfig) { c.SamplesPerPixel = samples }
}

func WithMaxDepth(depth int) CameraOption {
	return func(c *CameraConfig) { c.MaxDepth = depth }
}

func WithVFov(degrees float64) CameraOption {
	return func(c *CameraConfig) { c.VFov = degrees }
}

// WithView sets the camera position, target and up direction
func WithView(lookFrom, lookAt, vUp core.Vec3) CameraOption {
	return func(c *CameraConfig) {
		c.LookFrom = lookFrom
		c.LookAt = lookAt
		c.VUp = vUp
	}
}

// WithDefocus sets the aperture angle in degrees and the focus distance
func WithDefocus(angle, focusDist float64) CameraOption {
	return func(c *CameraConfig) {
		c.DefocusAngle = angle
		c.FocusDist = focusDist
	}
}

func WithBackground(background core.Vec3) CameraOption {
	return func(c *CameraConfig) { c.Background = background }
}

// ImageHeight returns the image height implied by width and aspect ratio, at least 1
func (c CameraConfig) ImageHeight() int {
	height := int(float64(c.ImageWidth) / c.AspectRatio)
	if height < 1 {
		return 1
	}
	return height
}

// Validate reports configurations that cannot produce a meaningful image
func (c CameraConfig) Validate() error {
	switch {
	case c.ImageWidth <= 0:
		return fmt.Errorf("%w: image width must be positive, got %d", ErrInvalidCamera, c.ImageWidth)
	case c.AspectRatio <= 0 || math.IsNaN(c.AspectRatio) || math.IsInf(c.AspectRatio, 0):
		return fmt.Errorf("%w: aspect ratio must be positive and finite, got %v", ErrInvalidCamera, c.AspectRatio)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidCamera, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidCamera, c.MaxDepth)
	case c.VFov <= 0 || c.VFov >= 180:
		return fmt.Errorf("%w: vertical field of view must be in (0, 180), got %v", ErrInvalidCamera, c.VFov)
	case c.FocusDist <= 0:
		return fmt.Errorf("%w: focus distance must be positive, got %v", ErrInvalidCamera, c.FocusDist)
	case c.DefocusAngle < 0:
		return fmt.Errorf("%w: defocus angle must not be negative, got %v", ErrInvalidCamera, c.DefocusAngle)
	}

	view := c.LookFrom.Subtract(c.LookAt)
	if view.NearZero() {
		return fmt.Errorf("%w: look-from and look-at coincide at %v", ErrInvalidCamera, c.LookFrom)
	}
	if c.VUp.Cross(view).NearZero() {
		return fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidCamera, c.VUp)
	}
	return nil
}

// Camera generates primary rays and integrates radiance along them
type Camera struct {
	config         CameraConfig
	imageHeight    int
	center         core.Vec3 // Camera center
	pixel00        core.Vec3 // Location of pixel (0, 0)
	pixelDeltaU    core.Vec3 // Offset to the pixel to the right
	pixelDeltaV    core.Vec3 // Offset to the pixel below
	u, v, w        core.Vec3 // Camera frame basis vectors
	defocusDiskU   core.Vec3 // Defocus disk horizontal radius
	defocusDiskV   core.Vec3 // Defocus disk vertical radius
	unbiasedJitter bool      // Jitter over the whole pixel instead of the upper-left quadrant
}

// NewCamera derives the viewport and lens geometry from config. It never fails;
// call Validate first to reject degenerate configurations.
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{
		config:      config,
		imageHeight: config.ImageHeight(),
		center:      config.LookFrom,
	}

	// Viewport dimensions at the focus plane
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDist
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(c.imageHeight))

	// Orthonormal camera frame
	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.VUp.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(config.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDist * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// ImageWidth returns the width of the rendered image in pixels
func (c *Camera) ImageWidth() int {
	return c.config.ImageWidth
}

// ImageHeight returns the height of the rendered image in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// PixelCenter returns the viewport location of the center of pixel (i, j)
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// GetRay returns a randomly sampled ray through pixel (i, j), originating on the
// defocus disk and carrying a random shutter time in [0, 1)
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	ox, oy := c.sampleSquare(random)
	pixelSample := c.PixelCenter(i, j).
		Add(c.pixelDeltaU.Multiply(ox)).
		Add(c.pixelDeltaV.Multiply(oy))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	return core.NewRayWithTime(origin, pixelSample.Subtract(origin), random.Float64())
}

// sampleSquare returns the jitter offset in pixel units. The default keeps the
// historical offset range (-0.5, 0]; unbiased jitter covers [-0.5, 0.5).
func (c *Camera) sampleSquare(random *rand.Rand) (float64, float64) {
	if c.unbiasedJitter {
		return random.Float64() - 0.5, random.Float64() - 0.5
	}
	return -0.5 * random.Float64(), -0.5 * random.Float64()
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
