package renderer

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ErrNoWorld is returned when rendering without a scene root
var ErrNoWorld = errors.New("no world to render")

// RenderConfig controls how a render is executed
type RenderConfig struct {
	NumWorkers       int           // Parallel workers, runtime.NumCPU() when <= 0
	Seed             int64         // Worker i draws from a generator seeded with Seed+i
	ProgressInterval time.Duration // Period of progress log lines, disabled when <= 0
	UnbiasedJitter   bool          // Jitter samples over the whole pixel
}

// DefaultRenderConfig returns the default render configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers:       runtime.NumCPU(),
		Seed:             1,
		ProgressInterval: 2 * time.Second,
	}
}

// Renderer renders a scene through a camera using a pool of workers
type Renderer struct {
	camera   *Camera
	config   RenderConfig
	logger   core.Logger
	progress atomic.Pointer[Progress]
}

// NewRenderer creates a renderer. A nil logger discards all output.
func NewRenderer(cameraConfig CameraConfig, config RenderConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = nopLogger{}
	}

	camera := NewCamera(cameraConfig)
	camera.unbiasedJitter = config.UnbiasedJitter

	return &Renderer{
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Camera returns the renderer's camera
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Progress returns the counter of the current or last render, nil before the first.
// It may be polled from any goroutine.
func (r *Renderer) Progress() *Progress {
	return r.progress.Load()
}

// Render renders the whole image and returns it once every pixel is done
func (r *Renderer) Render(world geometry.Hittable) (*Image, RenderStats, error) {
	img := NewImage(r.camera.ImageWidth(), r.camera.ImageHeight())
	stats, err := r.render(world, func(index int, c RGB) {
		img.Pixels[index] = c
	})
	if err != nil {
		return nil, RenderStats{}, err
	}
	return img, stats, nil
}

// RenderStream renders the image and sends every pixel to events exactly once, in
// no particular order. events is closed when rendering finishes or fails.
func (r *Renderer) RenderStream(world geometry.Hittable, events chan<- PixelEvent) (RenderStats, error) {
	defer close(events)
	return r.render(world, func(index int, c RGB) {
		events <- PixelEvent{Index: index, Color: c}
	})
}

func (r *Renderer) render(world geometry.Hittable, emit func(index int, c RGB)) (RenderStats, error) {
	if world == nil {
		return RenderStats{}, ErrNoWorld
	}
	if err := r.camera.config.Validate(); err != nil {
		return RenderStats{}, err
	}

	width, height := r.camera.ImageWidth(), r.camera.ImageHeight()
	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > height {
		numWorkers = height
	}

	progress := NewProgress(width * height)
	r.progress.Store(progress)

	r.logger.Noticef("rendering %dx%d image at %d samples per pixel (max depth %d) using %d workers",
		width, height, r.camera.config.SamplesPerPixel, r.camera.config.MaxDepth, numWorkers)

	stop := make(chan struct{})
	var observer sync.WaitGroup
	if r.config.ProgressInterval > 0 {
		observer.Add(1)
		go func() {
			defer observer.Done()
			progress.observe(r.logger, r.config.ProgressInterval, stop)
		}()
	}

	start := time.Now()
	pool := newWorkerPool(r.camera, world, numWorkers, r.config.Seed, progress)
	perWorker, err := pool.run(emit)

	// No progress line may follow the end of the render
	close(stop)
	observer.Wait()
	if err != nil {
		return RenderStats{}, err
	}

	stats := RenderStats{Width: width, Height: height, PerWorker: perWorker}
	stats.finalize(r.camera.config.SamplesPerPixel, time.Since(start))

	r.logger.Noticef("rendered %d pixels in %v", stats.Pixels, stats.Elapsed.Round(time.Millisecond))
	r.logger.Debugf("render statistics\n%s", FormatStats(stats))

	return stats, nil
}

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{})  {}
func (nopLogger) Infof(format string, args ...interface{})   {}
func (nopLogger) Noticef(format string, args ...interface{}) {}
