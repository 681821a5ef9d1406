package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

const (
	formatPNG = "png"
	formatPPM = "ppm"
)

// ErrUnknownFormat is returned for output formats other than png and ppm
var ErrUnknownFormat = errors.New("unknown image format")

// renderOptions are the render command flags
type renderOptions struct {
	Width          int
	Samples        int
	Depth          int
	Workers        int
	Seed           int64
	Out            string
	Format         string
	TextureDir     string
	UnbiasedJitter bool
}

func renderOptionsFromContext(ctx *cli.Context) renderOptions {
	return renderOptions{
		Width:          ctx.Int("width"),
		Samples:        ctx.Int("spp"),
		Depth:          ctx.Int("depth"),
		Workers:        ctx.Int("workers"),
		Seed:           ctx.Int64("seed"),
		Out:            ctx.String("out"),
		Format:         ctx.String("format"),
		TextureDir:     ctx.String("texture-dir"),
		UnbiasedJitter: ctx.Bool("unbiased-jitter"),
	}
}

// cameraOverrides turns the non-zero size flags into camera options
func (o renderOptions) cameraOverrides() []renderer.CameraOption {
	var opts []renderer.CameraOption
	if o.Width > 0 {
		opts = append(opts, renderer.WithImageWidth(o.Width))
	}
	if o.Samples > 0 {
		opts = append(opts, renderer.WithSamplesPerPixel(o.Samples))
	}
	if o.Depth > 0 {
		opts = append(opts, renderer.WithMaxDepth(o.Depth))
	}
	return opts
}

func (o renderOptions) renderConfig() renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	if o.Workers > 0 {
		config.NumWorkers = o.Workers
	}
	config.Seed = o.Seed
	config.UnbiasedJitter = o.UnbiasedJitter
	return config
}

// outputPath returns the output file, defaulting to a timestamped file under output/<scene>
func (o renderOptions) outputPath(sceneName string, now time.Time) string {
	if o.Out != "" {
		return o.Out
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", timestamp, o.Format))
}

// RenderScene renders the scene named by the first argument.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene name argument")
	}

	return renderScene(ctx.Args().First(), renderOptionsFromContext(ctx), time.Now())
}

func renderScene(sceneName string, opts renderOptions, now time.Time) error {
	if opts.Format != formatPNG && opts.Format != formatPPM {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	world, camera, err := buildScene(sceneName, opts)
	if err != nil {
		return err
	}
	if err := camera.Validate(); err != nil {
		return err
	}

	if bvh, ok := world.(*geometry.BVHNode); ok {
		stats := bvh.Stats()
		logger.Infof("BVH: %d nodes, %d leaves, max depth %d, avg depth %.1f",
			stats.InternalNodes, stats.Leaves, stats.MaxDepth, stats.AvgDepth)
	}

	r := renderer.NewRenderer(camera, opts.renderConfig(), log.New("renderer"))
	img, stats, err := r.Render(world)
	if err != nil {
		return err
	}
	logger.Noticef("render statistics\n%s", renderer.FormatStats(stats))

	filename := opts.outputPath(sceneName, now)
	if err := writeImage(img, filename, opts.Format); err != nil {
		return err
	}
	logger.Noticef("wrote %s", filename)
	return nil
}

// buildScene looks up and assembles a scene, applying the camera overrides
func buildScene(sceneName string, opts renderOptions) (geometry.Hittable, renderer.CameraConfig, error) {
	entry, err := scene.Lookup(sceneName)
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}

	logger.Infof("building scene %q", entry.Name)
	world, camera, err := entry.Build(scene.Options{
		TextureDir: opts.TextureDir,
		Random:     rand.New(rand.NewSource(opts.Seed)),
	})
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}

	camera.Apply(opts.cameraOverrides()...)
	logger.Infof("camera: %dx%d, %d spp, depth %d",
		camera.ImageWidth, camera.ImageHeight(), camera.SamplesPerPixel, camera.MaxDepth)
	return world, camera, nil
}

// writeImage encodes img to filename, creating parent directories as needed
func writeImage(img *renderer.Image, filename, format string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch format {
	case formatPNG:
		err = img.WritePNG(file)
	case formatPPM:
		err = img.WritePPM(file)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return file.Close()
}
