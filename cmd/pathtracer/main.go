package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene from the catalogue",
			Description: `
Assemble the named scene, render it with a pool of workers and write the
result as a PNG or plain PPM image.

Flags left unset keep the scene's own camera settings.`,
			ArgsUsage: "scene",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounces",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (default: number of CPUs)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed for scene layout and sampling",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output image file (default: output/<scene>/render_<timestamp>.<format>)",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: formatPNG,
					Usage: "output image format: png or ppm",
				},
				cli.StringFlag{
					Name:  "texture-dir",
					Value: ".",
					Usage: "directory containing image textures",
				},
				cli.BoolFlag{
					Name:  "unbiased-jitter",
					Usage: "jitter samples across the whole pixel",
				},
			},
			Action: RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
