package main

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/scene"
)

// ListScenes prints the scene catalogue.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	fmt.Fprint(ctx.App.Writer, formatCatalogue(scene.Catalogue()))
	return nil
}

func formatCatalogue(entries []scene.Entry) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Texture", "Description"})
	for _, entry := range entries {
		texture := ""
		if entry.NeedsTexture {
			texture = scene.EarthTextureFile
		}
		table.Append([]string{entry.Name, texture, entry.Description})
	}
	table.Render()
	return buf.String()
}
