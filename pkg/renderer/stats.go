package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WorkerStats describes the share of a render done by one worker
type WorkerStats struct {
	ID      int
	Rows    int
	Pixels  int
	Elapsed time.Duration
}

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Width         int
	Height        int
	Pixels        int           // Total number of pixels rendered
	Samples       int           // Total number of camera samples taken
	Workers       int           // Number of workers used
	Elapsed       time.Duration // Wall time of the render
	RaysPerSecond float64       // Camera samples per second of wall time
	PerWorker     []WorkerStats
}

// finalize derives the aggregate fields from the per-worker rows
func (s *RenderStats) finalize(samplesPerPixel int, elapsed time.Duration) {
	s.Pixels = 0
	for _, w := range s.PerWorker {
		s.Pixels += w.Pixels
	}
	s.Samples = s.Pixels * samplesPerPixel
	s.Workers = len(s.PerWorker)
	s.Elapsed = elapsed
	if seconds := elapsed.Seconds(); seconds > 0 {
		s.RaysPerSecond = float64(s.Samples) / seconds
	}
}

// FormatStats builds a tabular representation of render statistics
func FormatStats(stats RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Pixels", "% of frame", "Render time"})
	for _, w := range stats.PerWorker {
		percent := 0.0
		if stats.Pixels > 0 {
			percent = 100 * float64(w.Pixels) / float64(stats.Pixels)
		}
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d", w.Rows),
			fmt.Sprintf("%d", w.Pixels),
			fmt.Sprintf("%02.1f %%", percent),
			w.Elapsed.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.Height),
		fmt.Sprintf("%d", stats.Pixels),
		fmt.Sprintf("%.0f samples/s", stats.RaysPerSecond),
		stats.Elapsed.Round(time.Millisecond).String(),
	})

	table.Render()
	return buf.String()
}
