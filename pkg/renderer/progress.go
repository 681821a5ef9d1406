package renderer

import (
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Progress counts completed pixels. It is safe for concurrent use.
type Progress struct {
	done  atomic.Int64
	total int64
}

// NewProgress creates a counter for total pixels
func NewProgress(total int) *Progress {
	return &Progress{total: int64(total)}
}

// Add records n completed pixels
func (p *Progress) Add(n int) {
	p.done.Add(int64(n))
}

// Done returns the number of completed pixels
func (p *Progress) Done() int {
	return int(p.done.Load())
}

// Total returns the number of pixels in the render
func (p *Progress) Total() int {
	return int(p.total)
}

// Fraction returns completion in [0, 1]
func (p *Progress) Fraction() float64 {
	if p.total == 0 {
		return 1
	}
	return float64(p.done.Load()) / float64(p.total)
}

// observe logs completion every interval until stop is closed
func (p *Progress) observe(logger core.Logger, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			logger.Infof("progress: %5.1f%% (%d/%d pixels)", 100*p.Fraction(), p.Done(), p.Total())
		}
	}
}
