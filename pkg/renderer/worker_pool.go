package renderer

import (
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// rowTask is one image row handed to a worker
type rowTask struct {
	Row int
}

// WorkerPool renders image rows in parallel. The scene and camera are shared
// read-only; each worker owns its random generator and writes disjoint pixels.
type WorkerPool struct {
	camera     *Camera
	world      geometry.Hittable
	numWorkers int
	seed       int64
	progress   *Progress
}

// worker handles rows pulled from the shared task queue
type worker struct {
	ID     int
	random *rand.Rand
	stats  WorkerStats
}

func newWorkerPool(camera *Camera, world geometry.Hittable, numWorkers int, seed int64, progress *Progress) *WorkerPool {
	return &WorkerPool{
		camera:     camera,
		world:      world,
		numWorkers: numWorkers,
		seed:       seed,
		progress:   progress,
	}
}

// run renders every row and calls emit once per pixel from the worker goroutines.
// emit must be safe for concurrent use with distinct indices.
func (wp *WorkerPool) run(emit func(index int, c RGB)) ([]WorkerStats, error) {
	height := wp.camera.ImageHeight()

	// Queue every row up front; workers drain until the channel is empty
	tasks := make(chan rowTask, height)
	for j := 0; j < height; j++ {
		tasks <- rowTask{Row: j}
	}
	close(tasks)

	workers := make([]*worker, wp.numWorkers)
	var eg errgroup.Group
	for id := 0; id < wp.numWorkers; id++ {
		w := &worker{
			ID:     id,
			random: rand.New(rand.NewSource(wp.seed + int64(id))),
			stats:  WorkerStats{ID: id},
		}
		workers[id] = w
		eg.Go(func() error {
			return w.run(wp, tasks, emit)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	stats := make([]WorkerStats, len(workers))
	for i, w := range workers {
		stats[i] = w.stats
	}
	return stats, nil
}

// run is the main worker loop
func (w *worker) run(wp *WorkerPool, tasks <-chan rowTask, emit func(index int, c RGB)) error {
	start := time.Now()
	width := wp.camera.ImageWidth()

	for task := range tasks {
		for i := 0; i < width; i++ {
			emit(task.Row*width+i, wp.camera.RenderPixel(i, task.Row, wp.world, w.random))
		}
		wp.progress.Add(width)
		w.stats.Rows++
		w.stats.Pixels += width
	}

	w.stats.Elapsed = time.Since(start)
	return nil
}
