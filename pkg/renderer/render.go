package renderer

import (
	"runtime"
	"sync"

	"github.com/thommay/ray-trace-challenge/pkg/core"
	"github.com/thommay/ray-trace-challenge/pkg/world"
)

// PixelSink receives rendered pixels. A sink used with RenderParallel
// must tolerate concurrent writes to distinct pixels; the canvas
// qualifies because rows never overlap.
type PixelSink interface {
	WritePixel(x, y int, c core.Color)
}

// Render traces every pixel of the camera's canvas into the sink,
// sequentially
func Render(c *Camera, w *world.World, depth int, sink PixelSink) {
	for y := 0; y < c.vsize; y++ {
		renderRow(c, w, depth, y, sink)
	}
}

// RenderParallel traces the canvas across a pool of workers, one row
// per task. numWorkers <= 0 uses one worker per CPU.
func RenderParallel(c *Camera, w *world.World, depth int, numWorkers int, sink PixelSink) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := make(chan int, c.vsize)
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(c, w, depth, y, sink)
			}
		}()
	}

	for y := 0; y < c.vsize; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}

func renderRow(c *Camera, w *world.World, depth int, y int, sink PixelSink) {
	for x := 0; x < c.hsize; x++ {
		ray := c.RayForPixel(x, y)
		sink.WritePixel(x, y, w.ColorAt(ray, depth))
	}
}
