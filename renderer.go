package fx

import (
	"sync"
	"time"
)

// Shader computes the color of one pixel. Returning false discards the
// write: the destination keeps whatever it already held at that pixel.
type Shader func(x, y int) (RGBA, bool)

// Renderer evaluates a Shader over every pixel of a frame.
//
// Evaluation for one pixel never depends on another pixel, so the frame
// is split into contiguous row bands rendered by a pool of goroutines.
// The Renderer holds no per-frame state; a single Renderer can serve any
// number of surfaces and is safe for concurrent use.
type Renderer struct {
	workers int
}

// NewRenderer creates a renderer. By default it uses one worker per CPU;
// override with WithWorkers.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	Logger().Info("fx: renderer created", "workers", o.workers)
	return &Renderer{workers: o.workers}
}

// Render evaluates shader for every pixel of dst.
func (r *Renderer) Render(dst *Pixmap, shader Shader) {
	height := dst.Height()
	width := dst.Width()
	if width <= 0 || height <= 0 {
		return
	}

	workers := r.workers
	if workers < 1 {
		workers = 1
	}
	if workers > height {
		workers = height
	}

	start := time.Now()
	band := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		y0 := w * band
		y1 := y0 + band
		if y1 > height {
			y1 = height
		}
		if y0 >= y1 {
			break
		}

		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 0; x < width; x++ {
					if c, ok := shader(x, y); ok {
						dst.SetPixel(x, y, c)
					}
				}
			}
		}(y0, y1)
	}
	wg.Wait()

	Logger().Debug("fx: frame rendered",
		"width", width, "height", height,
		"workers", workers, "elapsed", time.Since(start))
}

// Scratch renders the scratch-off reveal over the whole of dst.
// Every pixel is written; the effect is opaque.
func (r *Renderer) Scratch(dst *Pixmap, effect *ScratchOff, params ScratchParams) {
	w := float64(dst.Width())
	h := float64(dst.Height())
	r.Render(dst, func(x, y int) (RGBA, bool) {
		uv := V2((float64(x)+0.5)/w, (float64(y)+0.5)/h)
		return effect.Shade(uv, params), true
	})
}

// Confetti composites the confetti rain onto dst. Pixels the effect
// discards keep their existing backdrop color.
func (r *Renderer) Confetti(dst *Pixmap, effect *ConfettiRain, params ConfettiParams) {
	r.Render(dst, func(x, y int) (RGBA, bool) {
		pos := V2(float64(x)+0.5, float64(y)+0.5)
		c, ok := effect.Shade(pos, params)
		if !ok {
			return Transparent, false
		}
		// The effect's color carries coverage alpha; blend it over the
		// backdrop here so dst stays a finished opaque frame.
		under := dst.GetPixel(x, y)
		out := under.Lerp(RGBA{R: c.R, G: c.G, B: c.B, A: 1}, c.A)
		return out, true
	})
}

// CRT runs the CRT post-process, reading frame and writing dst. The two
// surfaces must not alias; frame is the finished output of all prior
// rendering and is only read.
func (r *Renderer) CRT(dst, frame *Pixmap, effect *CRTFilter, params CRTParams) {
	w := float64(dst.Width())
	h := float64(dst.Height())
	r.Render(dst, func(x, y int) (RGBA, bool) {
		uv := V2((float64(x)+0.5)/w, (float64(y)+0.5)/h)
		return effect.Shade(uv, frame, params), true
	})
}
