package fx

import (
	"bytes"
	"testing"
)

func TestRendererWorkerCountInvariance(t *testing.T) {
	shader := func(x, y int) (RGBA, bool) {
		return RGBA{
			R: float64(x%7) / 7,
			G: float64(y%5) / 5,
			B: float64((x+y)%3) / 3,
			A: 1,
		}, true
	}

	serial := NewPixmap(37, 23)
	NewRenderer(WithWorkers(1)).Render(serial, shader)

	parallel := NewPixmap(37, 23)
	NewRenderer(WithWorkers(8)).Render(parallel, shader)

	if !bytes.Equal(serial.Data(), parallel.Data()) {
		t.Error("parallel render differs from serial render")
	}
}

func TestRendererMoreWorkersThanRows(t *testing.T) {
	p := NewPixmap(4, 2)
	NewRenderer(WithWorkers(16)).Render(p, func(x, y int) (RGBA, bool) {
		return White, true
	})

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if got := p.GetPixel(x, y); !got.Approx(White, 1.0/255) {
				t.Fatalf("pixel (%d,%d) = %v, want white", x, y, got)
			}
		}
	}
}

func TestRendererDiscardKeepsBackdrop(t *testing.T) {
	p := NewPixmap(8, 8)
	p.Clear(Blue)

	NewRenderer(WithWorkers(2)).Render(p, func(x, y int) (RGBA, bool) {
		if x == y {
			return Red, true
		}
		return Transparent, false
	})

	if got := p.GetPixel(3, 3); !got.Approx(Red, 1.0/255) {
		t.Errorf("written pixel = %v, want red", got)
	}
	if got := p.GetPixel(5, 2); !got.Approx(Blue, 1.0/255) {
		t.Errorf("discarded pixel = %v, want untouched blue", got)
	}
}

func TestRendererEmptyDst(t *testing.T) {
	// Must not panic or spin up workers for nothing.
	NewRenderer().Render(NewPixmap(0, 0), func(x, y int) (RGBA, bool) {
		t.Fatal("shader called for empty pixmap")
		return Transparent, false
	})
}

func TestRendererScratchFillsFrame(t *testing.T) {
	r := NewRenderer(WithWorkers(4))
	p := NewPixmap(32, 32)

	top := RGB(0.7, 0.7, 0.7)
	r.Scratch(p, NewScratchOff(), ScratchParams{
		TopColor:    top,
		RevealColor: Green,
		Progress:    0,
	})

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if got := p.GetPixel(x, y); !got.Approx(top, 1.0/255) {
				t.Fatalf("pixel (%d,%d) = %v, want top color at progress 0", x, y, got)
			}
		}
	}
}

func TestRendererConfettiCompositesOverBackdrop(t *testing.T) {
	r := NewRenderer()
	p := NewPixmap(64, 36)
	p.Clear(Black)

	r.Confetti(p, NewConfettiRain(), ConfettiParams{
		Time:       1,
		Resolution: V2(64, 36),
	})

	// Most pixels keep the backdrop; confetti pixels differ from it.
	changed := 0
	for y := 0; y < 36; y++ {
		for x := 0; x < 64; x++ {
			if !p.GetPixel(x, y).Approx(Black, 1.0/255) {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Error("confetti pass changed no pixels at t=1")
	}
	if changed > 64*36/2 {
		t.Errorf("confetti pass changed %d pixels, want sparse coverage", changed)
	}
}

func TestRendererCRTWritesEveryPixel(t *testing.T) {
	r := NewRenderer(WithWorkers(3))
	frame := NewPixmap(32, 32)
	frame.Clear(RGB(0.4, 0.5, 0.6))

	out := NewPixmap(32, 32)
	params := DefaultCRTParams()
	r.CRT(out, frame, NewCRTFilter(), params)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if got := out.GetPixel(x, y); got.A != 1 {
				t.Fatalf("pixel (%d,%d) alpha = %v, want opaque", x, y, got.A)
			}
		}
	}
}

func BenchmarkRendererScratchFrame(b *testing.B) {
	r := NewRenderer()
	p := NewPixmap(320, 180)
	s := NewScratchOff()
	params := ScratchParams{TopColor: Red, RevealColor: Green, Progress: 0.5}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Scratch(p, s, params)
	}
}
