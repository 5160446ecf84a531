// Command fxgen renders one frame of the fx effects offline and writes
// it to a PNG. Frames render at a supersampling factor and are scaled
// down with Catmull-Rom resampling, which is useful for documentation
// shots and for eyeballing parameter changes without a window.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/fx"
)

func main() {
	var (
		width    = flag.Int("width", 640, "output width")
		height   = flag.Int("height", 360, "output height")
		ss       = flag.Int("ss", 2, "supersampling factor")
		output   = flag.String("output", "fx.png", "output file")
		progress = flag.Float64("progress", 0.5, "scratch progress [0,1]")
		t        = flag.Float64("time", 1.5, "effect time in seconds")
		crt      = flag.Bool("crt", true, "apply the CRT pass")
	)
	flag.Parse()

	if *width <= 0 || *height <= 0 || *ss <= 0 {
		log.Fatalf("invalid size %dx%d ss %d", *width, *height, *ss)
	}

	w := *width * *ss
	h := *height * *ss

	r := fx.NewRenderer()
	frame := fx.NewPixmap(w, h)

	r.Scratch(frame, fx.NewScratchOff(), fx.ScratchParams{
		TopColor:    fx.RGB(0.72, 0.72, 0.76),
		RevealColor: fx.RGB(0.95, 0.78, 0.12),
		Progress:    *progress,
	})
	r.Confetti(frame, fx.NewConfettiRain(), fx.ConfettiParams{
		Time:       *t,
		Resolution: fx.V2(float64(w), float64(h)),
	})

	final := frame
	if *crt {
		params := fx.DefaultCRTParams()
		params.Time = *t
		out := fx.NewPixmap(w, h)
		r.CRT(out, frame, fx.NewCRTFilter(), params)
		final = out
	}

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.CatmullRom.Scale(img, img.Bounds(), final.ToImage(), final.Bounds(), draw.Src, nil)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}

	log.Printf("Frame saved to %s (%dx%d, %dx supersampled)\n", *output, *width, *height, *ss)
}
