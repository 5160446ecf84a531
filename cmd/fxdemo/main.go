// Command fxdemo shows the fx effects interactively: a scratch card
// revealed by dragging the mouse, a confetti burst when the card
// completes, and a CRT filter over the whole picture.
//
// Configuration comes from the environment:
//
//	FXDEMO_WIDTH, FXDEMO_HEIGHT  frame size in pixels (default 640x360)
//	FXDEMO_ZOOM                  integer window scale (default 2)
//	FXDEMO_CRT                   enable the CRT pass (default true)
//	FXDEMO_DEBUG                 log frame diagnostics to stderr
package main

import (
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/fx"
)

// minSweepDistance is how far the pointer must travel, in pixels, to
// fully scratch the card.
const minSweepDistance = 1200.0

type config struct {
	Width  int  `env:"FXDEMO_WIDTH" envDefault:"640"`
	Height int  `env:"FXDEMO_HEIGHT" envDefault:"360"`
	Zoom   int  `env:"FXDEMO_ZOOM" envDefault:"2"`
	CRT    bool `env:"FXDEMO_CRT" envDefault:"true"`
	Debug  bool `env:"FXDEMO_DEBUG"`
}

type game struct {
	cfg config

	renderer *fx.Renderer
	scratch  *fx.ScratchOff
	confetti *fx.ConfettiRain
	crt      *fx.CRTFilter

	frame  *fx.Pixmap // composed scene
	out    *fx.Pixmap // after the CRT pass
	screen *ebiten.Image

	start        time.Time
	dragged      float64 // accumulated pointer travel while pressed
	lastX, lastY int
	wasPressed   bool
	revealedAt   float64 // seconds, <0 until the card completes
	crtEnabled   bool
	crtWasDown   bool
}

func newGame(cfg config) *game {
	return &game{
		cfg:        cfg,
		renderer:   fx.NewRenderer(),
		scratch:    fx.NewScratchOff(),
		confetti:   fx.NewConfettiRain(),
		crt:        fx.NewCRTFilter(),
		frame:      fx.NewPixmap(cfg.Width, cfg.Height),
		out:        fx.NewPixmap(cfg.Width, cfg.Height),
		screen:     ebiten.NewImage(cfg.Width, cfg.Height),
		start:      time.Now(),
		revealedAt: -1,
		crtEnabled: cfg.CRT,
	}
}

func (g *game) now() float64 {
	return time.Since(g.start).Seconds()
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && g.wasPressed {
		g.dragged += math.Hypot(float64(x-g.lastX), float64(y-g.lastY))
	}
	g.lastX, g.lastY = x, y
	g.wasPressed = pressed

	if g.revealedAt < 0 && g.dragged >= minSweepDistance {
		g.revealedAt = g.now()
	}

	// Toggle the CRT pass on C, reset the card on R.
	crtDown := ebiten.IsKeyPressed(ebiten.KeyC)
	if crtDown && !g.crtWasDown {
		g.crtEnabled = !g.crtEnabled
	}
	g.crtWasDown = crtDown
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		g.dragged = 0
		g.revealedAt = -1
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	progress := fx.ShapeProgress(g.dragged / minSweepDistance)
	g.renderer.Scratch(g.frame, g.scratch, fx.ScratchParams{
		TopColor:    fx.RGB(0.72, 0.72, 0.76),
		RevealColor: fx.RGB(0.95, 0.78, 0.12),
		Progress:    progress,
	})

	if g.revealedAt >= 0 {
		g.renderer.Confetti(g.frame, g.confetti, fx.ConfettiParams{
			Time:       g.now() - g.revealedAt,
			Resolution: fx.V2(float64(g.cfg.Width), float64(g.cfg.Height)),
		})
	}

	final := g.frame
	if g.crtEnabled {
		params := fx.DefaultCRTParams()
		params.Time = g.now()
		g.renderer.CRT(g.out, g.frame, g.crt, params)
		final = g.out
	}

	g.screen.WritePixels(final.Data())
	op := &ebiten.DrawImageOptions{}
	screen.DrawImage(g.screen, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal(err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Zoom <= 0 {
		log.Fatalf("invalid size %dx%d zoom %d", cfg.Width, cfg.Height, cfg.Zoom)
	}

	if cfg.Debug {
		fx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ebiten.SetWindowSize(cfg.Width*cfg.Zoom, cfg.Height*cfg.Zoom)
	ebiten.SetWindowTitle("fx demo - drag to scratch, C toggles CRT, R resets")
	if err := ebiten.RunGame(newGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
