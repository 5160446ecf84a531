// Package fx provides procedural per-pixel visual effects for Go.
//
// # Overview
//
// fx is a pure Go library of deterministic, stateless effect shaders:
// a scratch-off reveal mask, a screen-space confetti rain, and a CRT-style
// post-process filter. Each effect is a function from a coordinate, an
// elapsed time, and a small parameter block to one RGBA color. No
// geometry, textures, or per-particle state is involved; everything an
// effect shows is recomputed from its inputs on every invocation.
//
// # Quick Start
//
//	import "github.com/gogpu/fx"
//
//	r := fx.NewRenderer()
//	frame := fx.NewPixmap(640, 360)
//
//	// Scratch-off card, half revealed
//	scratch := fx.NewScratchOff()
//	r.Scratch(frame, scratch, fx.ScratchParams{
//	    TopColor:    fx.RGB(0.7, 0.7, 0.75),
//	    RevealColor: fx.RGB(0.95, 0.8, 0.1),
//	    Progress:    0.5,
//	})
//
//	// Confetti composited on top
//	confetti := fx.NewConfettiRain()
//	r.Confetti(frame, confetti, fx.ConfettiParams{
//	    Time:       1.5,
//	    Resolution: fx.V2(640, 360),
//	})
//
//	// CRT pass over the finished frame
//	out := fx.NewPixmap(640, 360)
//	r.CRT(out, frame, fx.NewCRTFilter(), fx.DefaultCRTParams())
//	out.SavePNG("frame.png")
//
// # Determinism
//
// All pseudo-randomness flows through the Hasher capability, whose
// production implementation (SineHash) is a fixed fractional-sine mixing
// function. The same coordinates and time always reproduce the same
// output, across runs and across platforms. Tests can inject a stub
// Hasher via WithHasher.
//
// # Concurrency
//
// Per-pixel evaluation has no cross-pixel dependencies. Effect values are
// immutable after construction and safe for concurrent use; Renderer
// evaluates frames in parallel across row bands. Parameter blocks are
// passed by value per frame, so a host that fills them once per frame
// gets snapshot semantics for free.
package fx
