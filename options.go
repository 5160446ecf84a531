package fx

import "runtime"

// Option configures an effect or Renderer during creation.
//
// Example:
//
//	// Default wiring
//	confetti := fx.NewConfettiRain()
//
//	// Fixed stub randomness for a test (dependency injection)
//	confetti := fx.NewConfettiRain(fx.WithHasher(stubHasher{}))
type Option func(*options)

// options holds optional configuration shared by the constructors.
type options struct {
	hasher  Hasher
	palette *Palette
	workers int
}

// defaultOptions returns the default construction options.
func defaultOptions() options {
	return options{
		hasher:  SineHash{},
		palette: DefaultPalette(),
		workers: runtime.NumCPU(),
	}
}

// WithHasher sets the Hasher used for all pseudo-randomness.
// Use this to substitute a fixed stub sequence in tests; production code
// normally keeps the default SineHash.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

// WithPalette sets the color palette used by ConfettiRain.
func WithPalette(p *Palette) Option {
	return func(o *options) {
		if p != nil {
			o.palette = p
		}
	}
}

// WithWorkers sets the number of goroutines a Renderer uses per frame.
// Values below 1 keep the default (runtime.NumCPU).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}
