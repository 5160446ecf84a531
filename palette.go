package fx

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette maps a uniform random value in [0, 1) to one of a fixed set of
// colors via threshold buckets. ConfettiRain keys the bucket off the
// first hash component of a particle, so the bucket weights set the mix
// of confetti colors on screen.
//
// A Palette is immutable after construction and safe for concurrent use.
type Palette struct {
	colors []RGBA
	// bounds holds the cumulative upper bound of each bucket; the last
	// entry is always 1.
	bounds []float64
}

// NewPalette builds a palette from parallel color and weight slices.
// Weights must be positive and sum to 1 within a small tolerance; they
// are renormalized so the final bucket always closes at exactly 1.
func NewPalette(colors []RGBA, weights []float64) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("fx: palette needs at least one color")
	}
	if len(colors) != len(weights) {
		return nil, fmt.Errorf("fx: palette has %d colors but %d weights", len(colors), len(weights))
	}

	total := 0.0
	for i, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("fx: palette weight %d is %v, must be positive", i, w)
		}
		total += w
	}
	if total < 0.999 || total > 1.001 {
		return nil, fmt.Errorf("fx: palette weights sum to %v, want 1", total)
	}

	bounds := make([]float64, len(weights))
	acc := 0.0
	for i, w := range weights {
		acc += w / total
		bounds[i] = acc
	}
	bounds[len(bounds)-1] = 1

	return &Palette{
		colors: append([]RGBA(nil), colors...),
		bounds: bounds,
	}, nil
}

// PaletteFromHex builds a palette from hex color strings ("#rrggbb").
func PaletteFromHex(hex []string, weights []float64) (*Palette, error) {
	colors := make([]RGBA, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("fx: palette color %d: %w", i, err)
		}
		colors[i] = RGBA{R: c.R, G: c.G, B: c.B, A: 1}
	}
	return NewPalette(colors, weights)
}

// Len returns the number of buckets in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Pick returns the color of the bucket containing t. Values outside
// [0, 1) clamp to the first or last bucket.
func (p *Palette) Pick(t float64) RGBA {
	for i, bound := range p.bounds {
		if t < bound {
			return p.colors[i]
		}
	}
	return p.colors[len(p.colors)-1]
}

// defaultPaletteHex is the stock confetti mix: six saturated party colors
// at 15% each and pink filling the last 10%.
var defaultPaletteHex = []string{
	"#e53935", // red
	"#fb8c00", // orange
	"#fdd835", // yellow
	"#43a047", // green
	"#1e88e5", // blue
	"#8e24aa", // purple
	"#d81b60", // pink
}

var defaultPaletteWeights = []float64{0.15, 0.15, 0.15, 0.15, 0.15, 0.15, 0.10}

// DefaultPalette returns the stock 7-color confetti palette.
func DefaultPalette() *Palette {
	p, err := PaletteFromHex(defaultPaletteHex, defaultPaletteWeights)
	if err != nil {
		// The default inputs are compile-time constants; this cannot
		// happen unless they are edited inconsistently.
		panic(err)
	}
	return p
}
