package fx

// Noise provides smooth pseudo-random fields built on a Hasher.
//
// A Noise value is immutable and safe for concurrent use.
type Noise struct {
	hash Hasher
}

// NewNoise creates a Noise source over the given Hasher.
// A nil Hasher selects the production SineHash.
func NewNoise(h Hasher) *Noise {
	if h == nil {
		h = SineHash{}
	}
	return &Noise{hash: h}
}

// Value returns 2D value noise at p, approximately in [0, 1].
//
// The four integer lattice corners around p are hashed and blended with
// bilinear interpolation under a cubic (3t^2 - 2t^3) interpolant, so the
// field is C1-continuous across lattice boundaries and shows no grid
// seams.
func (n *Noise) Value(p Vec2) float64 {
	i := p.Floor()
	f := p.Fract()

	a := n.hash.Hash1(i)
	b := n.hash.Hash1(i.Add(V2(1, 0)))
	c := n.hash.Hash1(i.Add(V2(0, 1)))
	d := n.hash.Hash1(i.Add(V2(1, 1)))

	ux := fade(f.X)
	uy := fade(f.Y)

	return lerp(lerp(a, b, ux), lerp(c, d, ux), uy)
}

// fbmOctaves is fixed; more octaves add detail below one pixel at the
// scales the effects sample at.
const fbmOctaves = 5

// FBM returns fractal Brownian motion at p: five octaves of Value noise,
// frequency doubling and amplitude halving per octave starting from
// amplitude 0.5 at frequency 1. The result lies in [0, 0.96875].
func (n *Noise) FBM(p Vec2) float64 {
	sum := 0.0
	amp := 0.5
	freq := 1.0
	for i := 0; i < fbmOctaves; i++ {
		sum += amp * n.Value(p.Mul(freq))
		freq *= 2
		amp *= 0.5
	}
	return sum
}
