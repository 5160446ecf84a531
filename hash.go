package fx

import "math"

// Hasher produces deterministic pseudo-random values from a 2D coordinate.
//
// Implementations must be stable: the same input always yields the same
// output, across calls, runs, and platforms (no use of math/rand). All
// results lie in [0, 1). Every effect in fx draws its randomness through
// this capability, so substituting a fixed stub makes effect output fully
// predictable in tests.
type Hasher interface {
	// Hash1 returns one pseudo-random scalar in [0, 1) for p.
	Hash1(p Vec2) float64
	// Hash3 returns three decorrelated pseudo-random scalars in [0, 1)
	// for p. The components must look independent of each other and of
	// Hash1 for nearby inputs.
	Hash3(p Vec2) Vec3
}

// SineHash is the production Hasher: a fractional-sine mixing function.
// The input is projected onto a fixed irrational-looking direction, run
// through sine, scaled by a large constant, and reduced to its fractional
// part. Hash3 uses three different projections through the same mixing.
//
// This is not cryptographic randomness; it is the classic shader hash,
// chosen for speed and for having no visible repetition over coordinate
// magnitudes up to the low hundreds.
type SineHash struct{}

var (
	hashProjX = V2(127.1, 311.7)
	hashProjY = V2(269.5, 183.3)
	hashProjZ = V2(419.2, 371.9)
)

const hashScale = 43758.5453123

// Hash1 implements Hasher.
func (SineHash) Hash1(p Vec2) float64 {
	return fract(math.Sin(p.Dot(hashProjX)) * hashScale)
}

// Hash3 implements Hasher.
func (SineHash) Hash3(p Vec2) Vec3 {
	return V3(
		fract(math.Sin(p.Dot(hashProjX))*hashScale),
		fract(math.Sin(p.Dot(hashProjY))*hashScale),
		fract(math.Sin(p.Dot(hashProjZ))*hashScale),
	)
}
