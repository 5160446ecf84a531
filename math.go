package fx

import "math"

// clamp01 restricts a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// fract returns the fractional part of x, always in [0, 1).
// Matches GLSL fract: fract(-0.25) == 0.75.
func fract(x float64) float64 {
	return x - math.Floor(x)
}

// smoothstep performs a Hermite interpolation between 0 and 1 as x moves
// across [edge0, edge1]. The result is clamped outside that interval.
func smoothstep(edge0, edge1, x float64) float64 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// fade is the cubic interpolant 3t^2 - 2t^3 used by value noise.
// Its derivative vanishes at 0 and 1, which is what makes the noise
// C1-continuous across lattice boundaries.
func fade(t float64) float64 {
	return t * t * (3 - 2*t)
}
