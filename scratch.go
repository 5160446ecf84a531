package fx

import "math"

// ScratchParams is the per-frame parameter block for ScratchOff.
// The host owns it and fills it once per frame; fx only reads it.
type ScratchParams struct {
	// TopColor covers the surface before any scratching.
	TopColor RGBA
	// RevealColor shows through where the surface has been scratched.
	RevealColor RGBA
	// Progress drives the reveal, expected in [0, 1]. 0 shows TopColor
	// everywhere; 1 shows RevealColor almost everywhere. There is no time
	// dependency; the host advances Progress in response to input.
	Progress float64
}

// scratchLayer is one fixed streak configuration. The rotation angle
// orients the streaks; the anisotropic scale compresses the rotated Y
// axis harder than X, which is what elongates the noise features into
// stroke-like marks. The offset decorrelates the layer from the others.
type scratchLayer struct {
	angle  float64
	scaleX float64
	scaleY float64
	offset Vec2
}

// Six layers with staggered thresholds produce overlapping strokes
// instead of a uniform fade.
var scratchLayers = [6]scratchLayer{
	{angle: 0.3, scaleX: 4.0, scaleY: 22.0, offset: V2(0.0, 0.0)},
	{angle: 1.1, scaleX: 5.0, scaleY: 18.0, offset: V2(17.3, 9.1)},
	{angle: 1.9, scaleX: 3.5, scaleY: 26.0, offset: V2(31.7, 23.9)},
	{angle: 2.6, scaleX: 6.0, scaleY: 16.0, offset: V2(47.9, 41.3)},
	{angle: 0.7, scaleX: 4.5, scaleY: 24.0, offset: V2(63.1, 57.7)},
	{angle: 2.2, scaleX: 5.5, scaleY: 20.0, offset: V2(79.6, 71.9)},
}

// scratchBand is the soft-edge width above each layer threshold.
const scratchBand = 0.1

// ScratchOff computes a scratch-off reveal mask.
//
// For each of six fixed streak layers the surface coordinate is rotated,
// anisotropically scaled, and fed to value noise; where the noise exceeds
// the layer threshold (1 - progress + layer*0.08) the layer contributes a
// soft-edged mark. Layers combine by maximum, not average, so individual
// strokes stay visible. An fbm term roughens the stroke boundary,
// sharpening as progress grows.
//
// A ScratchOff is immutable and safe for concurrent use.
type ScratchOff struct {
	noise *Noise
}

// NewScratchOff creates a scratch-off effect.
func NewScratchOff(opts ...Option) *ScratchOff {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ScratchOff{noise: NewNoise(o.hasher)}
}

// Shade evaluates the effect at uv (normalized, [0,1]^2) and returns the
// blend of TopColor and RevealColor for the given progress.
//
// At Progress 0 the result is exactly TopColor for every uv.
func (s *ScratchOff) Shade(uv Vec2, params ScratchParams) RGBA {
	scratch := 0.0
	for i, layer := range scratchLayers {
		q := uv.Rotate(layer.angle)
		q = V2(q.X*layer.scaleX, q.Y*layer.scaleY).Add(layer.offset)

		threshold := 1 - params.Progress + float64(i)*0.08
		v := s.noise.Value(q)
		if v > threshold {
			mark := smoothstep(threshold, threshold+scratchBand, v)
			if mark > scratch {
				scratch = mark
			}
		}
	}

	roughness := s.noise.FBM(uv.Mul(20)) * 0.15 * params.Progress
	reveal := clamp01(scratch + roughness)
	return params.TopColor.Lerp(params.RevealColor, reveal)
}

// ShapeProgress converts a linear gesture progress (for example dragged
// distance over required distance) into the display progress a host
// should upload.
//
// The curve is an ease-out: the square root ramps the first few percent
// up quickly, and the 0.5 scale keeps an almost-finished card visibly
// different from a finished one. Exactly 1 is returned only when the
// linear progress has fully completed.
func ShapeProgress(linear float64) float64 {
	linear = clamp01(linear)
	if linear >= 1 {
		return 1
	}
	return math.Sqrt(linear) * 0.5
}
