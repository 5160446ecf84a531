package fx

import "math"

// CRTParams is the per-frame parameter block for CRTFilter.
// The host owns it and fills it once per frame; fx only reads it.
//
// All intensities are expected in [0, 1] with 0 disabling the stage;
// the host should clamp before upload, since extreme values produce
// visually undefined (but never crashing) results.
type CRTParams struct {
	// ScanlineIntensity darkens scanline troughs; 0 leaves color unchanged.
	ScanlineIntensity float64
	// ScanlineCount sets the scanline frequency across the frame height.
	ScanlineCount float64
	// Curvature bows the frame like a tube face; 0 is flat.
	Curvature float64
	// VignetteIntensity darkens toward the frame edges.
	VignetteIntensity float64
	// ChromaticAberration separates the color channels radially.
	ChromaticAberration float64
	// Brightness multiplies the final color; 1 is unity.
	Brightness float64
	// NoiseIntensity scales the animated static.
	NoiseIntensity float64
	// Time is seconds since the effect started; it animates the scanline
	// phase and the static.
	Time float64
}

// DefaultCRTParams returns the tuned stock settings: subtle scanlines,
// a gentle curve, and barely-visible static.
func DefaultCRTParams() CRTParams {
	return CRTParams{
		ScanlineIntensity:   0.3,
		ScanlineCount:       300,
		Curvature:           0.05,
		VignetteIntensity:   0.5,
		ChromaticAberration: 0.02,
		Brightness:          1,
		NoiseIntensity:      0.003,
	}
}

// CRTFilter transforms an already-rendered frame into a retro CRT look:
// barrel distortion, chromatic aberration, a phosphor subpixel mask,
// scanlines, vignette, animated static, brightness, and a crude glow.
//
// The filter only reads the input frame; the destination surface must
// not alias it.
//
// A CRTFilter is immutable and safe for concurrent use.
type CRTFilter struct {
	hash Hasher
}

// NewCRTFilter creates a CRT post-process filter.
func NewCRTFilter(opts ...Option) *CRTFilter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &CRTFilter{hash: o.hasher}
}

// Shade evaluates the filter at uv (normalized, [0,1]^2), sampling frame
// as the previously rendered picture. Pixels whose curvature remap falls
// off the tube face return opaque black.
func (f *CRTFilter) Shade(uv Vec2, frame *Pixmap, params CRTParams) RGBA {
	// Stage 1: barrel distortion. Center to [-1,1], push radially by the
	// squared distance, remap back. Outside the face is unlit glass.
	c := V2(uv.X*2-1, uv.Y*2-1)
	c = c.Mul(1 + c.Dot(c)*params.Curvature)
	uv = V2((c.X+1)/2, (c.Y+1)/2)
	if uv.X < 0 || uv.X > 1 || uv.Y < 0 || uv.Y > 1 {
		return Black
	}

	center := uv.Sub(V2(0.5, 0.5))
	distFromCenter := center.Length()

	// Stage 2: chromatic aberration, fringing grows toward the edges.
	offset := center.Mul(distFromCenter * params.ChromaticAberration)
	col := RGBA{
		R: frame.Sample(uv.Add(offset)).R,
		G: frame.Sample(uv).G,
		B: frame.Sample(uv.Sub(offset)).B,
		A: 1,
	}

	// Stage 3: phosphor subpixel mask. Each third of a simulated subpixel
	// cell boosts one channel by 10%; the 0.15 blend keeps it subtle.
	phase := int(math.Mod(math.Floor(uv.X*float64(frame.Width())*3), 3))
	tinted := col
	switch phase {
	case 0:
		tinted.R *= 1.1
	case 1:
		tinted.G *= 1.1
	default:
		tinted.B *= 1.1
	}
	col = col.Lerp(tinted, 0.15)

	// Stage 4: scanlines.
	s := math.Sin(uv.Y*params.ScanlineCount + params.Time*0.5)
	col = col.Scale(1 - params.ScanlineIntensity*s*s)

	// Stage 5: vignette.
	col = col.Scale(1 - params.VignetteIntensity*distFromCenter*distFromCenter)

	// Stage 6: animated static, signed so it brightens and darkens.
	n := f.hash.Hash1(uv.Mul(1000).Add(V2(params.Time*100, 0))) - 0.5
	col.R += n * params.NoiseIntensity
	col.G += n * params.NoiseIntensity
	col.B += n * params.NoiseIntensity

	// Stage 7: brightness.
	col = col.Scale(params.Brightness)

	// Stage 8: glow approximation for bright regions.
	glow := smoothstep(0.5, 1, col.Luminance()) * 0.1
	col.R += glow
	col.G += glow
	col.B += glow

	col = col.Clamp()
	col.A = 1
	return col
}
