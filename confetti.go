package fx

import "math"

// ConfettiParams is the per-frame parameter block for ConfettiRain.
// The host owns it and fills it once per frame; fx only reads it.
type ConfettiParams struct {
	// Time is seconds since the effect started, monotonically increasing.
	Time float64
	// Resolution is the output size in device pixels. Both components
	// must be positive; degenerate values make every pixel a discard.
	Resolution Vec2
}

// ConfettiCount is the fixed number of virtual particles in the rain.
const ConfettiCount = 150

// Particle simulation constants. Vertical coordinates are in normalized
// screen space: particles enter above y=0 and despawn past y=1.2.
const (
	confettiSpawnTop    = -0.2
	confettiDespawnY    = 1.2
	confettiEdge        = 0.002
	confettiSaturation  = 0.99
	confettiDiscard     = 0.01
)

// confettiParticle holds the attributes derived for one particle index.
// Nothing of this is ever stored between frames; it is recomputed from
// the index hash on every evaluation, so the same index and time always
// reproduce the same particle.
type confettiParticle struct {
	spawnDelay float64
	fallSpeed  float64
	xStart     float64
	swayFreq   float64
	swayAmp    float64
	rotSpeed   float64
	halfW      float64
	halfH      float64
	color      RGBA
}

// ConfettiRain synthesizes a field of falling, rotating, colored
// rectangles purely from particle index and elapsed time.
//
// Particles blend front to back in ascending index order regardless of
// simulated depth. That ordering is not physically correct layering, but
// it is deterministic and is part of the effect's look; reordering would
// change the output.
//
// A ConfettiRain is immutable and safe for concurrent use.
type ConfettiRain struct {
	hash    Hasher
	palette *Palette
}

// NewConfettiRain creates a confetti effect with the default palette.
func NewConfettiRain(opts ...Option) *ConfettiRain {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ConfettiRain{hash: o.hasher, palette: o.palette}
}

// particleSeed builds the hash seed for particle i. The scaling keeps
// consecutive indices far apart in hash space.
func particleSeed(i int) Vec2 {
	n := float64(i)
	return V2(n+1, n*1.618+7.3)
}

// particle derives every attribute of particle i from three hash values.
func (c *ConfettiRain) particle(i int, aspect float64) confettiParticle {
	rnd := c.hash.Hash3(particleSeed(i))

	halfW := 0.008 + rnd.Y*0.008
	return confettiParticle{
		spawnDelay: rnd.X * 0.5,
		fallSpeed:  0.3 + rnd.Y*0.4,
		xStart:     rnd.Z * aspect,
		swayFreq:   1 + rnd.Y*2,
		swayAmp:    0.02 + rnd.X*0.04,
		// Centered at zero so roughly half the flakes spin each way.
		rotSpeed: (rnd.Z - 0.5) * 6,
		halfW:    halfW,
		halfH:    halfW * (0.4 + rnd.X*0.4),
		color:    c.palette.Pick(rnd.X),
	}
}

// sdBox returns the signed distance from d to an axis-aligned box with
// the given half extents, negative inside.
func sdBox(d Vec2, halfW, halfH float64) float64 {
	qx := math.Abs(d.X) - halfW
	qy := math.Abs(d.Y) - halfH
	ox := math.Max(qx, 0)
	oy := math.Max(qy, 0)
	outside := math.Sqrt(ox*ox + oy*oy)
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside
}

// Shade evaluates the rain at a device-pixel position. The second return
// is false when the pixel is fully transparent and the host must discard
// the write, keeping its backdrop.
func (c *ConfettiRain) Shade(screenPos Vec2, params ConfettiParams) (RGBA, bool) {
	return c.shade(screenPos, params, true)
}

// shade is Shade with the alpha-saturation short-circuit controllable.
// The short-circuit only ever skips particles hidden behind an already
// opaque accumulation, so both paths agree to within rounding; tests pin
// that equivalence.
func (c *ConfettiRain) shade(screenPos Vec2, params ConfettiParams, shortCircuit bool) (RGBA, bool) {
	if params.Resolution.X <= 0 || params.Resolution.Y <= 0 {
		return Transparent, false
	}

	aspect := params.Resolution.X / params.Resolution.Y
	uv := V2(screenPos.X/params.Resolution.X, screenPos.Y/params.Resolution.Y)
	p := V2(uv.X*aspect, uv.Y)

	// Front-to-back over-operator accumulation; color is premultiplied
	// while accumulating and unpremultiplied once at the end.
	var accR, accG, accB, accA float64

	for i := 0; i < ConfettiCount; i++ {
		part := c.particle(i, aspect)

		active := params.Time - part.spawnDelay
		if active < 0 {
			continue
		}
		y := confettiSpawnTop + active*part.fallSpeed
		if y > confettiDespawnY {
			continue
		}
		x := part.xStart + math.Sin(active*part.swayFreq)*part.swayAmp
		angle := active * part.rotSpeed

		local := p.Sub(V2(x, y)).Rotate(-angle)
		dist := sdBox(local, part.halfW, part.halfH)
		alpha := 1 - smoothstep(0, confettiEdge, dist)
		if alpha <= 0 {
			continue
		}

		// Slight shade flicker as the flake rotates, as if catching light.
		shade := 0.85 + 0.15*math.Sin(angle*3)
		col := part.color.Scale(shade)

		contrib := alpha * (1 - accA)
		accR += col.R * contrib
		accG += col.G * contrib
		accB += col.B * contrib
		accA += contrib

		if shortCircuit && accA >= confettiSaturation {
			break
		}
	}

	if accA <= confettiDiscard {
		return Transparent, false
	}
	return RGBA{R: accR / accA, G: accG / accA, B: accB / accA, A: accA}, true
}
