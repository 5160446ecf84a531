package fx

import "testing"

func confettiTestParams() ConfettiParams {
	return ConfettiParams{Time: 1, Resolution: V2(320, 180)}
}

func TestConfettiDegenerateResolution(t *testing.T) {
	c := NewConfettiRain()

	tests := []struct {
		name string
		res  Vec2
	}{
		{name: "zero", res: V2(0, 0)},
		{name: "zero height", res: V2(320, 0)},
		{name: "negative width", res: V2(-320, 180)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Shade(V2(10, 10), ConfettiParams{Time: 1, Resolution: tt.res})
			if ok {
				t.Errorf("Shade with resolution %v = %v, want discard", tt.res, got)
			}
		})
	}
}

func TestConfettiDeterminism(t *testing.T) {
	c := NewConfettiRain()
	params := confettiTestParams()

	for y := 0.5; y < 180; y += 17 {
		for x := 0.5; x < 320; x += 13 {
			a, okA := c.Shade(V2(x, y), params)
			b, okB := c.Shade(V2(x, y), params)
			if okA != okB || a != b {
				t.Fatalf("Shade(%v,%v) not deterministic: %v/%v vs %v/%v", x, y, a, okA, b, okB)
			}
		}
	}
}

func TestConfettiSpawnDelay(t *testing.T) {
	c := NewConfettiRain()

	// Spawn delays are rand.x * 0.5, so nothing can be active yet at
	// time 0 minus epsilon; every pixel discards.
	params := ConfettiParams{Time: -1e-9, Resolution: V2(320, 180)}
	for y := 0.5; y < 180; y += 9 {
		for x := 0.5; x < 320; x += 9 {
			if got, ok := c.Shade(V2(x, y), params); ok {
				t.Fatalf("Shade(%v,%v) before any spawn = %v, want discard", x, y, got)
			}
		}
	}

	// Per particle: no attribute allows activity before its own delay.
	for i := 0; i < ConfettiCount; i++ {
		p := c.particle(i, 320.0/180.0)
		if p.spawnDelay < 0 || p.spawnDelay >= 0.5 {
			t.Errorf("particle %d spawn delay = %v, want [0,0.5)", i, p.spawnDelay)
		}
	}
}

func TestConfettiDespawn(t *testing.T) {
	c := NewConfettiRain()

	// The slowest flake (speed 0.3, max delay 0.5) passes y=1.2 before
	// t=5.2; by t=6 the whole field must be empty.
	params := ConfettiParams{Time: 6, Resolution: V2(320, 180)}
	for y := 0.5; y < 180; y += 7 {
		for x := 0.5; x < 320; x += 7 {
			if got, ok := c.Shade(V2(x, y), params); ok {
				t.Fatalf("Shade(%v,%v) at t=6 = %v, want all despawned", x, y, got)
			}
		}
	}
}

func TestConfettiFallIsStrictlyDownward(t *testing.T) {
	c := NewConfettiRain()

	for i := 0; i < ConfettiCount; i++ {
		p := c.particle(i, 1)
		if p.fallSpeed < 0.3 || p.fallSpeed >= 0.7 {
			t.Errorf("particle %d fall speed = %v, want [0.3,0.7)", i, p.fallSpeed)
		}

		// Vertical position is spawnTop + active*speed: strictly
		// increasing while active.
		y1 := confettiSpawnTop + 0.5*p.fallSpeed
		y2 := confettiSpawnTop + 0.6*p.fallSpeed
		if y2 <= y1 {
			t.Errorf("particle %d y not increasing: %v then %v", i, y1, y2)
		}
	}
}

func TestConfettiCoversSomePixels(t *testing.T) {
	c := NewConfettiRain()
	params := confettiTestParams()

	covered := 0
	for y := 0.5; y < 180; y += 2 {
		for x := 0.5; x < 320; x += 2 {
			if _, ok := c.Shade(V2(x, y), params); ok {
				covered++
			}
		}
	}
	if covered == 0 {
		t.Fatal("no confetti visible at t=1, want some coverage")
	}
}

func TestConfettiCoverageHasValidAlpha(t *testing.T) {
	c := NewConfettiRain()
	params := confettiTestParams()

	for y := 0.5; y < 180; y += 3 {
		for x := 0.5; x < 320; x += 3 {
			got, ok := c.Shade(V2(x, y), params)
			if !ok {
				continue
			}
			if got.A <= confettiDiscard || got.A > 1 {
				t.Fatalf("Shade(%v,%v) alpha = %v, want (%v,1]", x, y, got.A, confettiDiscard)
			}
			for _, ch := range []float64{got.R, got.G, got.B} {
				if ch < 0 || ch > 1.0001 {
					t.Fatalf("Shade(%v,%v) channel out of range: %v", x, y, got)
				}
			}
		}
	}
}

func TestConfettiSaturationShortCircuit(t *testing.T) {
	c := NewConfettiRain()
	params := confettiTestParams()

	// The short-circuit may only skip particles hidden behind an already
	// saturated accumulation, so both paths agree to within rounding.
	for y := 0.5; y < 180; y += 3 {
		for x := 0.5; x < 320; x += 3 {
			fast, okFast := c.shade(V2(x, y), params, true)
			full, okFull := c.shade(V2(x, y), params, false)
			if okFast != okFull {
				t.Fatalf("short-circuit changed discard at (%v,%v)", x, y)
			}
			if okFast && !fast.Approx(full, 0.02) {
				t.Fatalf("short-circuit changed color at (%v,%v): %v vs %v", x, y, fast, full)
			}
		}
	}
}

func TestConfettiPaletteBuckets(t *testing.T) {
	// Every particle color must come from the configured palette.
	p, err := NewPalette([]RGBA{Red, Green, Blue}, []float64{0.5, 0.3, 0.2})
	if err != nil {
		t.Fatal(err)
	}
	c := NewConfettiRain(WithPalette(p))

	for i := 0; i < ConfettiCount; i++ {
		col := c.particle(i, 1).color
		if col != Red && col != Green && col != Blue {
			t.Errorf("particle %d color = %v, not in palette", i, col)
		}
	}
}

func BenchmarkConfettiShade(b *testing.B) {
	c := NewConfettiRain()
	params := confettiTestParams()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Shade(V2(160.5, 90.5), params)
	}
}
