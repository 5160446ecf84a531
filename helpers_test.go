package fx

// stubHasher returns fixed values regardless of input. Injecting it
// makes effect output fully predictable.
type stubHasher struct {
	v float64
	t Vec3
}

func (s stubHasher) Hash1(Vec2) float64 { return s.v }
func (s stubHasher) Hash3(Vec2) Vec3    { return s.t }

// sampleGrid calls fn for every cell center of an n by n grid over
// [0,1]^2.
func sampleGrid(n int, fn func(uv Vec2)) {
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fn(V2((float64(x)+0.5)/float64(n), (float64(y)+0.5)/float64(n)))
		}
	}
}
