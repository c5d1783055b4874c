/*package interpolate supplies the one dimensional linear interpolation used
to evaluate depth dependent optical properties between table rows.
*/
package interpolate

// Linear is a linear interpolator.
type Linear struct {
	xs   searcher
	vals []float64
}

// NewLinear creates a linear interpolator for a strictly increasing sequence
// of points, xs, which take on the values given by vals.
//
// Lookups occur in O(log |xs|).
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic("Length of input slices are not equal.")
	}
	if len(xs) < 2 {
		panic("Need at least two points to interpolate.")
	}
	lin := &Linear{}
	lin.xs.init(xs)
	lin.vals = vals
	return lin
}

// NewUniformLinear creates a linear interpolator for a uniformly spaced
// sequence of x values starting at x0 and separated by dx and whose values
// are given by vals.
//
// Lookups are O(1).
func NewUniformLinear(x0, dx float64, vals []float64) *Linear {
	if len(vals) < 2 {
		panic("Need at least two points to interpolate.")
	}
	lin := &Linear{}
	lin.xs.unifInit(x0, dx, len(vals))
	lin.vals = vals
	return lin
}

// Eval returns the interpolated value at x. Values outside the supplied
// range are clamped to the nearest edge interval, so the curve continues
// linearly past both ends.
func (lin *Linear) Eval(x float64) float64 {
	i1 := lin.xs.search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs.val(i1), lin.xs.val(i2)
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}

// searcher finds the interval bracketing a lookup point, either by binary
// search over an explicit point sequence or arithmetically for uniformly
// spaced points.
type searcher struct {
	xs      []float64
	x0, dx  float64
	n       int
	uniform bool
}

func (s *searcher) init(xs []float64) {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			panic("Interpolation points are not strictly increasing.")
		}
	}
	s.xs = xs
	s.n = len(xs)
	s.uniform = false
}

func (s *searcher) unifInit(x0, dx float64, n int) {
	if dx <= 0 {
		panic("Point spacing must be positive.")
	}
	s.x0, s.dx, s.n = x0, dx, n
	s.uniform = true
}

func (s *searcher) val(i int) float64 {
	if s.uniform {
		return s.x0 + s.dx*float64(i)
	}
	return s.xs[i]
}

// search returns the index of the left edge of the interval containing x,
// clamped to the valid interval range.
func (s *searcher) search(x float64) int {
	var i int
	if s.uniform {
		i = int((x - s.x0) / s.dx)
	} else {
		lo, hi := 0, s.n-1
		for hi-lo > 1 {
			mid := (lo + hi) / 2
			if s.xs[mid] <= x {
				lo = mid
			} else {
				hi = mid
			}
		}
		i = lo
	}

	if i < 0 {
		i = 0
	} else if i > s.n-2 {
		i = s.n - 2
	}
	return i
}
