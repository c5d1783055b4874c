/*package detector models the detector as a rectangular lattice of spherical
optical modules and answers where along a photon's step a module is first
crossed.
*/
package detector

import (
	"fmt"
	"math"

	"github.com/icemc/phoprop/geom"
)

// Grid is an n x n x n lattice of spherical modules with the given spacing.
// The first module sits at the origin, so the lattice spans the box
// [0, (n-1)*spacing] along each axis.
type Grid struct {
	N            int
	Spacing      float64
	ModuleRadius float64
}

// NewGrid creates a module lattice. The module radius must leave room
// between neighboring modules.
func NewGrid(n int, spacing, moduleRadius float64) *Grid {
	if n < 2 {
		panic(fmt.Sprintf("Need at least 2 modules per side, got %d.", n))
	}
	if spacing <= 0 || moduleRadius <= 0 || moduleRadius >= spacing/2 {
		panic(fmt.Sprintf(
			"Invalid module spacing %g / radius %g.", spacing, moduleRadius,
		))
	}
	return &Grid{n, spacing, moduleRadius}
}

// Extent returns the side lengths of the lattice bounding box.
func (g *Grid) Extent() (lx, ly, lz float64) {
	l := float64(g.N-1) * g.Spacing
	return l, l, l
}

// CheckForHits writes, for every photon, the fraction of its step at which
// it first enters a module, or 1 if the step ends without a crossing.
func (g *Grid) CheckForHits(
	rs []geom.Vec, ds []float64, vs []geom.Vec, out []float64,
) {
	for i := range rs {
		out[i] = g.hitFraction(&rs[i], ds[i], &vs[i])
	}
}

// hitFraction tests the segment from r to r + d*v against every module whose
// lattice cell overlaps the segment's bounding box. Those cells are the only
// ones a sphere of ModuleRadius can reach.
func (g *Grid) hitFraction(r *geom.Vec, d float64, v *geom.Vec) float64 {
	if d <= 0 {
		return 1
	}

	var lo, hi [3]int
	for k := 0; k < 3; k++ {
		a, b := r[k], r[k]+d*v[k]
		if a > b {
			a, b = b, a
		}
		lo[k] = clampIndex(int(math.Floor((a-g.ModuleRadius)/g.Spacing)), g.N)
		hi[k] = clampIndex(int(math.Ceil((b+g.ModuleRadius)/g.Spacing)), g.N)
	}

	best := 1.0
	for ix := lo[0]; ix <= hi[0]; ix++ {
		for iy := lo[1]; iy <= hi[1]; iy++ {
			for iz := lo[2]; iz <= hi[2]; iz++ {
				center := geom.Vec{
					float64(ix) * g.Spacing,
					float64(iy) * g.Spacing,
					float64(iz) * g.Spacing,
				}
				if f, ok := raySphere(r, v, &center, g.ModuleRadius, d); ok &&
					f < best {
					best = f
				}
			}
		}
	}
	return best
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// raySphere solves |r + t*v - c| = radius for the smallest t in [0, d] and
// returns it as a fraction of d. A photon starting inside a module reports
// the crossing where it leaves.
func raySphere(r, v, c *geom.Vec, radius, d float64) (float64, bool) {
	var oc geom.Vec
	geom.Sub(r, c, &oc)

	b := oc.Dot(v)
	cc := oc.Dot(&oc) - radius*radius
	disc := b*b - cc
	if disc < 0 {
		return 1, false
	}

	sqrtDisc := math.Sqrt(disc)
	t := -b - sqrtDisc
	if t < 0 {
		t = -b + sqrtDisc
	}
	if t < 0 || t > d {
		return 1, false
	}
	return t / d, true
}
