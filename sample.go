package phoprop

import (
	"fmt"
	"math"

	"github.com/icemc/phoprop/geom"
	"github.com/icemc/phoprop/rand"
)

// SampleDirections fills out with random unit vectors: theta uniform in
// [0, pi), phi uniform in [0, 2 pi), direction
// (sin theta cos phi, sin theta sin phi, cos theta).
//
// Using theta directly as the polar angle concentrates directions towards
// the poles instead of spreading them uniformly over the sphere. That is
// the intended distribution here, not an oversight: a uniform spherical
// distribution would need cos theta uniform in [-1, 1] instead.
func SampleDirections(gen *rand.Generator, out []geom.Vec) {
	for i := range out {
		theta := gen.Uniform(0, math.Pi)
		phi := gen.Uniform(0, 2*math.Pi)
		sinT := math.Sin(theta)
		out[i] = geom.Vec{
			sinT * math.Cos(phi), sinT * math.Sin(phi), math.Cos(theta),
		}
	}
}

// SampleNormals fills out with unit vectors perpendicular to the matching
// entries of vs, found by crossing a random direction with vs[i]. The random
// direction could come out parallel to vs[i] and leave nothing to normalize,
// but that has probability zero and is ignored.
func SampleNormals(gen *rand.Generator, vs, out []geom.Vec) {
	SampleDirections(gen, out)
	for i := range out {
		var n geom.Vec
		geom.Cross(&out[i], &vs[i], &n)
		n.Normalize()
		out[i] = n
	}
}

// Scatterer rotates photon directions by deflection angles drawn from the
// medium's phase function.
type Scatterer struct {
	exponent float64

	us []float64
	ns []geom.Vec
}

// NewScatterer creates a Scatterer for a phase function with the given shape
// exponent. cos theta is drawn as 2 u^(1/exponent) - 1 for uniform u, so
// large exponents give strongly forward peaked scattering. Deep ice is well
// described by an exponent of 19.
func NewScatterer(exponent float64) *Scatterer {
	if exponent <= 0 {
		panic(fmt.Sprintf(
			"Phase function exponent must be positive, got %g.", exponent,
		))
	}
	return &Scatterer{exponent: exponent}
}

// Scatter rotates every direction in vs in place by a freshly drawn
// scattering angle about a random perpendicular axis. Unit input directions
// stay unit length up to floating point error.
func (sc *Scatterer) Scatter(gen *rand.Generator, vs []geom.Vec) {
	sc.ensure(len(vs))
	us, ns := sc.us[:len(vs)], sc.ns[:len(vs)]

	gen.UniformAt(0, 1, us)
	SampleNormals(gen, vs, ns)

	for i := range vs {
		cosT := 2*math.Pow(us[i], 1/sc.exponent) - 1
		cosT2 := math.Sqrt((cosT + 1) / 2)
		sinT2 := math.Sqrt((1 - cosT) / 2)

		// (cosT2, sinT2 * n) is a unit quaternion rotating by theta about n.
		n := &ns[i]
		n[0] *= sinT2
		n[1] *= sinT2
		n[2] *= sinT2
		vs[i].RotateQuat(cosT2, n)
	}
}

func (sc *Scatterer) ensure(n int) {
	if len(sc.us) >= n {
		return
	}
	sc.us = make([]float64, n)
	sc.ns = make([]geom.Vec, n)
}
