package phoprop

import (
	"math"
	"testing"

	"github.com/icemc/phoprop/geom"
	"github.com/icemc/phoprop/rand"
)

const (
	genType = rand.Xorshift
	normEps = 1e-6
)

func TestSampleDirectionsUnitNorm(t *testing.T) {
	gen := rand.New(genType, 1)
	vs := make([]geom.Vec, 1000)
	SampleDirections(gen, vs)

	for i := range vs {
		if norm := vs[i].Norm(); math.Abs(norm-1) > normEps {
			t.Errorf("direction %d has norm %g", i, norm)
			break
		}
	}
}

func TestSampleNormalsPerpendicular(t *testing.T) {
	gen := rand.New(genType, 2)
	vs := make([]geom.Vec, 1000)
	SampleDirections(gen, vs)

	ns := make([]geom.Vec, len(vs))
	SampleNormals(gen, vs, ns)

	for i := range ns {
		if norm := ns[i].Norm(); math.Abs(norm-1) > normEps {
			t.Errorf("normal %d has norm %g", i, norm)
			break
		}
		if dot := ns[i].Dot(&vs[i]); math.Abs(dot) > normEps {
			t.Errorf("normal %d has dot product %g with its direction", i, dot)
			break
		}
	}
}

func TestScatterUnitNorm(t *testing.T) {
	gen := rand.New(genType, 3)
	sc := NewScatterer(19)

	vs := make([]geom.Vec, 1000)
	SampleDirections(gen, vs)
	sc.Scatter(gen, vs)

	for i := range vs {
		if norm := vs[i].Norm(); math.Abs(norm-1) > normEps {
			t.Errorf("scattered direction %d has norm %g", i, norm)
			break
		}
	}
}

// With cos theta = 2 u^(1/19) - 1 the mean deflection cosine is
// 2*(19/20) - 1 = 0.9.
func TestScatterForwardPeaked(t *testing.T) {
	gen := rand.New(genType, 4)
	sc := NewScatterer(19)

	n := 20000
	vs := make([]geom.Vec, n)
	SampleDirections(gen, vs)
	v0s := make([]geom.Vec, n)
	copy(v0s, vs)

	sc.Scatter(gen, vs)

	sum := 0.0
	for i := range vs {
		sum += vs[i].Dot(&v0s[i])
	}
	mean := sum / float64(n)
	if mean < 0.88 || mean > 0.92 {
		t.Errorf("mean deflection cosine is %g, expected about 0.9", mean)
	}
}

func TestScatterExponentControlsPeaking(t *testing.T) {
	meanCos := func(exponent float64) float64 {
		gen := rand.New(genType, 5)
		sc := NewScatterer(exponent)
		n := 20000
		vs := make([]geom.Vec, n)
		SampleDirections(gen, vs)
		v0s := make([]geom.Vec, n)
		copy(v0s, vs)
		sc.Scatter(gen, vs)
		sum := 0.0
		for i := range vs {
			sum += vs[i].Dot(&v0s[i])
		}
		return sum / float64(n)
	}

	// exponent 1 is isotropic, larger exponents push forward
	if iso := meanCos(1); math.Abs(iso) > 0.03 {
		t.Errorf("exponent 1 gives mean cosine %g, expected about 0", iso)
	}
	if meanCos(5) >= meanCos(50) {
		t.Errorf("mean deflection cosine does not grow with the exponent")
	}
}

func TestScatterReproducible(t *testing.T) {
	run := func() []geom.Vec {
		gen := rand.New(genType, 6)
		sc := NewScatterer(19)
		vs := make([]geom.Vec, 100)
		SampleDirections(gen, vs)
		sc.Scatter(gen, vs)
		return vs
	}

	vs1, vs2 := run(), run()
	for i := range vs1 {
		if vs1[i] != vs2[i] {
			t.Errorf("seeded scatter runs diverge at photon %d", i)
			break
		}
	}
}

func TestNewScattererRejectsBadExponent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewScatterer(0) did not panic")
		}
	}()
	NewScatterer(0)
}
