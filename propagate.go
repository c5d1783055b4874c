package phoprop

import (
	"fmt"
	"math"

	"github.com/icemc/phoprop/geom"
	"github.com/icemc/phoprop/rand"
)

// DefaultLayerBoundary is the depth at which travel time bookkeeping
// switches from layer 0 to layer 1.
const DefaultLayerBoundary = 50.0

// Propagator advances photon batches through a medium until every photon has
// been stopped. One Propagator may run any number of batches in sequence,
// but must not be shared between goroutines.
type Propagator struct {
	med Medium
	det Detector
	gen *rand.Generator
	sc  *Scatterer

	// CutoffFraction, when positive, stops photons farther from the
	// detector center than this fraction of half the detector diagonal.
	// Zero disables the cutoff.
	CutoffFraction float64
	// LayerBoundary is the z coordinate separating the two time layers.
	LayerBoundary float64

	// per-iteration workspaces
	dScat, d, frac []float64
	vScat          []geom.Vec
}

// NewPropagator creates a Propagator drawing its random numbers from gen.
func NewPropagator(med Medium, det Detector, sc *Scatterer, gen *rand.Generator) *Propagator {
	return &Propagator{
		med: med, det: det, sc: sc, gen: gen,
		LayerBoundary: DefaultLayerBoundary,
	}
}

// Propagate creates a batch from the cascade origins and advances it until
// every photon has been absorbed, has hit a detector module, or has left the
// cutoff radius. The returned batch is final: the Propagator does not touch
// it again.
func (p *Propagator) Propagate(origins []geom.Vec, batchSize int) *Batch {
	b := p.Init(origins, batchSize)
	for !p.Done(b) {
		p.Step(b)
	}
	return b
}

// Init creates a fresh batch from the cascade origins and seeds every
// photon's absorption budget from the medium.
func (p *Propagator) Init(origins []geom.Vec, batchSize int) *Batch {
	b := InitCascades(p.gen, origins, batchSize)
	p.med.SampleAbsorption(p.gen, b.R, b.DAbs)
	checkPositive(b.DAbs, "absorption")
	return b
}

// Done reports whether every photon of the batch has been stopped.
func (p *Propagator) Done(b *Batch) bool {
	max := 0.0
	for _, d := range b.DAbs {
		if d > max {
			max = d
		}
	}
	return max <= 0
}

// Step runs one propagation iteration over the whole batch. Every lane takes
// part in every phase and the same number of random draws is consumed no
// matter which photons are still moving, so seeded runs advance their random
// stream in a fixed order.
func (p *Propagator) Step(b *Batch) {
	n := b.Len()
	p.ensure(n)
	dScat, d, frac := p.dScat[:n], p.d[:n], p.frac[:n]

	p.med.SampleScatter(p.gen, b.R, dScat)
	checkPositive(dScat, "scatter")

	// Step distance: to the next scattering event, or to absorption if that
	// comes first. Frozen photons get a zero-length step.
	for i := 0; i < n; i++ {
		if b.DAbs[i] < 0 {
			b.DAbs[i] = 0
		}
		if dScat[i] < b.DAbs[i] {
			d[i] = dScat[i]
		} else {
			d[i] = b.DAbs[i]
		}
	}

	p.det.CheckForHits(b.R, d, b.V, frac)

	for i := 0; i < n; i++ {
		f := frac[i]
		if f < 0 || f > 1 || math.IsNaN(f) {
			panic(fmt.Sprintf(
				"Detector returned hit fraction %g for photon %d.", f, i,
			))
		}

		// A photon that hits a module stops inside it; everything else pays
		// the full step out of its absorption budget.
		if f < 1 {
			b.DAbs[i] = 0
		} else {
			b.DAbs[i] -= d[i]
		}

		step := d[i] * f
		b.R[i].AddScaled(&b.V[i], step)
		b.T[i] += step

		// Layer attribution uses the post-step depth even when the step
		// straddles the boundary. Coarse, but that is all the two-layer
		// bookkeeping promises.
		if b.R[i][2] < p.LayerBoundary {
			b.TLayer0[i] += step
		} else {
			b.TLayer1[i] += step
		}
	}

	if p.CutoffFraction > 0 {
		lx, ly, lz := p.det.Extent()
		center := geom.Vec{lx / 2, ly / 2, lz / 2}
		cut := p.CutoffFraction * math.Sqrt(lx*lx+ly*ly+lz*lz) / 2
		for i := 0; i < n; i++ {
			if geom.Distance(&b.R[i], &center) >= cut {
				b.DAbs[i] = 0
			}
		}
	}

	// Scatter every lane and keep the result only where the photon is still
	// moving.
	copy(p.vScat[:n], b.V)
	p.sc.Scatter(p.gen, p.vScat[:n])
	for i := 0; i < n; i++ {
		if b.DAbs[i] > 0 {
			b.V[i] = p.vScat[i]
		}
	}
}

func (p *Propagator) ensure(n int) {
	if len(p.dScat) >= n {
		return
	}
	p.dScat = make([]float64, n)
	p.d = make([]float64, n)
	p.frac = make([]float64, n)
	p.vScat = make([]geom.Vec, n)
}

// checkPositive guards the medium's contract. A non-positive or non-finite
// sampled distance would stall or corrupt the propagation loop, so fail
// immediately instead.
func checkPositive(xs []float64, name string) {
	for i, x := range xs {
		if !(x > 0) || math.IsInf(x, 0) {
			panic(fmt.Sprintf(
				"Medium returned %s distance %g for photon %d.", name, x, i,
			))
		}
	}
}
