/*package phoprop propagates batches of photons through a scattering and
absorbing medium until every photon has been absorbed or intercepted by a
detector module.

The propagation loop advances all photons of a batch in lock step. Photons
that have been stopped stay in the batch as frozen entries so every iteration
works on arrays of a fixed shape, which keeps the hot loops simple and
branch-light. A stopped photon takes zero-length steps and keeps its
direction, so its state never changes again.
*/
package phoprop

import (
	"github.com/icemc/phoprop/geom"
	"github.com/icemc/phoprop/rand"
)

// Medium supplies the optical properties of the material photons move
// through.
type Medium interface {
	// SampleScatter draws, for every position, the distance traveled until
	// the next scattering event. Distances must be positive and finite.
	SampleScatter(gen *rand.Generator, rs []geom.Vec, out []float64)
	// SampleAbsorption draws, for every position, the total path length a
	// photon may travel before it is absorbed. Distances must be positive
	// and finite.
	SampleAbsorption(gen *rand.Generator, rs []geom.Vec, out []float64)
}

// Detector tests photon steps against the detector geometry.
type Detector interface {
	// CheckForHits writes, for every photon, the fraction in [0, 1] of the
	// step ds[i] along vs[i] at which a detector module is crossed. 1 means
	// the step completes without a crossing.
	CheckForHits(rs []geom.Vec, ds []float64, vs []geom.Vec, out []float64)
	// Extent returns the side lengths of the detector's bounding box, which
	// is anchored at the origin.
	Extent() (lx, ly, lz float64)
}

// Batch holds the state of every photon of one propagation run as parallel
// arrays. Its length is fixed for the lifetime of the run.
type Batch struct {
	R    []geom.Vec // positions
	V    []geom.Vec // unit directions
	DAbs []float64  // remaining absorption path length; 0 means frozen
	T    []float64  // total travel time
	// Travel time split by which side of the layer boundary the photon was
	// on after each step.
	TLayer0, TLayer1 []float64
}

// NewBatch allocates a batch of n photons.
func NewBatch(n int) *Batch {
	return &Batch{
		R:    make([]geom.Vec, n),
		V:    make([]geom.Vec, n),
		DAbs: make([]float64, n),
		T:    make([]float64, n),

		TLayer0: make([]float64, n),
		TLayer1: make([]float64, n),
	}
}

// Len returns the number of photons in the batch.
func (b *Batch) Len() int {
	return len(b.R)
}
