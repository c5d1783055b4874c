package phoprop

import (
	"fmt"

	"github.com/icemc/phoprop/geom"
	"github.com/icemc/phoprop/rand"
)

// InitCascades spreads batchSize photons over the given cascade origin
// points and draws an isotropic initial direction for each. The origin list
// is tiled whole, so photon i starts at origins[i % len(origins)] and every
// origin receives exactly batchSize / len(origins) photons.
//
// batchSize must be a positive multiple of len(origins). The configuration
// layer checks this before a run starts, so a violation here is a programmer
// error.
func InitCascades(gen *rand.Generator, origins []geom.Vec, batchSize int) *Batch {
	if len(origins) == 0 {
		panic("Need at least one cascade origin.")
	}
	if batchSize <= 0 || batchSize%len(origins) != 0 {
		panic(fmt.Sprintf(
			"Batch size %d is not a positive multiple of the cascade count %d.",
			batchSize, len(origins),
		))
	}

	b := NewBatch(batchSize)
	for i := range b.R {
		b.R[i] = origins[i%len(origins)]
	}
	SampleDirections(gen, b.V)
	return b
}
