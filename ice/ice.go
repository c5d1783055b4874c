/*package ice implements the optical media photons are propagated through.
Scattering and absorption are described by interaction lengths: the distance
to the next event is drawn from an exponential distribution with that length
as its mean.

Uniform media have the same lengths everywhere. Layered media read a depth
table and interpolate the lengths linearly between its rows.
*/
package ice

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/table"

	"github.com/icemc/phoprop/geom"
	"github.com/icemc/phoprop/interpolate"
	"github.com/icemc/phoprop/rand"
)

// Uniform is a medium with constant scattering and absorption lengths.
type Uniform struct {
	ScatterLength, AbsorptionLength float64
}

// NewUniform creates a uniform medium with the given interaction lengths.
func NewUniform(scatterLength, absorptionLength float64) *Uniform {
	if scatterLength <= 0 || absorptionLength <= 0 {
		panic(fmt.Sprintf(
			"Interaction lengths must be positive, got %g and %g.",
			scatterLength, absorptionLength,
		))
	}
	return &Uniform{scatterLength, absorptionLength}
}

// SampleScatter draws exponential distances with the medium's scattering
// length for every position.
func (ice *Uniform) SampleScatter(
	gen *rand.Generator, rs []geom.Vec, out []float64,
) {
	for i := range out {
		out[i] = expDistance(gen, ice.ScatterLength)
	}
}

// SampleAbsorption draws exponential distances with the medium's absorption
// length for every position.
func (ice *Uniform) SampleAbsorption(
	gen *rand.Generator, rs []geom.Vec, out []float64,
) {
	for i := range out {
		out[i] = expDistance(gen, ice.AbsorptionLength)
	}
}

// Layered is a medium whose interaction lengths vary with depth. Lengths
// between table rows are interpolated linearly and the edge rows extend past
// the tabulated depth range.
type Layered struct {
	scat, abs *interpolate.Linear
}

// NewLayered creates a layered medium from a depth column and the matching
// scattering and absorption length columns. The depths must be strictly
// increasing and the lengths positive.
func NewLayered(zs, scatLengths, absLengths []float64) (*Layered, error) {
	if len(zs) < 2 {
		return nil, fmt.Errorf(
			"Depth table needs at least two rows, got %d.", len(zs),
		)
	}
	if len(scatLengths) != len(zs) || len(absLengths) != len(zs) {
		return nil, fmt.Errorf("Depth table columns have unequal lengths.")
	}
	for i := range zs {
		if i > 0 && zs[i] <= zs[i-1] {
			return nil, fmt.Errorf(
				"Depth column is not strictly increasing at row %d.", i,
			)
		}
		if scatLengths[i] <= 0 || absLengths[i] <= 0 {
			return nil, fmt.Errorf(
				"Non-positive interaction length at row %d.", i,
			)
		}
	}

	return &Layered{
		scat: interpolate.NewLinear(zs, scatLengths),
		abs:  interpolate.NewLinear(zs, absLengths),
	}, nil
}

// ReadLayered loads a layered medium from a whitespace separated table file
// with columns depth, scattering length, and absorption length.
func ReadLayered(file string) (*Layered, error) {
	cols, err := table.ReadTable(file, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, err
	}
	return NewLayered(cols[0], cols[1], cols[2])
}

// SampleScatter draws exponential distances with the scattering length at
// each position's depth.
func (ice *Layered) SampleScatter(
	gen *rand.Generator, rs []geom.Vec, out []float64,
) {
	for i := range out {
		out[i] = expDistance(gen, ice.scat.Eval(rs[i][2]))
	}
}

// SampleAbsorption draws exponential distances with the absorption length at
// each position's depth.
func (ice *Layered) SampleAbsorption(
	gen *rand.Generator, rs []geom.Vec, out []float64,
) {
	for i := range out {
		out[i] = expDistance(gen, ice.abs.Eval(rs[i][2]))
	}
}

// expDistance draws from an exponential distribution with the given mean.
// The result is strictly positive, as the propagation loop requires: a draw
// of exactly zero is rerolled.
func expDistance(gen *rand.Generator, length float64) float64 {
	for {
		u := gen.Next()
		if u != 0 {
			return -length * math.Log(u)
		}
	}
}
