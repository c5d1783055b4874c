/*package io handles the configuration files and the flat text tables that
surround a propagation run: cascade origin lists, depth tables, and result
tables.
*/
package io

import (
	"gopkg.in/gcfg.v1"

	"github.com/icemc/phoprop/rand"
)

const (
	ExamplePropagateFile = `[Propagate]

#######################
# Required Parameters #
#######################

# Number of photons propagated per batch.
BatchSize = 100000

# Number of cascades each batch is spread over. BatchSize must be divisible
# by this, and the cascade file must contain exactly this many origins.
CascadesPerStep = 1

# File listing one cascade origin per line as "x y z".
CascadeFile = path/to/cascades.txt

# File the per-photon result table is written to.
Output = path/to/output.txt

# Detector geometry: modules per side, module spacing, and module radius.
DetectorModules = 10
DetectorSpacing = 125
DetectorRadius = 0.3

#######################
# Optional Parameters #
#######################

# Uniform interaction lengths of the medium. Ignored when IceFile is set.
# ScatterLength = 25
# AbsorptionLength = 100

# Depth table with columns z, scattering length, absorption length. When
# set, it replaces the uniform lengths above.
# IceFile = path/to/ice.txt

# Shape exponent of the scattering phase function. Larger values scatter
# more strongly forward.
# ScatterExponent = 19

# Photons farther from the detector center than this fraction of half the
# detector diagonal are dropped. 0 turns the cutoff off.
# CutoffFraction = 0

# Depth of the boundary between the two bookkeeping layers.
# LayerBoundary = 50

# Seed for the random generator. 0 seeds from the wall clock, which makes
# runs non-reproducible.
# Seed = 0

# Random generator backend. One of [ Xorshift | Tausworthe | Golang ].
# Generator = Xorshift

# Floating point precision of the propagation state. float64 is currently
# the only supported value.
# Precision = float64

# Output files which are useful for profiling and debugging. Generally,
# there isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`
)

type PropagateConfig struct {
	// Required
	BatchSize       int
	CascadesPerStep int
	CascadeFile     string
	Output          string
	DetectorModules int
	DetectorSpacing float64
	DetectorRadius  float64

	// Optional
	ScatterLength    float64
	AbsorptionLength float64
	IceFile          string
	ScatterExponent  float64
	CutoffFraction   float64
	LayerBoundary    float64
	Seed             int
	Generator        string
	Precision        string
	LogFile          string
	ProfileFile      string
}

type PropagateWrapper struct {
	Propagate PropagateConfig
}

func DefaultPropagateWrapper() *PropagateWrapper {
	con := PropagateConfig{}
	con.ScatterLength = 25
	con.AbsorptionLength = 100
	con.ScatterExponent = 19
	con.LayerBoundary = 50
	con.Generator = "Xorshift"
	con.Precision = "float64"
	return &PropagateWrapper{con}
}

// ReadPropagateWrapper reads a [Propagate] configuration file on top of the
// defaults.
func ReadPropagateWrapper(file string) (*PropagateWrapper, error) {
	wrap := DefaultPropagateWrapper()
	if err := gcfg.ReadFileInto(wrap, file); err != nil {
		return nil, err
	}
	return wrap, nil
}

func (con *PropagateConfig) ValidBatchSize() bool {
	return con.BatchSize > 0
}
func (con *PropagateConfig) ValidCascadesPerStep() bool {
	return con.CascadesPerStep > 0 &&
		con.BatchSize%con.CascadesPerStep == 0
}
func (con *PropagateConfig) ValidCascadeFile() bool {
	return con.CascadeFile != ""
}
func (con *PropagateConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *PropagateConfig) ValidDetector() bool {
	return con.DetectorModules >= 2 && con.DetectorSpacing > 0 &&
		con.DetectorRadius > 0 &&
		con.DetectorRadius < con.DetectorSpacing/2
}
func (con *PropagateConfig) ValidIce() bool {
	if con.IceFile != "" {
		return true
	}
	return con.ScatterLength > 0 && con.AbsorptionLength > 0
}
func (con *PropagateConfig) ValidScatterExponent() bool {
	return con.ScatterExponent > 0
}
func (con *PropagateConfig) ValidCutoffFraction() bool {
	return con.CutoffFraction >= 0
}
func (con *PropagateConfig) ValidGenerator() bool {
	switch con.Generator {
	case "Xorshift", "Tausworthe", "Golang":
		return true
	}
	return false
}
func (con *PropagateConfig) ValidPrecision() bool {
	return con.Precision == "float64"
}

// GeneratorType maps the Generator field onto the rand backend constants.
// Call only after ValidGenerator has been checked.
func (con *PropagateConfig) GeneratorType() rand.GeneratorType {
	switch con.Generator {
	case "Tausworthe":
		return rand.Tausworthe
	case "Golang":
		return rand.Golang
	}
	return rand.Xorshift
}
