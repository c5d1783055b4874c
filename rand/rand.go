/*package rand provides explicitly seedable uniform random number generators.

Every sampling routine in this project takes a *Generator instead of using a
global stream, so a run seeded with a fixed value draws its random numbers
in a fixed order and can be reproduced exactly.
*/
package rand

import (
	"fmt"
	mathrand "math/rand"
	"time"
)

// GeneratorType identifies a generator backend.
type GeneratorType int

const (
	// Xorshift is a 64 bit xorshift* generator. Fast, and the default.
	Xorshift GeneratorType = iota
	// Tausworthe is the taus88 combined LFSR generator.
	Tausworthe
	// Golang wraps the standard library's math/rand generator.
	Golang

	Default = Xorshift
)

// Generator produces sequences of uniform random numbers.
type Generator struct {
	backend backend
}

type backend interface {
	init(seed uint64)
	next() float64
}

// New creates a seeded Generator of the given type.
func New(gt GeneratorType, seed uint64) *Generator {
	gen := &Generator{}
	switch gt {
	case Xorshift:
		gen.backend = &xorshiftBackend{}
	case Tausworthe:
		gen.backend = &tauswortheBackend{}
	case Golang:
		gen.backend = &golangBackend{}
	default:
		panic(fmt.Sprintf("Unrecognized GeneratorType %d.", gt))
	}
	gen.backend.init(seed)
	return gen
}

// NewTimeSeed creates a Generator of the given type seeded with the wall
// clock.
func NewTimeSeed(gt GeneratorType) *Generator {
	return New(gt, uint64(time.Now().UnixNano()))
}

// Next returns a uniform random number in [0, 1).
func (gen *Generator) Next() float64 {
	return gen.backend.next()
}

// Uniform returns a uniform random number in [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	return low + (high-low)*gen.backend.next()
}

// UniformAt fills target with uniform random numbers in [low, high).
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	for i := range target {
		target[i] = low + (high-low)*gen.backend.next()
	}
}

// UniformInt returns a uniform random integer in [low, high).
func (gen *Generator) UniformInt(low, high int) int {
	return low + int(float64(high-low)*gen.backend.next())
}

type xorshiftBackend struct {
	state uint64
}

func (x *xorshiftBackend) init(seed uint64) {
	// The all-zero state maps to itself.
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	x.state = seed
}

func (x *xorshiftBackend) next() float64 {
	s := x.state
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	x.state = s
	return float64((s*2685821657736338717)>>11) / (1 << 53)
}

type tauswortheBackend struct {
	s1, s2, s3 uint32
}

func (t *tauswortheBackend) init(seed uint64) {
	// Each state word has to clear its shift threshold (2, 8 and 16), so
	// draw them from an LCG until all three do.
	lcg := func() uint32 {
		seed = seed*6364136223846793005 + 1442695040888963407
		return uint32(seed >> 32)
	}
	for t.s1 = lcg(); t.s1 < 2; t.s1 = lcg() {
	}
	for t.s2 = lcg(); t.s2 < 8; t.s2 = lcg() {
	}
	for t.s3 = lcg(); t.s3 < 16; t.s3 = lcg() {
	}
}

func (t *tauswortheBackend) next() float64 {
	t.s1 = ((t.s1 & 4294967294) << 12) ^ (((t.s1 << 13) ^ t.s1) >> 19)
	t.s2 = ((t.s2 & 4294967288) << 4) ^ (((t.s2 << 2) ^ t.s2) >> 25)
	t.s3 = ((t.s3 & 4294967280) << 17) ^ (((t.s3 << 3) ^ t.s3) >> 11)
	return float64(t.s1^t.s2^t.s3) / (1 << 32)
}

type golangBackend struct {
	gen *mathrand.Rand
}

func (g *golangBackend) init(seed uint64) {
	g.gen = mathrand.New(mathrand.NewSource(int64(seed)))
}

func (g *golangBackend) next() float64 {
	return g.gen.Float64()
}
