/*package analyze aggregates finished propagation batches into histograms
for downstream plotting.
*/
package analyze

import (
	"fmt"
	"math"
)

// Hist is a fixed width histogram over [Min, Max). Values outside the range
// are dropped.
type Hist struct {
	Min, Max float64
	Bins     int
	Log      bool

	Centers []float64
	Counts  []int

	low, width float64
}

// NewHist creates a histogram with bins of uniform width over [min, max).
func NewHist(min, max float64, bins int) *Hist {
	return newHist(min, max, bins, false)
}

// NewHistLog creates a histogram whose bins are spaced uniformly in log10
// over [min, max). min must be positive.
func NewHistLog(min, max float64, bins int) *Hist {
	return newHist(min, max, bins, true)
}

func newHist(min, max float64, bins int, log bool) *Hist {
	if bins <= 0 {
		panic(fmt.Sprintf("Bin count must be positive, got %d.", bins))
	}
	if max <= min {
		panic(fmt.Sprintf("Invalid histogram range [%g, %g).", min, max))
	}
	if log && min <= 0 {
		panic(fmt.Sprintf("Log histograms need a positive Min, got %g.", min))
	}

	h := &Hist{
		Min: min, Max: max, Bins: bins, Log: log,
		Centers: make([]float64, bins),
		Counts:  make([]int, bins),
	}

	if log {
		h.low = math.Log10(min)
		h.width = (math.Log10(max) - h.low) / float64(bins)
		for i := range h.Centers {
			h.Centers[i] = math.Pow(
				10, h.low+h.width*(float64(i)+0.5),
			)
		}
	} else {
		h.low = min
		h.width = (max - min) / float64(bins)
		for i := range h.Centers {
			h.Centers[i] = h.low + h.width*(float64(i)+0.5)
		}
	}
	return h
}

// Add bins the given values.
func (h *Hist) Add(xs []float64) {
	for _, x := range xs {
		if i, ok := h.index(x); ok {
			h.Counts[i]++
		}
	}
}

func (h *Hist) index(x float64) (int, bool) {
	if h.Log {
		if x <= 0 {
			return 0, false
		}
		x = math.Log10(x)
	}
	i := int((x - h.low) / h.width)
	if x < h.low || i >= h.Bins {
		return 0, false
	}
	return i, true
}

// Heights returns the bin counts as floats, for plotting.
func (h *Hist) Heights() []float64 {
	out := make([]float64, h.Bins)
	for i, n := range h.Counts {
		out[i] = float64(n)
	}
	return out
}

// Total returns the number of binned values.
func (h *Hist) Total() int {
	sum := 0
	for _, n := range h.Counts {
		sum += n
	}
	return sum
}
