package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/icemc/phoprop"
	"github.com/icemc/phoprop/geom"
)

// ReadCascades reads cascade origins from a whitespace separated table with
// columns x, y, z, one origin per line.
func ReadCascades(file string) ([]geom.Vec, error) {
	cols, err := table.ReadTable(file, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, err
	}
	if len(cols[0]) == 0 {
		return nil, fmt.Errorf("Cascade file '%s' is empty.", file)
	}

	origins := make([]geom.Vec, len(cols[0]))
	for i := range origins {
		origins[i] = geom.Vec{cols[0][i], cols[1][i], cols[2][i]}
	}
	return origins, nil
}

// WriteResults writes a finished batch as a whitespace separated table with
// one row per photon and columns x, y, z, t, t0, t1.
func WriteResults(file string, b *phoprop.Batch) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# x y z t t0 t1\n")
	for i := 0; i < b.Len(); i++ {
		_, err := fmt.Fprintf(w, "%g %g %g %g %g %g\n",
			b.R[i][0], b.R[i][1], b.R[i][2],
			b.T[i], b.TLayer0[i], b.TLayer1[i])
		if err != nil {
			return err
		}
	}
	return w.Flush()
}

// ReadResults reads a result table back into per-photon positions, arrival
// times, and layer times.
func ReadResults(file string) (
	rs []geom.Vec, ts, t0s, t1s []float64, err error,
) {
	cols, err := table.ReadTable(file, []int{0, 1, 2, 3, 4, 5}, nil)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	rs = make([]geom.Vec, len(cols[0]))
	for i := range rs {
		rs[i] = geom.Vec{cols[0][i], cols[1][i], cols[2][i]}
	}
	return rs, cols[3], cols[4], cols[5], nil
}
