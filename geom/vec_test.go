package geom

import (
	"math"
	"testing"
)

func vecEpsEq(v1, v2 *Vec, eps float64) bool {
	for i := 0; i < 3; i++ {
		diff := v1[i] - v2[i]
		if diff > eps || diff < -eps {
			return false
		}
	}
	return true
}

func TestNorm(t *testing.T) {
	table := []struct {
		v    Vec
		norm float64
	}{
		{Vec{1, 0, 0}, 1},
		{Vec{0, -2, 0}, 2},
		{Vec{3, 4, 0}, 5},
		{Vec{1, 1, 1}, math.Sqrt(3)},
	}

	for i, test := range table {
		if norm := test.v.Norm(); math.Abs(norm-test.norm) > 1e-12 {
			t.Errorf("%d) %v.Norm() -> %g instead of %g",
				i+1, test.v, norm, test.norm)
		}
	}
}

func TestNormalize(t *testing.T) {
	vs := []Vec{
		{2, 0, 0},
		{1, 2, 3},
		{-5, 1e-3, 7},
	}

	for i, v := range vs {
		v.Normalize()
		if math.Abs(v.Norm()-1) > 1e-12 {
			t.Errorf("%d) normalized %v has norm %g", i+1, v, v.Norm())
		}
	}
}

func TestCross(t *testing.T) {
	table := []struct {
		u, v, out Vec
	}{
		{Vec{1, 0, 0}, Vec{0, 1, 0}, Vec{0, 0, 1}},
		{Vec{0, 1, 0}, Vec{1, 0, 0}, Vec{0, 0, -1}},
		{Vec{0, 1, 0}, Vec{0, 0, 1}, Vec{1, 0, 0}},
		{Vec{1, 2, 3}, Vec{2, 4, 6}, Vec{0, 0, 0}},
	}

	for i, test := range table {
		var out Vec
		Cross(&test.u, &test.v, &out)
		if !vecEpsEq(&out, &test.out, 1e-12) {
			t.Errorf("%d) Cross(%v, %v) -> %v instead of %v",
				i+1, test.u, test.v, out, test.out)
		}
	}
}

func TestCrossPerpendicular(t *testing.T) {
	u, v := Vec{1, 2, 3}, Vec{-2, 0.5, 4}
	var out Vec
	Cross(&u, &v, &out)

	if dot := out.Dot(&u); math.Abs(dot) > 1e-12 {
		t.Errorf("Cross(u, v).Dot(u) = %g", dot)
	}
	if dot := out.Dot(&v); math.Abs(dot) > 1e-12 {
		t.Errorf("Cross(u, v).Dot(v) = %g", dot)
	}
}

func TestAddScaled(t *testing.T) {
	v, u := Vec{1, 1, 1}, Vec{1, 2, 3}
	v.AddScaled(&u, 2)
	want := Vec{3, 5, 7}
	if !vecEpsEq(&v, &want, 1e-12) {
		t.Errorf("AddScaled -> %v instead of %v", v, want)
	}
}

func TestDistance(t *testing.T) {
	u, v := Vec{1, 2, 3}, Vec{4, 6, 3}
	if d := Distance(&u, &v); math.Abs(d-5) > 1e-12 {
		t.Errorf("Distance(%v, %v) = %g instead of 5", u, v, d)
	}
}
