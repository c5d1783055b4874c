/*package geom contains the small amount of vector geometry needed to push
photons around: three dimensional vectors and rotations about arbitrary axes.
*/
package geom

import (
	"math"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// Norm returns the Euclidean length of v.
func (v *Vec) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Dot returns the inner product of v and u.
func (v *Vec) Dot(u *Vec) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Normalize rescales v to unit length in place.
func (v *Vec) Normalize() {
	n := v.Norm()
	v[0] /= n
	v[1] /= n
	v[2] /= n
}

// AddScaled adds s*u to v in place.
func (v *Vec) AddScaled(u *Vec, s float64) {
	v[0] += s * u[0]
	v[1] += s * u[1]
	v[2] += s * u[2]
}

// Cross writes the cross product of u and v to out. out must not alias
// either input.
func Cross(u, v, out *Vec) {
	out[0] = u[1]*v[2] - u[2]*v[1]
	out[1] = u[2]*v[0] - u[0]*v[2]
	out[2] = u[0]*v[1] - u[1]*v[0]
}

// Sub writes u - v to out.
func Sub(u, v, out *Vec) {
	out[0] = u[0] - v[0]
	out[1] = u[1] - v[1]
	out[2] = u[2] - v[2]
}

// Distance returns the Euclidean distance between u and v.
func Distance(u, v *Vec) float64 {
	dx, dy, dz := u[0]-v[0], u[1]-v[1], u[2]-v[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
