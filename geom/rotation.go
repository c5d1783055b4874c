package geom

import (
	"math"
)

// RotateQuat rotates v in place by the unit quaternion with scalar part w
// and vector part u, using the expansion
//
//	v' = v + 2w (u x v) + 2 (u x (u x v))
//
// The caller is responsible for (w, u) being a unit quaternion.
func (v *Vec) RotateQuat(w float64, u *Vec) {
	var uv, uuv Vec
	Cross(u, v, &uv)
	Cross(u, &uv, &uuv)

	v[0] += 2*w*uv[0] + 2*uuv[0]
	v[1] += 2*w*uv[1] + 2*uuv[1]
	v[2] += 2*w*uv[2] + 2*uuv[2]
}

// RotateAxis rotates v in place by the angle theta about the given unit
// axis.
func (v *Vec) RotateAxis(axis *Vec, theta float64) {
	sin, cos := math.Sin(theta/2), math.Cos(theta/2)
	u := Vec{axis[0] * sin, axis[1] * sin, axis[2] * sin}
	v.RotateQuat(cos, &u)
}
