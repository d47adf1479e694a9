package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LookAt builds the 3x3 rotation matrix for a camera at eye aiming at
// target with the given up hint. The camera convention is the host's:
// the view direction is the local -Z axis and up is local +Y.
//
// When the view direction is nearly parallel to up, the up hint is
// replaced (world Z, or world Y if the view runs along Z) so the
// cross products stay well conditioned.
func LookAt(eye, target, up Vec3) *mat.Dense {
	zAxis := eye.Sub(target).Normalize()

	if math.Abs(zAxis.Dot(up.Normalize())) > 0.99 {
		if math.Abs(zAxis.Z) < 0.9 {
			up = Vec3{Z: 1}
		} else {
			up = Vec3{Y: 1}
		}
	}

	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	// Columns are the camera's X, Y, Z axes in world space.
	return mat.NewDense(3, 3, []float64{
		xAxis.X, yAxis.X, zAxis.X,
		xAxis.Y, yAxis.Y, zAxis.Y,
		xAxis.Z, yAxis.Z, zAxis.Z,
	})
}

// RotXYZ composes a rotation matrix from XYZ-order Euler angles
// (radians): R = Rz(z) · Ry(y) · Rx(x), matching the host convention
// where the X rotation is applied first.
func RotXYZ(x, y, z float64) *mat.Dense {
	cx, sx := math.Cos(x), math.Sin(x)
	cy, sy := math.Cos(y), math.Sin(y)
	cz, sz := math.Cos(z), math.Sin(z)

	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cx, -sx,
		0, sx, cx,
	})
	ry := mat.NewDense(3, 3, []float64{
		cy, 0, sy,
		0, 1, 0,
		-sy, 0, cy,
	})
	rz := mat.NewDense(3, 3, []float64{
		cz, -sz, 0,
		sz, cz, 0,
		0, 0, 1,
	})

	var tmp, out mat.Dense
	tmp.Mul(ry, rx)
	out.Mul(rz, &tmp)
	return &out
}

// EulerXYZ extracts XYZ-order Euler angles (radians) from a rotation
// matrix built as Rz·Ry·Rx. Near the y = ±π/2 gimbal singularity the
// X angle is pinned to zero and the remaining rotation folds into Z.
func EulerXYZ(m mat.Matrix) (x, y, z float64) {
	sy := -m.At(2, 0)
	sy = Clamp(sy, -1, 1)
	y = math.Asin(sy)

	if math.Abs(sy) > 0.999999 {
		// cos(y) ≈ 0: x and z are degenerate, pick x = 0.
		x = 0
		z = math.Atan2(-m.At(0, 1), m.At(1, 1))
		return x, y, z
	}

	x = math.Atan2(m.At(2, 1), m.At(2, 2))
	z = math.Atan2(m.At(1, 0), m.At(0, 0))
	return x, y, z
}

// Apply multiplies the rotation matrix with v.
func Apply(m mat.Matrix, v Vec3) Vec3 {
	return Vec3{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// RotateZ rotates v around the world Z axis by angle radians.
func RotateZ(v Vec3, angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		X: c*v.X - s*v.Y,
		Y: s*v.X + c*v.Y,
		Z: v.Z,
	}
}
