package geom

import "math"

// SphToCart converts spherical coordinates to Cartesian.
//
//	r     = distance from origin
//	theta = polar angle measured from the positive Z axis (0 to π)
//	phi   = azimuth in the XY plane from +X (0 to 2π)
func SphToCart(r, theta, phi float64) Vec3 {
	sinTheta := math.Sin(theta)
	return Vec3{
		X: r * sinTheta * math.Cos(phi),
		Y: r * sinTheta * math.Sin(phi),
		Z: r * math.Cos(theta),
	}
}

// CartToSph converts Cartesian coordinates to spherical (r, theta,
// phi). The origin maps to (0, 0, 0).
func CartToSph(v Vec3) (r, theta, phi float64) {
	r = v.Norm()
	if r != 0 {
		theta = math.Acos(v.Z / r)
	}
	phi = math.Atan2(v.Y, v.X)
	return r, theta, phi
}

// CylToCart converts cylindrical coordinates to Cartesian.
//
//	r   = radial distance in the XY plane
//	phi = azimuth in the XY plane (0 to 2π)
//	z   = height along the Z axis
func CylToCart(r, phi, z float64) Vec3 {
	return Vec3{
		X: r * math.Cos(phi),
		Y: r * math.Sin(phi),
		Z: z,
	}
}

// CartToCyl converts Cartesian coordinates to cylindrical (r, phi, z).
func CartToCyl(v Vec3) (r, phi, z float64) {
	r = math.Sqrt(v.X*v.X + v.Y*v.Y)
	phi = math.Atan2(v.Y, v.X)
	return r, phi, v.Z
}

// PolarToCart converts a planar polar position to Cartesian on the
// z=0 board plane.
func PolarToCart(r, angle float64) Vec3 {
	return Vec3{
		X: r * math.Cos(angle),
		Y: r * math.Sin(angle),
		Z: 0,
	}
}
