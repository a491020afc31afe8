package transform

import "math"

// Vec3 is a Cartesian 3-vector in meters.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsFinite reports whether all three components are finite.
func (v Vec3) IsFinite() bool {
	return allFinite(v.X, v.Y, v.Z)
}

// Mat3 is a row-major 3×3 matrix. The direction cosine matrices built by
// this package are orthonormal, so Transpose doubles as the inverse.
type Mat3 [3][3]float64

// Identity3 is the 3×3 identity matrix.
var Identity3 = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m·other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Det returns the determinant of m. A proper rotation has determinant +1.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// WanderAngle is the (sin w, cos w) pair describing a wander-azimuth
// rotation about the local vertical. Storing the pair instead of the angle
// matches how mechanization code carries it, and makes the zero value of
// the rotation explicit: WanderZero.
type WanderAngle struct {
	Sin, Cos float64
}

// WanderZero is the zero wander angle; with it LLHToDCM degenerates to the
// plain ECEF→NED rotation.
var WanderZero = WanderAngle{Sin: 0, Cos: 1}

// Wander returns the WanderAngle for an angle in radians.
func Wander(wRad float64) WanderAngle {
	return WanderAngle{Sin: math.Sin(wRad), Cos: math.Cos(wRad)}
}

// LLHToDCM builds the direction cosine matrix rotating ECEF into the
// wander-azimuth local-level frame at the given geodetic position.
//
// Latitude and longitude are in radians, unlike the degree-valued LLH
// conversion functions; the parameter names carry the unit so the contrast
// is visible at the call site. Altitude does not affect the rotation and is
// accepted only for signature symmetry with the position transforms.
//
// The result composes two rotations, R = Cgn·Ceg: Ceg takes ECEF axes to
// the local-level NED frame, and Cgn rotates that frame about its vertical
// by the wander angle.
func LLHToDCM(latRad, lonRad, altM float64, w WanderAngle) Mat3 {
	sinLat := math.Sin(latRad)
	cosLat := math.Cos(latRad)
	sinLon := math.Sin(lonRad)
	cosLon := math.Cos(lonRad)

	cgn := Mat3{
		{w.Cos, w.Sin, 0},
		{-w.Sin, w.Cos, 0},
		{0, 0, 1},
	}
	ceg := Mat3{
		{-sinLat * cosLon, -sinLat * sinLon, cosLat},
		{-sinLon, cosLon, 0},
		{-cosLat * cosLon, -cosLat * sinLon, -sinLat},
	}

	return cgn.Mul(ceg)
}
