package transform

import "math"

// FrameKind discriminates the axis convention of a navigation frame.
type FrameKind uint8

const (
	// NED orders axes North, East, Down.
	NED FrameKind = iota
	// ENU orders axes East, North, Up.
	ENU
	// WanderAzimuth is a local-level frame rotated about its vertical by
	// a wander angle.
	WanderAzimuth
)

// String returns the conventional name of the frame kind.
func (k FrameKind) String() string {
	switch k {
	case NED:
		return "NED"
	case ENU:
		return "ENU"
	case WanderAzimuth:
		return "wander"
	default:
		return "unknown"
	}
}

// Frame is a local tangent-plane navigation frame: an ECEF origin, the
// rotation R from ECEF into the local frame at that origin, and the axis
// convention. Frames are immutable values; build them with one of the
// factories and share them freely across goroutines.
type Frame struct {
	Origin Vec3
	R      Mat3
	Kind   FrameKind
}

// ECEFToNav resolves an ECEF point (meters) into frame coordinates:
// R·(p − origin). The origin itself maps to the zero vector.
func (f Frame) ECEFToNav(p Vec3) Vec3 {
	return f.R.MulVec(p.Sub(f.Origin))
}

// NavToECEF resolves a frame-local point back to ECEF: Rᵗ·p + origin.
// Exact inverse of ECEFToNav for the same frame.
func (f Frame) NavToECEF(p Vec3) Vec3 {
	return f.R.Transpose().MulVec(p).Add(f.Origin)
}

// Equal reports whether two frames have the same axis convention.
//
// Origin and rotation are deliberately NOT compared: two NED frames at
// opposite ends of the Earth are Equal. The check answers "may vectors
// resolved in these frames be mixed", not "is this the same physical
// frame"; compare Origin and R yourself if you need the latter.
func (f Frame) Equal(other Frame) bool {
	return f.Kind == other.Kind
}

// nedRotation builds the ECEF→NED rotation at a geodetic position.
// Rows are the North, East, and Down unit vectors expressed in ECEF.
func nedRotation(latRad, lonRad float64) Mat3 {
	sinLat := math.Sin(latRad)
	cosLat := math.Cos(latRad)
	sinLon := math.Sin(lonRad)
	cosLon := math.Cos(lonRad)

	return Mat3{
		{-sinLat * cosLon, -sinLat * sinLon, cosLat},
		{-sinLon, cosLon, 0},
		{-cosLat * cosLon, -cosLat * sinLon, -sinLat},
	}
}

// enuRotation builds the ECEF→ENU rotation at a geodetic position.
// Rows are the East, North, and Up unit vectors expressed in ECEF.
func enuRotation(latRad, lonRad float64) Mat3 {
	sinLat := math.Sin(latRad)
	cosLat := math.Cos(latRad)
	sinLon := math.Sin(lonRad)
	cosLon := math.Cos(lonRad)

	return Mat3{
		{-sinLon, cosLon, 0},
		{-sinLat * cosLon, -sinLat * sinLon, cosLat},
		{cosLat * cosLon, cosLat * sinLon, sinLat},
	}
}

// NEDFromLLH builds a North-East-Down frame at a geodetic position
// (latitude/longitude in degrees, altitude in meters).
func NEDFromLLH(latDeg, lonDeg, altM float64) Frame {
	x, y, z := LLHToECEF(latDeg, lonDeg, altM)
	return Frame{
		Origin: Vec3{X: x, Y: y, Z: z},
		R:      nedRotation(latDeg*Deg2Rad, lonDeg*Deg2Rad),
		Kind:   NED,
	}
}

// NEDFromECEF builds a North-East-Down frame at an ECEF position (meters).
// The frame origin is exactly the given point; only the rotation goes
// through the geodetic conversion, so no double-conversion error is
// introduced.
func NEDFromECEF(x, y, z float64) Frame {
	llh := ECEFToLLH(x, y, z)
	return Frame{
		Origin: Vec3{X: x, Y: y, Z: z},
		R:      nedRotation(llh.LatDeg*Deg2Rad, llh.LonDeg*Deg2Rad),
		Kind:   NED,
	}
}

// ENUFromLLH builds an East-North-Up frame at a geodetic position
// (latitude/longitude in degrees, altitude in meters).
func ENUFromLLH(latDeg, lonDeg, altM float64) Frame {
	x, y, z := LLHToECEF(latDeg, lonDeg, altM)
	return Frame{
		Origin: Vec3{X: x, Y: y, Z: z},
		R:      enuRotation(latDeg*Deg2Rad, lonDeg*Deg2Rad),
		Kind:   ENU,
	}
}

// ENUFromECEF builds an East-North-Up frame at an ECEF position (meters).
// The frame origin is exactly the given point, as with NEDFromECEF.
func ENUFromECEF(x, y, z float64) Frame {
	llh := ECEFToLLH(x, y, z)
	return Frame{
		Origin: Vec3{X: x, Y: y, Z: z},
		R:      enuRotation(llh.LatDeg*Deg2Rad, llh.LonDeg*Deg2Rad),
		Kind:   ENU,
	}
}

// WanderFromLLH builds a wander-azimuth frame at a geodetic position
// (latitude/longitude in degrees, altitude in meters). The rotation is the
// NED rotation turned about the local vertical by the wander angle; with
// WanderZero the axes coincide with NED.
func WanderFromLLH(latDeg, lonDeg, altM float64, w WanderAngle) Frame {
	x, y, z := LLHToECEF(latDeg, lonDeg, altM)
	return Frame{
		Origin: Vec3{X: x, Y: y, Z: z},
		R:      LLHToDCM(latDeg*Deg2Rad, lonDeg*Deg2Rad, altM, w),
		Kind:   WanderAzimuth,
	}
}

// WanderFromECEF builds a wander-azimuth frame at an ECEF position
// (meters). The frame origin is exactly the given point.
func WanderFromECEF(x, y, z float64, w WanderAngle) Frame {
	llh := ECEFToLLH(x, y, z)
	return Frame{
		Origin: Vec3{X: x, Y: y, Z: z},
		R:      LLHToDCM(llh.LatDeg*Deg2Rad, llh.LonDeg*Deg2Rad, llh.AltM, w),
		Kind:   WanderAzimuth,
	}
}
