// Package transform implements the coordinate conversions used by inertial
// navigation code: closed-form ECEF↔LLH, direction cosine matrices with
// wander azimuth, and local tangent-plane navigation frames (NED, ENU,
// wander).
//
// Unit conventions are part of each function's contract. The LLH conversion
// functions take and return latitude/longitude in degrees; LLHToDCM takes
// radians. Parameter names carry the unit (latDeg vs latRad) so a mismatch
// is visible at the call site.
//
// Every function here is a pure, deterministic computation with no internal
// state, so the whole package is safe for concurrent use without
// coordination.
//
// Reference: Bowring, "Transformation from spatial to geographical
// coordinates" (1976); Vallado, "Fundamentals of Astrodynamics and
// Applications", Section 3.4.
package transform

import (
	"math"

	"github.com/bhsphd/ins-nav/wgs84"
)

// Angle conversion factors.
const (
	Deg2Rad = math.Pi / 180.0
	Rad2Deg = 180.0 / math.Pi
)

// LLH holds a geodetic position: latitude and longitude in degrees,
// altitude in meters above the WGS-84 ellipsoid.
type LLH struct {
	LatDeg, LonDeg, AltM float64
}

// IsFinite reports whether all three components are finite.
func (l LLH) IsFinite() bool {
	return allFinite(l.LatDeg, l.LonDeg, l.AltM)
}

// ECEFToLLH converts an ECEF position (meters) to geodetic coordinates
// using Bowring's closed-form approximation. Single pass, no iteration;
// accurate to well under a millimeter at the Earth's surface and to a few
// millimeters at low-orbit altitudes.
//
// At the poles (x=y=0) longitude is undefined and comes back 0 by the
// atan2 convention. Non-finite inputs propagate to the output per
// IEEE-754; callers that want rejection screen with IsFiniteECEF first.
func ECEFToLLH(x, y, z float64) LLH {
	p := math.Sqrt(x*x + y*y)

	// Parametric latitude on the Bowring auxiliary sphere.
	theta := math.Atan2(z*wgs84.SemiMajorAxis, p*wgs84.SemiMinorAxis)
	sinTheta := math.Sin(theta)
	cosTheta := math.Cos(theta)

	lon := math.Atan2(y, x)
	lat := math.Atan2(
		z+wgs84.EP2*wgs84.SemiMinorAxis*sinTheta*sinTheta*sinTheta,
		p-wgs84.E2*wgs84.SemiMajorAxis*cosTheta*cosTheta*cosTheta,
	)

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)

	// Radius of curvature in the prime vertical.
	n := wgs84.SemiMajorAxis / math.Sqrt(1-wgs84.E2*sinLat*sinLat)

	// p/cos(lat) loses all precision near the poles; switch to the
	// z-based form there.
	var alt float64
	if math.Abs(cosLat) > 1e-10 {
		alt = p/cosLat - n
	} else {
		alt = math.Abs(z)/math.Abs(sinLat) - n*(1-wgs84.E2)
	}

	return LLH{
		LatDeg: lat * Rad2Deg,
		LonDeg: lon * Rad2Deg,
		AltM:   alt,
	}
}

// LLHToECEF converts a geodetic position (latitude/longitude in degrees,
// altitude in meters) to ECEF meters. Inverse of ECEFToLLH up to
// floating-point rounding.
func LLHToECEF(latDeg, lonDeg, altM float64) (x, y, z float64) {
	lat := latDeg * Deg2Rad
	lon := lonDeg * Deg2Rad

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	sinLon := math.Sin(lon)
	cosLon := math.Cos(lon)

	// Radius of curvature in the prime vertical.
	n := wgs84.SemiMajorAxis / math.Sqrt(1-wgs84.E2*sinLat*sinLat)

	x = (n + altM) * cosLat * cosLon
	y = (n + altM) * cosLat * sinLon
	z = (n*(1-wgs84.E2) + altM) * sinLat
	return x, y, z
}

// MeridionalRadius returns the meridional (north-south) radius of curvature
// in meters at the given geodetic latitude in radians. Mechanization code
// divides north velocity by this radius plus altitude to get latitude rate.
func MeridionalRadius(latRad float64) float64 {
	sinLat := math.Sin(latRad)
	d := 1 - wgs84.E2*sinLat*sinLat
	return wgs84.SemiMajorAxis * (1 - wgs84.E2) / (d * math.Sqrt(d))
}

// NormalRadius returns the prime-vertical (east-west) radius of curvature
// in meters at the given geodetic latitude in radians.
func NormalRadius(latRad float64) float64 {
	sinLat := math.Sin(latRad)
	return wgs84.SemiMajorAxis / math.Sqrt(1-wgs84.E2*sinLat*sinLat)
}

// IsFiniteECEF reports whether all three components are finite. The
// conversion functions never reject input; callers that validate before
// converting use this.
func IsFiniteECEF(x, y, z float64) bool {
	return allFinite(x, y, z)
}

func allFinite(a, b, c float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0) &&
		!math.IsNaN(b) && !math.IsInf(b, 0) &&
		!math.IsNaN(c) && !math.IsInf(c, 0)
}
