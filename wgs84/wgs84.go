// Package wgs84 defines the WGS-84 ellipsoid and gravity constants used by
// every coordinate transform in this module.
//
// The values are a stable public contract: downstream navigation math
// (mechanization equations, gravity models, Schuler tuning) depends on the
// exact published numbers, so they must never be "improved" to higher
// precision or swapped for values derived from one another.
package wgs84

// Ellipsoid parameters.
const (
	// SemiMajorAxis is the equatorial radius RE in meters.
	SemiMajorAxis = 6378137.0

	// Flattening of the reference ellipsoid.
	Flattening = 0.00335281066475

	// E2 is the first eccentricity squared.
	//
	// Flattening and E2 are independently rounded published values, so
	// E2 == Flattening*(2-Flattening) only holds to about 1e-12.
	E2 = 0.00669437999014

	// SemiMinorAxis is the polar radius b in meters, derived from the
	// semi-major axis and flattening.
	SemiMinorAxis = SemiMajorAxis * (1 - Flattening)

	// EP2 is the second eccentricity squared, (RE²-b²)/b².
	EP2 = (SemiMajorAxis*SemiMajorAxis - SemiMinorAxis*SemiMinorAxis) /
		(SemiMinorAxis * SemiMinorAxis)
)

// Rotation, gravity, and dynamics parameters.
const (
	// Rate is the Earth rotation rate in rad/s.
	Rate = 7.2921157e-5

	// SchulerFreq is the Schuler frequency in rad/s (84.4 minute period).
	SchulerFreq = 1.2383e-3

	// MU is the Earth gravitational parameter in m³/s².
	MU = 3.986004418e14

	// G0 is the ellipsoid gravity at the equator in m/s².
	G0 = 9.7803253359

	// Gravity is the nominal reference gravity in m/s².
	Gravity = 9.81
)

// Model names the reference ellipsoid these constants describe.
const Model = "WGS84"
