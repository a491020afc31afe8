package transform

import "math"

// LookAngles holds azimuth, elevation, and range from a frame origin to a
// target point.
type LookAngles struct {
	AzimuthDeg   float64 // 0 = North, clockwise
	ElevationDeg float64 // 0 = horizon, 90 = zenith
	RangeM       float64
}

// LookAnglesTo computes azimuth, elevation, and range from the frame origin
// to a target given in ECEF meters.
//
// Azimuth is measured clockwise from the frame's north axis. For Wander
// frames that axis is the grid +X axis, so the result is a grid azimuth,
// offset from true north by the wander angle. A target at the origin has
// no direction; by convention it comes back as azimuth 0, elevation 90,
// range 0.
func (f Frame) LookAnglesTo(target Vec3) LookAngles {
	p := f.ECEFToNav(target)

	var north, east, up float64
	switch f.Kind {
	case ENU:
		east, north, up = p.X, p.Y, p.Z
	default:
		// NED and wander frames are both north-east-down ordered.
		north, east, up = p.X, p.Y, -p.Z
	}

	rangeMag := p.Norm()
	if rangeMag == 0 {
		return LookAngles{AzimuthDeg: 0, ElevationDeg: 90, RangeM: 0}
	}

	el := math.Atan2(up, math.Sqrt(north*north+east*east))

	// Azimuth measured clockwise from north.
	az := math.Atan2(east, north)
	if az < 0 {
		az += 2 * math.Pi
	}

	return LookAngles{
		AzimuthDeg:   az * Rad2Deg,
		ElevationDeg: el * Rad2Deg,
		RangeM:       rangeMag,
	}
}
