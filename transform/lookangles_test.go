package transform

import (
	"math"
	"testing"
)

func TestLookAnglesTo_Overhead(t *testing.T) {
	// Target 400 km straight above the frame origin.
	f := NEDFromLLH(45, -93, 250)
	la := f.LookAnglesTo(vecLLH(45, -93, 400250))

	if math.Abs(la.ElevationDeg-90) > 0.01 {
		t.Errorf("overhead elevation = %.4f deg, want ~90", la.ElevationDeg)
	}
	if math.Abs(la.RangeM-400000) > 1.0 {
		t.Errorf("overhead range = %.3f m, want ~400000", la.RangeM)
	}
}

func TestLookAnglesTo_AzimuthDirections(t *testing.T) {
	f := NEDFromLLH(45, -93, 250)

	// North: azimuth near 0/360.
	laN := f.LookAnglesTo(vecLLH(45.01, -93, 250))
	if laN.AzimuthDeg > 1 && laN.AzimuthDeg < 359 {
		t.Errorf("northward azimuth = %.4f deg, want near 0/360", laN.AzimuthDeg)
	}
	// A surface target at the same height sits slightly below the horizon:
	// the ellipsoid curves away under the tangent plane.
	if laN.ElevationDeg >= 0 || laN.ElevationDeg < -1 {
		t.Errorf("northward elevation = %.4f deg, want slightly negative", laN.ElevationDeg)
	}

	// East: azimuth near 90.
	laE := f.LookAnglesTo(vecLLH(45, -92.99, 250))
	if math.Abs(laE.AzimuthDeg-90) > 0.1 {
		t.Errorf("eastward azimuth = %.4f deg, want ~90", laE.AzimuthDeg)
	}

	// South: azimuth near 180.
	laS := f.LookAnglesTo(vecLLH(44.99, -93, 250))
	if math.Abs(laS.AzimuthDeg-180) > 0.1 {
		t.Errorf("southward azimuth = %.4f deg, want ~180", laS.AzimuthDeg)
	}

	// West: azimuth near 270.
	laW := f.LookAnglesTo(vecLLH(45, -93.01, 250))
	if math.Abs(laW.AzimuthDeg-270) > 0.1 {
		t.Errorf("westward azimuth = %.4f deg, want ~270", laW.AzimuthDeg)
	}
}

func TestLookAnglesTo_ENUMatchesNED(t *testing.T) {
	// Look angles are a property of the site, not the axis convention:
	// NED and ENU frames at the same origin must agree.
	ned := NEDFromLLH(40.7128, -74.006, 10)
	enu := ENUFromLLH(40.7128, -74.006, 10)
	target := Vec3{X: 6778000, Y: 0, Z: 0}

	a := ned.LookAnglesTo(target)
	b := enu.LookAnglesTo(target)

	if math.Abs(a.AzimuthDeg-b.AzimuthDeg) > 1e-9 ||
		math.Abs(a.ElevationDeg-b.ElevationDeg) > 1e-9 ||
		math.Abs(a.RangeM-b.RangeM) > 1e-6 {
		t.Errorf("NED %+v and ENU %+v disagree", a, b)
	}
	if a.RangeM <= 0 {
		t.Errorf("range should be positive, got %.3f m", a.RangeM)
	}
}

func TestLookAnglesTo_WanderGridAzimuth(t *testing.T) {
	// In a wander frame the azimuth is measured from the grid +X axis,
	// which sits wander degrees away from true north: a target due north
	// reads 360-w.
	w := 30.0
	f := WanderFromLLH(45, -93, 250, Wander(w*Deg2Rad))
	la := f.LookAnglesTo(vecLLH(45.01, -93, 250))

	if math.Abs(la.AzimuthDeg-(360-w)) > 0.1 {
		t.Errorf("grid azimuth = %.4f deg, want ~%.0f", la.AzimuthDeg, 360-w)
	}
}

func TestLookAnglesTo_ZeroRange(t *testing.T) {
	f := ENUFromLLH(45, -93, 250)
	la := f.LookAnglesTo(f.Origin)

	want := LookAngles{AzimuthDeg: 0, ElevationDeg: 90, RangeM: 0}
	if la != want {
		t.Errorf("zero-range look angles = %+v, want %+v", la, want)
	}
}
