package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// SunEcliptical returns the apparent ecliptical position of the Sun at t,
// referred to the mean equinox of date. Low precision (about 0.01°); the
// latitude is taken as zero.
func SunEcliptical(t time.Time) EclipticalCoordinate {
	// Julian centuries from J2000.0
	T := (julian.TimeToJD(t.UTC()) - 2451545.0) / 36525.0

	// Geometric mean longitude and mean anomaly
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	M := unit.AngleFromDeg(357.52911 + 35999.05029*T - 0.0001537*T*T)

	// Equation of center
	C := (1.914602-0.004817*T-0.000014*T*T)*M.Sin() +
		(0.019993-0.000101*T)*math.Sin(2*M.Rad()) +
		0.000289*math.Sin(3*M.Rad())

	// Aberration and nutation in longitude
	Ω := unit.AngleFromDeg(125.04 - 1934.136*T)
	λ := L0 + C - 0.00569 - 0.00478*Ω.Sin()

	return NewEclipticalCoordinate(λ, 0)
}

// Elongation returns the angular distance of c from the Sun at t, in degrees.
//
//	cos E = cos β cos(λ − λ☉)
func Elongation(c EclipticalCoordinate, t time.Time) float64 {
	sun := SunEcliptical(t)
	dλ := unit.AngleFromDeg(c.Longitude() - sun.Longitude())
	β := unit.AngleFromDeg(c.Latitude())
	return unit.Angle(math.Acos(clampUnit(β.Cos() * dλ.Cos()))).Deg()
}
