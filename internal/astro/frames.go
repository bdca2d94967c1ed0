package astro

import (
	"math"

	"github.com/soniakeys/unit"
)

// Mean obliquity of the ecliptic at the standard equinoxes, in degrees.
const (
	ObliquityJ2000 = 23.4392911
	ObliquityB1950 = 23.4457889
)

// ToEquatorial converts c to equatorial coordinates for the given obliquity
// of the ecliptic in degrees. Pass the true obliquity (mean plus nutation in
// obliquity) for apparent positions, or a mean obliquity for an equinox.
//
//	α = atan2(sin λ cos ε − tan β sin ε, cos λ)
//	δ = asin(sin β cos ε + cos β sin ε sin λ)
//
// The result is wrapped into [0, 24) hours by the equatorial constructor.
func (c EclipticalCoordinate) ToEquatorial(obliquityDeg float64) EquatorialCoordinate {
	sλ, cλ := unit.AngleFromDeg(c.Longitude()).Sincos()
	β := unit.AngleFromDeg(c.Latitude())
	sβ, cβ := β.Sincos()
	sε, cε := unit.AngleFromDeg(obliquityDeg).Sincos()

	α := unit.Angle(math.Atan2(sλ*cε-β.Tan()*sε, cλ))
	δ := unit.Angle(math.Asin(clampUnit(sβ*cε + cβ*sε*sλ)))

	return NewEquatorialCoordinate(α.Deg()/15, δ.Deg())
}

// ToEquatorialJ2000 converts c using the mean obliquity of J2000.0.
func (c EclipticalCoordinate) ToEquatorialJ2000() EquatorialCoordinate {
	return c.ToEquatorial(ObliquityJ2000)
}

// ToEquatorialB1950 converts c using the mean obliquity of B1950.0.
func (c EclipticalCoordinate) ToEquatorialB1950() EquatorialCoordinate {
	return c.ToEquatorial(ObliquityB1950)
}

// ToEcliptical converts c back to ecliptical coordinates for the given
// obliquity in degrees. It inverts ToEquatorial:
//
//	λ = atan2(sin α cos ε + tan δ sin ε, cos α)
//	β = asin(sin δ cos ε − cos δ sin ε sin α)
func (c EquatorialCoordinate) ToEcliptical(obliquityDeg float64) EclipticalCoordinate {
	sα, cα := unit.AngleFromDeg(c.RightAscensionDeg()).Sincos()
	δ := unit.AngleFromDeg(c.Declination())
	sδ, cδ := δ.Sincos()
	sε, cε := unit.AngleFromDeg(obliquityDeg).Sincos()

	λ := unit.Angle(math.Atan2(sα*cε+δ.Tan()*sε, cα))
	β := unit.Angle(math.Asin(clampUnit(sδ*cε - cδ*sε*sα)))

	return NewEclipticalCoordinate(λ.Deg(), β.Deg())
}

// ToEclipticalJ2000 converts c using the mean obliquity of J2000.0.
func (c EquatorialCoordinate) ToEclipticalJ2000() EclipticalCoordinate {
	return c.ToEcliptical(ObliquityJ2000)
}

// ToEclipticalB1950 converts c using the mean obliquity of B1950.0.
func (c EquatorialCoordinate) ToEclipticalB1950() EclipticalCoordinate {
	return c.ToEcliptical(ObliquityB1950)
}

// Separation returns the angular distance between two equatorial positions
// in degrees, using the haversine form (stable for small separations).
func Separation(a, b EquatorialCoordinate) float64 {
	α1 := unit.AngleFromDeg(a.RightAscensionDeg())
	δ1 := unit.AngleFromDeg(a.Declination())
	α2 := unit.AngleFromDeg(b.RightAscensionDeg())
	δ2 := unit.AngleFromDeg(b.Declination())

	dα := (α2 - α1).Rad()
	dδ := (δ2 - δ1).Rad()

	h := math.Sin(dδ/2)*math.Sin(dδ/2) +
		δ1.Cos()*δ2.Cos()*math.Sin(dα/2)*math.Sin(dα/2)

	return unit.Angle(2 * math.Asin(math.Sqrt(clampUnit(h)))).Deg()
}

// clampUnit clamps x to [-1, 1] to absorb rounding before asin.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}
