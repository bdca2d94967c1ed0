package astro

import "fmt"

// Fixed intervals of the coordinate kinds.
var (
	geoLongitudeBounds = Bounds{Min: -180, Max: 180}
	eclLongitudeBounds = Bounds{Min: 0, Max: 360}
	latitudeBounds     = Bounds{Min: -90, Max: 90}
	raBounds           = Bounds{Min: 0, Max: 24, HalfOpen: true}
)

// GeographicalCoordinate is an observer location on Earth.
// Longitude is east positive in [-180, 180], latitude north positive in [-90, 90].
type GeographicalCoordinate struct {
	BoundedPair
}

// NewGeographicalCoordinate returns the location with both values wrapped into range.
func NewGeographicalCoordinate(lonDeg, latDeg float64) GeographicalCoordinate {
	return GeographicalCoordinate{mustPair(geoLongitudeBounds, latitudeBounds, lonDeg, latDeg)}
}

// Longitude returns the geographical longitude in degrees.
func (c GeographicalCoordinate) Longitude() float64 { return c.Value1() }

// Latitude returns the geographical latitude in degrees.
func (c GeographicalCoordinate) Latitude() float64 { return c.Value2() }

// WithLongitude returns a copy with the longitude replaced.
func (c GeographicalCoordinate) WithLongitude(lonDeg float64) GeographicalCoordinate {
	return GeographicalCoordinate{c.WithValue1(lonDeg)}
}

// WithLatitude returns a copy with the latitude replaced.
func (c GeographicalCoordinate) WithLatitude(latDeg float64) GeographicalCoordinate {
	return GeographicalCoordinate{c.WithValue2(latDeg)}
}

// PrintLongitude returns the longitude in degrees, minutes and seconds.
func (c GeographicalCoordinate) PrintLongitude() string { return FormatDegrees(c.Longitude()) }

// PrintLatitude returns the latitude in degrees, minutes and seconds.
func (c GeographicalCoordinate) PrintLatitude() string { return FormatDegrees(c.Latitude()) }

func (c GeographicalCoordinate) String() string {
	return fmt.Sprintf("lon %s, lat %s", c.PrintLongitude(), c.PrintLatitude())
}

// EclipticalCoordinate is a position relative to the plane of Earth's orbit.
// Longitude is in [0, 360] degrees, latitude in [-90, 90] degrees.
type EclipticalCoordinate struct {
	BoundedPair
}

// NewEclipticalCoordinate returns the position with both values wrapped into range.
func NewEclipticalCoordinate(lonDeg, latDeg float64) EclipticalCoordinate {
	return EclipticalCoordinate{mustPair(eclLongitudeBounds, latitudeBounds, lonDeg, latDeg)}
}

// Longitude returns the ecliptical longitude λ in degrees.
func (c EclipticalCoordinate) Longitude() float64 { return c.Value1() }

// Latitude returns the ecliptical latitude β in degrees.
func (c EclipticalCoordinate) Latitude() float64 { return c.Value2() }

// WithLongitude returns a copy with the longitude replaced.
func (c EclipticalCoordinate) WithLongitude(lonDeg float64) EclipticalCoordinate {
	return EclipticalCoordinate{c.WithValue1(lonDeg)}
}

// WithLatitude returns a copy with the latitude replaced.
func (c EclipticalCoordinate) WithLatitude(latDeg float64) EclipticalCoordinate {
	return EclipticalCoordinate{c.WithValue2(latDeg)}
}

// PrintLongitude returns the longitude in degrees, minutes and seconds.
func (c EclipticalCoordinate) PrintLongitude() string { return FormatDegrees(c.Longitude()) }

// PrintLatitude returns the latitude in degrees, minutes and seconds.
func (c EclipticalCoordinate) PrintLatitude() string { return FormatDegrees(c.Latitude()) }

func (c EclipticalCoordinate) String() string {
	return fmt.Sprintf("λ %s, β %s", c.PrintLongitude(), c.PrintLatitude())
}

// EquatorialCoordinate is a position relative to the celestial equator.
// Right ascension is in hours, [0, 24); declination in degrees, [-90, 90].
type EquatorialCoordinate struct {
	BoundedPair
}

// NewEquatorialCoordinate returns the position with both values wrapped into range.
func NewEquatorialCoordinate(raHours, decDeg float64) EquatorialCoordinate {
	return EquatorialCoordinate{mustPair(raBounds, latitudeBounds, raHours, decDeg)}
}

// RightAscension returns α in hours.
func (c EquatorialCoordinate) RightAscension() float64 { return c.Value1() }

// RightAscensionDeg returns α in degrees.
func (c EquatorialCoordinate) RightAscensionDeg() float64 { return c.Value1() * 15 }

// Declination returns δ in degrees.
func (c EquatorialCoordinate) Declination() float64 { return c.Value2() }

// WithRightAscension returns a copy with the right ascension (hours) replaced.
func (c EquatorialCoordinate) WithRightAscension(raHours float64) EquatorialCoordinate {
	return EquatorialCoordinate{c.WithValue1(raHours)}
}

// WithDeclination returns a copy with the declination replaced.
func (c EquatorialCoordinate) WithDeclination(decDeg float64) EquatorialCoordinate {
	return EquatorialCoordinate{c.WithValue2(decDeg)}
}

// PrintRightAscension returns α in hours, minutes and seconds.
func (c EquatorialCoordinate) PrintRightAscension() string { return FormatRightAscension(c.RightAscension()) }

// PrintDeclination returns δ in degrees, minutes and seconds.
func (c EquatorialCoordinate) PrintDeclination() string { return FormatDegrees(c.Declination()) }

func (c EquatorialCoordinate) String() string {
	return fmt.Sprintf("α %s, δ %s", c.PrintRightAscension(), c.PrintDeclination())
}
