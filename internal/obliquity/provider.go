// Package obliquity supplies the obliquity of the ecliptic needed to convert
// between ecliptical and equatorial coordinates.
package obliquity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"

	"github.com/litescript/ls-coords/internal/astro"
)

// ErrUnknownEquinox is returned by ParseEquinox for unrecognized names.
var ErrUnknownEquinox = errors.New("unknown equinox")

// Equinox selects which obliquity a conversion uses.
type Equinox int

const (
	EquinoxJ2000 Equinox = iota // Mean obliquity of J2000.0 (default)
	EquinoxB1950                // Mean obliquity of B1950.0
	EquinoxMean                 // Mean obliquity of date
	EquinoxTrue                 // Mean obliquity of date plus nutation in obliquity
)

var equinoxNames = [...]string{"j2000", "b1950", "mean", "true"}

// String returns the equinox name.
func (e Equinox) String() string {
	if e < 0 || int(e) >= len(equinoxNames) {
		return "unknown"
	}
	return equinoxNames[e]
}

// Next returns the following equinox, cycling back to J2000.
func (e Equinox) Next() Equinox {
	return Equinox((int(e) + 1) % len(equinoxNames))
}

// ParseEquinox parses an equinox name, case-insensitively.
// The empty string selects J2000.
func ParseEquinox(s string) (Equinox, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "j2000", "j2000.0":
		return EquinoxJ2000, nil
	case "b1950", "b1950.0":
		return EquinoxB1950, nil
	case "mean", "date":
		return EquinoxMean, nil
	case "true", "apparent":
		return EquinoxTrue, nil
	default:
		return EquinoxJ2000, fmt.Errorf("%w: %q", ErrUnknownEquinox, s)
	}
}

// Provider supplies the obliquity of the ecliptic, in degrees, at a time.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Obliquity returns the obliquity in degrees at t. Providers for a
	// fixed equinox ignore t.
	Obliquity(t time.Time) float64
}

// ForEquinox returns the provider for an equinox.
func ForEquinox(e Equinox) Provider {
	switch e {
	case EquinoxB1950:
		return Fixed{Label: EquinoxB1950.String(), Degrees: astro.ObliquityB1950}
	case EquinoxMean:
		return MeanProvider{}
	case EquinoxTrue:
		return TrueProvider{}
	default:
		return Fixed{Label: EquinoxJ2000.String(), Degrees: astro.ObliquityJ2000}
	}
}

// Fixed is a constant obliquity, either a standard equinox or a value
// supplied by the caller.
type Fixed struct {
	Label   string
	Degrees float64
}

// Name implements Provider.
func (f Fixed) Name() string {
	if f.Label == "" {
		return fmt.Sprintf("fixed %.7f°", f.Degrees)
	}
	return f.Label
}

// Obliquity implements Provider.
func (f Fixed) Obliquity(time.Time) float64 { return f.Degrees }

// MeanProvider computes the mean obliquity of date.
type MeanProvider struct{}

// Name implements Provider.
func (MeanProvider) Name() string { return EquinoxMean.String() }

// Obliquity implements Provider.
func (MeanProvider) Obliquity(t time.Time) float64 { return MeanObliquity(t) }

// TrueProvider computes the true obliquity of date.
type TrueProvider struct{}

// Name implements Provider.
func (TrueProvider) Name() string { return EquinoxTrue.String() }

// Obliquity implements Provider.
func (TrueProvider) Obliquity(t time.Time) float64 { return TrueObliquity(t) }

// jde returns the Julian ephemeris day for t. UTC stands in for dynamical
// time; the difference (about a minute) is far below what the obliquity
// polynomials resolve.
func jde(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// MeanObliquity returns the IAU 1980 mean obliquity of the ecliptic at t, in degrees.
func MeanObliquity(t time.Time) float64 {
	return nutation.MeanObliquity(jde(t)).Deg()
}

// NutationInObliquity returns Δε at t, in degrees.
func NutationInObliquity(t time.Time) float64 {
	_, Δε := nutation.Nutation(jde(t))
	return Δε.Deg()
}

// TrueObliquity returns the mean obliquity plus nutation in obliquity at t, in degrees.
func TrueObliquity(t time.Time) float64 {
	j := jde(t)
	_, Δε := nutation.Nutation(j)
	return (nutation.MeanObliquity(j) + Δε).Deg()
}
