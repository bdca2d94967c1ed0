package astro

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/solar"
)

func TestSunEcliptical_Meeus25a(t *testing.T) {
	// 1992 October 13.0: apparent λ☉ = 199.90895°.
	got := SunEcliptical(time.Date(1992, 10, 13, 0, 0, 0, 0, time.UTC))

	if math.Abs(got.Longitude()-199.90895) > 1e-4 {
		t.Errorf("λ☉ = %.5f, want 199.90895", got.Longitude())
	}
	if got.Latitude() != 0 {
		t.Errorf("β☉ = %v, want 0", got.Latitude())
	}

	eq := got.ToEquatorial(23.43999)
	if math.Abs(eq.RightAscensionDeg()-198.38083) > 0.01 {
		t.Errorf("α☉ = %.5f°, want ≈198.38083", eq.RightAscensionDeg())
	}
	if math.Abs(eq.Declination()-(-7.78507)) > 0.01 {
		t.Errorf("δ☉ = %.5f°, want ≈-7.78507", eq.Declination())
	}
}

func TestSunEcliptical_Seasons(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want float64
	}{
		{"March equinox 2024", time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC), 0},
		{"June solstice 2024", time.Date(2024, 6, 20, 20, 51, 0, 0, time.UTC), 90},
		{"September equinox 2024", time.Date(2024, 9, 22, 12, 44, 0, 0, time.UTC), 180},
		{"December solstice 2024", time.Date(2024, 12, 21, 9, 20, 0, 0, time.UTC), 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lon := SunEcliptical(tt.time).Longitude()
			diff := math.Abs(lon - tt.want)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > 0.02 {
				t.Errorf("λ☉ = %.4f, want %.0f", lon, tt.want)
			}
		})
	}
}

func TestSunEcliptical_AgreesWithMeeus(t *testing.T) {
	for _, at := range []time.Time{
		time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2031, 8, 5, 18, 30, 0, 0, time.UTC),
	} {
		jd := julian.TimeToJD(at)
		_, Δε := nutation.Nutation(jd)
		eps := (nutation.MeanObliquity(jd) + Δε).Deg()

		got := SunEcliptical(at).ToEquatorial(eps)
		ra, dec := solar.ApparentEquatorial(jd)

		dRA := math.Abs(got.RightAscensionDeg() - ra.Deg())
		if dRA > 180 {
			dRA = 360 - dRA
		}
		if dRA > 0.01 || math.Abs(got.Declination()-dec.Deg()) > 0.01 {
			t.Errorf("%s: α=%.4f° δ=%.4f°, meeus α=%.4f° δ=%.4f°",
				at.Format("2006-01-02"), got.RightAscensionDeg(), got.Declination(), ra.Deg(), dec.Deg())
		}
	}
}

func TestElongation(t *testing.T) {
	at := time.Date(1992, 10, 13, 0, 0, 0, 0, time.UTC)
	sun := SunEcliptical(at)

	tests := []struct {
		name string
		c    EclipticalCoordinate
		want float64
	}{
		{"the Sun itself", sun, 0},
		{"quadrature", sun.WithLongitude(sun.Longitude() + 90), 90},
		{"opposition", sun.WithLongitude(sun.Longitude() + 180), 180},
		{"north of the Sun", sun.WithLatitude(10), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Elongation(tt.c, at); math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("Elongation = %v, want %v", got, tt.want)
			}
		})
	}
}
