package astro

import "strings"

// Star is a cataloged star with its J2000 position.
type Star struct {
	Name     string
	Position EquatorialCoordinate
	Mag      float64 // Apparent visual magnitude (lower = brighter)
}

// Ecliptical returns the star's ecliptical position for the given obliquity.
// Catalog positions are J2000; other obliquities ignore precession.
func (s Star) Ecliptical(obliquityDeg float64) EclipticalCoordinate {
	return s.Position.ToEcliptical(obliquityDeg)
}

// StarCatalog holds a collection of named stars.
type StarCatalog struct {
	Stars []Star
}

// DefaultStarCatalog returns the brightest stars plus the zodiacal stars
// that lie close to the ecliptic, ordered by magnitude.
func DefaultStarCatalog() StarCatalog {
	return StarCatalog{Stars: defaultStars}
}

// Find looks a star up by name, ignoring case.
func (c StarCatalog) Find(name string) (Star, bool) {
	for _, s := range c.Stars {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Star{}, false
}

// NearEcliptic returns the stars whose ecliptic latitude is within maxLatDeg.
func (c StarCatalog) NearEcliptic(maxLatDeg, obliquityDeg float64) []Star {
	var out []Star
	for _, s := range c.Stars {
		lat := s.Ecliptical(obliquityDeg).Latitude()
		if lat >= -maxLatDeg && lat <= maxLatDeg {
			out = append(out, s)
		}
	}
	return out
}

// star builds a catalog entry from RA in degrees.
func star(name string, raDeg, decDeg, mag float64) Star {
	return Star{Name: name, Position: NewEquatorialCoordinate(raDeg/15, decDeg), Mag: mag}
}

var defaultStars = []Star{
	// Brighter than magnitude 1
	star("Sirius", 101.287, -16.716, -1.46),
	star("Canopus", 95.988, -52.696, -0.74),
	star("Arcturus", 213.915, 19.182, -0.05),
	star("Vega", 279.235, 38.784, 0.03),
	star("Capella", 79.172, 45.998, 0.08),
	star("Rigel", 78.634, -8.202, 0.13),
	star("Procyon", 114.826, 5.225, 0.34),
	star("Achernar", 24.429, -57.237, 0.46),
	star("Betelgeuse", 88.793, 7.407, 0.50),
	star("Altair", 297.696, 8.868, 0.76),
	star("Aldebaran", 68.980, 16.509, 0.85),
	star("Antares", 247.352, -26.432, 0.96),
	star("Spica", 201.298, -11.161, 0.97),

	// Magnitude 1 to 2
	star("Pollux", 116.329, 28.026, 1.14),
	star("Fomalhaut", 344.413, -29.622, 1.16),
	star("Deneb", 310.358, 45.280, 1.25),
	star("Regulus", 152.093, 11.967, 1.35),
	star("Castor", 113.650, 31.889, 1.58),
	star("Shaula", 263.402, -37.104, 1.63),
	star("Elnath", 81.573, 28.608, 1.65),
	star("Alhena", 99.428, 16.399, 1.93),
	star("Polaris", 37.954, 89.264, 1.98),

	// Zodiacal, magnitude 2 and fainter
	star("Hamal", 31.793, 23.463, 2.00),
	star("Nunki", 283.816, -26.297, 2.02),
	star("Denebola", 177.265, 14.572, 2.13),
	star("Dschubba", 240.083, -22.622, 2.32),
	star("Zubeneschamali", 229.252, -9.383, 2.61),
	star("Acrab", 241.359, -19.805, 2.62),
	star("Sheratan", 28.660, 20.808, 2.64),
	star("Porrima", 190.415, -1.449, 2.74),
	star("Zubenelgenubi", 222.720, -16.042, 2.75),
	star("Vindemiatrix", 195.544, 10.959, 2.83),
	star("Alcyone", 56.871, 24.105, 2.87),
	star("Tejat", 95.740, 22.513, 2.88),
	star("Sadalsuud", 322.890, -5.571, 2.91),
	star("Mebsuta", 100.983, 25.131, 3.06),
	star("Propus", 93.719, 22.506, 3.28),
	star("Chertan", 168.560, 15.430, 3.33),
	star("Wasat", 110.031, 21.982, 3.53),
	star("Zavijava", 177.674, 1.765, 3.61),
	star("Asellus Australis", 131.171, 18.154, 3.94),
	star("Acubens", 134.622, 11.858, 4.25),
	star("Alterf", 139.711, 22.968, 4.31),
	star("Asellus Borealis", 130.821, 21.469, 4.66),
}
