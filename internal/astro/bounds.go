// Package astro provides astronomical coordinate types and the conversions
// between them.
package astro

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBounds is returned when an interval is empty, inverted or not finite.
var ErrInvalidBounds = errors.New("invalid bounds")

// Bounds is the legal interval of one angular value.
//
// The interval is closed at both ends unless HalfOpen is set, in which case
// Max itself is excluded (right ascension: 24h is the same as 0h).
type Bounds struct {
	Min      float64
	Max      float64
	HalfOpen bool
}

// NewBounds returns the closed interval [min, max].
func NewBounds(min, max float64) (Bounds, error) {
	b := Bounds{Min: min, Max: max}
	if err := b.validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// NewHalfOpenBounds returns the interval [min, max).
func NewHalfOpenBounds(min, max float64) (Bounds, error) {
	b := Bounds{Min: min, Max: max, HalfOpen: true}
	if err := b.validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

func (b Bounds) validate() error {
	if math.IsNaN(b.Min) || math.IsNaN(b.Max) || math.IsInf(b.Min, 0) || math.IsInf(b.Max, 0) {
		return fmt.Errorf("%w: [%v, %v] is not finite", ErrInvalidBounds, b.Min, b.Max)
	}
	if b.Max <= b.Min {
		return fmt.Errorf("%w: max %v must be greater than min %v", ErrInvalidBounds, b.Max, b.Min)
	}
	return nil
}

// Width returns the interval width.
func (b Bounds) Width() float64 {
	return b.Max - b.Min
}

// Contains reports whether v lies inside the interval.
func (b Bounds) Contains(v float64) bool {
	if b.HalfOpen {
		return v >= b.Min && v < b.Max
	}
	return v >= b.Min && v <= b.Max
}

// Wrap brings v into the interval by adding or subtracting whole widths.
//
// Values already inside are returned unchanged. A value congruent to Min
// that lies above the interval maps to Max, one below maps to Min, so 720 in
// [0, 360] becomes 360 and -360 becomes 0. Half-open intervals never return
// Max. The remainder is taken with math.Mod, which is exact, so the result
// stays congruent to v for any finite magnitude. Non-finite input yields NaN.
func (b Bounds) Wrap(v float64) float64 {
	if b.Contains(v) {
		return v
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN()
	}

	w := b.Width()
	// Offset from Min, reduced separately so a huge v does not absorb Min.
	r := math.Mod(math.Mod(v, w)-math.Mod(b.Min, w), w)
	if r < 0 {
		r += w
	}

	if r == 0 {
		if v > b.Max && !b.HalfOpen {
			return b.Max
		}
		return b.Min
	}
	r += b.Min
	if r > b.Max || (b.HalfOpen && r >= b.Max) {
		r = b.Min
	}
	return r
}

// BoundedPair holds two angular values, each kept inside its own interval.
// It is embedded by every coordinate kind.
type BoundedPair struct {
	bounds1 Bounds
	bounds2 Bounds
	value1  float64
	value2  float64
}

// NewBoundedPair validates both intervals and stores v1 and v2 wrapped into them.
func NewBoundedPair(b1, b2 Bounds, v1, v2 float64) (BoundedPair, error) {
	if err := b1.validate(); err != nil {
		return BoundedPair{}, fmt.Errorf("first value: %w", err)
	}
	if err := b2.validate(); err != nil {
		return BoundedPair{}, fmt.Errorf("second value: %w", err)
	}
	return BoundedPair{
		bounds1: b1,
		bounds2: b2,
		value1:  b1.Wrap(v1),
		value2:  b2.Wrap(v2),
	}, nil
}

// mustPair is used with the package's fixed coordinate bounds, which are
// valid by construction.
func mustPair(b1, b2 Bounds, v1, v2 float64) BoundedPair {
	p, err := NewBoundedPair(b1, b2, v1, v2)
	if err != nil {
		panic(err)
	}
	return p
}

// Value1 returns the first normalized value.
func (p BoundedPair) Value1() float64 { return p.value1 }

// Value2 returns the second normalized value.
func (p BoundedPair) Value2() float64 { return p.value2 }

// Bounds1 returns the interval of the first value.
func (p BoundedPair) Bounds1() Bounds { return p.bounds1 }

// Bounds2 returns the interval of the second value.
func (p BoundedPair) Bounds2() Bounds { return p.bounds2 }

// WithValue1 returns a copy of p holding v wrapped into the first interval.
func (p BoundedPair) WithValue1(v float64) BoundedPair {
	p.value1 = p.bounds1.Wrap(v)
	return p
}

// WithValue2 returns a copy of p holding v wrapped into the second interval.
func (p BoundedPair) WithValue2(v float64) BoundedPair {
	p.value2 = p.bounds2.Wrap(v)
	return p
}
