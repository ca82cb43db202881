package units

import (
	"fmt"
	"math"
)

// Unit is a weight unit as stored and displayed.
type Unit string

const (
	Kilograms Unit = "kg"
	Pounds    Unit = "lb"
)

const kgToLbFactor = 2.20462

func (u Unit) Valid() bool {
	return u == Kilograms || u == Pounds
}

func Parse(s string) (Unit, error) {
	u := Unit(s)
	if !u.Valid() {
		return "", fmt.Errorf("unknown weight unit: %q", s)
	}
	return u, nil
}

// Convert converts a weight value between units, rounding the result
// to the nearest 0.25 so values stay aligned with real plate sizes.
// Converting to the same unit returns the value unchanged, without
// rounding.
func Convert(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	if from == Kilograms && to == Pounds {
		return roundToQuarter(value * kgToLbFactor)
	}
	return roundToQuarter(value / kgToLbFactor)
}

// ToKilograms normalizes a weight in the given unit to kilograms.
func ToKilograms(value float64, from Unit) float64 {
	return Convert(value, from, Kilograms)
}

func roundToQuarter(v float64) float64 {
	return math.Round(v*4) / 4
}
