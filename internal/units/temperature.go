// Package units handles temperature units and display formatting
package units

import (
	"fmt"
	"math"
)

// Unit is the persisted unit-of-temperature preference
type Unit string

const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

// ParseUnit converts a stored value into a Unit
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case Celsius, Fahrenheit:
		return Unit(s), nil
	}
	return "", fmt.Errorf("unknown temperature unit %q", s)
}

// IsCelsius reports whether temperatures display in Celsius
func (u Unit) IsCelsius() bool {
	return u != Fahrenheit
}

// Toggle returns the other unit
func (u Unit) Toggle() Unit {
	if u.IsCelsius() {
		return Fahrenheit
	}
	return Celsius
}

// Symbol returns the unit's display symbol
func (u Unit) Symbol() string {
	if u.IsCelsius() {
		return "°C"
	}
	return "°F"
}

// FromBool maps a celsius flag to a Unit
func FromBool(isCelsius bool) Unit {
	if isCelsius {
		return Celsius
	}
	return Fahrenheit
}

// CelsiusToFahrenheit converts without rounding
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts without rounding
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// Display converts a Celsius value into the requested unit without rounding
func Display(celsius float64, isCelsius bool) float64 {
	if isCelsius {
		return celsius
	}
	return CelsiusToFahrenheit(celsius)
}

// FormatTemp renders a Celsius value in the requested unit, e.g. "21°"
func FormatTemp(celsius float64, isCelsius bool) string {
	return fmt.Sprintf("%d°", roundHalfUp(Display(celsius, isCelsius)))
}

// roundHalfUp rounds .5 toward positive infinity (-2.5 -> -2)
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
