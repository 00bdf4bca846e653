package units

import (
	"math"
	"testing"
)

func TestCelsiusKelvinRoundTrip(t *testing.T) {
	c := 36.6
	k := NewCelsius(c)
	if got := k.Celsius(); math.Abs(got-c) > 1e-9 {
		t.Fatalf("Celsius round trip: got %g want %g", got, c)
	}
	if got := k.Kelvin(); math.Abs(got-(c+AbsoluteZeroOffsetK)) > 1e-9 {
		t.Fatalf("Kelvin conversion: got %g want %g", got, c+AbsoluteZeroOffsetK)
	}
}

func TestTemperatureSub(t *testing.T) {
	hot := NewCelsius(100)
	cold := NewCelsius(50)
	if got := hot.Sub(cold); math.Abs(got-50) > 1e-9 {
		t.Fatalf("Sub: got %g want 50", got)
	}
}

func TestDegreesToRadians(t *testing.T) {
	a := NewDegrees(180)
	if got := a.Radians(); math.Abs(got-math.Pi) > 1e-9 {
		t.Fatalf("Radians: got %g want pi", got)
	}
}
