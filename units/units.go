// Package units defines dimensioned scalar types used throughout the
// thermal-hydraulics solver. Every physical quantity that crosses a
// package boundary is one of these named types rather than a bare
// float64, so that the compiler rejects mixing e.g. a Pressure where a
// Temperature is expected.
//
// Internally every quantity is stored in SI base units (m, kg, s, K, Pa,
// W, ...). Temperatures accepted from callers may be Celsius or Kelvin at
// construction time (NewCelsius / NewKelvin); kelvin is canonical from
// that point on.
package units

import "math"

// AbsoluteZeroOffsetK is 0 degC in kelvin.
const AbsoluteZeroOffsetK = 273.15

// Temperature is a value in kelvin.
type Temperature float64

// NewKelvin constructs a Temperature from a kelvin value.
func NewKelvin(k float64) Temperature { return Temperature(k) }

// NewCelsius constructs a Temperature from a Celsius value.
func NewCelsius(c float64) Temperature { return Temperature(c + AbsoluteZeroOffsetK) }

// Kelvin returns the value in kelvin.
func (t Temperature) Kelvin() float64 { return float64(t) }

// Celsius returns the value in degrees Celsius.
func (t Temperature) Celsius() float64 { return float64(t) - AbsoluteZeroOffsetK }

// Sub returns the temperature difference (t - o), a dimensionless kelvin delta.
func (t Temperature) Sub(o Temperature) float64 { return float64(t) - float64(o) }

// Length is a value in metres.
type Length float64

// Mass is a value in kilograms.
type Mass float64

// MassRate is a mass flowrate in kg/s. Negative values denote reversed
// flow direction relative to the component's declared back→front axis.
type MassRate float64

// Pressure is a value in pascals.
type Pressure float64

// Power is a value in watts.
type Power float64

// HeatTransferCoefficient is a value in W/(m^2 K).
type HeatTransferCoefficient float64

// ThermalConductance is a value in W/K.
type ThermalConductance float64

// ThermalConductivity is a value in W/(m K).
type ThermalConductivity float64

// DynamicViscosity is a value in Pa*s.
type DynamicViscosity float64

// MassDensity is a value in kg/m^3.
type MassDensity float64

// Time is a value in seconds.
type Time float64

// Area is a value in m^2.
type Area float64

// Volume is a value in m^3.
type Volume float64

// Ratio is a dimensionless quantity.
type Ratio float64

// AvailableEnergy is a specific energy in J/kg (specific enthalpy).
type AvailableEnergy float64

// VolumeRate is a volumetric flowrate in m^3/s.
type VolumeRate float64

// SpecificHeatCapacity is a value in J/(kg K).
type SpecificHeatCapacity float64

// HeatFlux is a value in W/m^2.
type HeatFlux float64

// Angle is a value in radians.
type Angle float64

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// NewDegrees constructs an Angle from a value in degrees.
func NewDegrees(deg float64) Angle { return Angle(deg * math.Pi / 180.0) }

// HeatRate is a convenience for dQ/dt style accumulation;
// kept distinct from Power only in name, since both are W, but documents
// intent at call sites that sum instantaneous rates.
type HeatRate = Power
