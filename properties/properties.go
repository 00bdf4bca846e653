// Package properties implements the thermophysical property layer
// (spec §3 Material, §4.1): temperature-dependent density, viscosity,
// conductivity, specific heat, and enthalpy/temperature inversion for a
// fixed catalogue of liquids and solids, plus user-supplied custom
// closures. Every property call range-checks T and returns
// tuaserr.ThermophysicalPropertyTemperatureRange on violation.
//
// The registry pattern (kind -> allocator) mirrors mconduct.Model and
// mreten.Model's GetModel/allocators idiom from the teacher repository.
package properties

import (
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// Solid is implemented by every concrete solid property model, including
// CustomSolid.
type Solid interface {
	Name() string
	Range() (low, high units.Temperature)
	Roughness() units.Length
	Density(T units.Temperature) (units.MassDensity, error)
	Conductivity(T units.Temperature) (units.ThermalConductivity, error)
	SpecificHeat(T units.Temperature) (units.SpecificHeatCapacity, error)
	Enthalpy(T units.Temperature) (units.AvailableEnergy, error)
	TemperatureFromEnthalpy(h units.AvailableEnergy) (units.Temperature, error)
}

// Liquid is implemented by every concrete liquid property model,
// including CustomLiquid.
type Liquid interface {
	Name() string
	Range() (low, high units.Temperature)
	Density(T units.Temperature) (units.MassDensity, error)
	Viscosity(T units.Temperature) (units.DynamicViscosity, error)
	Conductivity(T units.Temperature) (units.ThermalConductivity, error)
	SpecificHeat(T units.Temperature) (units.SpecificHeatCapacity, error)
	Enthalpy(T units.Temperature) (units.AvailableEnergy, error)
	TemperatureFromEnthalpy(h units.AvailableEnergy) (units.Temperature, error)
}

// Material is the tagged union of Solid(SolidKind) and Liquid(LiquidKind)
// from spec §3. Exactly one of the two fields is non-nil.
type Material struct {
	solid  Solid
	liquid Liquid
}

// NewSolidMaterial wraps a Solid model as a Material.
func NewSolidMaterial(s Solid) Material { return Material{solid: s} }

// NewLiquidMaterial wraps a Liquid model as a Material.
func NewLiquidMaterial(l Liquid) Material { return Material{liquid: l} }

// IsLiquid reports whether this Material is the Liquid variant.
func (m Material) IsLiquid() bool { return m.liquid != nil }

// IsSolid reports whether this Material is the Solid variant.
func (m Material) IsSolid() bool { return m.solid != nil }

// AsSolid narrows to the Solid variant.
func (m Material) AsSolid() (Solid, error) {
	if m.solid == nil {
		return nil, tuaserr.New(tuaserr.TypeConversionMaterial, "Material.AsSolid: this material is a Liquid, not a Solid")
	}
	return m.solid, nil
}

// AsLiquid narrows to the Liquid variant.
func (m Material) AsLiquid() (Liquid, error) {
	if m.liquid == nil {
		return nil, tuaserr.New(tuaserr.TypeConversionMaterial, "Material.AsLiquid: this material is a Solid, not a Liquid")
	}
	return m.liquid, nil
}

// Name returns the underlying model's catalogue name.
func (m Material) Name() string {
	if m.IsLiquid() {
		return m.liquid.Name()
	}
	return m.solid.Name()
}

// Density dispatches to the underlying Solid or Liquid model.
func (m Material) Density(T units.Temperature) (units.MassDensity, error) {
	if m.IsLiquid() {
		return m.liquid.Density(T)
	}
	return m.solid.Density(T)
}

// Conductivity dispatches to the underlying Solid or Liquid model.
func (m Material) Conductivity(T units.Temperature) (units.ThermalConductivity, error) {
	if m.IsLiquid() {
		return m.liquid.Conductivity(T)
	}
	return m.solid.Conductivity(T)
}

// SpecificHeat dispatches to the underlying Solid or Liquid model.
func (m Material) SpecificHeat(T units.Temperature) (units.SpecificHeatCapacity, error) {
	if m.IsLiquid() {
		return m.liquid.SpecificHeat(T)
	}
	return m.solid.SpecificHeat(T)
}

// Enthalpy dispatches to the underlying Solid or Liquid model.
func (m Material) Enthalpy(T units.Temperature) (units.AvailableEnergy, error) {
	if m.IsLiquid() {
		return m.liquid.Enthalpy(T)
	}
	return m.solid.Enthalpy(T)
}

// TemperatureFromEnthalpy dispatches to the underlying Solid or Liquid model.
func (m Material) TemperatureFromEnthalpy(h units.AvailableEnergy) (units.Temperature, error) {
	if m.IsLiquid() {
		return m.liquid.TemperatureFromEnthalpy(h)
	}
	return m.solid.TemperatureFromEnthalpy(h)
}

// checkRange is the shared range-check policy (spec §4.1): every property
// call fails with ThermophysicalPropertyTemperatureRange if T is outside
// [low, high].
func checkRange(name string, T, low, high units.Temperature) error {
	if T < low || T > high {
		return tuaserr.New(tuaserr.ThermophysicalPropertyTemperatureRange,
			"%s: T = %.4f K is outside valid range [%.4f, %.4f] K", name, T.Kelvin(), low.Kelvin(), high.Kelvin())
	}
	return nil
}
