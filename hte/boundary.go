package hte

import (
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// BCKind discriminates the BoundaryCondition variants of spec §4.6.
type BCKind int

const (
	BCTemperature BCKind = iota
	BCHeatFlux
	BCHeatAddition
)

// BoundaryCondition is the tagged union {UserSpecifiedTemperature,
// UserSpecifiedHeatFlux, UserSpecifiedHeatAddition}. It has no thermal
// mass: linking to one treats it as an infinite-capacity reservoir or a
// fixed power/flux source, never an accumulator target.
type BoundaryCondition struct {
	kind        BCKind
	temperature units.Temperature
	flux        units.HeatFlux
	power       units.Power
}

// NewUserSpecifiedTemperature builds a fixed-temperature reservoir BC.
func NewUserSpecifiedTemperature(T units.Temperature) BoundaryCondition {
	return BoundaryCondition{kind: BCTemperature, temperature: T}
}

// NewUserSpecifiedHeatFlux builds a fixed-flux BC; the area it acts over
// comes from whatever heat-flux interaction links it (spec §4.5
// UserSpecifiedHeatFluxCustomArea / CylindricalOuterArea / InnerArea).
func NewUserSpecifiedHeatFlux(flux units.HeatFlux) BoundaryCondition {
	return BoundaryCondition{kind: BCHeatFlux, flux: flux}
}

// NewUserSpecifiedHeatAddition builds a fixed-power-addition BC.
func NewUserSpecifiedHeatAddition(q units.Power) BoundaryCondition {
	return BoundaryCondition{kind: BCHeatAddition, power: q}
}

// Kind reports the BC's discriminant.
func (b BoundaryCondition) Kind() BCKind { return b.kind }

// AsTemperature narrows to the UserSpecifiedTemperature variant.
func (b BoundaryCondition) AsTemperature() (units.Temperature, error) {
	if b.kind != BCTemperature {
		return 0, tuaserr.New(tuaserr.TypeConversionHeatTransferEntity, "BoundaryCondition.AsTemperature: this BC is not UserSpecifiedTemperature")
	}
	return b.temperature, nil
}

// AsHeatFlux narrows to the UserSpecifiedHeatFlux variant.
func (b BoundaryCondition) AsHeatFlux() (units.HeatFlux, error) {
	if b.kind != BCHeatFlux {
		return 0, tuaserr.New(tuaserr.TypeConversionHeatTransferEntity, "BoundaryCondition.AsHeatFlux: this BC is not UserSpecifiedHeatFlux")
	}
	return b.flux, nil
}

// AsHeatAddition narrows to the UserSpecifiedHeatAddition variant.
func (b BoundaryCondition) AsHeatAddition() (units.Power, error) {
	if b.kind != BCHeatAddition {
		return 0, tuaserr.New(tuaserr.TypeConversionHeatTransferEntity, "BoundaryCondition.AsHeatAddition: this BC is not UserSpecifiedHeatAddition")
	}
	return b.power, nil
}
