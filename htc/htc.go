// Package htc implements the heat-transfer-interaction conductance
// formulas of spec §4.5: a tagged union of interaction kinds dispatched
// by a total function of (interaction, T1, T2, p1, p2) returning either a
// ThermalConductance or WrongHeatTransferInteractionType for advection
// (spec §9 "Interaction enum over heat-transfer types").
//
// Each concrete interaction type is a distinct Go struct satisfying the
// Interaction interface, following the same "many small structs, one
// interface, dispatch by type switch" shape the hte package uses for
// HeatTransferEntity, per spec §9's note that no virtual-function
// hierarchy is needed for a closed, fixed set of variants.
package htc

import (
	"math"

	"github.com/Konstantin8105/pow"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// StefanBoltzmann is sigma in W/(m^2 K^4).
const StefanBoltzmann = 5.670374419e-8

// Kind discriminates the interaction variants.
type Kind int

const (
	KindUserSpecifiedThermalConductance Kind = iota
	KindSingleCartesian
	KindDualCartesian
	KindDualCylindrical
	KindCylindricalLiquidInside
	KindCylindricalLiquidOutside
	KindUserSpecifiedHeatAddition
	KindUserSpecifiedHeatFluxCustomArea
	KindUserSpecifiedHeatFluxCylindricalOuterArea
	KindUserSpecifiedHeatFluxCylindricalInnerArea
	KindUserSpecifiedConvectionResistance
	KindAdvection
	KindSimpleRadiation
)

// Interaction is the tagged union of spec §3 HeatTransferInteraction.
type Interaction interface {
	Kind() Kind
}

// Conductance is the total function from spec §9: returns the
// interaction's thermal conductance given the two endpoint temperatures
// and pressures, or WrongHeatTransferInteractionType when the interaction
// carries no conductance (Advection, the heat-addition/flux variants).
func Conductance(i Interaction, T1, T2 units.Temperature, p1, p2 units.Pressure) (units.ThermalConductance, error) {
	switch v := i.(type) {
	case UserSpecifiedThermalConductance:
		return v.G, nil
	case SingleCartesianThermalConductanceOneDimension:
		return singleCartesian(v, T1, T2, p1, p2)
	case DualCartesianThermalConductance:
		return dualCartesian(v, T1, T2, p1, p2)
	case DualCylindricalThermalConductance:
		return dualCylindrical(v, T1, T2, p1, p2)
	case CylindricalConductionConvection:
		return cylindricalConductionConvection(v, T1, T2, p1, p2)
	case UserSpecifiedConvectionResistance:
		return units.ThermalConductance(float64(v.H) * float64(v.A)), nil
	case SimpleRadiation:
		return radiationConductance(v, T1, T2), nil
	default:
		return 0, tuaserr.New(tuaserr.WrongHeatTransferInteractionType,
			"htc.Conductance: interaction kind %v carries no conductance", i.Kind())
	}
}

// SeriesConductance combines two conductances in series: G = 1/(1/G1+1/G2).
// If either is zero the series result is zero (spec §4.5); negative input
// is an invariant violation and fails fast.
func SeriesConductance(G1, G2 units.ThermalConductance) (units.ThermalConductance, error) {
	if G1 < 0 || G2 < 0 {
		return 0, tuaserr.New(tuaserr.GenericString, "htc.SeriesConductance: negative conductance is an invariant violation (G1=%v, G2=%v)", G1, G2)
	}
	if G1 == 0 || G2 == 0 {
		return 0, nil
	}
	return units.ThermalConductance(1.0 / (1.0/float64(G1) + 1.0/float64(G2))), nil
}

func avgTP(T1, T2 units.Temperature, p1, p2 units.Pressure) (units.Temperature, units.Pressure) {
	return units.NewKelvin(0.5 * (T1.Kelvin() + T2.Kelvin())), units.Pressure(0.5 * (float64(p1) + float64(p2)))
}

// UserSpecifiedThermalConductance is a caller-supplied constant G.
type UserSpecifiedThermalConductance struct {
	G units.ThermalConductance
}

func (UserSpecifiedThermalConductance) Kind() Kind { return KindUserSpecifiedThermalConductance }

// SingleCartesianThermalConductanceOneDimension is a 1-D slab conductance
// G = k(Tavg,pavg)*A_unit/thickness, A_unit = 1 m^2 for the abstract 1-D
// case (spec §4.5).
type SingleCartesianThermalConductanceOneDimension struct {
	Material  properties.Material
	Thickness units.Length
}

func (SingleCartesianThermalConductanceOneDimension) Kind() Kind { return KindSingleCartesian }

func singleCartesian(v SingleCartesianThermalConductanceOneDimension, T1, T2 units.Temperature, p1, p2 units.Pressure) (units.ThermalConductance, error) {
	Tavg, _ := avgTP(T1, T2, p1, p2)
	k, err := v.Material.Conductivity(Tavg)
	if err != nil {
		return 0, err
	}
	if float64(v.Thickness) <= 0 {
		return 0, tuaserr.New(tuaserr.GenericString, "SingleCartesianThermalConductanceOneDimension: thickness must be positive")
	}
	const unitArea = 1.0 // m^2
	return units.ThermalConductance(float64(k) * unitArea / float64(v.Thickness)), nil
}

// CartesianSlab is one layer of a DualCartesianThermalConductance.
type CartesianSlab struct {
	Material  properties.Material
	Thickness units.Length
}

// DualCartesianThermalConductance is two Cartesian slabs in series. When
// CrossSection is non-zero the 3-D variant is used (conductance scales
// with the declared cross-sectional area instead of the 1 m^2 abstract
// unit area).
type DualCartesianThermalConductance struct {
	Slab1, Slab2 CartesianSlab
	CrossSection units.Area // zero => abstract 1-D (1 m^2)
}

func (DualCartesianThermalConductance) Kind() Kind { return KindDualCartesian }

func dualCartesian(v DualCartesianThermalConductance, T1, T2 units.Temperature, p1, p2 units.Pressure) (units.ThermalConductance, error) {
	Tavg, _ := avgTP(T1, T2, p1, p2)
	area := float64(v.CrossSection)
	if area == 0 {
		area = 1.0
	}
	k1, err := v.Slab1.Material.Conductivity(Tavg)
	if err != nil {
		return 0, err
	}
	k2, err := v.Slab2.Material.Conductivity(Tavg)
	if err != nil {
		return 0, err
	}
	if float64(v.Slab1.Thickness) <= 0 || float64(v.Slab2.Thickness) <= 0 {
		return 0, tuaserr.New(tuaserr.GenericString, "DualCartesianThermalConductance: thicknesses must be positive")
	}
	G1 := units.ThermalConductance(float64(k1) * area / float64(v.Slab1.Thickness))
	G2 := units.ThermalConductance(float64(k2) * area / float64(v.Slab2.Thickness))
	return SeriesConductance(G1, G2)
}

// annularConductance computes G = 2*pi*L*k/ln(ro/ri) (spec §4.5).
func annularConductance(k units.ThermalConductivity, ri, ro, L units.Length) (units.ThermalConductance, error) {
	if float64(ro) <= float64(ri) || float64(ri) <= 0 || float64(L) <= 0 || float64(k) < 0 {
		return 0, tuaserr.New(tuaserr.GenericString,
			"htc.annularConductance: requires r_o > r_i > 0, L > 0, k >= 0 (ri=%v, ro=%v, L=%v, k=%v)", ri, ro, L, k)
	}
	return units.ThermalConductance(2 * math.Pi * float64(L) * float64(k) / math.Log(float64(ro)/float64(ri))), nil
}

// DualCylindricalThermalConductance is two annular shells (inner then
// outer material) in series (spec §4.5): inner shell spans
// [innerDiameter/2, innerDiameter/2+thicknessInner]; outer shell spans
// [that outer radius, that + thicknessOuter].
type DualCylindricalThermalConductance struct {
	MaterialInner, MaterialOuter     properties.Material
	ThicknessInner, ThicknessOuter   units.Length
	InnerDiameter                    units.Length
	Length                           units.Length
}

func (DualCylindricalThermalConductance) Kind() Kind { return KindDualCylindrical }

func dualCylindrical(v DualCylindricalThermalConductance, T1, T2 units.Temperature, p1, p2 units.Pressure) (units.ThermalConductance, error) {
	Tavg, _ := avgTP(T1, T2, p1, p2)
	kIn, err := v.MaterialInner.Conductivity(Tavg)
	if err != nil {
		return 0, err
	}
	kOut, err := v.MaterialOuter.Conductivity(Tavg)
	if err != nil {
		return 0, err
	}
	ri := units.Length(float64(v.InnerDiameter) / 2)
	rMid := ri + v.ThicknessInner
	rOuter := rMid + v.ThicknessOuter
	Ginner, err := annularConductance(kIn, ri, rMid, v.Length)
	if err != nil {
		return 0, err
	}
	Gouter, err := annularConductance(kOut, rMid, rOuter, v.Length)
	if err != nil {
		return 0, err
	}
	return SeriesConductance(Ginner, Gouter)
}

// LiquidSide identifies whether the liquid is inside or outside the
// annular solid shell in CylindricalConductionConvection.
type LiquidSide int

const (
	LiquidInside LiquidSide = iota
	LiquidOutside
)

// CylindricalConductionConvection is a solid annular shell with liquid
// convection on one side (spec §4.5). The liquid-side resistance is
// 1/(h*A_surface), A_surface = pi*D*L with D = inner diameter (liquid
// inside) or outer diameter (liquid outside).
type CylindricalConductionConvection struct {
	Material                   properties.Material
	InnerDiameter, OuterDiameter units.Length
	Length                     units.Length
	H                          units.HeatTransferCoefficient
	Side                       LiquidSide
}

func (v CylindricalConductionConvection) Kind() Kind {
	if v.Side == LiquidOutside {
		return KindCylindricalLiquidOutside
	}
	return KindCylindricalLiquidInside
}

func cylindricalConductionConvection(v CylindricalConductionConvection, T1, T2 units.Temperature, p1, p2 units.Pressure) (units.ThermalConductance, error) {
	Tavg, _ := avgTP(T1, T2, p1, p2)
	k, err := v.Material.Conductivity(Tavg)
	if err != nil {
		return 0, err
	}
	Gsolid, err := annularConductance(k, units.Length(float64(v.InnerDiameter)/2), units.Length(float64(v.OuterDiameter)/2), v.Length)
	if err != nil {
		return 0, err
	}
	D := v.InnerDiameter
	if v.Side == LiquidOutside {
		D = v.OuterDiameter
	}
	Asurf := math.Pi * float64(D) * float64(v.Length)
	if float64(v.H) <= 0 || Asurf <= 0 {
		return 0, tuaserr.New(tuaserr.GenericString, "CylindricalConductionConvection: h and surface area must be positive")
	}
	Gliquid := units.ThermalConductance(float64(v.H) * Asurf)
	return SeriesConductance(Gsolid, Gliquid)
}

// UserSpecifiedConvectionResistance carries a direct (h, A) convection pair.
type UserSpecifiedConvectionResistance struct {
	H units.HeatTransferCoefficient
	A units.Area
}

func (UserSpecifiedConvectionResistance) Kind() Kind { return KindUserSpecifiedConvectionResistance }

// UserSpecifiedHeatAddition carries a direct power addition; it has no
// conductance (dispatched to WrongHeatTransferInteractionType).
type UserSpecifiedHeatAddition struct {
	Q units.Power
}

func (UserSpecifiedHeatAddition) Kind() Kind { return KindUserSpecifiedHeatAddition }

// UserSpecifiedHeatFluxCustomArea carries an area to multiply against a
// linked UserSpecifiedHeatFlux boundary condition's flux. No conductance.
type UserSpecifiedHeatFluxCustomArea struct {
	A units.Area
}

func (UserSpecifiedHeatFluxCustomArea) Kind() Kind { return KindUserSpecifiedHeatFluxCustomArea }

// UserSpecifiedHeatFluxCylindricalOuterArea derives A = pi*D*L from the
// outer diameter and length of a cylindrical entity.
type UserSpecifiedHeatFluxCylindricalOuterArea struct {
	Diameter, Length units.Length
}

func (UserSpecifiedHeatFluxCylindricalOuterArea) Kind() Kind {
	return KindUserSpecifiedHeatFluxCylindricalOuterArea
}

// Area computes pi*D*L using pow.En for the same "closed-form polynomial
// evaluation" idiom the teacher's MaterialPolynomial uses for integer
// powers (here deliberately trivial, n=1, kept for textural consistency
// with the package's other pow.En call sites).
func (v UserSpecifiedHeatFluxCylindricalOuterArea) Area() units.Area {
	return units.Area(math.Pi * pow.En(float64(v.Diameter), 1) * float64(v.Length))
}

// UserSpecifiedHeatFluxCylindricalInnerArea is the inner-diameter analogue.
type UserSpecifiedHeatFluxCylindricalInnerArea struct {
	Diameter, Length units.Length
}

func (UserSpecifiedHeatFluxCylindricalInnerArea) Kind() Kind {
	return KindUserSpecifiedHeatFluxCylindricalInnerArea
}

func (v UserSpecifiedHeatFluxCylindricalInnerArea) Area() units.Area {
	return units.Area(math.Pi * pow.En(float64(v.Diameter), 1) * float64(v.Length))
}

// DataAdvection carries the mass flowrate and upwind/downwind densities
// for an Advection interaction (spec §3, §4.5). No conductance.
type DataAdvection struct {
	MassFlowrate units.MassRate
	Rho1, Rho2   units.MassDensity
}

func (DataAdvection) Kind() Kind { return KindAdvection }

// AdvectedHeatRate returns m*(h1-h2) when m>0 flows 1->2, with the sign
// convention reversing for m<0 (spec §4.5).
func (d DataAdvection) AdvectedHeatRate(h1, h2 units.AvailableEnergy) units.Power {
	return units.Power(float64(d.MassFlowrate) * (float64(h1) - float64(h2)))
}

// VolumeFlowrate returns v = m/rho_upwind, accumulated for Courant checks.
func (d DataAdvection) VolumeFlowrate() units.VolumeRate {
	rho := d.Rho1
	if d.MassFlowrate < 0 {
		rho = d.Rho2
	}
	if rho == 0 {
		return 0
	}
	return units.VolumeRate(float64(d.MassFlowrate) / float64(rho))
}

// SimpleRadiation is the four-temperature simple radiation conductance of
// spec §4.5 (explicitly the only radiation model in scope; no view-factor
// geometry).
type SimpleRadiation struct {
	AreaCoefficient units.Area
}

func (SimpleRadiation) Kind() Kind { return KindSimpleRadiation }

func radiationConductance(v SimpleRadiation, Th, Tc units.Temperature) units.ThermalConductance {
	th, tc := Th.Kelvin(), Tc.Kelvin()
	return units.ThermalConductance(StefanBoltzmann * float64(v.AreaCoefficient) * (th*th + tc*tc) * (th + tc))
}
