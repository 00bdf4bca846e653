// Package precomp implements the pre-built component catalogue of spec
// §4.8: fixed assemblies of a FluidArray with one or more SolidArrays,
// laterally linked each timestep, exposing calibration knobs
// (insulation thickness, Nusselt correction factor) the way the
// original per-component `calibration.rs` files do. This is a
// catalogue of concrete geometries, not a new physics layer — every
// radial coupling here is built from `htc`'s existing conductance
// formulas and fed into the arrays' own LinkLateral, following the same
// shape `fem.Domain` uses to assemble fixed sub-structures from a
// catalog of element-type identifiers.
package precomp

import (
	"math"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/fluidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/htc"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/solidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// uniformSplit distributes total evenly across n nodes, the same
// equal-fraction default fluidarray/solidarray use for newly constructed
// node chains.
func uniformSplit(total units.ThermalConductance, n int) []units.ThermalConductance {
	out := make([]units.ThermalConductance, n)
	for i := range out {
		out[i] = units.ThermalConductance(float64(total) / float64(n))
	}
	return out
}

func constantTemperatureVector(t units.Temperature, n int) []units.Temperature {
	out := make([]units.Temperature, n)
	for i := range out {
		out[i] = t
	}
	return out
}

// fluidToSolidConductance links a fluid node to the annular solid shell
// immediately wetting it: series combination of the shell's radial
// conduction and the fluid's local convective resistance (spec §4.5
// CylindricalConductionConvection), evaluated per axial node slice
// (length dx = array length / N) and summed into one scalar handed to
// LinkLateral's uniform per-node split.
func fluidToSolidConductance(fa *fluidarray.FluidArray, sa *solidarray.SolidArray, innerDiameter, outerDiameter units.Length, side htc.LiquidSide) (units.ThermalConductance, error) {
	n := fa.N()
	if n != sa.N() {
		return 0, tuaserr.New(tuaserr.GenericString, "precomp: fluid and solid array node counts must match (fluid=%d, solid=%d)", n, sa.N())
	}
	dx := units.Length(float64(fa.Length) / float64(n))
	total := 0.0
	for i := 0; i < n; i++ {
		h, err := fa.ConvectiveCoefficientAt(i)
		if err != nil {
			return 0, err
		}
		interaction := htc.CylindricalConductionConvection{
			Material:      sa.Material,
			InnerDiameter: innerDiameter,
			OuterDiameter: outerDiameter,
			Length:        dx,
			H:             h,
			Side:          side,
		}
		Tf := fa.GetTemperatureVector()[i]
		Ts := sa.GetTemperatureVector()[i]
		g, err := htc.Conductance(interaction, Tf, Ts, 0, 0)
		if err != nil {
			return 0, err
		}
		total += float64(g)
	}
	return units.ThermalConductance(total), nil
}

// solidToSolidConductance links two concentric annular shells across
// their shared interface (spec §4.5 DualCylindricalThermalConductance),
// per axial node slice, summed the same way as fluidToSolidConductance.
func solidToSolidConductance(inner, outer *solidarray.SolidArray, innerDiameter, thicknessInner, thicknessOuter units.Length) (units.ThermalConductance, error) {
	n := inner.N()
	if n != outer.N() {
		return 0, tuaserr.New(tuaserr.GenericString, "precomp: adjoining solid arrays must have matching node counts (inner=%d, outer=%d)", n, outer.N())
	}
	dx := units.Length(float64(inner.Length) / float64(n))
	total := 0.0
	Tinner := inner.GetTemperatureVector()
	Touter := outer.GetTemperatureVector()
	for i := 0; i < n; i++ {
		interaction := htc.DualCylindricalThermalConductance{
			MaterialInner:  inner.Material,
			MaterialOuter:  outer.Material,
			ThicknessInner: thicknessInner,
			ThicknessOuter: thicknessOuter,
			InnerDiameter:  innerDiameter,
			Length:         dx,
		}
		g, err := htc.Conductance(interaction, Tinner[i], Touter[i], 0, 0)
		if err != nil {
			return 0, err
		}
		total += float64(g)
	}
	return units.ThermalConductance(total), nil
}

// linkFluidSolid performs the reciprocal LinkLateral calls spec §4.3/§4.4
// require: each array receives the other's full temperature vector and
// its own share of the conductance.
func linkFluidSolid(fa *fluidarray.FluidArray, sa *solidarray.SolidArray, G units.ThermalConductance) error {
	n := fa.N()
	if err := fa.LinkLateral(sa.GetTemperatureVector(), uniformSplit(G, n)); err != nil {
		return err
	}
	return sa.LinkLateral(fa.GetTemperatureVector(), uniformSplit(G, n))
}

func linkSolidSolid(inner, outer *solidarray.SolidArray, G units.ThermalConductance) error {
	n := inner.N()
	if err := inner.LinkLateral(outer.GetTemperatureVector(), uniformSplit(G, n)); err != nil {
		return err
	}
	return outer.LinkLateral(inner.GetTemperatureVector(), uniformSplit(G, n))
}

// calibrate applies a Nusselt calibration factor (spec §4.8 calibration
// knob (b)): an existing PipeGnielinskiCalibrated or CIETHeaterVersion2
// has its Factor replaced, and a PipeGnielinskiGeneric becomes the Base
// of a new PipeGnielinskiCalibrated. Any other correlation (e.g.
// ConstantNusselt) is replaced by a PipeGnielinskiCalibrated over a
// zero-roughness PipeGnielinskiGeneric; the original is not kept —
// mirroring the original `calibration.rs` files' single
// "set_nusselt_correlation_calibration_factor" setter.
func calibrate(existing fluidarray.NusseltCorrelation, factor float64) fluidarray.NusseltCorrelation {
	switch v := existing.(type) {
	case fluidarray.PipeGnielinskiCalibrated:
		v.Factor = factor
		return v
	case fluidarray.PipeGnielinskiGeneric:
		return fluidarray.PipeGnielinskiCalibrated{Base: v, Factor: factor}
	case fluidarray.CIETHeaterVersion2:
		v.Factor = factor
		return v
	default:
		return fluidarray.PipeGnielinskiCalibrated{Base: fluidarray.PipeGnielinskiGeneric{}, Factor: factor}
	}
}

// linkAmbientLoss couples every node of sa to a constant-temperature
// ambient reservoir through an outer convective film (spec §4.8
// "non-insulated" heat loss), modeled as a lateral link to a virtual
// neighbor held uniformly at ambientT — the same mechanism used for any
// other lateral coupling, just with one side's temperature pinned.
func linkAmbientLoss(sa *solidarray.SolidArray, outerDiameter units.Length, ambientT units.Temperature, ambientH units.HeatTransferCoefficient) error {
	n := sa.N()
	dx := float64(sa.Length) / float64(n)
	asurf := math.Pi * float64(outerDiameter) * dx
	G := units.ThermalConductance(float64(ambientH) * asurf * float64(n))
	return sa.LinkLateral(constantTemperatureVector(ambientT, n), uniformSplit(G, n))
}
