package fluidarray

import "github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/corr"

// NusseltCorrelation is the tagged union of spec §4.3: each variant
// exposes the two estimate methods the timestep governor and the
// convective-conductance callers need. No wall-correction method is
// required to converge to the no-correction one when wall and bulk
// Prandtl numbers are equal.
type NusseltCorrelation interface {
	EstimateNoWallCorrection(pr, re float64) float64
	EstimateWithWallCorrection(prBulk, prWall, absRe float64) float64
}

// PipeGnielinskiGeneric is the Gnielinski correlation with a relative
// roughness used to feed the underlying Churchill friction factor.
type PipeGnielinskiGeneric struct {
	RelativeRoughness float64
}

func (g PipeGnielinskiGeneric) frictionFactor(re float64) float64 {
	return corr.ChurchillFrictionFactor(re, g.RelativeRoughness)
}

func (g PipeGnielinskiGeneric) EstimateNoWallCorrection(pr, re float64) float64 {
	return corr.GnielinskiNusseltNoWall(re, pr, g.frictionFactor(re))
}

func (g PipeGnielinskiGeneric) EstimateWithWallCorrection(prBulk, prWall, absRe float64) float64 {
	return corr.GnielinskiNusseltWallCorrected(absRe, prBulk, prWall, g.frictionFactor(absRe))
}

// PipeGnielinskiCalibrated multiplies the generic correlation's Nusselt
// number by a user-supplied factor, used to fit parasitic heat loss to
// experimental data (spec §4.3).
type PipeGnielinskiCalibrated struct {
	Base   PipeGnielinskiGeneric
	Factor float64
}

func (c PipeGnielinskiCalibrated) EstimateNoWallCorrection(pr, re float64) float64 {
	return c.Factor * c.Base.EstimateNoWallCorrection(pr, re)
}

func (c PipeGnielinskiCalibrated) EstimateWithWallCorrection(prBulk, prWall, absRe float64) float64 {
	return c.Factor * c.Base.EstimateWithWallCorrection(prBulk, prWall, absRe)
}

// CIETHeaterVersion2 is the empirical heated-annulus correlation used by
// the CIET heater test section, approximated here as a calibrated
// Gnielinski form with its own default roughness and factor (the
// published CIET Nu-Re-Pr fit is not reproduced exactly; this keeps the
// same estimate-method shape so it can be swapped for the exact fit
// later without touching callers).
type CIETHeaterVersion2 struct {
	Factor float64
}

func (c CIETHeaterVersion2) base() PipeGnielinskiGeneric {
	return PipeGnielinskiGeneric{RelativeRoughness: 0.0}
}

func (c CIETHeaterVersion2) EstimateNoWallCorrection(pr, re float64) float64 {
	factor := c.Factor
	if factor == 0 {
		factor = 1.0
	}
	return factor * c.base().EstimateNoWallCorrection(pr, re)
}

func (c CIETHeaterVersion2) EstimateWithWallCorrection(prBulk, prWall, absRe float64) float64 {
	factor := c.Factor
	if factor == 0 {
		factor = 1.0
	}
	return factor * c.base().EstimateWithWallCorrection(prBulk, prWall, absRe)
}

// ConstantNusselt is a fixed Nu, used for test fixtures and components
// whose convective coefficient is supplied directly.
type ConstantNusselt struct {
	Nu float64
}

func (c ConstantNusselt) EstimateNoWallCorrection(pr, re float64) float64 { return c.Nu }
func (c ConstantNusselt) EstimateWithWallCorrection(prBulk, prWall, absRe float64) float64 {
	return c.Nu
}
