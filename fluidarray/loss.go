package fluidarray

import (
	"math"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/corr"
)

// LossCorrelation supplies the Darcy friction factor and a constant form-
// loss coefficient K used in the pressure-drop formula of spec §4.7.
// Two distinct constructors are offered below (ChurchillLoss/CustomDarcyLoss
// vs CustomFormLoss) rather than one polymorphic struct, so a caller can
// never accidentally mix a custom Darcy exponent form with an
// independently-tabulated K(Re) form on the same component.
type LossCorrelation interface {
	DarcyFrictionFactor(re float64) float64
	FormLossCoefficient(re float64) float64
}

// ChurchillLoss wraps corr.ChurchillFrictionFactor with a constant form
// loss coefficient, the default case for ordinary pipe runs.
type ChurchillLoss struct {
	RelativeRoughness float64
	K                 float64
}

func (c ChurchillLoss) DarcyFrictionFactor(re float64) float64 {
	return corr.ChurchillFrictionFactor(math.Abs(re), c.RelativeRoughness)
}

func (c ChurchillLoss) FormLossCoefficient(re float64) float64 { return c.K }

// CustomDarcyLoss generalizes the Moody form to f_Darcy = a + b*Re^c (spec
// §4.7 "A custom component allows f_Darcy = a + b*Re^c").
type CustomDarcyLoss struct {
	A, B, C float64
	K       float64
}

func (d CustomDarcyLoss) DarcyFrictionFactor(re float64) float64 {
	return d.A + d.B*math.Pow(math.Abs(re), d.C)
}

func (d CustomDarcyLoss) FormLossCoefficient(re float64) float64 { return d.K }

// CustomFormLoss lets a caller supply an arbitrary K(Re) form-loss curve
// (e.g. digitized from a manufacturer's datasheet) independent of the
// Darcy friction factor, which stays Churchill-based.
type CustomFormLoss struct {
	RelativeRoughness float64
	K                 func(re float64) float64
}

func (f CustomFormLoss) DarcyFrictionFactor(re float64) float64 {
	return corr.ChurchillFrictionFactor(math.Abs(re), f.RelativeRoughness)
}

func (f CustomFormLoss) FormLossCoefficient(re float64) float64 {
	if f.K == nil {
		return 0
	}
	return f.K(re)
}
