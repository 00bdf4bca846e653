package hte

import (
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/htc"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// temperatureFacingLink returns the temperature at the end of e that
// touches this link. isBack indicates e plays the "entity_back" role in
// this call to Link: for an array that means its *front* node touches
// the link (the chain continues forward into the link), and for the
// "entity_front" role it means the array's *back* node touches it.
func temperatureFacingLink(e Entity, isBack bool) (units.Temperature, error) {
	switch e.kind {
	case KindSingleCV:
		return e.scv.Temperature(), nil
	case KindFluidArray:
		t := e.fa.GetTemperatureVector()
		if isBack {
			return t[len(t)-1], nil
		}
		return t[0], nil
	case KindSolidArray:
		t := e.sa.GetTemperatureVector()
		if isBack {
			return t[len(t)-1], nil
		}
		return t[0], nil
	case KindBoundaryCondition:
		return e.bc.AsTemperature()
	default:
		return 0, tuaserr.New(tuaserr.TypeConversionHeatTransferEntity, "hte: unknown entity kind")
	}
}

// pushRate routes a power contribution to whichever accumulator e
// exposes at the end touching this link; BoundaryConditions have no
// accumulator (infinite reservoir) and silently absorb the call.
func pushRate(e Entity, isBack bool, q units.Power) {
	switch e.kind {
	case KindSingleCV:
		e.scv.PushEnthalpyRate(q)
	case KindFluidArray:
		if isBack {
			e.fa.LinkToFront(q)
		} else {
			e.fa.LinkToBack(q)
		}
	case KindSolidArray:
		if isBack {
			e.sa.LinkToFront(q)
		} else {
			e.sa.LinkToBack(q)
		}
	case KindBoundaryCondition:
		// no accumulator; BCs are infinite-capacity reservoirs or fixed sources.
	}
}

func entityMaterial(e Entity) (properties.Material, bool) {
	switch e.kind {
	case KindSingleCV:
		return e.scv.Material, true
	case KindFluidArray:
		return e.fa.Material, true
	default:
		return properties.Material{}, false
	}
}

// Link dispatches on (kind_back, kind_front, interaction) per spec §4.6
// and pushes power contributions onto the appropriate accumulators.
func Link(entityBack, entityFront Entity, interaction htc.Interaction) error {
	if entityBack.kind == KindBoundaryCondition && entityFront.kind == KindBoundaryCondition {
		return tuaserr.New(tuaserr.NotImplementedForBoundaryConditions, "hte.Link: boundary-condition-to-boundary-condition linking is not implemented")
	}
	switch it := interaction.(type) {
	case htc.DataAdvection:
		return linkAdvection(entityBack, entityFront, it)
	case htc.UserSpecifiedHeatAddition:
		return linkHeatAddition(entityBack, entityFront, it)
	case htc.UserSpecifiedHeatFluxCustomArea:
		return linkHeatFlux(entityBack, entityFront, float64(it.A))
	case htc.UserSpecifiedHeatFluxCylindricalOuterArea:
		return linkHeatFlux(entityBack, entityFront, float64(it.Area()))
	case htc.UserSpecifiedHeatFluxCylindricalInnerArea:
		return linkHeatFlux(entityBack, entityFront, float64(it.Area()))
	default:
		return linkConductance(entityBack, entityFront, interaction)
	}
}

func linkConductance(entityBack, entityFront Entity, interaction htc.Interaction) error {
	Tback, err := temperatureFacingLink(entityBack, true)
	if err != nil {
		return err
	}
	Tfront, err := temperatureFacingLink(entityFront, false)
	if err != nil {
		return err
	}
	G, err := htc.Conductance(interaction, Tback, Tfront, 0, 0)
	if err != nil {
		return err
	}

	backIsBC := entityBack.kind == KindBoundaryCondition
	frontIsBC := entityFront.kind == KindBoundaryCondition

	if backIsBC != frontIsBC {
		// one side is an infinite-capacity reservoir (spec §4.6): the CV's
		// accumulator receives G*(T_bc - T_cv).
		if backIsBC {
			rate := units.Power(float64(G) * (Tback.Kelvin() - Tfront.Kelvin()))
			pushRate(entityFront, false, rate)
		} else {
			rate := units.Power(float64(G) * (Tfront.Kelvin() - Tback.Kelvin()))
			pushRate(entityBack, true, rate)
		}
		return nil
	}

	// symmetric case (spec §4.6): cv1 (back) gets -G*(T2-T1), cv2 (front)
	// gets +G*(T2-T1).
	diff := Tfront.Kelvin() - Tback.Kelvin()
	pushRate(entityBack, true, units.Power(-float64(G)*diff))
	pushRate(entityFront, false, units.Power(float64(G)*diff))
	return nil
}

func linkAdvection(entityBack, entityFront Entity, adv htc.DataAdvection) error {
	Tback, err := temperatureFacingLink(entityBack, true)
	if err != nil {
		return err
	}
	Tfront, err := temperatureFacingLink(entityFront, false)
	if err != nil {
		return err
	}
	mat, ok := entityMaterial(entityBack)
	if !ok {
		mat, ok = entityMaterial(entityFront)
	}
	if !ok {
		return tuaserr.New(tuaserr.WrongHeatTransferInteractionType, "hte.Link: advection requires at least one fluid-carrying entity")
	}
	h1, err := mat.Enthalpy(Tback)
	if err != nil {
		return err
	}
	h2, err := mat.Enthalpy(Tfront)
	if err != nil {
		return err
	}
	q := adv.AdvectedHeatRate(h1, h2)
	pushRate(entityBack, true, -q)
	pushRate(entityFront, false, q)

	if fa, err := entityBack.AsFluidArray(); err == nil {
		fa.SetMassFlowrate(adv.MassFlowrate)
	}
	if fa, err := entityFront.AsFluidArray(); err == nil {
		fa.SetMassFlowrate(adv.MassFlowrate)
	}
	return nil
}

func linkHeatAddition(entityBack, entityFront Entity, ha htc.UserSpecifiedHeatAddition) error {
	switch {
	case entityBack.kind == KindBoundaryCondition:
		pushRate(entityFront, false, ha.Q)
	case entityFront.kind == KindBoundaryCondition:
		pushRate(entityBack, true, ha.Q)
	default:
		pushRate(entityBack, true, ha.Q)
	}
	return nil
}

func linkHeatFlux(entityBack, entityFront Entity, area float64) error {
	var flux units.HeatFlux
	var bcIsBack bool
	if bc, err := entityBack.AsBoundaryCondition(); err == nil {
		f, err := bc.AsHeatFlux()
		if err != nil {
			return err
		}
		flux, bcIsBack = f, true
	} else if bc, err := entityFront.AsBoundaryCondition(); err == nil {
		f, err := bc.AsHeatFlux()
		if err != nil {
			return err
		}
		flux, bcIsBack = f, false
	} else {
		return tuaserr.New(tuaserr.WrongHeatTransferInteractionType, "hte.Link: heat-flux interaction requires one side to be a UserSpecifiedHeatFlux BoundaryCondition")
	}
	q := units.Power(float64(flux) * area)
	if bcIsBack {
		pushRate(entityFront, false, q)
	} else {
		pushRate(entityBack, true, q)
	}
	return nil
}
