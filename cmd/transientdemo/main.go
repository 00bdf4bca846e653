// Command transientdemo is a thin example driver, mirroring the teacher's
// fem.Start/fem.Run shape shrunk from FE nonlinear iteration down to a
// single-threaded timestep loop: it wires scenario 4's adiabatic 2->1
// mixing joint (two TherminolVP1 inlets into a spherical control volume,
// draining through a single outlet) and demonstrates halt-on-fatal-error
// reporting.
package main

import (
	"github.com/cpmech/gosl/utl"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/fluidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/hte"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/htc"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/scv"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

func main() {
	utl.PfWhite("\ntransientdemo -- scenario 4: adiabatic 2->1 mixing joint\n\n")

	if err := run(); err != nil {
		utl.PfRed("ERROR: %v\n", err)
		return
	}
}

// run builds the loop and advances it to t=3000s, halting and reporting
// the failing timestep on any fatal error (spec §7's "halt the
// simulation, emit the last consistent state" driver behaviour).
func run() error {
	material, err := properties.NewLiquidMaterialFromKind(properties.TherminolVP1)
	if err != nil {
		return err
	}
	loss := fluidarray.ChurchillLoss{RelativeRoughness: 1e-5}
	nusselt := fluidarray.PipeGnielinskiGeneric{RelativeRoughness: 1e-5}
	pressure := units.Pressure(101325)

	hotInlet, err := fluidarray.NewCylinder(material, 0.02, 0.3, 1, loss, nusselt, units.NewCelsius(100), pressure, 0)
	if err != nil {
		return err
	}
	coldInlet, err := fluidarray.NewCylinder(material, 0.02, 0.3, 1, loss, nusselt, units.NewCelsius(50), pressure, 0)
	if err != nil {
		return err
	}
	outlet, err := fluidarray.NewCylinder(material, 0.02, 0.3, 1, loss, nusselt, units.NewCelsius(75), pressure, 0)
	if err != nil {
		return err
	}
	joint, err := scv.NewSphere(material, 0.05, units.NewCelsius(75), pressure)
	if err != nil {
		return err
	}

	const (
		dt      = units.Time(1.0)
		tFinal  = 3000.0
		mHot    = units.MassRate(0.05)
		mCold   = units.MassRate(0.05)
		mOutlet = units.MassRate(0.10)
	)

	hotEntity := hte.FromFluidArray(hotInlet)
	coldEntity := hte.FromFluidArray(coldInlet)
	outletEntity := hte.FromFluidArray(outlet)
	jointEntity := hte.FromSingleCV(joint)

	t := 0.0
	for t < tFinal {
		if err := stepOnce(hotEntity, coldEntity, jointEntity, outletEntity, material, mHot, mCold, mOutlet, dt); err != nil {
			utl.PfRed("simulation halted at t=%g s: %v\n", t, err)
			reportState(t, hotInlet, coldInlet, outlet, joint)
			return err
		}
		if err := outlet.AdvanceTimestepWithMassFlowrate(dt, mOutlet); err != nil {
			utl.PfRed("simulation halted at t=%g s advancing outlet: %v\n", t, err)
			reportState(t, hotInlet, coldInlet, outlet, joint)
			return err
		}
		t += float64(dt)
	}

	reportState(t, hotInlet, coldInlet, outlet, joint)
	return nil
}

// stepOnce pushes the three advective links for one timestep and advances
// the mixing-joint control volume; the caller advances the outlet array
// afterward since its own downstream linking (if any) belongs to a later
// component in a larger loop.
func stepOnce(hot, cold, joint, outlet hte.Entity, material properties.Material, mHot, mCold, mOutlet units.MassRate, dt units.Time) error {
	rhoHot, err := densityAt(hot, material)
	if err != nil {
		return err
	}
	rhoCold, err := densityAt(cold, material)
	if err != nil {
		return err
	}
	rhoJoint, err := densityAt(joint, material)
	if err != nil {
		return err
	}

	if err := hte.Link(hot, joint, htc.DataAdvection{MassFlowrate: mHot, Rho1: rhoHot, Rho2: rhoJoint}); err != nil {
		return err
	}
	if err := hte.Link(cold, joint, htc.DataAdvection{MassFlowrate: mCold, Rho1: rhoCold, Rho2: rhoJoint}); err != nil {
		return err
	}
	if err := hte.Link(joint, outlet, htc.DataAdvection{MassFlowrate: mOutlet, Rho1: rhoJoint, Rho2: rhoJoint}); err != nil {
		return err
	}

	cv, err := joint.AsSingleCV()
	if err != nil {
		return err
	}
	if err := cv.AdvanceTimestep(dt); err != nil {
		return err
	}

	// the inlets are held at fixed upstream temperature (an infinite
	// reservoir upstream of this demo's scope); flush their per-step
	// accumulators with a zero-dt advance rather than letting them cool
	// by exporting enthalpy with nothing replacing it.
	hotFa, err := hot.AsFluidArray()
	if err != nil {
		return err
	}
	coldFa, err := cold.AsFluidArray()
	if err != nil {
		return err
	}
	if err := hotFa.AdvanceTimestepWithMassFlowrate(0, mHot); err != nil {
		return err
	}
	return coldFa.AdvanceTimestepWithMassFlowrate(0, mCold)
}

func densityAt(e hte.Entity, material properties.Material) (units.MassDensity, error) {
	var T units.Temperature
	switch e.Kind() {
	case hte.KindSingleCV:
		cv, err := e.AsSingleCV()
		if err != nil {
			return 0, err
		}
		T = cv.Temperature()
	case hte.KindFluidArray:
		fa, err := e.AsFluidArray()
		if err != nil {
			return 0, err
		}
		tVec := fa.GetTemperatureVector()
		T = tVec[0]
	}
	return material.Density(T)
}

func reportState(t float64, hot, cold, outlet *fluidarray.FluidArray, joint *scv.SingleCVNode) {
	utl.Pf("t = %.1f s\n", t)
	utl.Pf("  hot inlet   T = %.3f degC\n", hot.GetTemperatureVector()[0].Celsius())
	utl.Pf("  cold inlet  T = %.3f degC\n", cold.GetTemperatureVector()[0].Celsius())
	utl.Pf("  mixing node T = %.3f degC\n", joint.Temperature().Celsius())
	utl.PfGreen("  outlet      T = %.3f degC\n", outlet.GetTemperatureVector()[0].Celsius())
}
