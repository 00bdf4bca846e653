package ana

import (
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// AdiabaticMixingJointStream is one inlet (or the single outlet) stream
// of an AdiabaticMixingJoint.
type AdiabaticMixingJointStream struct {
	MassFlowrate units.MassRate
	Temperature  units.Temperature
}

// AdiabaticMixingJoint computes the steady-state outlet temperature of N
// inlet streams of the same material merging adiabatically into one
// outlet (spec §8 scenarios 4/5 cross-check): pure energy conservation,
// independent of the discretized SCV/FluidArray solve.
//
//	sum(m_i*h_i) = m_out*h_out,  m_out = sum(m_i)
func AdiabaticMixingJoint(material properties.Material, inlets []AdiabaticMixingJointStream) (units.Temperature, error) {
	var mTotal units.MassRate
	var hFlowTotal float64
	for _, in := range inlets {
		h, err := material.Enthalpy(in.Temperature)
		if err != nil {
			return 0, err
		}
		mTotal += in.MassFlowrate
		hFlowTotal += float64(in.MassFlowrate) * float64(h)
	}
	hOut := units.AvailableEnergy(hFlowTotal / float64(mTotal))
	return material.TemperatureFromEnthalpy(hOut)
}
