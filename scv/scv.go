// Package scv implements SingleCVNode, the point lumped-capacitance
// control volume of spec §4.2. Its lifecycle mirrors msolid.State's
// accumulate/advance/clear pattern from the teacher repository, adapted
// from stress-strain internal variables to enthalpy and its rate
// accumulators.
package scv

import (
	"math"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// SingleCVNode is a point lumped-capacitance control volume (spec §4.2).
type SingleCVNode struct {
	Material properties.Material
	Pressure units.Pressure
	Volume   units.Volume

	h units.AvailableEnergy
	T units.Temperature

	rateEnthalpyChangeVector []units.Power
	volumetricFlowrateVector []units.VolumeRate

	maxTimestepCache units.Time
}

// NewSphere constructs an SCV whose geometry is a sphere of the given
// radius (spec §6: SingleCVNode::new_sphere).
func NewSphere(material properties.Material, radius units.Length, T0 units.Temperature, p units.Pressure) (*SingleCVNode, error) {
	vol := units.Volume(4.0 / 3.0 * math.Pi * math.Pow(float64(radius), 3))
	return newSCV(material, vol, T0, p)
}

// NewCylinder constructs an SCV whose geometry is a cylinder of the given
// diameter and length (spec §6: SingleCVNode::new_cylinder).
func NewCylinder(material properties.Material, diameter, length units.Length, T0 units.Temperature, p units.Pressure) (*SingleCVNode, error) {
	r := float64(diameter) / 2
	vol := units.Volume(math.Pi * r * r * float64(length))
	return newSCV(material, vol, T0, p)
}

// NewBlock constructs an SCV whose geometry is a rectangular block (spec
// §6: SingleCVNode::new_block).
func NewBlock(material properties.Material, width, height, thickness units.Length, T0 units.Temperature, p units.Pressure) (*SingleCVNode, error) {
	vol := units.Volume(float64(width) * float64(height) * float64(thickness))
	return newSCV(material, vol, T0, p)
}

// NewWithVolume constructs an SCV directly from a volume, for callers
// that already know it (e.g. assembled pre-built components).
func NewWithVolume(material properties.Material, volume units.Volume, T0 units.Temperature, p units.Pressure) (*SingleCVNode, error) {
	return newSCV(material, volume, T0, p)
}

func newSCV(material properties.Material, vol units.Volume, T0 units.Temperature, p units.Pressure) (*SingleCVNode, error) {
	h0, err := material.Enthalpy(T0)
	if err != nil {
		return nil, err
	}
	return &SingleCVNode{
		Material: material,
		Pressure: p,
		Volume:   vol,
		h:        h0,
		T:        T0,
	}, nil
}

// Temperature returns the current cached temperature.
func (s *SingleCVNode) Temperature() units.Temperature { return s.T }

// Enthalpy returns the current specific enthalpy.
func (s *SingleCVNode) Enthalpy() units.AvailableEnergy { return s.h }

// PushEnthalpyRate appends a rate-of-enthalpy-change contribution; called
// by the hte linker while assembling a timestep's interactions (spec
// §4.6).
func (s *SingleCVNode) PushEnthalpyRate(q units.Power) {
	s.rateEnthalpyChangeVector = append(s.rateEnthalpyChangeVector, q)
}

// PushVolumetricFlowrate records a volumetric-flow contribution, used for
// Courant-number bookkeeping on advective links.
func (s *SingleCVNode) PushVolumetricFlowrate(v units.VolumeRate) {
	s.volumetricFlowrateVector = append(s.volumetricFlowrateVector, v)
}

// RateEnthalpyChangeVector exposes the current accumulator, read-only,
// for boundary-coupled FluidArray/SolidArray assembly.
func (s *SingleCVNode) RateEnthalpyChangeVector() []units.Power {
	return s.rateEnthalpyChangeVector
}

// mass returns rho(T_old)*volume, the lagged mass used in AdvanceTimestep.
func (s *SingleCVNode) mass() (float64, error) {
	rho, err := s.Material.Density(s.T)
	if err != nil {
		return 0, err
	}
	return float64(rho) * float64(s.Volume), nil
}

// AdvanceTimestep solves h_new = h_old + (sum of rates)*dt/mass, derives
// T_new = T_from_h(h_new), and clears the accumulators (spec §4.2).
// Two consecutive AdvanceTimestep(0) calls are a no-op, per spec §8.
func (s *SingleCVNode) AdvanceTimestep(dt units.Time) error {
	mass, err := s.mass()
	if err != nil {
		return err
	}
	sum := 0.0
	for _, q := range s.rateEnthalpyChangeVector {
		sum += float64(q)
	}
	if mass <= 0 {
		return tuaserr.New(tuaserr.GenericString, "SingleCVNode.AdvanceTimestep: non-positive mass %g", mass)
	}
	hNew := float64(s.h) + sum*float64(dt)/mass
	if sum != 0 || float64(dt) != 0 {
		Tnew, err := s.Material.TemperatureFromEnthalpy(units.AvailableEnergy(hNew))
		if err != nil {
			return err
		}
		s.h = units.AvailableEnergy(hNew)
		s.T = Tnew
	}
	s.clear()
	return nil
}

func (s *SingleCVNode) clear() {
	s.rateEnthalpyChangeVector = s.rateEnthalpyChangeVector[:0]
	s.volumetricFlowrateVector = s.volumetricFlowrateVector[:0]
}

// MaxTimestep returns min over all logged rate contributions of
// mass*cp*deltaTmax / |Q_i| (spec §4.2); used by the timestep governor.
// Fails with CourantMassFlowVectorEmpty if no rate has been registered.
func (s *SingleCVNode) MaxTimestep(deltaTmax units.Temperature) (units.Time, error) {
	if len(s.rateEnthalpyChangeVector) == 0 {
		return 0, tuaserr.New(tuaserr.CourantMassFlowVectorEmpty,
			"SingleCVNode.MaxTimestep: no rate-of-enthalpy-change has been registered this step")
	}
	mass, err := s.mass()
	if err != nil {
		return 0, err
	}
	cp, err := s.Material.SpecificHeat(s.T)
	if err != nil {
		return 0, err
	}
	best := math.Inf(1)
	for _, q := range s.rateEnthalpyChangeVector {
		aq := math.Abs(float64(q))
		if aq < 1e-12 {
			continue
		}
		dt := mass * float64(cp) * float64(deltaTmax) / aq
		if dt < best {
			best = dt
		}
	}
	if math.IsInf(best, 1) {
		return 0, tuaserr.New(tuaserr.CourantMassFlowVectorEmpty,
			"SingleCVNode.MaxTimestep: all registered rates were effectively zero")
	}
	s.maxTimestepCache = units.Time(best)
	return s.maxTimestepCache, nil
}
