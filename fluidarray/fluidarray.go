// Package fluidarray implements FluidArray (spec §4.3): an N-node 1-D
// control-volume chain advanced each timestep by an implicit-Euler
// energy balance with upwind advection and lagged lateral (radial)
// conduction coupling to neighboring arrays. The assemble-then-solve
// shape is grounded on the teacher's fem.Domain / fem.Run pattern
// (assemble a banded system, then call a direct solver), generalized
// from a Jacobian residual update to a node-temperature energy balance.
package fluidarray

import (
	"math"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tridiag"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// FluidArray is the N = inner_node_count+2 node chain of spec §4.3.
type FluidArray struct {
	Material               properties.Material
	Length                 units.Length
	FlowArea               units.Area
	WettedPerimeter        units.Length
	Incline                units.Angle
	Pressure               units.Pressure
	InternalPressureSource units.Pressure
	Loss                   LossCorrelation
	Nusselt                NusseltCorrelation

	massFlowrate units.MassRate

	temperatures   []units.Temperature
	volumeFraction []units.Ratio

	lateralNeighborT [][]units.Temperature
	lateralNeighborG [][]units.ThermalConductance

	qTotals    []units.Power
	qFractions [][]units.Ratio

	backRateVector  []units.Power
	frontRateVector []units.Power
}

// N returns the total node count, n_inner+2.
func (fa *FluidArray) N() int { return len(fa.temperatures) }

func newFluidArray(material properties.Material, flowArea units.Area, wettedPerimeter, length units.Length, innerNodeCount int, loss LossCorrelation, nusselt NusseltCorrelation, T0 units.Temperature, pressure units.Pressure, incline units.Angle) (*FluidArray, error) {
	if !material.IsLiquid() {
		return nil, tuaserr.New(tuaserr.TypeConversionMaterial, "fluidarray: material must be a Liquid")
	}
	if innerNodeCount < 0 {
		return nil, tuaserr.New(tuaserr.GenericString, "fluidarray: inner_node_count must be >= 0")
	}
	n := innerNodeCount + 2
	temps := make([]units.Temperature, n)
	frac := make([]units.Ratio, n)
	for i := range temps {
		temps[i] = T0
		frac[i] = units.Ratio(1.0 / float64(n))
	}
	return &FluidArray{
		Material:        material,
		Length:          length,
		FlowArea:        flowArea,
		WettedPerimeter: wettedPerimeter,
		Incline:         incline,
		Pressure:        pressure,
		Loss:            loss,
		Nusselt:         nusselt,
		temperatures:    temps,
		volumeFraction:  frac,
	}, nil
}

// NewCylinder builds a circular-pipe FluidArray (spec §6
// FluidArray::new_cylinder).
func NewCylinder(material properties.Material, diameter, length units.Length, innerNodeCount int, loss LossCorrelation, nusselt NusseltCorrelation, T0 units.Temperature, pressure units.Pressure, incline units.Angle) (*FluidArray, error) {
	r := float64(diameter) / 2
	area := units.Area(math.Pi * r * r)
	perimeter := units.Length(math.Pi * float64(diameter))
	return newFluidArray(material, area, perimeter, length, innerNodeCount, loss, nusselt, T0, pressure, incline)
}

// NewOddShapedPipe builds a FluidArray whose cross-section is not a
// simple circle; the caller supplies the flow area and wetted perimeter
// directly (spec §6 FluidArray::new_odd_shaped_pipe).
func NewOddShapedPipe(material properties.Material, flowArea units.Area, wettedPerimeter, length units.Length, innerNodeCount int, loss LossCorrelation, nusselt NusseltCorrelation, T0 units.Temperature, pressure units.Pressure, incline units.Angle) (*FluidArray, error) {
	return newFluidArray(material, flowArea, wettedPerimeter, length, innerNodeCount, loss, nusselt, T0, pressure, incline)
}

// NewCustomComponent is the general constructor, identical in shape to
// NewOddShapedPipe; kept distinct per spec §6's naming so callers that
// are deliberately building a "custom component" (vs. a pipe whose
// cross-section merely isn't round) read clearly at the call site.
func NewCustomComponent(material properties.Material, flowArea units.Area, wettedPerimeter, length units.Length, innerNodeCount int, loss LossCorrelation, nusselt NusseltCorrelation, T0 units.Temperature, pressure units.Pressure, incline units.Angle) (*FluidArray, error) {
	return newFluidArray(material, flowArea, wettedPerimeter, length, innerNodeCount, loss, nusselt, T0, pressure, incline)
}

// HydraulicDiameter returns D_h = 4*A_xs/wetted_perimeter.
func (fa *FluidArray) HydraulicDiameter() units.Length {
	if fa.WettedPerimeter == 0 {
		return 0
	}
	return units.Length(4 * float64(fa.FlowArea) / float64(fa.WettedPerimeter))
}

// SetMassFlowrate sets the signed mass flowrate (positive back->front).
func (fa *FluidArray) SetMassFlowrate(m units.MassRate) { fa.massFlowrate = m }

// MassFlowrate returns the current signed mass flowrate.
func (fa *FluidArray) MassFlowrate() units.MassRate { return fa.massFlowrate }

// LinkToBack accumulates a boundary-exchange power contribution at node 0
// (spec §4.6: contributions read from the boundary SCV's
// rate_enthalpy_change_vector).
func (fa *FluidArray) LinkToBack(q units.Power) { fa.backRateVector = append(fa.backRateVector, q) }

// LinkToFront accumulates a boundary-exchange power contribution at node
// N-1.
func (fa *FluidArray) LinkToFront(q units.Power) {
	fa.frontRateVector = append(fa.frontRateVector, q)
}

// LinkLateral appends a neighboring array's current temperature snapshot
// and matching per-node conductance array to the parallel lateral lists
// (spec §4.3, §9 "Cyclic ownership / lateral coupling"). Both slices must
// have length N.
func (fa *FluidArray) LinkLateral(neighborT []units.Temperature, conductance []units.ThermalConductance) error {
	n := fa.N()
	if len(neighborT) != n || len(conductance) != n {
		return tuaserr.New(tuaserr.GenericString,
			"FluidArray.LinkLateral: neighbor arrays must have length %d, got T=%d G=%d", n, len(neighborT), len(conductance))
	}
	fa.lateralNeighborT = append(fa.lateralNeighborT, append([]units.Temperature(nil), neighborT...))
	fa.lateralNeighborG = append(fa.lateralNeighborG, append([]units.ThermalConductance(nil), conductance...))
	return nil
}

// AddQ pushes a distributed power injection across the node chain
// (spec §4.3 add_q); fractions must sum to 1 within 1e-9.
func (fa *FluidArray) AddQ(qTotal units.Power, fractions []units.Ratio) error {
	n := fa.N()
	if len(fractions) != n {
		return tuaserr.New(tuaserr.GenericString, "FluidArray.AddQ: fraction_array must have length %d", n)
	}
	sum := 0.0
	for _, f := range fractions {
		sum += float64(f)
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return tuaserr.New(tuaserr.GenericString, "FluidArray.AddQ: fraction_array must sum to 1, got %g", sum)
	}
	fa.qTotals = append(fa.qTotals, qTotal)
	fa.qFractions = append(fa.qFractions, append([]units.Ratio(nil), fractions...))
	return nil
}

// TryGetBulkTemperature returns the flow-area-weighted average node
// temperature.
func (fa *FluidArray) TryGetBulkTemperature() (units.Temperature, error) {
	if fa.N() == 0 {
		return 0, tuaserr.New(tuaserr.GenericString, "FluidArray.TryGetBulkTemperature: array has no nodes")
	}
	sum := 0.0
	for _, t := range fa.temperatures {
		sum += t.Kelvin()
	}
	return units.NewKelvin(sum / float64(fa.N())), nil
}

// GetTemperatureVector returns a copy of the node temperature array.
func (fa *FluidArray) GetTemperatureVector() []units.Temperature {
	return append([]units.Temperature(nil), fa.temperatures...)
}

func (fa *FluidArray) nodeVolume(i int) units.Volume {
	dx := float64(fa.Length) / float64(fa.N())
	return units.Volume(float64(fa.FlowArea) * dx * float64(fa.volumeFraction[i]))
}

func (fa *FluidArray) clearStepAccumulators() {
	fa.lateralNeighborT = fa.lateralNeighborT[:0]
	fa.lateralNeighborG = fa.lateralNeighborG[:0]
	fa.qTotals = fa.qTotals[:0]
	fa.qFractions = fa.qFractions[:0]
	fa.backRateVector = fa.backRateVector[:0]
	fa.frontRateVector = fa.frontRateVector[:0]
}

// AdvanceTimestepWithMassFlowrate assembles and solves the tridiagonal
// implicit-Euler energy balance of spec §4.3 for the given mass flowrate,
// then clears every per-step accumulator. dt=0 is a no-op, matching the
// SingleCVNode convention (spec §8 "two consecutive advance_timestep(0)
// calls are a no-op").
func (fa *FluidArray) AdvanceTimestepWithMassFlowrate(dt units.Time, m units.MassRate) error {
	fa.massFlowrate = m
	if float64(dt) == 0 {
		fa.clearStepAccumulators()
		return nil
	}
	n := fa.N()
	diag := make([]float64, n)
	sub := make([]float64, n)   // sub[i] multiplies T[i-1]
	super := make([]float64, n) // super[i] multiplies T[i+1]
	rhs := make([]float64, n)

	for i := 0; i < n; i++ {
		rho, err := fa.Material.Density(fa.temperatures[i])
		if err != nil {
			return err
		}
		cp, err := fa.Material.SpecificHeat(fa.temperatures[i])
		if err != nil {
			return err
		}
		vol := fa.nodeVolume(i)
		capacitance := float64(rho) * float64(vol) * float64(cp) / float64(dt)

		sumG := 0.0
		sumGT := 0.0
		for k := range fa.lateralNeighborG {
			g := float64(fa.lateralNeighborG[k][i])
			sumG += g
			sumGT += g * fa.lateralNeighborT[k][i].Kelvin()
		}

		sumQ := 0.0
		for k := range fa.qTotals {
			sumQ += float64(fa.qTotals[k]) * float64(fa.qFractions[k][i])
		}

		diag[i] = capacitance + sumG
		rhs[i] = capacitance*fa.temperatures[i].Kelvin() + sumGT + sumQ

		if i == 0 {
			for _, q := range fa.backRateVector {
				rhs[i] += float64(q)
			}
		}
		if i == n-1 {
			for _, q := range fa.frontRateVector {
				rhs[i] += float64(q)
			}
		}

		absM := math.Abs(float64(m))
		if absM > 0 {
			upIdx := i - 1
			if m < 0 {
				upIdx = i + 1
			}
			if upIdx >= 0 && upIdx < n {
				mcp := absM * float64(cp)
				diag[i] += mcp
				if upIdx < i {
					sub[i] = -mcp
				} else {
					super[i] = -mcp
				}
			}
		}
	}

	tNew, err := tridiag.Solve(sub, diag, super, rhs)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		fa.temperatures[i] = units.NewKelvin(tNew[i])
	}
	fa.clearStepAccumulators()
	return nil
}

// ConvectiveCoefficientAt returns h = Nu*k/D_h at node i, using the
// array's NusseltCorrelation with no wall correction (spec §4.5's
// "convective resistance" input for pre-built components' lateral
// fluid-to-solid coupling).
func (fa *FluidArray) ConvectiveCoefficientAt(i int) (units.HeatTransferCoefficient, error) {
	if fa.Nusselt == nil {
		return 0, tuaserr.New(tuaserr.GenericString, "FluidArray.ConvectiveCoefficientAt: no NusseltCorrelation configured")
	}
	dh := float64(fa.HydraulicDiameter())
	if dh <= 0 {
		return 0, tuaserr.New(tuaserr.GenericString, "FluidArray.ConvectiveCoefficientAt: non-positive hydraulic diameter")
	}
	liquid, err := fa.Material.AsLiquid()
	if err != nil {
		return 0, err
	}
	T := fa.temperatures[i]
	rho, err := fa.Material.Density(T)
	if err != nil {
		return 0, err
	}
	k, err := fa.Material.Conductivity(T)
	if err != nil {
		return 0, err
	}
	cp, err := fa.Material.SpecificHeat(T)
	if err != nil {
		return 0, err
	}
	mu, err := liquid.Viscosity(T)
	if err != nil {
		return 0, err
	}
	pr := float64(mu) * float64(cp) / float64(k)
	v := 0.0
	if fa.FlowArea != 0 {
		v = float64(fa.massFlowrate) / (float64(rho) * float64(fa.FlowArea))
	}
	re := float64(rho) * math.Abs(v) * dh / float64(mu)
	nu := fa.Nusselt.EstimateNoWallCorrection(pr, re)
	return units.HeatTransferCoefficient(nu * float64(k) / dh), nil
}

// GetMaxTimestep returns the stability-governed maximum timestep for this
// array (spec §4.3): minimum of the diffusive Courant bound, radial
// conduction bound, and convective bound (Gnielinski estimate with wall
// correction off), over all nodes. The caller still separately bounds by
// the back/front SCVs' own MaxTimestep.
func (fa *FluidArray) GetMaxTimestep(deltaTmax units.Temperature) (units.Time, error) {
	liquid, err := fa.Material.AsLiquid()
	if err != nil {
		return 0, err
	}
	dx := math.Sqrt(float64(fa.FlowArea))
	best := math.Inf(1)
	dh := float64(fa.HydraulicDiameter())
	for i := 0; i < fa.N(); i++ {
		T := fa.temperatures[i]
		rho, err := fa.Material.Density(T)
		if err != nil {
			return 0, err
		}
		k, err := fa.Material.Conductivity(T)
		if err != nil {
			return 0, err
		}
		cp, err := fa.Material.SpecificHeat(T)
		if err != nil {
			return 0, err
		}
		alpha := float64(k) / (float64(rho) * float64(cp))
		if alpha <= 0 {
			continue
		}
		diffusive := 0.8 * dx * dx / alpha
		if diffusive < best {
			best = diffusive
		}
		radial := 0.8 * float64(fa.FlowArea) / alpha
		if radial < best {
			best = radial
		}
		if fa.Nusselt != nil && dh > 0 {
			mu, err := liquid.Viscosity(T)
			if err != nil {
				return 0, err
			}
			pr := float64(mu) * float64(cp) / float64(k)
			v := 0.0
			if fa.FlowArea != 0 {
				v = float64(fa.massFlowrate) / (float64(rho) * float64(fa.FlowArea))
			}
			re := float64(rho) * math.Abs(v) * dh / float64(mu)
			nu := fa.Nusselt.EstimateNoWallCorrection(pr, re)
			if nu > 0 {
				convective := radial / nu
				if convective < best {
					best = convective
				}
			}
		}
	}
	if math.IsInf(best, 1) {
		return 0, tuaserr.New(tuaserr.CourantMassFlowVectorEmpty, "FluidArray.GetMaxTimestep: no valid bound computed")
	}
	return units.Time(best), nil
}
