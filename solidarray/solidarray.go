// Package solidarray implements SolidArray (spec §4.4): the same N-node
// implicit-Euler chain as fluidarray, minus advection and minus the
// fluid-only properties (viscosity, Prandtl). Adjacent nodes are coupled
// implicitly by an axial conductance k*Area/dx; lateral
// couplings to other arrays use the identical link_lateral shape as
// fluidarray.
package solidarray

import (
	"math"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tridiag"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// Shape discriminates the two geometry constructors, needed only to
// compute node cross-sectional area for cylindrical-shell solids (whose
// area is an annulus rather than the block's constant rectangle).
type Shape int

const (
	ShapeBlock Shape = iota
	ShapeCylindricalShell
)

// SolidArray is the N-node conduction-only chain of spec §4.4.
type SolidArray struct {
	Material properties.Material
	Length   units.Length
	Area     units.Area // conduction cross-sectional area, constant along the axis

	shape Shape

	temperatures   []units.Temperature
	volumeFraction []units.Ratio

	lateralNeighborT [][]units.Temperature
	lateralNeighborG [][]units.ThermalConductance

	qTotals    []units.Power
	qFractions [][]units.Ratio

	backRateVector  []units.Power
	frontRateVector []units.Power
}

func (sa *SolidArray) N() int { return len(sa.temperatures) }

func newSolidArray(material properties.Material, area units.Area, length units.Length, innerNodeCount int, shape Shape, T0 units.Temperature) (*SolidArray, error) {
	if !material.IsSolid() {
		return nil, tuaserr.New(tuaserr.TypeConversionMaterial, "solidarray: material must be a Solid")
	}
	if innerNodeCount < 0 {
		return nil, tuaserr.New(tuaserr.GenericString, "solidarray: inner_node_count must be >= 0")
	}
	n := innerNodeCount + 2
	temps := make([]units.Temperature, n)
	frac := make([]units.Ratio, n)
	for i := range temps {
		temps[i] = T0
		frac[i] = units.Ratio(1.0 / float64(n))
	}
	return &SolidArray{
		Material:       material,
		Length:         length,
		Area:           area,
		shape:          shape,
		temperatures:   temps,
		volumeFraction: frac,
	}, nil
}

// NewBlock builds a rectangular-block SolidArray (spec §4.4
// new_block(height, thickness, width, ...)); the conduction axis runs
// along length, with a constant height*thickness cross-section.
func NewBlock(material properties.Material, height, thickness, length units.Length, innerNodeCount int, T0 units.Temperature) (*SolidArray, error) {
	area := units.Area(float64(height) * float64(thickness))
	return newSolidArray(material, area, length, innerNodeCount, ShapeBlock, T0)
}

// NewCylindricalShell builds a hollow-cylinder SolidArray (spec §4.4
// new_cylindrical_shell(L, id, od, ...)); the conduction axis runs along
// length, with a constant annular cross-section pi/4*(od^2-id^2).
func NewCylindricalShell(material properties.Material, innerDiameter, outerDiameter, length units.Length, innerNodeCount int, T0 units.Temperature) (*SolidArray, error) {
	area := units.Area(math.Pi / 4 * (float64(outerDiameter)*float64(outerDiameter) - float64(innerDiameter)*float64(innerDiameter)))
	return newSolidArray(material, area, length, innerNodeCount, ShapeCylindricalShell, T0)
}

// NewOneDimensionVolume builds a SolidArray directly from a known
// constant cross-sectional area, for callers that already have it (e.g.
// an insulation annulus computed elsewhere).
func NewOneDimensionVolume(material properties.Material, area units.Area, length units.Length, innerNodeCount int, T0 units.Temperature) (*SolidArray, error) {
	return newSolidArray(material, area, length, innerNodeCount, ShapeBlock, T0)
}

func (sa *SolidArray) LinkToBack(q units.Power) { sa.backRateVector = append(sa.backRateVector, q) }
func (sa *SolidArray) LinkToFront(q units.Power) {
	sa.frontRateVector = append(sa.frontRateVector, q)
}

// LinkLateral appends a neighboring array's current temperature snapshot
// and matching per-node conductance array to the parallel lateral lists.
func (sa *SolidArray) LinkLateral(neighborT []units.Temperature, conductance []units.ThermalConductance) error {
	n := sa.N()
	if len(neighborT) != n || len(conductance) != n {
		return tuaserr.New(tuaserr.GenericString,
			"SolidArray.LinkLateral: neighbor arrays must have length %d, got T=%d G=%d", n, len(neighborT), len(conductance))
	}
	sa.lateralNeighborT = append(sa.lateralNeighborT, append([]units.Temperature(nil), neighborT...))
	sa.lateralNeighborG = append(sa.lateralNeighborG, append([]units.ThermalConductance(nil), conductance...))
	return nil
}

// AddQ pushes a distributed power injection across the node chain;
// fractions must sum to 1 within 1e-9.
func (sa *SolidArray) AddQ(qTotal units.Power, fractions []units.Ratio) error {
	n := sa.N()
	if len(fractions) != n {
		return tuaserr.New(tuaserr.GenericString, "SolidArray.AddQ: fraction_array must have length %d", n)
	}
	sum := 0.0
	for _, f := range fractions {
		sum += float64(f)
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return tuaserr.New(tuaserr.GenericString, "SolidArray.AddQ: fraction_array must sum to 1, got %g", sum)
	}
	sa.qTotals = append(sa.qTotals, qTotal)
	sa.qFractions = append(sa.qFractions, append([]units.Ratio(nil), fractions...))
	return nil
}

// GetTemperatureVector returns a copy of the node temperature array.
func (sa *SolidArray) GetTemperatureVector() []units.Temperature {
	return append([]units.Temperature(nil), sa.temperatures...)
}

// SetNodeTemperature overwrites node i's temperature directly, used when
// a pre-built component rebuilds this array's geometry in place (spec
// §4.8 calibration: resizing insulation must not reset the thermal
// state) and needs to carry the old temperature field forward.
func (sa *SolidArray) SetNodeTemperature(i int, T units.Temperature) {
	sa.temperatures[i] = T
}

func (sa *SolidArray) nodeVolume(i int) units.Volume {
	dx := float64(sa.Length) / float64(sa.N())
	return units.Volume(float64(sa.Area) * dx * float64(sa.volumeFraction[i]))
}

func (sa *SolidArray) clearStepAccumulators() {
	sa.lateralNeighborT = sa.lateralNeighborT[:0]
	sa.lateralNeighborG = sa.lateralNeighborG[:0]
	sa.qTotals = sa.qTotals[:0]
	sa.qFractions = sa.qFractions[:0]
	sa.backRateVector = sa.backRateVector[:0]
	sa.frontRateVector = sa.frontRateVector[:0]
}

// AdvanceTimestep assembles and solves the conduction-only tridiagonal
// system: adjacent nodes are coupled by an axial conductance k*Area/dx
// over the cross-section Area at the node spacing dx = length/N (spec
// §4.4). dt=0 is a no-op.
func (sa *SolidArray) AdvanceTimestep(dt units.Time) error {
	if float64(dt) == 0 {
		sa.clearStepAccumulators()
		return nil
	}
	n := sa.N()
	dx := float64(sa.Length) / float64(n)
	diag := make([]float64, n)
	sub := make([]float64, n)
	super := make([]float64, n)
	rhs := make([]float64, n)

	axialG := make([]float64, n-1) // conductance between node i and i+1
	for i := 0; i < n-1; i++ {
		Tavg := units.NewKelvin(0.5 * (sa.temperatures[i].Kelvin() + sa.temperatures[i+1].Kelvin()))
		k, err := sa.Material.Conductivity(Tavg)
		if err != nil {
			return err
		}
		axialG[i] = float64(k) * float64(sa.Area) / dx
	}

	for i := 0; i < n; i++ {
		rho, err := sa.Material.Density(sa.temperatures[i])
		if err != nil {
			return err
		}
		cp, err := sa.Material.SpecificHeat(sa.temperatures[i])
		if err != nil {
			return err
		}
		vol := sa.nodeVolume(i)
		capacitance := float64(rho) * float64(vol) * float64(cp) / float64(dt)

		sumG := 0.0
		sumGT := 0.0
		for k := range sa.lateralNeighborG {
			g := float64(sa.lateralNeighborG[k][i])
			sumG += g
			sumGT += g * sa.lateralNeighborT[k][i].Kelvin()
		}

		sumQ := 0.0
		for k := range sa.qTotals {
			sumQ += float64(sa.qTotals[k]) * float64(sa.qFractions[k][i])
		}

		if i > 0 {
			sumG += axialG[i-1]
			sub[i] = -axialG[i-1]
		}
		if i < n-1 {
			sumG += axialG[i]
			super[i] = -axialG[i]
		}

		diag[i] = capacitance + sumG
		rhs[i] = capacitance*sa.temperatures[i].Kelvin() + sumGT + sumQ

		if i == 0 {
			for _, q := range sa.backRateVector {
				rhs[i] += float64(q)
			}
		}
		if i == n-1 {
			for _, q := range sa.frontRateVector {
				rhs[i] += float64(q)
			}
		}
	}

	tNew, err := tridiag.Solve(sub, diag, super, rhs)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		sa.temperatures[i] = units.NewKelvin(tNew[i])
	}
	sa.clearStepAccumulators()
	return nil
}

// GetMaxTimestep returns the diffusive Courant bound min over all nodes
// (spec §4.3's bound family, applied without the fluid-only convective
// term).
func (sa *SolidArray) GetMaxTimestep(deltaTmax units.Temperature) (units.Time, error) {
	dx := math.Sqrt(float64(sa.Area))
	best := math.Inf(1)
	for i := 0; i < sa.N(); i++ {
		T := sa.temperatures[i]
		rho, err := sa.Material.Density(T)
		if err != nil {
			return 0, err
		}
		k, err := sa.Material.Conductivity(T)
		if err != nil {
			return 0, err
		}
		cp, err := sa.Material.SpecificHeat(T)
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
	}
	if math.IsInf(best, 1) {
		return 0, tuaserr.New(tuaserr.CourantMassFlowVectorEmpty, "SolidArray.GetMaxTimestep: no valid bound computed")
	}
	return units.Time(best), nil
}
