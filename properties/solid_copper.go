package properties

import "github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"

// newCopper builds the Copper model (spec §4.1): rho = 8940 kg/m3
// constant; cp and k by natural cubic spline over tabulated nodes,
// 200-1000 K (cp) and 250-1000 K (k).
func newCopper() Solid {
	kNodesT := []float64{250, 300, 400, 500, 600, 700, 800, 900, 1000}
	kNodesV := []float64{406, 401, 393, 386, 379, 374, 369, 363, 357}

	cpNodesT := []float64{200, 250, 300, 400, 500, 600, 700, 800, 900, 1000}
	cpNodesV := []float64{356, 373, 385, 397, 406, 414, 422, 431, 440, 450}

	return newSplineSolid("Copper", units.NewKelvin(250), units.NewKelvin(1000), 8940, 1.5e-6,
		kNodesT, kNodesV, nil, cpNodesT, cpNodesV)
}
