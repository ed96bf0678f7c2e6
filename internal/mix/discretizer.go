package mix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/astroferreira/graindist/internal/composition"
)

const quadNodes = 20

// Population is one discretized size bin of a continuous distribution.
type Population struct {
	Composition *composition.Composition
	AMin        float64 // [m] lower bin edge
	AMax        float64 // [m] upper bin edge
	ARep        float64 // [m] representative size, geometric bin midpoint
	Number      float64 // grains per H nucleus in the bin
	Mass        float64 // [kg] dust mass per H nucleus in the bin
}

// Discretizer implements PopulationBuilder with logarithmic bins. Per bin it
// integrates the number density and the grain mass (4pi/3 rho a^3 dn/da)
// with fixed-order Gauss-Legendre quadrature.
type Discretizer struct {
	pops []Population
}

func (d *Discretizer) AddPopulations(comp *composition.Composition, aMin, aMax float64, dnda func(a float64) float64, numSizes int) {
	if numSizes <= 0 {
		panic(fmt.Sprintf("mix: invalid population count %d for %s", numSizes, comp.Name()))
	}
	if !(aMin > 0) || !(aMax > aMin) {
		panic(fmt.Sprintf("mix: degenerate size range [%g, %g] for %s", aMin, aMax, comp.Name()))
	}
	rho := comp.BulkDensity()
	edges := floats.LogSpan(make([]float64, numSizes+1), aMin, aMax)
	// LogSpan round-trips through log/exp; pin the outer edges to the exact
	// requested range
	edges[0], edges[numSizes] = aMin, aMax
	for i := 0; i < numSizes; i++ {
		lo, hi := edges[i], edges[i+1]
		number := quad.Fixed(dnda, lo, hi, quadNodes, nil, 0)
		mass := quad.Fixed(func(a float64) float64 {
			return dnda(a) * 4. * math.Pi / 3. * rho * a * a * a
		}, lo, hi, quadNodes, nil, 0)
		d.pops = append(d.pops, Population{
			Composition: comp,
			AMin:        lo,
			AMax:        hi,
			ARep:        math.Sqrt(lo * hi),
			Number:      number,
			Mass:        mass,
		})
	}
}

// Populations returns the registered populations in registration order.
func (d *Discretizer) Populations() []Population {
	return d.pops
}
