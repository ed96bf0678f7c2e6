package mix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/astroferreira/graindist/internal/composition"
	"github.com/astroferreira/graindist/internal/grainsize"
)

func TestDiscretizerBinsTileRange(t *testing.T) {
	var d Discretizer
	aMin, aMax := grainsize.SizeRange(grainsize.NeutralPAH)
	dnda := grainsize.Distribution(grainsize.MilkyWay, grainsize.NeutralPAH)
	d.AddPopulations(composition.NewDraineNeutralPAH(), aMin, aMax, dnda, 8)

	pops := d.Populations()
	require.Len(t, pops, 8)
	assert.Equal(t, aMin, pops[0].AMin)
	assert.Equal(t, aMax, pops[len(pops)-1].AMax)
	for i, p := range pops {
		assert.Less(t, p.AMin, p.AMax)
		assert.InEpsilon(t, math.Sqrt(p.AMin*p.AMax), p.ARep, 1e-12)
		if i > 0 {
			assert.Equal(t, pops[i-1].AMax, p.AMin, "bins must share edges")
		}
	}
}

func TestDiscretizerBinIntegrals(t *testing.T) {
	var d Discretizer
	aMin, aMax := grainsize.SizeRange(grainsize.NeutralPAH)
	dnda := grainsize.Distribution(grainsize.MilkyWay, grainsize.NeutralPAH)
	comp := composition.NewDraineNeutralPAH()
	d.AddPopulations(comp, aMin, aMax, dnda, 8)

	var totalNumber float64
	for _, p := range d.Populations() {
		assert.Greater(t, p.Number, 0.)
		assert.Greater(t, p.Mass, 0.)
		assert.Same(t, comp, p.Composition)
		totalNumber += p.Number
	}

	// the per-bin quadratures must add up to the integral over the full range
	direct := quad.Fixed(dnda, aMin, aMax, 200, nil, 0)
	assert.InEpsilon(t, direct, totalNumber, 1e-4)
}

func TestDiscretizerAccumulatesAcrossCalls(t *testing.T) {
	var d Discretizer
	graAMin, graAMax := grainsize.SizeRange(grainsize.Graphite)
	pahAMin, pahAMax := grainsize.SizeRange(grainsize.NeutralPAH)
	d.AddPopulations(composition.NewDraineGraphite(), graAMin, graAMax,
		grainsize.Distribution(grainsize.MilkyWay, grainsize.Graphite), 3)
	d.AddPopulations(composition.NewDraineNeutralPAH(), pahAMin, pahAMax,
		grainsize.Distribution(grainsize.MilkyWay, grainsize.NeutralPAH), 2)

	pops := d.Populations()
	require.Len(t, pops, 5)
	assert.Equal(t, "Draine_Graphite", pops[0].Composition.Name())
	assert.Equal(t, "Draine_Neutral_PAH", pops[3].Composition.Name())
}

func TestDiscretizerRejectsDegenerateInput(t *testing.T) {
	dnda := func(a float64) float64 { return 1. }
	comp := composition.NewDraineGraphite()

	var d Discretizer
	assert.Panics(t, func() { d.AddPopulations(comp, 1e-9, 1e-6, dnda, 0) })
	assert.Panics(t, func() { d.AddPopulations(comp, 1e-9, 1e-6, dnda, -1) })
	assert.Panics(t, func() { d.AddPopulations(comp, 0, 1e-6, dnda, 4) })
	assert.Panics(t, func() { d.AddPopulations(comp, 1e-6, 1e-6, dnda, 4) })
	assert.Panics(t, func() { d.AddPopulations(comp, 1e-6, 1e-9, dnda, 4) })
}
