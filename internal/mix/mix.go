// Package mix assembles the Weingartner & Draine multi-grain dust mix:
// for each dust component it binds the environment-resolved size
// distribution to the component's grain material and size range, and asks a
// population builder to discretize it.
package mix

import (
	"github.com/astroferreira/graindist/internal/composition"
	"github.com/astroferreira/graindist/internal/grainsize"
)

// PopulationBuilder discretizes a continuous size distribution over
// [aMin, aMax] into numSizes populations, each referencing comp. Error policy
// for degenerate counts or ranges belongs to the builder.
type PopulationBuilder interface {
	AddPopulations(comp *composition.Composition, aMin, aMax float64, dnda func(a float64) float64, numSizes int)
}

// Counts holds the requested number of size bins per component family.
// Neutral and ionized PAH populations share the PAH count.
type Counts struct {
	Graphite int
	Silicate int
	PAH      int
}

// Build registers the four grain populations of the mix with the builder, in
// the fixed order graphite, silicate, neutral PAH, ionized PAH. It is a
// one-shot setup call: invoking it twice on the same builder registers the
// populations twice.
func Build(builder PopulationBuilder, env grainsize.Environment, counts Counts) {
	aMin, aMax := grainsize.SizeRange(grainsize.Graphite)
	builder.AddPopulations(composition.NewDraineGraphite(), aMin, aMax,
		grainsize.Distribution(env, grainsize.Graphite), counts.Graphite)

	aMin, aMax = grainsize.SizeRange(grainsize.Silicate)
	builder.AddPopulations(composition.NewDraineSilicate(), aMin, aMax,
		grainsize.Distribution(env, grainsize.Silicate), counts.Silicate)

	aMin, aMax = grainsize.SizeRange(grainsize.NeutralPAH)
	builder.AddPopulations(composition.NewDraineNeutralPAH(), aMin, aMax,
		grainsize.Distribution(env, grainsize.NeutralPAH), counts.PAH)

	aMin, aMax = grainsize.SizeRange(grainsize.IonizedPAH)
	builder.AddPopulations(composition.NewDraineIonizedPAH(), aMin, aMax,
		grainsize.Distribution(env, grainsize.IonizedPAH), counts.PAH)
}
