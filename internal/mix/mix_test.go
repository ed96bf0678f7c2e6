package mix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroferreira/graindist/internal/composition"
	"github.com/astroferreira/graindist/internal/grainsize"
)

type recordedCall struct {
	comp       *composition.Composition
	aMin, aMax float64
	dnda       func(a float64) float64
	numSizes   int
}

type recordingBuilder struct {
	calls []recordedCall
}

func (b *recordingBuilder) AddPopulations(comp *composition.Composition, aMin, aMax float64, dnda func(a float64) float64, numSizes int) {
	b.calls = append(b.calls, recordedCall{comp, aMin, aMax, dnda, numSizes})
}

func TestBuildRegistersFourPopulationsInOrder(t *testing.T) {
	for _, env := range []grainsize.Environment{grainsize.MilkyWay, grainsize.LMC} {
		var builder recordingBuilder
		Build(&builder, env, Counts{Graphite: 10, Silicate: 11, PAH: 12})
		require.Len(t, builder.calls, 4)

		expected := []struct {
			name     string
			kind     grainsize.MaterialKind
			numSizes int
		}{
			{"Draine_Graphite", grainsize.Graphite, 10},
			{"Draine_Silicate", grainsize.Silicate, 11},
			{"Draine_Neutral_PAH", grainsize.NeutralPAH, 12},
			{"Draine_Ionized_PAH", grainsize.IonizedPAH, 12},
		}
		for i, want := range expected {
			call := builder.calls[i]
			assert.Equal(t, want.name, call.comp.Name())
			assert.Equal(t, want.numSizes, call.numSizes)

			aMin, aMax := grainsize.SizeRange(want.kind)
			assert.Equal(t, aMin, call.aMin)
			assert.Equal(t, aMax, call.aMax)

			// the bound function must be the environment-resolved distribution
			direct := grainsize.Distribution(env, want.kind)
			for _, a := range []float64{aMin, (aMin + aMax) / 2., aMax} {
				assert.Equal(t, direct(a), call.dnda(a), "%v %s at a=%g", env, want.name, a)
			}
		}
	}
}

func TestBuildBindsEnvironmentSpecificTables(t *testing.T) {
	var mwy, lmc recordingBuilder
	Build(&mwy, grainsize.MilkyWay, Counts{Graphite: 1, Silicate: 1, PAH: 1})
	Build(&lmc, grainsize.LMC, Counts{Graphite: 1, Silicate: 1, PAH: 1})
	require.Len(t, mwy.calls, 4)
	require.Len(t, lmc.calls, 4)

	a := 1e-8
	for i := range mwy.calls {
		assert.NotEqual(t, mwy.calls[i].dnda(a), lmc.calls[i].dnda(a),
			"environment tables must differ for %s", mwy.calls[i].comp.Name())
	}
}

func TestBuildIsNotIdempotent(t *testing.T) {
	// calling Build twice double-registers, by contract of the consumer
	var builder recordingBuilder
	Build(&builder, grainsize.MilkyWay, Counts{Graphite: 1, Silicate: 1, PAH: 1})
	Build(&builder, grainsize.MilkyWay, Counts{Graphite: 1, Silicate: 1, PAH: 1})
	assert.Len(t, builder.calls, 8)
}
