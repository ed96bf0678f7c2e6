// Package composition provides the grain material records attached to the
// discretized size populations of a dust mix.
package composition

import "github.com/astroferreira/graindist/internal/constants"

// Composition describes a single grain material. It is constructed by the
// assembler and handed to the population builder, which keeps the only
// reference afterwards.
type Composition struct {
	name        string
	bulkDensity float64 // [kg m^-3]
}

func (c *Composition) Name() string { return c.name }

// BulkDensity returns the bulk mass density of the solid material [kg m^-3].
func (c *Composition) BulkDensity() float64 { return c.bulkDensity }

// NewDraineGraphite returns the Draine & Lee graphite material.
func NewDraineGraphite() *Composition {
	return &Composition{name: "Draine_Graphite", bulkDensity: constants.GraphiteDensity}
}

// NewDraineSilicate returns the Draine & Lee astronomical silicate material.
func NewDraineSilicate() *Composition {
	return &Composition{name: "Draine_Silicate", bulkDensity: constants.SilicateDensity}
}

// NewDraineNeutralPAH returns the neutral PAH material. PAHs take the bulk
// density of graphite.
func NewDraineNeutralPAH() *Composition {
	return &Composition{name: "Draine_Neutral_PAH", bulkDensity: constants.GraphiteDensity}
}

// NewDraineIonizedPAH returns the ionized PAH material.
func NewDraineIonizedPAH() *Composition {
	return &Composition{name: "Draine_Ionized_PAH", bulkDensity: constants.GraphiteDensity}
}
