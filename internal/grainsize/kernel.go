// Package grainsize evaluates the Weingartner & Draine (2001) parameterized
// grain-size distributions dn/da (number of grains per unit size interval,
// per hydrogen nucleus) for the dust components of a multi-grain dust mix.
package grainsize

import (
	"math"

	"github.com/astroferreira/graindist/internal/constants"
)

// GrainSilicateParams holds the fit coefficients of the graphite/silicate
// size distribution form (Weingartner & Draine 2001, eqs. 4-6).
type GrainSilicateParams struct {
	C     float64 // magnitude scale
	AT    float64 // [m] transition radius
	AC    float64 // [m] cutoff curvature radius
	Alpha float64 // power-law index
	Beta  float64 // curvature; sign selects the f1 branch
}

// PAHParams holds the coefficients of the double-lognormal PAH size
// distribution form (Li & Draine 2001).
type PAHParams struct {
	Sigma float64    // lognormal width
	A0    [2]float64 // [m] lognormal centers
	BC    [2]float64 // carbon abundance per mode, relative to H
}

// DndaGrainSilicate evaluates the graphite/silicate form at grain radius a [m].
// Note: for Beta < 0 the f1 branch diverges at a = AT/Beta; the published
// coefficient tables never place that pole inside the evaluated size range.
func DndaGrainSilicate(a float64, p GrainSilicateParams) float64 {
	f0 := p.C / a * math.Pow(a/p.AT, p.Alpha)
	var f1 float64
	if p.Beta > 0 {
		f1 = 1. + p.Beta*a/p.AT
	} else {
		f1 = 1. / (1. - p.Beta*a/p.AT)
	}
	f2 := 1.
	if a >= p.AT {
		f2 = math.Exp(-math.Pow((a-p.AT)/p.AC, 3))
	}
	return f0 * f1 * f2
}

// DndaPAH evaluates the PAH form at grain radius a [m]. The per-mode
// normalization B ties the lognormal to the carbon abundance BC through an
// error-function mass constraint; it is cheap and recomputed on every call.
func DndaPAH(a float64, p PAHParams) float64 {
	var b [2]float64
	for i := 0; i < 2; i++ {
		t0 := 3. / math.Pow(2.*math.Pi, 1.5)
		t1 := math.Exp(-4.5 * p.Sigma * p.Sigma)
		t2 := 1. / constants.GraphiteDensity / math.Pow(p.A0[i], 3) / p.Sigma
		erffac := 3.*p.Sigma/math.Sqrt2 + math.Log(p.A0[i]/constants.PAHMinRadius)/(math.Sqrt2*p.Sigma)
		t3 := p.BC[i] * constants.CarbonMass / (1. + math.Erf(erffac))
		b[i] = t0 * t1 * t2 * t3
	}
	sum := 0.
	for i := 0; i < 2; i++ {
		u := math.Log(a/p.A0[i]) / p.Sigma
		sum += b[i] / a * math.Exp(-0.5*u*u)
	}
	return sum
}
