package grainsize

import (
	"fmt"
)

// Environment selects which published coefficient tables apply.
type Environment int

const (
	MilkyWay Environment = iota // R_V = 3.1 Milky Way dust
	LMC                         // Large Magellanic Cloud average dust
)

func (e Environment) String() string {
	switch e {
	case MilkyWay:
		return "MilkyWay"
	case LMC:
		return "LMC"
	}
	return fmt.Sprintf("Environment(%d)", int(e))
}

// ParseEnvironment maps a configuration string to an Environment.
func ParseEnvironment(s string) (Environment, error) {
	switch s {
	case "MilkyWay", "MWY":
		return MilkyWay, nil
	case "LMC":
		return LMC, nil
	}
	return 0, fmt.Errorf("unknown environment %q (want MilkyWay or LMC)", s)
}

// MaterialKind identifies one of the four dust components of the mix.
type MaterialKind int

const (
	Graphite MaterialKind = iota
	Silicate
	NeutralPAH
	IonizedPAH
)

func (k MaterialKind) String() string {
	switch k {
	case Graphite:
		return "graphite"
	case Silicate:
		return "silicate"
	case NeutralPAH:
		return "neutral_PAH"
	case IonizedPAH:
		return "ionized_PAH"
	}
	return fmt.Sprintf("MaterialKind(%d)", int(k))
}

// Grain size ranges per dust component [m]. They are fixed by the model and
// do not depend on the environment.
const (
	aMinGra = 0.001e-6
	aMaxGra = 10.0e-6
	aMinSil = 0.001e-6
	aMaxSil = 10.0e-6
	aMinPAH = 0.0003548e-6
	aMaxPAH = 0.01e-6
)

// SizeRange returns the validity range [aMin, aMax] in meters over which the
// distribution of the given component is evaluated.
func SizeRange(kind MaterialKind) (aMin, aMax float64) {
	switch kind {
	case Graphite:
		return aMinGra, aMaxGra
	case Silicate:
		return aMinSil, aMaxSil
	case NeutralPAH, IonizedPAH:
		return aMinPAH, aMaxPAH
	}
	panic("grainsize: size range for unknown material kind " + kind.String())
}

// Milky Way coefficients, R_V = 3.1:
//   Table 1 p300 in Weingartner & Draine 2001, ApJ, 548, 296
//   Table 3 p787 in Li & Draine 2001, ApJ, 554, 778
var (
	graphiteMWY = GrainSilicateParams{C: 9.99e-12, AT: 0.0107e-6, AC: 0.428e-6, Alpha: -1.54, Beta: -0.165}
	silicateMWY = GrainSilicateParams{C: 1.00e-13, AT: 0.164e-6, AC: 0.1e-6, Alpha: -2.21, Beta: 0.300}
	pahMWY      = PAHParams{Sigma: 0.4, A0: [2]float64{3.5e-10, 30e-10}, BC: [2]float64{4.5e-5, 1.5e-5}}
)

// LMC coefficients:
//   Line 2 of Table 3 p305 in Weingartner & Draine 2001, ApJ, 548, 296
//   PAHs use the Milky Way shape with 1/6 of the total carbon abundance
//   (line 2 of Table 3: b_C = 1.0 versus b_C = 6 for R_V = 3.1)
var (
	graphiteLMC = GrainSilicateParams{C: 3.51e-15, AT: 0.0980e-6, AC: 0.641e-6, Alpha: -2.99, Beta: 2.46}
	silicateLMC = GrainSilicateParams{C: 1.78e-14, AT: 0.184e-6, AC: 0.1e-6, Alpha: -2.49, Beta: 0.345}
	pahLMC      = PAHParams{Sigma: 0.4, A0: [2]float64{3.5e-10, 30e-10}, BC: [2]float64{0.75e-5, 0.25e-5}}
)

// GraphiteParams returns the graphite coefficient table for env.
func GraphiteParams(env Environment) GrainSilicateParams {
	switch env {
	case MilkyWay:
		return graphiteMWY
	case LMC:
		return graphiteLMC
	}
	panic("grainsize: graphite parameters for unknown environment " + env.String())
}

// SilicateParams returns the silicate coefficient table for env.
func SilicateParams(env Environment) GrainSilicateParams {
	switch env {
	case MilkyWay:
		return silicateMWY
	case LMC:
		return silicateLMC
	}
	panic("grainsize: silicate parameters for unknown environment " + env.String())
}

// NeutralPAHParams returns the PAH coefficient table for env. The table
// describes the total PAH population; distributions built from it must be
// halved to represent the neutral part of a 50/50 charge split.
func NeutralPAHParams(env Environment) PAHParams {
	switch env {
	case MilkyWay:
		return pahMWY
	case LMC:
		return pahLMC
	}
	panic("grainsize: PAH parameters for unknown environment " + env.String())
}

// IonizedPAHParams returns the PAH coefficient table for env. The current
// model uses identical tables for both charge states; see NeutralPAHParams.
func IonizedPAHParams(env Environment) PAHParams {
	return NeutralPAHParams(env)
}

// Distribution binds the coefficient table of (env, kind) into a density
// function of the grain radius alone. For the PAH kinds the result carries
// the 0.5 factor of the 50/50 neutral/ionized split.
func Distribution(env Environment, kind MaterialKind) func(a float64) float64 {
	switch kind {
	case Graphite:
		p := GraphiteParams(env)
		return func(a float64) float64 { return DndaGrainSilicate(a, p) }
	case Silicate:
		p := SilicateParams(env)
		return func(a float64) float64 { return DndaGrainSilicate(a, p) }
	case NeutralPAH:
		p := NeutralPAHParams(env)
		return func(a float64) float64 { return 0.5 * DndaPAH(a, p) }
	case IonizedPAH:
		p := IonizedPAHParams(env)
		return func(a float64) float64 { return 0.5 * DndaPAH(a, p) }
	}
	panic("grainsize: distribution for unknown material kind " + kind.String())
}
