package constants

const CarbonMass float64 = 1.9944e-26      // [kg]
const GraphiteDensity float64 = 2.24e3     // [kg m^-3]
const SilicateDensity float64 = 3.0e3      // [kg m^-3]
const PAHMinRadius float64 = 3.5e-10       // [m] 3.5 Angstrom, lower cutoff of the PAH lognormal normalization
const HydrogenMass float64 = 1.6735575e-27 // [kg]
