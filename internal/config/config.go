// Package config loads the TOML run configuration: a set of named dust mixes
// with per-mix overrides of global defaults.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/astroferreira/graindist/internal/grainsize"
)

type Config struct {
	OutputDir string
	Mixes     map[string]MixParameters

	// global defaults for the per-mix parameters
	Environment      string
	NumGraphiteSizes int
	NumSilicateSizes int
	NumPAHSizes      int
	NumSamples       int
	MakeDir          bool
}

type MixParameters struct {
	Environment      string
	NumGraphiteSizes int
	NumSilicateSizes int
	NumPAHSizes      int
	NumSamples       int // sampling resolution of the dn/da output curves
	MakeDir          bool
}

func LoadConfig(configFileName string) (Config, toml.MetaData, error) {
	var config Config
	meta, err := toml.DecodeFile(configFileName+".toml", &config)
	if err != nil {
		return Config{}, meta, err
	}
	if len(config.Mixes) == 0 {
		return Config{}, meta, fmt.Errorf("no mixes provided in %s.toml", configFileName)
	}
	return config, meta, nil
}

// CheckDefaults fills the unset fields of a named mix, preferring the global
// config value over the built-in default. Field presence is decided through
// the TOML metadata, so an explicit zero stays a zero.
func (mp *MixParameters) CheckDefaults(mixName string, config *Config, meta *toml.MetaData) {
	if !meta.IsDefined("Mixes", mixName, "Environment") {
		if meta.IsDefined("Environment") {
			mp.Environment = config.Environment
		} else {
			mp.Environment = grainsize.MilkyWay.String()
		}
	}
	if !meta.IsDefined("Mixes", mixName, "NumGraphiteSizes") {
		if meta.IsDefined("NumGraphiteSizes") {
			mp.NumGraphiteSizes = config.NumGraphiteSizes
		} else {
			mp.NumGraphiteSizes = 5
		}
	}
	if !meta.IsDefined("Mixes", mixName, "NumSilicateSizes") {
		if meta.IsDefined("NumSilicateSizes") {
			mp.NumSilicateSizes = config.NumSilicateSizes
		} else {
			mp.NumSilicateSizes = 5
		}
	}
	if !meta.IsDefined("Mixes", mixName, "NumPAHSizes") {
		if meta.IsDefined("NumPAHSizes") {
			mp.NumPAHSizes = config.NumPAHSizes
		} else {
			mp.NumPAHSizes = 5
		}
	}
	if !meta.IsDefined("Mixes", mixName, "NumSamples") {
		if meta.IsDefined("NumSamples") {
			mp.NumSamples = config.NumSamples
		} else {
			mp.NumSamples = 200
		}
	}
	if !meta.IsDefined("Mixes", mixName, "MakeDir") {
		mp.MakeDir = true
		if meta.IsDefined("MakeDir") {
			mp.MakeDir = config.MakeDir
		}
	}
}

// EnvironmentPreset parses the mix's environment string.
func (mp *MixParameters) EnvironmentPreset() (grainsize.Environment, error) {
	return grainsize.ParseEnvironment(mp.Environment)
}
