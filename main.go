package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/facette/natsort"

	"github.com/astroferreira/graindist/internal/config"
	"github.com/astroferreira/graindist/internal/grainsize"
	"github.com/astroferreira/graindist/internal/mix"
	"github.com/astroferreira/graindist/internal/utils"
)

var materialKinds = []grainsize.MaterialKind{
	grainsize.Graphite,
	grainsize.Silicate,
	grainsize.NeutralPAH,
	grainsize.IonizedPAH,
}

func main() {
	var savePops = flag.Bool("pops", true, "save discretized population table")
	var saveDnda = flag.Bool("dnda", false, "save sampled dn/da curves per material")
	var configFileNamePointer = flag.String("input", "dustmix", "mix configuration in toml format")
	flag.Parse()

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	configFileName := strings.TrimSuffix(*configFileNamePointer, ".toml")
	cfg, meta, err := config.LoadConfig(configFileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outputPath := ""
	if cfg.OutputDir != "" && cfg.OutputDir != "." {
		os.MkdirAll(cfg.OutputDir, 0750)
		outputPath += cfg.OutputDir + "/"
	}

	mixNames := make([]string, 0, len(cfg.Mixes))
	for name := range cfg.Mixes {
		mixNames = append(mixNames, name)
	}
	natsort.Sort(mixNames)

	for _, mixName := range mixNames {
		fmt.Println("\n" + mixName)
		parameters := cfg.Mixes[mixName]
		parameters.CheckDefaults(mixName, &cfg, &meta)
		env, err := parameters.EnvironmentPreset()
		if err != nil {
			fmt.Fprintln(os.Stderr, "mix "+mixName+": "+err.Error())
			continue
		}

		var discretizer mix.Discretizer
		mix.Build(&discretizer, env, mix.Counts{
			Graphite: parameters.NumGraphiteSizes,
			Silicate: parameters.NumSilicateSizes,
			PAH:      parameters.NumPAHSizes,
		})
		populations := discretizer.Populations()
		fmt.Printf("%s: %d populations\n", env, len(populations))

		if *savePops {
			rows := make(utils.CSV, 0, len(populations))
			for i, p := range populations {
				rows = append(rows, []string{
					"p" + strconv.Itoa(i+1),
					p.Composition.Name(),
					strconv.FormatFloat(p.AMin, 'e', -1, 64),
					strconv.FormatFloat(p.AMax, 'e', -1, 64),
					strconv.FormatFloat(p.ARep, 'e', -1, 64),
					strconv.FormatFloat(p.Number, 'e', -1, 64),
					strconv.FormatFloat(p.Mass, 'e', -1, 64),
				})
			}
			err := utils.WriteAsCSV(rows, parameters.MakeDir, outputPath, "populations", mixName,
				[]string{"population", "material", "a_min (m)", "a_max (m)", "a_rep (m)", "N/H", "M/H (kg)"})
			if err != nil {
				println("unable to save population table: ", err.Error())
			} else {
				println("population table saved")
			}
		}

		if *saveDnda {
			for _, kind := range materialKinds {
				aMin, aMax := grainsize.SizeRange(kind)
				dnda := grainsize.Distribution(env, kind)
				grid := utils.LogSpace(aMin, aMax, parameters.NumSamples)

				file, err := utils.OpenFile(parameters.MakeDir, outputPath, "dnda_"+kind.String(), mixName)
				if err != nil {
					println("unable to save dn/da for "+kind.String()+": ", err.Error())
					continue
				}
				rows := [][]string{{"a (m)", "dn/da (m^-1 H^-1)"}}
				for _, a := range grid {
					rows = append(rows, []string{
						strconv.FormatFloat(a, 'e', -1, 64),
						strconv.FormatFloat(dnda(a), 'e', -1, 64),
					})
				}
				w := csv.NewWriter(file)
				w.WriteAll(rows)
				if err := w.Error(); err != nil {
					println("error writing csv: ", err.Error())
				} else {
					println("dn/da for " + kind.String() + " saved")
				}
				file.Close()
			}
		}
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}
