package utils

import (
	"encoding/csv"
	"os"
	"sort"

	"github.com/facette/natsort"
)

type CSV [][]string

func (data CSV) Less(i, j int) bool {
	return natsort.Compare(data[i][0], data[j][0])
}

func (data CSV) Len() int {
	return len(data)
}
func (data CSV) Swap(i, j int) {
	data[i], data[j] = data[j], data[i]
}

func OpenFile(makeDir bool, outputPath string, fileSuffix, mixName string) (*os.File, error) {
	if makeDir && mixName != "" && mixName != "." {
		os.MkdirAll(outputPath+mixName, 0750)
		return os.Create(outputPath + mixName + "/" + fileSuffix + ".csv")
	} else {
		return os.Create(outputPath + mixName + "_" + fileSuffix + ".csv")
	}
}

func WriteAsCSV(data CSV, makeDir bool, path, fileSuffix, mixName string, columns []string) error {
	file, err := OpenFile(makeDir, path, fileSuffix, mixName)
	if err != nil {
		return err
	}
	defer file.Close()
	w := csv.NewWriter(file)
	w.WriteAll([][]string{columns})
	sort.Sort(data)
	w.WriteAll(data)
	w.Flush()
	return w.Error()
}
