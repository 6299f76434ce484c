package utils

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"option-terminal/src/eventmodels"
)

// LoadContractRows reads a batch pricing sheet from path.
func LoadContractRows(path string) ([]*eventmodels.CsvContractDTO, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadContractRows: failed to open %s: %v", path, err)
	}
	defer f.Close()

	var rows []*eventmodels.CsvContractDTO
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("LoadContractRows: error unmarshalling %s: %v", path, err)
	}

	return rows, nil
}

// LoadCloses reads a closing-price series from path.
func LoadCloses(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCloses: failed to open %s: %v", path, err)
	}
	defer f.Close()

	var rows []*eventmodels.CsvCloseDTO
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("LoadCloses: error unmarshalling %s: %v", path, err)
	}

	closes := make([]float64, 0, len(rows))
	for _, row := range rows {
		closes = append(closes, row.Close)
	}

	return closes, nil
}
