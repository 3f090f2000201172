package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// readPointsCSV reads a rectangular CSV file of numeric rows into a flat
// row-major buffer. Reading CSV is explicitly out of the core package's
// scope (spec.md names it as an external collaborator concern); the CLI
// is that collaborator.
func readPointsCSV(path string) (data []float64, rows, cols int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("reading input csv: %w", err)
	}
	if len(records) == 0 {
		return nil, 0, 0, fmt.Errorf("input csv has no rows")
	}

	cols = len(records[0])
	data = make([]float64, 0, len(records)*cols)
	for i, rec := range records {
		if len(rec) != cols {
			return nil, 0, 0, fmt.Errorf("row %d has %d columns, want %d", i, len(rec), cols)
		}
		for _, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, 0, 0, fmt.Errorf("row %d: %w", i, err)
			}
			data = append(data, v)
		}
	}

	return data, len(records), cols, nil
}
