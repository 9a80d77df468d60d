package decider

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV exports the elicited data: one importance row per factor,
// then the ratings matrix with one row per alternative. Column order
// follows the factors.
func WriteCSV(w io.Writer, alts []Alternative, factors []Factor, ratings [][]float64) error {
	cw := csv.NewWriter(w)

	header := []string{"factor", "importance"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, f := range factors {
		if err := cw.Write([]string{f.Name, fmt.Sprintf("%d", f.Rank)}); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	matrixHeader := []string{"alternative"}
	for _, f := range factors {
		matrixHeader = append(matrixHeader, f.Name)
	}
	if err := cw.Write(matrixHeader); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for r, a := range alts {
		record := []string{a.Name}
		for c := range factors {
			val := ""
			if r < len(ratings) && c < len(ratings[r]) {
				val = fmt.Sprintf("%g", ratings[r][c])
			}
			record = append(record, val)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
