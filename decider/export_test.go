package decider

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	alts := []Alternative{{Name: "A"}, {Name: "B"}}
	factors := []Factor{{Name: "Cost", Rank: 40}, {Name: "Quality", Rank: 100}}
	ratings := [][]float64{
		{100, 100},
		{250, 12.5},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, alts, factors, ratings); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1 // the export mixes row widths
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	want := [][]string{
		{"factor", "importance"},
		{"Cost", "40"},
		{"Quality", "100"},
		{"alternative", "Cost", "Quality"},
		{"A", "100", "100"},
		{"B", "250", "12.5"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("records = %v, want %v", records, want)
	}
}
