package decider

import (
	"math"
	"strconv"
	"strings"
)

// MatrixBuilder owns the ratings matrix while it is being elicited.
// Rows correspond to alternatives, columns to factors. Row 0 is the
// anchored baseline: every cell in it holds the standard value and stays
// immutable even if a caller writes to it. All other cells are clamped
// to [MinRank, MaxRank] on write.
type MatrixBuilder struct {
	data     [][]float64
	standard int
}

func NewMatrixBuilder(rows, cols, standard int) *MatrixBuilder {
	standard = clampRankInt(standard)
	b := &MatrixBuilder{
		data:     make([][]float64, rows),
		standard: standard,
	}
	for r := range b.data {
		b.data[r] = make([]float64, cols)
		for c := range b.data[r] {
			b.data[r][c] = float64(standard)
		}
	}
	return b
}

func (b *MatrixBuilder) Rows() int { return len(b.data) }

func (b *MatrixBuilder) Cols() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data[0])
}

func (b *MatrixBuilder) Standard() int { return b.standard }

// Seed copies pre-existing values into the builder. A zero cell is
// treated as unset and keeps the standard value; row 0 keeps its anchor
// regardless of the seed; everything else goes through the clamped write
// path.
func (b *MatrixBuilder) Seed(data [][]float64) {
	for r := 1; r < len(b.data) && r < len(data); r++ {
		for c := 0; c < len(b.data[r]) && c < len(data[r]); c++ {
			if data[r][c] == 0 {
				continue
			}
			b.Set(r, c, data[r][c])
		}
	}
}

func (b *MatrixBuilder) Get(r, c int) float64 {
	if r < 0 || r >= b.Rows() || c < 0 || c >= b.Cols() {
		return float64(b.standard)
	}
	return b.data[r][c]
}

// Set stores a clamped rating. Writes to row 0 or out of range are a
// no-op; the anchor row never changes. NaN is an invalid value and
// coerces to the standard value, so the matrix only ever holds finite
// values in [MinRank, MaxRank].
func (b *MatrixBuilder) Set(r, c int, v float64) bool {
	if r <= 0 || r >= b.Rows() || c < 0 || c >= b.Cols() {
		return false
	}
	if math.IsNaN(v) {
		v = float64(b.standard)
	}
	b.data[r][c] = clampRank(v)
	return true
}

// SetString parses raw as a rating. Input that does not parse as a
// number coerces to the standard value before the clamped write.
func (b *MatrixBuilder) SetString(r, c int, raw string) bool {
	return b.Set(r, c, CoerceCell(raw, b.standard))
}

// Confirm returns a deep copy of the matrix; later builder mutation is
// not observable through it.
func (b *MatrixBuilder) Confirm() [][]float64 {
	out := make([][]float64, len(b.data))
	for r := range b.data {
		out[r] = append([]float64(nil), b.data[r]...)
	}
	return out
}

// Abandon resets every cell, all rows and columns, to the standard value
// and returns that uniform matrix.
func (b *MatrixBuilder) Abandon() [][]float64 {
	for r := range b.data {
		for c := range b.data[r] {
			b.data[r][c] = float64(b.standard)
		}
	}
	return b.Confirm()
}

// CoerceCell parses a cell entry, falling back to the standard value
// for anything that is not a finite number. ParseFloat accepts "NaN"
// and "Inf" spellings, so those count as invalid input too. The result
// is clamped either way.
func CoerceCell(raw string, standard int) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		v = float64(clampRankInt(standard))
	}
	return clampRank(v)
}

func clampRank(v float64) float64 {
	if math.IsNaN(v) || v < MinRank {
		return MinRank
	}
	if v > MaxRank {
		return MaxRank
	}
	return v
}
