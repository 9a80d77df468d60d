package decider

// ImportanceVector holds one importance value per factor, positionally.
// The last entry is the baseline: it is pinned to the standard value and
// cannot be written. Every other entry defaults to standard and accepts
// values clamped to [MinRank, MaxRank].
type ImportanceVector struct {
	values   []int
	standard int
}

func NewImportanceVector(factorCount, standard int) *ImportanceVector {
	standard = clampRankInt(standard)
	v := &ImportanceVector{
		values:   make([]int, factorCount),
		standard: standard,
	}
	for i := range v.values {
		v.values[i] = standard
	}
	return v
}

func (v *ImportanceVector) Len() int { return len(v.values) }

// BaselineIndex is the position pinned to the standard value.
func (v *ImportanceVector) BaselineIndex() int { return len(v.values) - 1 }

func (v *ImportanceVector) Standard() int { return v.standard }

func (v *ImportanceVector) Get(i int) int {
	if i < 0 || i >= len(v.values) {
		return v.standard
	}
	return v.values[i]
}

// Set writes a clamped importance value. Writes to the baseline index or
// out of range are a no-op.
func (v *ImportanceVector) Set(i, val int) bool {
	if i < 0 || i >= len(v.values) || i == v.BaselineIndex() {
		return false
	}
	v.values[i] = clampRankInt(val)
	return true
}

// Confirm returns the elicited values with the baseline forced to the
// standard value.
func (v *ImportanceVector) Confirm() []int {
	out := append([]int(nil), v.values...)
	if n := len(out); n > 0 {
		out[n-1] = v.standard
	}
	return out
}

// Abandon resets every entry, baseline included, to the standard value
// and returns the uniform result.
func (v *ImportanceVector) Abandon() []int {
	for i := range v.values {
		v.values[i] = v.standard
	}
	return append([]int(nil), v.values...)
}

// Apply copies the values onto the factors' ranks, positionally.
func (v *ImportanceVector) Apply(factors []Factor) {
	vals := v.Confirm()
	for i := range factors {
		if i < len(vals) {
			factors[i].Rank = vals[i]
		}
	}
}

func clampRankInt(v int) int {
	if v < MinRank {
		return MinRank
	}
	if v > MaxRank {
		return MaxRank
	}
	return v
}
