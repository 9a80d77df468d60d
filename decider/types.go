package decider

// Rank and rating values share one bounded scale. Standard marks the
// neutral point on that scale and anchors every elicitation step.
const (
	MinRank = 0
	MaxRank = 1000

	DefaultStandard = 100
)

// Alternative is one of the options being compared. A score is attached
// by the scorer after elicitation; until then Scored is false and the
// presenter renders a blank field.
type Alternative struct {
	Name   string
	Score  float64
	Scored bool
}

// SetScore attaches a computed score.
func (a *Alternative) SetScore(s float64) {
	a.Score = s
	a.Scored = true
}

// Factor is one criterion used to evaluate alternatives. Rank holds its
// relative importance in [MinRank, MaxRank], assigned exactly once by the
// importance step.
type Factor struct {
	Name string
	Rank int
}

// Scorer turns the elicited data into a best-to-worst ordering. The
// ratings matrix is positional: rows follow alts, columns follow factors,
// row 0 is the anchored baseline alternative.
type Scorer interface {
	Rank(alts []Alternative, factors []Factor, ratings [][]float64) []Alternative
}
