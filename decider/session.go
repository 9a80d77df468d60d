package decider

import (
	"fmt"
	"io"
	"log"
)

// InsufficientInputError reports that a mandatory collection step ended
// with zero items. It is the only error that escalates past the session:
// the process is expected to terminate with a distinguishable status.
type InsufficientInputError struct {
	Subject string // "alternatives" or "factors"
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("no %s entered", e.Subject)
}

// UserInterface is the adapter contract a front end implements to drive
// the elicitation state machine. Each Edit call blocks until the user
// confirms (true) or abandons (false) the step; the engine applies the
// documented fallback on abandonment.
type UserInterface interface {
	ShowIntroduction()
	EditNameList(prompt ListPrompt, list *NameList) bool
	EditImportances(factors []Factor, vec *ImportanceVector) bool
	EditRatings(alts []Alternative, factors []Factor, b *MatrixBuilder) bool
	PresentResults(ranked []Alternative)
}

// Session sequences the elicitation steps. Steps run strictly one after
// another; no step starts before the previous one's result is final.
type Session struct {
	ui     UserInterface
	scorer Scorer
	cfg    Config
	logger *log.Logger
}

func NewSession(ui UserInterface, scorer Scorer, cfg Config, logger *log.Logger) *Session {
	cfg.ApplyDefaults()
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{ui: ui, scorer: scorer, cfg: cfg, logger: logger}
}

// Run executes the full flow: introduction, alternative and factor
// collection, importance elicitation, ratings matrix, scoring, result
// presentation. The ranked alternatives are returned for callers that
// want them beyond the presentation.
func (s *Session) Run() ([]Alternative, error) {
	s.ui.ShowIntroduction()

	altNames, err := s.collectNames(ListPrompt{
		Title:      "Alternatives",
		FieldLabel: "Add an alternative",
		Hint:       "Enter a name and press Add",
	}, "alternatives")
	if err != nil {
		return nil, err
	}
	facNames, err := s.collectNames(ListPrompt{
		Title:      "Factors",
		FieldLabel: "Add a factor",
		Hint:       "Enter a factor and press Add",
	}, "factors")
	if err != nil {
		return nil, err
	}

	alts := make([]Alternative, len(altNames))
	for i, n := range altNames {
		alts[i] = Alternative{Name: n}
	}
	factors := make([]Factor, len(facNames))
	for i, n := range facNames {
		factors[i] = Factor{Name: n}
	}
	s.logger.Printf("collected %d alternatives, %d factors", len(alts), len(factors))

	s.elicitImportances(factors)
	ratings := s.buildRatings(alts, factors)

	ranked := alts
	if s.scorer != nil {
		ranked = s.scorer.Rank(alts, factors, ratings)
	}
	s.ui.PresentResults(ranked)
	return ranked, nil
}

// collectNames runs one mandatory list-collection step. Confirming with
// an empty list re-opens the step; abandoning yields the empty list,
// which escalates to InsufficientInputError.
func (s *Session) collectNames(prompt ListPrompt, subject string) ([]string, error) {
	list := NewNameList(true)
	for {
		if !s.ui.EditNameList(prompt, list) {
			list.Abandon()
			return nil, &InsufficientInputError{Subject: subject}
		}
		names, err := list.Confirm()
		if err == nil {
			return names, nil
		}
		// Confirm refused with zero items; the step stays open.
		s.logger.Printf("%s: confirm rejected, list is empty", subject)
	}
}

func (s *Session) elicitImportances(factors []Factor) {
	standard := s.cfg.Standard
	if len(factors) == 1 {
		factors[0].Rank = clampRankInt(standard)
		return
	}
	vec := NewImportanceVector(len(factors), standard)
	if !s.ui.EditImportances(factors, vec) {
		vec.Abandon()
	}
	vec.Apply(factors)
}

func (s *Session) buildRatings(alts []Alternative, factors []Factor) [][]float64 {
	b := NewMatrixBuilder(len(alts), len(factors), s.cfg.Standard)
	if !s.ui.EditRatings(alts, factors, b) {
		return b.Abandon()
	}
	return b.Confirm()
}
