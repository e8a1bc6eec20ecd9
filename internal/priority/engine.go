package priority

import (
	"context"
	"log"
	"time"

	"familyhub-backend/internal/sentiment"
)

// Decision is the engine's output for one task.
type Decision struct {
	Priority    int    `json:"priority"`
	Category    string `json:"category"`
	AIProcessed bool   `json:"ai_processed"`
}

// safeDefault is returned if the rule pipeline itself somehow blows up.
// Task creation must never fail because of prioritization.
var safeDefault = Decision{Priority: BaselinePriority, Category: GeneralCategory}

// Engine is the public entry point: optional external sentiment hint,
// then the rule-based scorer and classifier, reconciled into one
// Decision. Stateless apart from the shared read-only lexicon, so one
// Engine serves concurrent requests.
type Engine struct {
	scorer     *Scorer
	classifier *Classifier
	hinter     sentiment.Hinter

	// nowFn is swappable in tests; defaults to time.Now.
	nowFn func() time.Time
}

// NewEngine wires an engine over the lexicon. hinter may be nil, which
// disables the external path entirely (aiProcessed stays false).
func NewEngine(lex *Lexicon, hinter sentiment.Hinter) *Engine {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Engine{
		scorer:     NewScorer(lex),
		classifier: NewClassifier(lex),
		hinter:     hinter,
		nowFn:      time.Now,
	}
}

// Infer produces the priority/category decision for a task. The external
// hint, when configured and successful, seeds the scorer baseline in
// place of the fixed 3; the keyword, context and safety rules always run
// on top. This call never fails: any internal panic is recovered into
// the safe default triple.
func (e *Engine) Infer(ctx context.Context, title, description string, due *time.Time) (d Decision) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WARN] priority inference panic recovered: %v", r)
			d = safeDefault
		}
	}()

	now := e.nowFn()

	baseline := BaselinePriority
	aiOK := false
	if e.hinter != nil {
		if hint, ok := e.hinter.Hint(ctx, combinedText(title, description)); ok {
			baseline = Clamp(hint)
			aiOK = true
		}
	}

	return Decision{
		Priority:    e.scorer.ScoreFrom(baseline, title, description, due, now),
		Category:    e.classifier.Classify(title, description),
		AIProcessed: aiOK,
	}
}

// ParseDueDate turns the lenient wire format into a due date. Empty or
// unparseable input degrades to nil ("no due date") — never an error.
func ParseDueDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
