package priority

import "time"

const (
	// MinPriority and MaxPriority bound every score the engine emits.
	MinPriority = 1
	MaxPriority = 5

	// BaselinePriority is the starting score when no external hint
	// seeded the computation.
	BaselinePriority = 3

	urgentBoost     = 2
	importantBoost  = 1
	lowPriorityDrop = 1
	safetyBoostCap  = 2
)

// Scorer turns task text plus temporal context into a 1–5 priority.
type Scorer struct {
	Lexicon *Lexicon
}

// NewScorer builds a scorer over the given lexicon (nil means default).
func NewScorer(lex *Lexicon) *Scorer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Scorer{Lexicon: lex}
}

// Score runs the full rule pipeline from the fixed baseline.
func (s *Scorer) Score(title, description string, due *time.Time, now time.Time) int {
	return s.ScoreFrom(BaselinePriority, title, description, due, now)
}

// ScoreFrom runs the rule pipeline from an arbitrary baseline — the
// orchestrator seeds it with the external sentiment hint when that path
// succeeded. Keyword, context and safety rules apply on top of whatever
// baseline came in; the result is always clamped to [1,5]. Pure and
// never fails: a nil due date simply skips the date rules.
func (s *Scorer) ScoreFrom(baseline int, title, description string, due *time.Time, now time.Time) int {
	text := combinedText(title, description)
	score := baseline

	if containsAny(text, s.Lexicon.Urgent) {
		score += urgentBoost
	}
	if containsAny(text, s.Lexicon.Important) {
		score += importantBoost
	}
	if containsAny(text, s.Lexicon.LowPriority) {
		score -= lowPriorityDrop
	}

	// Safety boost: match any phrase from the narrow safety list, add
	// the cap once. The list never contributes more than +2 total no
	// matter how many phrases hit.
	if containsAny(text, s.Lexicon.Safety) {
		score += safetyBoostCap
	}

	delta, overdue := s.Lexicon.ContextDelta(text, due, now)
	if overdue {
		return MaxPriority
	}
	score += delta

	return Clamp(score)
}

// Clamp bounds a raw score to the valid priority range.
func Clamp(score int) int {
	if score < MinPriority {
		return MinPriority
	}
	if score > MaxPriority {
		return MaxPriority
	}
	return score
}
