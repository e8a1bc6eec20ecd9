package priority

import "strings"

// GeneralCategory is returned when no category keyword scores above zero.
const GeneralCategory = "general"

// wholeWordBonus is the extra weight a keyword earns when it appears as
// a standalone word (bounded by spaces or string edges), on top of the
// one point per raw substring occurrence.
const wholeWordBonus = 0.5

// Classifier assigns a coarse topic label from the category tables.
type Classifier struct {
	Lexicon *Lexicon
}

// NewClassifier builds a classifier over the given lexicon (nil means
// default).
func NewClassifier(lex *Lexicon) *Classifier {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Classifier{Lexicon: lex}
}

// Classify scores every category against the combined task text and
// returns the strict winner, or "general" when every score is zero.
// Nonzero ties go to the first-declared category: the loop only replaces
// the best on a strictly higher score, which keeps results stable for
// identical input.
func (c *Classifier) Classify(title, description string) string {
	text := combinedText(title, description)
	if text == "" {
		return GeneralCategory
	}

	best := GeneralCategory
	bestScore := 0.0

	for _, cat := range c.Lexicon.Categories {
		score := categoryScore(text, cat.Keywords)
		if score > bestScore {
			best = cat.Name
			bestScore = score
		}
	}

	return best
}

// categoryScore sums one point per substring occurrence of each keyword
// (repeats count), plus the whole-word bonus when the keyword also
// appears space- or edge-bounded.
func categoryScore(text string, keywords []string) float64 {
	var score float64
	for _, k := range keywords {
		n := strings.Count(text, k)
		if n == 0 {
			continue
		}
		score += float64(n)
		if hasWholeWord(text, k) {
			score += wholeWordBonus
		}
	}
	return score
}

// hasWholeWord reports whether k occurs in text bounded by spaces or the
// string edges. Spaces only, matching the containment semantics of the
// rest of the engine — punctuation does not count as a boundary.
func hasWholeWord(text, k string) bool {
	for i := 0; ; {
		j := strings.Index(text[i:], k)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(k)
		leftOK := start == 0 || text[start-1] == ' '
		rightOK := end == len(text) || text[end] == ' '
		if leftOK && rightOK {
			return true
		}
		i = start + 1
		if i >= len(text) {
			return false
		}
	}
}
