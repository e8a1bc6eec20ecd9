package priority

import (
	"testing"
	"time"
)

// noon on a Wednesday: no morning/evening band, no weekend rule.
var quietNow = time.Date(2025, 6, 4, 13, 0, 0, 0, time.UTC)

func hoursFrom(now time.Time, h int) *time.Time {
	t := now.Add(time.Duration(h) * time.Hour)
	return &t
}

func TestScore_Baseline(t *testing.T) {
	s := NewScorer(nil)
	if got := s.Score("water the plants", "", nil, quietNow); got != BaselinePriority {
		t.Fatalf("expected baseline %d, got %d", BaselinePriority, got)
	}
}

func TestScore_UrgentKeywordSaturates(t *testing.T) {
	s := NewScorer(nil)
	// urgent (+2), important (+1), safety (+2) all on top of 3 — clamp wins.
	got := s.Score("Child has fever, need pediatrician now", "", nil, quietNow)
	if got != MaxPriority {
		t.Fatalf("expected %d, got %d", MaxPriority, got)
	}
}

func TestScore_LowPriorityDrop(t *testing.T) {
	s := NewScorer(nil)
	got := s.Score("Plan birthday party sometime", "", nil, quietNow)
	if got > BaselinePriority {
		t.Fatalf("low-priority keyword must not raise score above %d, got %d", BaselinePriority, got)
	}
	if got != 2 {
		t.Fatalf("expected 2 (baseline minus low-priority drop), got %d", got)
	}
}

func TestScore_DueSoon(t *testing.T) {
	s := NewScorer(nil)

	tests := []struct {
		name string
		due  *time.Time
		want int
	}{
		{"within one day", hoursFrom(quietNow, 12), 5},
		{"within three days", hoursFrom(quietNow, 48), 4},
		{"far future", hoursFrom(quietNow, 24*10), 3},
		{"no due date", nil, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score("submit report", "", tt.due, quietNow); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_OverdueIsHardOverride(t *testing.T) {
	s := NewScorer(nil)
	past := quietNow.Add(-48 * time.Hour)

	// Even with the low-priority drop in play, overdue pins the score.
	got := s.Score("clean kitchen sometime", "", &past, quietNow)
	if got != MaxPriority {
		t.Fatalf("overdue task must score %d, got %d", MaxPriority, got)
	}

	// Exactly-now counts as overdue too.
	got = s.Score("clean kitchen", "", &quietNow, quietNow)
	if got != MaxPriority {
		t.Fatalf("due==now must score %d, got %d", MaxPriority, got)
	}
}

func TestScore_AlwaysClamped(t *testing.T) {
	s := NewScorer(nil)

	inputs := []struct {
		title string
		desc  string
		due   *time.Time
	}{
		{"emergency fever bleeding urgent asap school deadline", "out of formula", hoursFrom(quietNow, 1)},
		{"maybe someday eventually no rush whenever", "low priority if time", nil},
		{"", "", nil},
		{"xyz123", "", hoursFrom(quietNow, 60)},
	}

	for _, in := range inputs {
		got := s.Score(in.title, in.desc, in.due, quietNow)
		if got < MinPriority || got > MaxPriority {
			t.Errorf("score out of range for %q: %d", in.title, got)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := NewScorer(nil)
	due := hoursFrom(quietNow, 30)
	first := s.Score("pay the bill", "before the deadline", due, quietNow)
	for i := 0; i < 10; i++ {
		if got := s.Score("pay the bill", "before the deadline", due, quietNow); got != first {
			t.Fatalf("score changed on repeat invocation: %d then %d", first, got)
		}
	}
}

func TestScoreFrom_SeededBaseline(t *testing.T) {
	s := NewScorer(nil)

	// Neutral text: the seeded baseline passes through untouched.
	if got := s.ScoreFrom(4, "water the plants", "", nil, quietNow); got != 4 {
		t.Fatalf("expected seeded 4, got %d", got)
	}

	// Low-priority keyword still applies on top of the seed.
	if got := s.ScoreFrom(4, "water the plants sometime", "", nil, quietNow); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestScore_SafetyBoostCapped(t *testing.T) {
	lex := &Lexicon{
		Safety: []string{"fever", "bleeding", "choking"},
	}
	s := NewScorer(lex)

	one := s.Score("fever", "", nil, quietNow)
	three := s.Score("fever bleeding choking", "", nil, quietNow)
	if one != three {
		t.Fatalf("safety contribution must be capped: one phrase %d, three phrases %d", one, three)
	}
	if one != BaselinePriority+safetyBoostCap {
		t.Fatalf("expected %d, got %d", BaselinePriority+safetyBoostCap, one)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {3, 3}, {5, 5}, {9, 5},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
