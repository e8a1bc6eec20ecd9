package priority

import (
	"testing"
	"time"
)

func TestContextDelta_Overdue(t *testing.T) {
	lex := DefaultLexicon()
	past := quietNow.Add(-time.Minute)

	delta, overdue := lex.ContextDelta("anything", &past, quietNow)
	if !overdue {
		t.Fatal("expected overdue")
	}
	if delta != 0 {
		t.Fatalf("overdue must not also emit a delta, got %d", delta)
	}
}

func TestContextDelta_DueWindows(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name  string
		hours int
		want  int
	}{
		{"one hour", 1, 2},
		{"exactly 24h", 24, 2},
		{"two days", 48, 1},
		{"exactly 72h", 72, 1},
		{"next week", 24 * 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := quietNow.Add(time.Duration(tt.hours) * time.Hour)
			delta, overdue := lex.ContextDelta("neutral text", &due, quietNow)
			if overdue {
				t.Fatal("future due date flagged overdue")
			}
			if delta != tt.want {
				t.Errorf("delta = %d, want %d", delta, tt.want)
			}
		})
	}
}

func TestContextDelta_NilDueDate(t *testing.T) {
	lex := DefaultLexicon()
	delta, overdue := lex.ContextDelta("neutral text", nil, quietNow)
	if overdue || delta != 0 {
		t.Fatalf("nil due date must be a no-op, got delta=%d overdue=%v", delta, overdue)
	}
}

func TestContextDelta_MorningBand(t *testing.T) {
	lex := DefaultLexicon()
	morning := time.Date(2025, 6, 4, 7, 30, 0, 0, time.UTC)

	delta, _ := lex.ContextDelta("pack school lunches", nil, morning)
	if delta != 1 {
		t.Fatalf("morning term in morning band: delta = %d, want 1", delta)
	}

	// Same text outside the band.
	delta, _ = lex.ContextDelta("pack school lunches", nil, quietNow)
	if delta != 0 {
		t.Fatalf("morning term at midday: delta = %d, want 0", delta)
	}

	// Band without a morning term.
	delta, _ = lex.ContextDelta("file taxes", nil, morning)
	if delta != 0 {
		t.Fatalf("no morning term: delta = %d, want 0", delta)
	}
}

func TestContextDelta_EveningBand(t *testing.T) {
	lex := DefaultLexicon()
	evening := time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC)

	delta, _ := lex.ContextDelta("start dinner and bedtime routine", nil, evening)
	if delta != 1 {
		t.Fatalf("evening terms in evening band: delta = %d, want 1", delta)
	}
}

func TestContextDelta_FridayWeekendTerm(t *testing.T) {
	lex := DefaultLexicon()
	friday := time.Date(2025, 6, 6, 13, 0, 0, 0, time.UTC)
	if friday.Weekday() != time.Friday {
		t.Fatal("fixture date is not a Friday")
	}

	delta, _ := lex.ContextDelta("prep for the weekend trip", nil, friday)
	if delta != 1 {
		t.Fatalf("weekend term on Friday: delta = %d, want 1", delta)
	}

	delta, _ = lex.ContextDelta("prep for the weekend trip", nil, quietNow)
	if delta != 0 {
		t.Fatalf("weekend term on Wednesday: delta = %d, want 0", delta)
	}
}

func TestContextDelta_BoostsStack(t *testing.T) {
	lex := DefaultLexicon()
	fridayEvening := time.Date(2025, 6, 6, 18, 0, 0, 0, time.UTC)
	due := fridayEvening.Add(12 * time.Hour)

	// due within a day (+2), evening term (+1), weekend term (+1).
	delta, overdue := lex.ContextDelta("dinner prep before the weekend", &due, fridayEvening)
	if overdue {
		t.Fatal("unexpected overdue")
	}
	if delta != 4 {
		t.Fatalf("stacked delta = %d, want 4", delta)
	}
}
