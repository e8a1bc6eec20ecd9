package priority

import "testing"

func TestClassify_BasicCategories(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		title string
		desc  string
		want  string
	}{
		{"Child has fever, need pediatrician now", "", "health"},
		{"Clean kitchen", "and fold laundry", "household"},
		{"Finish the quarterly report", "meeting with client friday", "work"},
		{"Pay rent and insurance bills", "", "finances"},
		{"Schedule a haircut", "", "personal"},
		{"Pack diapers for daycare", "", "kids"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := c.Classify(tt.title, tt.desc); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.title, tt.desc, got, tt.want)
			}
		})
	}
}

func TestClassify_GeneralFallback(t *testing.T) {
	c := NewClassifier(nil)

	for _, in := range []struct{ title, desc string }{
		{"xyz123", ""},
		{"", ""},
		{"qqqq wwww", "zzzz"},
	} {
		if got := c.Classify(in.title, in.desc); got != GeneralCategory {
			t.Errorf("Classify(%q, %q) = %q, want %q", in.title, in.desc, got, GeneralCategory)
		}
	}
}

func TestClassify_RepeatedKeywordCounts(t *testing.T) {
	lex := &Lexicon{
		Categories: []Category{
			{Name: "a", Keywords: []string{"alpha"}},
			{Name: "b", Keywords: []string{"beta"}},
		},
	}
	c := NewClassifier(lex)

	// Two occurrences of beta outweigh one of alpha.
	if got := c.Classify("alpha beta", "beta"); got != "b" {
		t.Fatalf("got %q, want b", got)
	}
}

func TestClassify_WholeWordBonusBreaksSubstringTie(t *testing.T) {
	lex := &Lexicon{
		Categories: []Category{
			{Name: "a", Keywords: []string{"rent"}},
			{Name: "b", Keywords: []string{"bath"}},
		},
	}
	c := NewClassifier(lex)

	// "rent" only inside "parent" (1 point), "bath" standalone (1.5).
	if got := c.Classify("parent bath", ""); got != "b" {
		t.Fatalf("got %q, want b", got)
	}
}

func TestClassify_NonzeroTieFirstDeclaredWins(t *testing.T) {
	lex := &Lexicon{
		Categories: []Category{
			{Name: "first", Keywords: []string{"same"}},
			{Name: "second", Keywords: []string{"same"}},
		},
	}
	c := NewClassifier(lex)

	if got := c.Classify("same", ""); got != "first" {
		t.Fatalf("tie must go to first-declared category, got %q", got)
	}
}

func TestClassify_ClosedSet(t *testing.T) {
	c := NewClassifier(nil)
	valid := map[string]bool{
		"household": true, "kids": true, "health": true, "work": true,
		"personal": true, "finances": true, "general": true,
	}

	inputs := []string{
		"Plan birthday party sometime",
		"doctor meeting bill laundry homework gym",
		"snow shoveling",
		"",
	}
	for _, in := range inputs {
		if got := c.Classify(in, ""); !valid[got] {
			t.Errorf("Classify(%q) = %q, not in the closed set", in, got)
		}
	}
}

func TestHasWholeWord(t *testing.T) {
	tests := []struct {
		text, k string
		want    bool
	}{
		{"pay the bill", "bill", true},
		{"bill", "bill", true},
		{"billing due", "bill", false},
		{"the billboard bill", "bill", true},
		{"snow", "now", false},
	}
	for _, tt := range tests {
		if got := hasWholeWord(tt.text, tt.k); got != tt.want {
			t.Errorf("hasWholeWord(%q, %q) = %v, want %v", tt.text, tt.k, got, tt.want)
		}
	}
}
