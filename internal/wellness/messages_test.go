package wellness

import (
	"math/rand"
	"testing"
)

func TestPick_DeterministicWithSeededRNG(t *testing.T) {
	msgs := []string{"a", "b", "c"}

	first := NewPickerWithMessages(rand.New(rand.NewSource(42)), msgs)
	second := NewPickerWithMessages(rand.New(rand.NewSource(42)), msgs)

	for i := 0; i < 20; i++ {
		if got, want := first.Pick(), second.Pick(); got != want {
			t.Fatalf("pick %d diverged: %q vs %q", i, got, want)
		}
	}
}

func TestPick_NeverEmptyFromDefaults(t *testing.T) {
	p := NewPicker(rand.New(rand.NewSource(1)))
	for i := 0; i < 50; i++ {
		if p.Pick() == "" {
			t.Fatal("default picker returned an empty message")
		}
	}
}
