package priority

import "time"

// Bands for the time-of-day context rules, in the caller's local clock.
const (
	morningStartHour = 6
	morningEndHour   = 9
	eveningStartHour = 17
	eveningEndHour   = 20
)

// ContextDelta computes the additive priority delta from the due date and
// the evaluation instant. overdue=true means the caller must pin the
// final score at 5 instead of adding anything: an overdue task is a hard
// override, not a boost (the additive reading only reaches the same
// number because the clamp saturates, so the override is the policy).
//
// text must be the lowercased combined task text; due may be nil.
func (l *Lexicon) ContextDelta(text string, due *time.Time, now time.Time) (delta int, overdue bool) {
	if due != nil {
		if !due.After(now) {
			return 0, true
		}
		switch until := due.Sub(now); {
		case until <= 24*time.Hour:
			delta += 2
		case until <= 72*time.Hour:
			delta += 1
		}
	}

	hour := now.Hour()
	if hour >= morningStartHour && hour <= morningEndHour && containsAny(text, l.Morning) {
		delta++
	}
	if hour >= eveningStartHour && hour <= eveningEndHour && containsAny(text, l.Evening) {
		delta++
	}

	// Last weekday before the weekend.
	if now.Weekday() == time.Friday && containsAny(text, l.Weekend) {
		delta++
	}

	return delta, false
}
