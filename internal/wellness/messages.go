package wellness

import "math/rand"

// Messages shown on the home screen next to the day's top task.
var defaultMessages = []string{
	"One thing at a time — you've got this.",
	"Small steps today, calmer evening tonight.",
	"Done beats perfect.",
	"Future you says thanks.",
	"Knock out the top task first, the rest gets easier.",
	"A short list finished is better than a long list started.",
}

// Picker selects a motivational message. The RNG is injected so tests
// can pin the selection.
type Picker struct {
	messages []string
	rng      *rand.Rand
}

// NewPicker builds a picker over the default message set. rng must not
// be nil.
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{messages: defaultMessages, rng: rng}
}

// NewPickerWithMessages is the fixture constructor for tests.
func NewPickerWithMessages(rng *rand.Rand, messages []string) *Picker {
	return &Picker{messages: messages, rng: rng}
}

// Pick returns one message. Never empty as long as the picker was
// built through a constructor.
func (p *Picker) Pick() string {
	if len(p.messages) == 0 {
		return ""
	}
	return p.messages[p.rng.Intn(len(p.messages))]
}
