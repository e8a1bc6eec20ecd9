package priority

import "strings"

// Category is one named bucket of keywords. Declaration order inside
// Lexicon.Categories matters: a nonzero tie goes to the earlier entry.
type Category struct {
	Name     string
	Keywords []string
}

// Lexicon holds every keyword table the engine matches against.
// Tables are read-only after construction, so one Lexicon can be shared
// across concurrent requests. Tests inject smaller fixtures.
type Lexicon struct {
	Urgent      []string
	Important   []string
	LowPriority []string

	// Safety is the narrow health/safety/essential-supply list that
	// grants the capped safety boost on top of Urgent.
	Safety []string

	Categories []Category

	// Time-of-day / day-of-week context terms.
	Morning []string
	Evening []string
	Weekend []string
}

// DefaultLexicon returns the production keyword tables.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Urgent: []string{
			"emergency", "urgent", "asap", "immediately", "right now",
			"fever", "sick", "injury", "bleeding", "pain",
			"broken", "leak", "leaking", "no heat", "no power",
			"ran out", "run out", "out of diapers", "out of formula",
			"out of medicine", "last one", "now",
		},
		Important: []string{
			"appointment", "doctor", "dentist", "pediatrician",
			"deadline", "due", "meeting", "interview",
			"school", "daycare", "pickup", "pick up", "drop off",
			"permission slip", "registration", "enroll",
			"bill", "payment", "renew",
		},
		LowPriority: []string{
			"eventually", "when possible", "whenever", "maybe",
			"sometime", "someday", "no rush", "low priority",
			"if time", "would be nice",
		},
		Safety: []string{
			"fever", "bleeding", "choking", "allergic", "allergy",
			"medication", "medicine", "smoke detector", "car seat",
			"out of formula", "out of diapers", "expired",
		},
		Categories: []Category{
			{Name: "household", Keywords: []string{
				"clean", "cleaning", "laundry", "dishes", "vacuum",
				"grocery", "groceries", "shopping", "cook", "dinner",
				"repair", "fix", "yard", "trash", "organize",
			}},
			{Name: "kids", Keywords: []string{
				"kid", "kids", "child", "children", "baby", "toddler",
				"school", "daycare", "homework", "playdate", "birthday",
				"diaper", "diapers", "bedtime", "bath",
			}},
			{Name: "health", Keywords: []string{
				"doctor", "dentist", "pediatrician", "medicine",
				"medication", "prescription", "fever", "sick",
				"appointment", "vaccine", "therapy", "exercise",
			}},
			{Name: "work", Keywords: []string{
				"work", "meeting", "report", "email", "deadline",
				"project", "presentation", "client", "interview",
				"resume", "boss",
			}},
			{Name: "personal", Keywords: []string{
				"hobby", "read", "friend", "relax", "haircut",
				"gym", "journal", "call mom", "call dad",
			}},
			{Name: "finances", Keywords: []string{
				"bill", "bills", "pay", "payment", "budget", "bank",
				"taxes", "insurance", "rent", "mortgage", "refund",
			}},
		},
		Morning: []string{"school", "breakfast", "morning", "bus"},
		Evening: []string{"dinner", "bedtime", "bath", "evening"},
		Weekend: []string{"weekend", "saturday", "sunday"},
	}
}

// containsAny reports whether any keyword occurs as a substring of text.
// text must already be lowercased; keywords are stored lowercased.
// Plain containment on purpose — "now" matches inside "snow". This
// mirrors the matching the rest of the app was tuned against.
func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// combinedText lowercases and joins the two task fields the way every
// matcher expects them.
func combinedText(title, description string) string {
	return strings.ToLower(strings.TrimSpace(title + " " + description))
}
