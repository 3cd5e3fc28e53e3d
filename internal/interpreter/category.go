package interpreter

import "strings"

// EventCategory is the closed classification of an event's purpose.
type EventCategory string

const (
	CategoryMeeting  EventCategory = "meeting"
	CategoryDeadline EventCategory = "deadline"
	CategoryTask     EventCategory = "task"
	CategoryOther    EventCategory = "other"
)

// categoryRule is one step of the classification cascade. Rules run in
// order and the first match decides: explicit category nouns outrank the
// generic verb "agendar", which outranks loose semantic cues.
type categoryRule struct {
	name  string
	apply func(t string) (EventCategory, bool)
}

var categoryRules = []categoryRule{
	{"explicit-meeting", containsAny(CategoryMeeting, "reunião", "reuniao", "meeting")},
	{"explicit-deadline", containsAny(CategoryDeadline, "prazo", "deadline", "entrega")},
	{"explicit-task", containsAny(CategoryTask, "tarefa", "task")},
	{"agendar-continuation", classifyAgendar},
	{"meeting-cues", containsAny(CategoryMeeting, "conversa", "entrevista", "ligação", "ligacao", "call", "falar com")},
	{"deadline-cues", containsAny(CategoryDeadline, "entregar", "finalizar", "concluir")},
	{"task-cues", containsAny(CategoryTask, "fazer", "revisar", "verificar")},
}

// Classify maps a lowercased transcript to exactly one category; "other" is
// the fallback when no rule matches.
func Classify(t string) EventCategory {
	for _, r := range categoryRules {
		if cat, ok := r.apply(t); ok {
			return cat
		}
	}
	return CategoryOther
}

func containsAny(cat EventCategory, cues ...string) func(string) (EventCategory, bool) {
	return func(t string) (EventCategory, bool) {
		for _, cue := range cues {
			if strings.Contains(t, cue) {
				return cat, true
			}
		}
		return "", false
	}
}

// classifyAgendar inspects what follows the verb "agendar". Only an explicit
// "agendar reunião" decides a category here; a bare "agendar" falls through
// to the secondary cue rules.
func classifyAgendar(t string) (EventCategory, bool) {
	idx := strings.Index(t, "agendar")
	if idx < 0 {
		return "", false
	}
	rest := strings.TrimSpace(t[idx+len("agendar"):])
	if strings.HasPrefix(rest, "reunião") || strings.HasPrefix(rest, "reuniao") {
		return CategoryMeeting, true
	}
	return "", false
}
