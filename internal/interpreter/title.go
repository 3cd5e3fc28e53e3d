package interpreter

import "strings"

// fillerPrefix is occasionally prepended to the transcript by the
// speech-to-text front end and carries no meaning.
const fillerPrefix = "guardando "

// titleRule derives a candidate title from the transcript. Rules run in
// order; the first non-empty result wins.
type titleRule struct {
	name  string
	apply func(t, lower string, cat EventCategory) (string, bool)
}

var titleRules = []titleRule{
	{"meeting-template", meetingTitle},
	{"deadline-template", deadlineTitle},
	{"task-template", taskTitle},
	{"agendar-generic", agendarTitle},
	{"lead-segment", leadSegmentTitle},
	{"first-words", firstWordsTitle},
}

// BuildTitle derives a short title for the event and returns it together
// with the description. The description is always the verbatim transcript,
// except for the leading filler prefix which is stripped when present.
func BuildTitle(transcript string, cat EventCategory) (title, description string) {
	description = transcript
	if len(transcript) >= len(fillerPrefix) &&
		strings.ToLower(transcript[:len(fillerPrefix)]) == fillerPrefix {
		description = transcript[len(fillerPrefix):]
	}

	lower := strings.ToLower(description)
	for _, r := range titleRules {
		if t, ok := r.apply(description, lower, cat); ok && t != "" {
			return t, description
		}
	}
	return genericTitle, description
}

func meetingTitle(t, lower string, cat EventCategory) (string, bool) {
	if cat != CategoryMeeting {
		return "", false
	}
	for _, marker := range []string{"reunião com ", "reuniao com "} {
		if seg, ok := segmentAfter(t, lower, marker, " às "); ok && seg != "" {
			return "Reunião com " + seg, true
		}
	}
	return "", false
}

func deadlineTitle(t, lower string, cat EventCategory) (string, bool) {
	if cat != CategoryDeadline {
		return "", false
	}
	if seg, ok := segmentAfter(t, lower, "prazo para ", " às "); ok && seg != "" {
		return "Prazo para " + seg, true
	}
	return "", false
}

func taskTitle(t, lower string, cat EventCategory) (string, bool) {
	if cat != CategoryTask {
		return "", false
	}
	if seg, ok := segmentAfter(t, lower, "tarefa de ", " às "); ok && seg != "" {
		return "Tarefa de " + seg, true
	}
	return "", false
}

func agendarTitle(t, lower string, _ EventCategory) (string, bool) {
	seg, ok := segmentAfter(t, lower, "agendar", " para ")
	if !ok {
		return "", false
	}
	if seg == "" {
		return "Evento agendado", true
	}
	return "Evento: " + seg, true
}

// leadSegmentTitle takes the text before the earliest connective, which in
// practice separates the "what" from the "when".
func leadSegmentTitle(t, lower string, _ EventCategory) (string, bool) {
	cut := -1
	for _, stop := range []string{" para ", " às ", " em "} {
		if i := strings.Index(lower, stop); i >= 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}
	if cut < 0 {
		return "", false
	}
	seg := strings.TrimSpace(t[:cut])
	return seg, seg != ""
}

// firstWordsTitle is the last resort: the first five words, truncated to 30
// characters with an ellipsis when longer.
func firstWordsTitle(t, _ string, _ EventCategory) (string, bool) {
	words := strings.Fields(t)
	if len(words) > 5 {
		words = words[:5]
	}
	title := strings.Join(words, " ")
	if runes := []rune(title); len(runes) > 30 {
		title = string(runes[:30]) + "..."
	}
	return title, title != ""
}

// segmentAfter returns the trimmed text between marker and the first stop
// (or the end of the transcript). Searches run on the lowercased copy so the
// original casing of names survives into the title.
func segmentAfter(t, lower, marker string, stops ...string) (string, bool) {
	idx := strings.Index(lower, marker)
	if idx < 0 {
		return "", false
	}
	start := idx + len(marker)
	rest, restLower := t[start:], lower[start:]

	end := len(rest)
	for _, stop := range stops {
		if i := strings.Index(restLower, stop); i >= 0 && i < end {
			end = i
		}
	}
	return strings.TrimSpace(rest[:end]), true
}
