package interpreter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeResolution tags a resolved hour/minute pair with whether the
// transcript stated it explicitly. The fallback is the wall-clock time at
// the moment of parsing, not midnight.
type TimeResolution struct {
	Hour     int
	Minute   int
	Explicit bool
}

// Canonical times for the day periods. The engine deliberately does no
// finer period reasoning.
const (
	morningHour   = 9
	afternoonHour = 14
	eveningHour   = 19
)

var (
	clockTokenRe  = regexp.MustCompile(`\b(\d{1,2})[h:](\d{2})?\b`)
	asPhraseRe    = regexp.MustCompile(` às (.+)$`)
	leadingHourRe = regexp.MustCompile(`^(\d{1,2})`)
	hourWordRe    = regexp.MustCompile(`\b(\d{1,2}) horas\b`)
	clockExprRe   = regexp.MustCompile(`^(\d{1,2})(?:[h:](\d{2}))?$`)
)

// timeRule isolates the substring of the transcript that encodes the time.
type timeRule struct {
	name    string
	extract func(t string) (string, bool)
}

var timeRules = []timeRule{
	{"clock-token", func(t string) (string, bool) {
		if m := clockTokenRe.FindString(t); m != "" {
			return m, true
		}
		return "", false
	}},
	{"as-phrase", extractAsPhrase},
	{"period", extractPeriod},
	{"n-horas", func(t string) (string, bool) {
		if m := hourWordRe.FindStringSubmatch(t); m != nil {
			return m[1], true
		}
		return "", false
	}},
}

// ExtractTimeExpression isolates the time cue from a lowercased transcript.
// Empty means no cue, which resolves to the current clock time. The duration
// phrase is scrubbed first so "duração de 2 horas" is never read as a time.
func ExtractTimeExpression(t string) string {
	t = durationRe.ReplaceAllString(t, "")
	for _, r := range timeRules {
		if expr, ok := r.extract(t); ok {
			return expr
		}
	}
	return ""
}

// extractAsPhrase handles " às <rest>": a leading number is the hour,
// otherwise a mentioned day period is captured.
func extractAsPhrase(t string) (string, bool) {
	m := asPhraseRe.FindStringSubmatch(t)
	if m == nil {
		return "", false
	}
	rest := strings.TrimSpace(m[1])

	if h := leadingHourRe.FindString(rest); h != "" {
		return h, true
	}
	return extractPeriod(rest)
}

// extractPeriod finds a bare day-period mention. "amanhã" is scrubbed first
// so its tail is not mistaken for "manhã".
func extractPeriod(t string) (string, bool) {
	scrubbed := strings.ReplaceAll(t, "amanhã", "")
	scrubbed = strings.ReplaceAll(scrubbed, "amanha", "")

	switch {
	case strings.Contains(scrubbed, "manhã") || strings.Contains(scrubbed, "manha"):
		return "manhã", true
	case strings.Contains(t, "tarde"):
		return "tarde", true
	case strings.Contains(t, "noite"):
		return "noite", true
	}
	return "", false
}

// ResolveTime converts a time expression into an hour/minute pair. Hours
// outside 0–23 are rejected, not wrapped or clamped, and fall back to the
// current clock like a missing expression does.
func ResolveTime(expr string, now time.Time) TimeResolution {
	switch expr {
	case "manhã":
		return TimeResolution{Hour: morningHour, Explicit: true}
	case "tarde":
		return TimeResolution{Hour: afternoonHour, Explicit: true}
	case "noite":
		return TimeResolution{Hour: eveningHour, Explicit: true}
	}

	if m := clockExprRe.FindStringSubmatch(expr); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour <= 23 && minute <= 59 {
			return TimeResolution{Hour: hour, Minute: minute, Explicit: true}
		}
	}

	return TimeResolution{Hour: now.Hour(), Minute: now.Minute()}
}
