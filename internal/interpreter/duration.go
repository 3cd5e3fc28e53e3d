package interpreter

import (
	"regexp"
	"strconv"
	"strings"
)

// defaultDurationMinutes applies when the transcript states no duration.
const defaultDurationMinutes = 60

// DurationResolution tags the event duration with whether the transcript
// stated it explicitly or the default was substituted.
type DurationResolution struct {
	Minutes  int
	Explicit bool
}

// durationRe requires the verbatim phrase "duração de N hora(s)/minuto(s)";
// there is no fuzzy matching for durations.
var durationRe = regexp.MustCompile(`(?i)duração de (\d+)\s*(horas?|minutos?)`)

// ExtractDuration reads the event duration from an explicit duration phrase,
// converting hours to minutes. Absence of the phrase yields the 60-minute
// default.
func ExtractDuration(transcript string) DurationResolution {
	m := durationRe.FindStringSubmatch(transcript)
	if m == nil {
		return DurationResolution{Minutes: defaultDurationMinutes}
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return DurationResolution{Minutes: defaultDurationMinutes}
	}

	if strings.HasPrefix(strings.ToLower(m[2]), "hora") {
		n *= 60
	}
	return DurationResolution{Minutes: n, Explicit: true}
}
