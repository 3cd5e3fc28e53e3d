// Package interpreter turns a raw Brazilian Portuguese voice transcript into
// a structured, schedulable calendar event. It is a pure pipeline: the only
// ambient input besides the transcript is the injected clock, which anchors
// relative expressions like "hoje" and "amanhã".
package interpreter

import (
	"strings"
	"time"
)

// Clock supplies the current instant. Injected so relative-date resolution
// is reproducible in tests without touching the real clock.
type Clock func() time.Time

// Result is the structured event produced from a single transcript.
type Result struct {
	Success         bool          `json:"success"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	OccursAt        time.Time     `json:"occurs_at"`
	DurationMinutes int           `json:"duration_minutes"`
	Category        EventCategory `json:"category"`
	ContactPhone    string        `json:"contact_phone,omitempty"`

	// Provenance flags: true when the transcript stated the value
	// explicitly, false when the documented default was substituted.
	DateExplicit     bool `json:"date_explicit"`
	TimeExplicit     bool `json:"time_explicit"`
	DurationExplicit bool `json:"duration_explicit"`
}

// genericTitle labels events whose transcript yielded no usable title.
const genericTitle = "Evento"

// Interpreter runs the interpretation pipeline. It holds no state between
// calls; concurrent use is safe.
type Interpreter struct {
	now Clock
}

// New returns an Interpreter. A nil clock falls back to time.Now.
func New(clock Clock) *Interpreter {
	if clock == nil {
		clock = time.Now
	}
	return &Interpreter{now: clock}
}

// Interpret resolves a transcript into a calendar event. It fails only on a
// blank transcript; every other input degrades field by field to documented
// defaults instead of erroring, so noisy voice input still yields an event
// the user can correct afterwards.
func (it *Interpreter) Interpret(transcript string) Result {
	now := it.now()

	trimmed := strings.TrimSpace(transcript)
	if trimmed == "" {
		return Result{
			Success:         false,
			Title:           genericTitle,
			OccursAt:        now,
			DurationMinutes: defaultDurationMinutes,
			Category:        CategoryOther,
		}
	}

	lower := strings.ToLower(trimmed)

	phone := ExtractPhone(trimmed)
	duration := ExtractDuration(lower)
	category := Classify(lower)
	title, description := BuildTitle(trimmed, category)

	date := ResolveDate(ExtractDateExpression(lower), now)
	tod := ResolveTime(ExtractTimeExpression(lower), now)

	occursAt := time.Date(
		date.Value.Year(), date.Value.Month(), date.Value.Day(),
		tod.Hour, tod.Minute, 0, 0, now.Location(),
	)

	return Result{
		Success:          true,
		Title:            title,
		Description:      description,
		OccursAt:         occursAt,
		DurationMinutes:  duration.Minutes,
		Category:         category,
		ContactPhone:     phone,
		DateExplicit:     date.Explicit,
		TimeExplicit:     tod.Explicit,
		DurationExplicit: duration.Explicit,
	}
}
