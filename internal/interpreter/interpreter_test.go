package interpreter

import (
	"testing"
	"time"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestInterpret_BlankTranscriptFails(t *testing.T) {
	it := New(fixedClock(fixedNow))

	for _, transcript := range []string{"", "   ", "\n\t"} {
		res := it.Interpret(transcript)
		if res.Success {
			t.Errorf("Interpret(%q).Success = true, want false", transcript)
		}
		if res.Title != genericTitle {
			t.Errorf("title = %q, want generic", res.Title)
		}
		if res.Category != CategoryOther {
			t.Errorf("category = %q, want other", res.Category)
		}
		if res.DurationMinutes != defaultDurationMinutes {
			t.Errorf("duration = %d, want default", res.DurationMinutes)
		}
		if !res.OccursAt.Equal(fixedNow) {
			t.Errorf("occursAt = %v, want current instant", res.OccursAt)
		}
	}
}

func TestInterpret_MeetingTomorrowAfternoon(t *testing.T) {
	it := New(fixedClock(fixedNow))

	res := it.Interpret("Reunião com João amanhã às 14h")

	if !res.Success {
		t.Fatal("expected success")
	}
	if res.Category != CategoryMeeting {
		t.Errorf("category = %q, want meeting", res.Category)
	}
	if res.Title != "Reunião com João" {
		t.Errorf("title = %q", res.Title)
	}
	want := time.Date(2024, time.December, 3, 14, 0, 0, 0, time.UTC)
	if !res.OccursAt.Equal(want) {
		t.Errorf("occursAt = %v, want %v", res.OccursAt, want)
	}
	if !res.DateExplicit || !res.TimeExplicit {
		t.Error("date and time should be marked explicit")
	}
	if res.DurationMinutes != 60 {
		t.Errorf("duration = %d, want default 60", res.DurationMinutes)
	}
}

// Said on a Monday, "na segunda" must mean the Monday seven days out.
func TestInterpret_WeekdayRollForward(t *testing.T) {
	it := New(fixedClock(fixedNow)) // fixedNow is a Monday

	res := it.Interpret("reunião na segunda")

	want := time.Date(2024, time.December, 9, 0, 0, 0, 0, time.UTC)
	if res.OccursAt.Year() != want.Year() || res.OccursAt.YearDay() != want.YearDay() {
		t.Errorf("occursAt = %v, want the following Monday %v", res.OccursAt, want)
	}
}

func TestInterpret_AfternoonCanonicalTime(t *testing.T) {
	it := New(fixedClock(fixedNow))

	res := it.Interpret("tarefa hoje à tarde")

	if res.Category != CategoryTask {
		t.Errorf("category = %q, want task", res.Category)
	}
	if res.OccursAt.Hour() != 14 || res.OccursAt.Minute() != 0 {
		t.Errorf("time = %02d:%02d, want 14:00", res.OccursAt.Hour(), res.OccursAt.Minute())
	}
}

func TestInterpret_NumericDate(t *testing.T) {
	it := New(fixedClock(fixedNow))

	res := it.Interpret("evento em 05/12/2024 às 9:00")

	want := time.Date(2024, time.December, 5, 9, 0, 0, 0, time.UTC)
	if !res.OccursAt.Equal(want) {
		t.Errorf("occursAt = %v, want %v", res.OccursAt, want)
	}
}

func TestInterpret_GracefulFallback(t *testing.T) {
	it := New(fixedClock(fixedNow))

	res := it.Interpret("xyz")

	if !res.Success {
		t.Fatal("unrecognizable transcript must still succeed")
	}
	if res.Title == "" {
		t.Error("expected a non-empty title")
	}
	if res.Category != CategoryOther {
		t.Errorf("category = %q, want other", res.Category)
	}
	if res.DateExplicit || res.TimeExplicit || res.DurationExplicit {
		t.Error("nothing was stated explicitly")
	}
	// No time cue: current wall-clock time on the resolved date.
	if res.OccursAt.Hour() != fixedNow.Hour() || res.OccursAt.Minute() != fixedNow.Minute() {
		t.Errorf("time = %02d:%02d, want current clock", res.OccursAt.Hour(), res.OccursAt.Minute())
	}
}

func TestInterpret_DeterministicForFixedClock(t *testing.T) {
	it := New(fixedClock(fixedNow))

	transcript := "agendar reunião com o cliente para sexta às 10h, duração de 2 horas, contato 11987654321"
	first := it.Interpret(transcript)
	for i := 0; i < 3; i++ {
		if got := it.Interpret(transcript); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestInterpret_FullCommand(t *testing.T) {
	it := New(fixedClock(fixedNow))

	res := it.Interpret("Reunião com Maria na sexta às 10h30, duração de 90 minutos, contato 11987654321")

	if res.Category != CategoryMeeting {
		t.Errorf("category = %q, want meeting", res.Category)
	}
	if res.Title != "Reunião com Maria na sexta" {
		t.Errorf("title = %q", res.Title)
	}
	want := time.Date(2024, time.December, 6, 10, 30, 0, 0, time.UTC)
	if !res.OccursAt.Equal(want) {
		t.Errorf("occursAt = %v, want %v", res.OccursAt, want)
	}
	if res.DurationMinutes != 90 || !res.DurationExplicit {
		t.Errorf("duration = %d (explicit=%v), want explicit 90", res.DurationMinutes, res.DurationExplicit)
	}
	if res.ContactPhone != "5511987654321" {
		t.Errorf("phone = %q", res.ContactPhone)
	}
}

func TestInterpret_DescriptionIsVerbatim(t *testing.T) {
	it := New(fixedClock(fixedNow))

	transcript := "Reunião com João amanhã às 14h"
	res := it.Interpret(transcript)
	if res.Description != transcript {
		t.Errorf("description = %q, want verbatim transcript", res.Description)
	}
}
