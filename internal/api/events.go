package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// InterpretRequest is the dry-run interpretation payload.
type InterpretRequest struct {
	Transcript string `json:"transcript"`
}

// interpret handles POST /api/v1/interpret: run the engine on a transcript
// without persisting anything, so callers can preview the resolution.
func (s *Server) interpret(w http.ResponseWriter, r *http.Request) {
	var req InterpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"invalid JSON: %v"}`, err), http.StatusBadRequest)
		return
	}

	res := s.interp.Interpret(req.Transcript)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// eventICS handles GET /api/v1/events/{id}/ics: render a stored event as an
// iCalendar feed entry for the calendar UI.
func (s *Server) eventICS(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"invalid event id"}`, http.StatusBadRequest)
		return
	}

	ev, err := s.store.GetEvent(r.Context(), id)
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"%v"}`, err), http.StatusNotFound)
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	entry := cal.AddEvent(ev.ID.String())
	entry.SetCreatedTime(ev.CreatedAt)
	entry.SetDtStampTime(ev.CreatedAt)
	entry.SetStartAt(ev.OccursAt)
	entry.SetEndAt(ev.OccursAt.Add(time.Duration(ev.DurationMinutes) * time.Minute))
	entry.SetSummary(ev.Title)
	entry.SetDescription(ev.Description)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	if err := cal.SerializeTo(w); err != nil {
		slog.Error("failed to serialize ics", "event_id", ev.ID, "error", err)
	}
}
