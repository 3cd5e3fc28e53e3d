// Package processor glues the collaborators together: transcripts arrive on
// the bus, go through the interpreter, and resolved events are persisted and
// announced.
package processor

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/MikeSquared-Agency/agendavoz/internal/bus"
	"github.com/MikeSquared-Agency/agendavoz/internal/interpreter"
	"github.com/MikeSquared-Agency/agendavoz/internal/store"
)

// TranscriptEvent is the bus payload delivered when a speech recognition
// session finalizes.
type TranscriptEvent struct {
	SessionID  string `json:"session_id"`
	OwnerUUID  string `json:"owner_uuid"`
	Transcript string `json:"transcript"`
	Surface    string `json:"surface"` // e.g. "web", "mobile"
}

// Processor handles one transcript per invocation. The interpreter keeps no
// state between calls, so handlers are independent.
type Processor struct {
	store  *store.Store
	interp *interpreter.Interpreter
	bus    *bus.Client
	logger *slog.Logger
}

func New(s *store.Store, interp *interpreter.Interpreter, b *bus.Client, logger *slog.Logger) *Processor {
	return &Processor{
		store:  s,
		interp: interp,
		bus:    b,
		logger: logger,
	}
}

// HandleTranscriptFinal is the bus handler for finalized voice transcripts.
func (p *Processor) HandleTranscriptFinal(subject string, data []byte) {
	ctx := context.Background()

	var evt TranscriptEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse transcript event", "error", err)
		return
	}

	ownerID, err := uuid.Parse(evt.OwnerUUID)
	if err != nil {
		p.logger.Error("invalid owner uuid", "owner_uuid", evt.OwnerUUID, "error", err)
		return
	}

	p.logger.Info("interpreting transcript",
		"session_id", evt.SessionID,
		"owner", evt.OwnerUUID,
		"surface", evt.Surface,
	)

	res := p.interp.Interpret(evt.Transcript)
	if !res.Success {
		p.logger.Warn("transcript rejected", "session_id", evt.SessionID)
		if err := p.bus.Publish(bus.SubjectCommandRejected, map[string]any{
			"session_id": evt.SessionID,
			"owner_uuid": evt.OwnerUUID,
			"reason":     "empty transcript",
		}); err != nil {
			p.logger.Error("failed to publish rejection", "error", err)
		}
		return
	}

	id, err := p.store.SaveEvent(ctx, ownerID, evt.Transcript, res)
	if err != nil {
		p.logger.Error("failed to persist event", "session_id", evt.SessionID, "error", err)
		return
	}

	if err := p.bus.Publish(bus.SubjectEventCreated, map[string]any{
		"event_id":         id.String(),
		"owner_uuid":       evt.OwnerUUID,
		"session_id":       evt.SessionID,
		"title":            res.Title,
		"category":         string(res.Category),
		"occurs_at":        res.OccursAt.Format(time.RFC3339),
		"duration_minutes": res.DurationMinutes,
		"has_contact":      res.ContactPhone != "",
	}); err != nil {
		p.logger.Error("failed to publish event created", "event_id", id, "error", err)
	}

	p.logger.Info("event created",
		"event_id", id,
		"category", res.Category,
		"occurs_at", res.OccursAt,
		"date_explicit", res.DateExplicit,
		"time_explicit", res.TimeExplicit,
	)
}
