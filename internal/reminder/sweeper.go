// Package reminder periodically sweeps upcoming events that carry a contact
// phone and dispatches their reminder exactly once.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/MikeSquared-Agency/agendavoz/internal/bus"
	"github.com/MikeSquared-Agency/agendavoz/internal/notifier"
	"github.com/MikeSquared-Agency/agendavoz/internal/store"
	"github.com/robfig/cron/v3"
)

type Sweeper struct {
	store  *store.Store
	poster *notifier.Poster
	bus    *bus.Client
	lead   time.Duration
	logger *slog.Logger
	cron   *cron.Cron
}

func New(s *store.Store, poster *notifier.Poster, b *bus.Client, lead time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		store:  s,
		poster: poster,
		bus:    b,
		lead:   lead,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start schedules the sweep on the given cron spec.
func (s *Sweeper) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("reminder sweeper started", "spec", spec, "lead", s.lead)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now()
	due, err := s.store.ListDueReminders(ctx, now, now.Add(s.lead))
	if err != nil {
		s.logger.Error("failed to list due reminders", "error", err)
		return
	}

	for _, ev := range due {
		// Claim before sending so overlapping sweeps never double-send.
		claimed, err := s.store.MarkReminderSent(ctx, ev.ID)
		if err != nil {
			s.logger.Error("failed to claim reminder", "event_id", ev.ID, "error", err)
			continue
		}
		if !claimed {
			continue
		}

		if err := s.poster.SendReminder(ctx, &ev); err != nil {
			s.logger.Error("failed to send reminder", "event_id", ev.ID, "error", err)
			continue
		}

		if err := s.bus.Publish(bus.SubjectReminderSent, map[string]any{
			"event_id":   ev.ID.String(),
			"owner_uuid": ev.OwnerID.String(),
			"occurs_at":  ev.OccursAt.Format(time.RFC3339),
		}); err != nil {
			s.logger.Error("failed to publish reminder sent", "event_id", ev.ID, "error", err)
		}
	}
}
