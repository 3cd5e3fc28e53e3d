package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/MikeSquared-Agency/agendavoz/internal/interpreter"
	"github.com/jackc/pgx/v5"
)

// Event is a persisted calendar event produced by the interpreter.
type Event struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Title           string
	Description     string
	OccursAt        time.Time
	DurationMinutes int
	Category        string
	ContactPhone    string
	Transcript      string
	CreatedAt       time.Time
	ReminderSentAt  *time.Time
}

// SaveEvent writes a resolved event for the owning user. The original
// transcript is kept alongside so the interpretation can be audited and
// corrected later.
func (s *Store) SaveEvent(ctx context.Context, ownerID uuid.UUID, transcript string, res interpreter.Result) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO events (id, owner_id, title, description, occurs_at, duration_minutes, category, contact_phone, transcript, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`,
		id, ownerID, res.Title, res.Description, res.OccursAt, res.DurationMinutes, string(res.Category), res.ContactPhone, transcript,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert event: %w", err)
	}
	return id, nil
}

// GetEvent fetches a single event by id.
func (s *Store) GetEvent(ctx context.Context, id uuid.UUID) (*Event, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, owner_id, title, description, occurs_at, duration_minutes, category, contact_phone, transcript, created_at, reminder_sent_at
		FROM events WHERE id = $1`, id)

	var ev Event
	err := row.Scan(&ev.ID, &ev.OwnerID, &ev.Title, &ev.Description, &ev.OccursAt,
		&ev.DurationMinutes, &ev.Category, &ev.ContactPhone, &ev.Transcript,
		&ev.CreatedAt, &ev.ReminderSentAt)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("event %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return &ev, nil
}

// ListDueReminders returns events with a contact phone occurring inside the
// window that have not had their reminder sent yet.
func (s *Store) ListDueReminders(ctx context.Context, from, until time.Time) ([]Event, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, owner_id, title, description, occurs_at, duration_minutes, category, contact_phone, transcript, created_at, reminder_sent_at
		FROM events
		WHERE contact_phone <> ''
		  AND reminder_sent_at IS NULL
		  AND occurs_at >= $1 AND occurs_at < $2
		ORDER BY occurs_at`, from, until)
	if err != nil {
		return nil, fmt.Errorf("query due reminders: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.ID, &ev.OwnerID, &ev.Title, &ev.Description, &ev.OccursAt,
			&ev.DurationMinutes, &ev.Category, &ev.ContactPhone, &ev.Transcript,
			&ev.CreatedAt, &ev.ReminderSentAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return events, nil
}

// MarkReminderSent claims the reminder for an event. Returns false when the
// reminder was already claimed, so concurrent sweeps send at most once.
func (s *Store) MarkReminderSent(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE events SET reminder_sent_at = now()
		WHERE id = $1 AND reminder_sent_at IS NULL`, id)
	if err != nil {
		return false, fmt.Errorf("mark reminder sent: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
