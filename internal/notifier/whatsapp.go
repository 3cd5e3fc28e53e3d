// Package notifier sends event reminders through the outbound WhatsApp
// gateway. It is entirely decoupled from interpretation: the engine only
// supplies the phone number.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/agendavoz/internal/store"
)

type Poster struct {
	gatewayURL string
	token      string
	client     *http.Client
	logger     *slog.Logger
}

func NewPoster(gatewayURL, token string, logger *slog.Logger) *Poster {
	return &Poster{
		gatewayURL: gatewayURL,
		token:      token,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// SendReminder delivers the reminder message for an event to its contact
// phone via the gateway.
func (p *Poster) SendReminder(ctx context.Context, ev *store.Event) error {
	body, err := json.Marshal(map[string]any{
		"to":   ev.ContactPhone,
		"body": formatReminderMessage(ev),
	})
	if err != nil {
		return fmt.Errorf("marshal gateway payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var gwResp struct {
		OK        bool   `json:"ok"`
		MessageID string `json:"message_id"`
		Error     string `json:"error,omitempty"`
	}
	if err := json.Unmarshal(respBody, &gwResp); err != nil {
		return fmt.Errorf("parse gateway response: %w", err)
	}
	if !gwResp.OK {
		return fmt.Errorf("gateway error: %s", gwResp.Error)
	}

	p.logger.Info("reminder sent", "event_id", ev.ID, "message_id", gwResp.MessageID)
	return nil
}

func formatReminderMessage(ev *store.Event) string {
	return fmt.Sprintf("Lembrete: %s em %s (%d min)",
		ev.Title,
		ev.OccursAt.Format("02/01/2006 às 15:04"),
		ev.DurationMinutes,
	)
}
