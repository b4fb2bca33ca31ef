// Package notify posts human-readable messages to a Slack incoming
// webhook. Delivery is best-effort: failures are logged and swallowed,
// never surfaced to the pipeline.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/habitfund/contribmap/pkg/constants"
	"github.com/habitfund/contribmap/pkg/errors"
	"github.com/habitfund/contribmap/pkg/logging"
)

// Notifier sends a message somewhere a human will see it.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// payload is the Slack incoming-webhook body.
type payload struct {
	Text string `json:"text"`
}

// Slack posts messages to a Slack incoming webhook.
type Slack struct {
	webhookURL string
	http       *http.Client
}

// NewSlack creates a Slack notifier. An empty webhook URL returns a
// disabled notifier that only logs, so callers never need to branch.
func NewSlack(webhookURL string) Notifier {
	if webhookURL == "" {
		return disabled{}
	}
	return &Slack{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: constants.NotifyTimeout},
	}
}

// Notify posts the message. Transport failures and non-200 responses
// are logged at warn and swallowed; output correctness never depends
// on delivery.
func (s *Slack) Notify(ctx context.Context, text string) {
	log := logging.FromContext(ctx)

	if err := s.post(ctx, text); err != nil {
		log.Warn().Err(err).Msg("Failed to send Slack notification")
		return
	}
	log.Debug().Msg("Slack notification sent")
}

func (s *Slack) post(ctx context.Context, text string) error {
	body, err := json.Marshal(payload{Text: text})
	if err != nil {
		return &errors.NotifyError{Message: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return &errors.NotifyError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return &errors.NotifyError{Message: err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &errors.NotifyError{StatusCode: resp.StatusCode, Message: resp.Status}
	}
	return nil
}

// disabled is the no-op notifier used when no webhook is configured.
type disabled struct{}

// Notify logs that the notification was skipped and does nothing else.
func (disabled) Notify(ctx context.Context, text string) {
	logging.FromContext(ctx).Debug().
		Str("text", text).
		Msg("No webhook configured, skipping notification")
}
