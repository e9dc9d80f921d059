// Package mailgun sends transactional email through the Mailgun HTTP
// API. It implements events.EventHandler so registration can trigger
// the welcome email without the API layer knowing about email at all.
package mailgun

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harwick/shelf-api/internal/events"
)

const (
	apiBaseURL     = "https://api.mailgun.net/v3"
	requestTimeout = 10 * time.Second
)

// Mailer sends email via the Mailgun messages endpoint.
type Mailer struct {
	baseURL string
	domain  string
	apiKey  string
	sender  string
	client  *http.Client
	logger  *slog.Logger
}

// NewMailer creates a Mailer for the given Mailgun domain. The sender
// defaults to postmaster@<domain> when empty.
func NewMailer(domain, apiKey, sender string, logger *slog.Logger) *Mailer {
	if sender == "" {
		sender = fmt.Sprintf("postmaster@%s", domain)
	}
	return &Mailer{
		baseURL: apiBaseURL,
		domain:  domain,
		apiKey:  apiKey,
		sender:  sender,
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logger.With("component", "mailgun_mailer"),
	}
}

// Send delivers a plain-text message to a single recipient.
func (m *Mailer) Send(ctx context.Context, to, subject, text string) error {
	form := url.Values{}
	form.Set("from", m.sender)
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("text", text)

	endpoint := fmt.Sprintf("%s/%s/messages", m.baseURL, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building mailgun request: %w", err)
	}
	req.SetBasicAuth("api", m.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending mailgun request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Truncate the body so a misbehaving response cannot flood logs.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mailgun returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// HandleEvent sends the welcome email for user.registered events.
// Other event types are ignored.
func (m *Mailer) HandleEvent(ctx context.Context, event *events.Event) error {
	if event.Type != events.TypeUserRegistered {
		return nil
	}

	var payload events.UserRegisteredPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("decoding user.registered payload: %w", err)
	}

	subject := "Successfully signed up"
	text := fmt.Sprintf("Hi %s! You have successfully signed up to the Stores REST API.",
		payload.Username)

	if err := m.Send(ctx, payload.Email, subject, text); err != nil {
		return fmt.Errorf("sending welcome email: %w", err)
	}

	m.logger.Info("welcome email sent",
		"user_id", payload.UserID,
		"event_id", event.ID)
	return nil
}
