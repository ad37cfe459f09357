package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spec-kit/portfolio-service/internal/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// Mailer delivers a single email message.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// ResendMailer talks to the Resend HTTP API.
type ResendMailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

// NewResendMailer builds a mailer from newsletter configuration.
func NewResendMailer(cfg config.NewsletterConfig) *ResendMailer {
	return &ResendMailer{
		apiKey:   cfg.ResendAPIKey,
		from:     cfg.EmailFrom,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: cfg.SendTimeout()},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send delivers one email. Non-2xx responses are returned as errors so the
// caller can record the recipient as failed.
func (m *ResendMailer) Send(ctx context.Context, to, subject, html string) error {
	body, err := json.Marshal(resendRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}
	return nil
}
