package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LogMailer writes emails to the log. Used in development and as the
// fallback when no provider API key is configured.
type LogMailer struct {
	Log *zap.SugaredLogger
}

func (m LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.Log.Infow("email (log provider)", "to", to, "subject", subject)
	m.Log.Debugf("email body:\n%s", body)
	return nil
}

// HTTPMailer posts emails to an HTTP email provider API.
type HTTPMailer struct {
	Endpoint string
	APIKey   string
	From     string
	Client   *http.Client
}

func NewHTTPMailer(endpoint, apiKey, from string) *HTTPMailer {
	return &HTTPMailer{
		Endpoint: endpoint,
		APIKey:   apiKey,
		From:     from,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *HTTPMailer) Send(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(map[string]string{
		"from":    m.From,
		"to":      to,
		"subject": subject,
		"text":    body,
	})
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.APIKey)

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned %d", resp.StatusCode)
	}
	return nil
}
