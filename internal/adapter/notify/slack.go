// Package notify implements outbound alert delivery.
// Price-drop alerts go to a Slack incoming webhook when one is configured,
// and fall back to the structured log otherwise.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds each webhook delivery.
const DefaultTimeout = 5 * time.Second

// SlackNotifier posts messages to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewSlackNotifier creates a Slack webhook notifier.
func NewSlackNotifier(webhookURL string, timeout time.Duration, log zerolog.Logger) *SlackNotifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// slackPayload is the incoming-webhook message body.
type slackPayload struct {
	Text string `json:"text"`
}

// Send posts one message to the webhook.
func (n *SlackNotifier) Send(ctx context.Context, message string) error {
	body, err := json.Marshal(slackPayload{Text: message})
	if err != nil {
		return fmt.Errorf("encode slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	defer resp.Body.Close()

	// Slack replies with a short text body; drain it so the connection is reused
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}

	n.log.Debug().Msg("Alert delivered to Slack")
	return nil
}
