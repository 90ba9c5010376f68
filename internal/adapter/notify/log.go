package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotifier writes alerts to the structured log.
// It is the delivery channel when no webhook is configured.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Send logs the message at info level.
func (n *LogNotifier) Send(_ context.Context, message string) error {
	n.log.Info().Str("alert", message).Msg("Price alert")
	return nil
}
