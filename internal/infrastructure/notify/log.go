package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

// LogNotifier writes notifications to the log instead of delivering them.
// Used in development when no broker is configured.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Publish(_ context.Context, msg domain.Notification) error {
	n.log.Info().
		Int64("student_id", msg.StudentID).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("notification")
	return nil
}
