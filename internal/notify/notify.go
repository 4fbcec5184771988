// Package notify delivers best-effort email notifications. Messages are
// queued and sent by a background worker; send failures are logged, never
// surfaced to the request that triggered them.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes messages to the log instead of delivering them. Used in
// development and when no mail backend is configured.
type LogSender struct {
	Log *zap.Logger
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.Log.Info("email (log sink)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}
