package mail

import (
	"context"

	"github.com/adilbekov/recipebox-api/internal/log"
)

// Sender is the notification dispatch contract: deliver content to one
// address, report success or failure. No retries at this level.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender writes mail to the log instead of delivering it. Dev fallback
// when no SMTP credentials are configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, to, subject, body string) error {
	log.Infof("[MAIL] to=%s subj=%q body=%q", to, subject, body)
	return nil
}
