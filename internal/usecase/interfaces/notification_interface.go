package interfaces

import (
	"context"

	"cotizador_taller/internal/domain/entities"
)

// INotificationDispatcher hands notifications to the async worker pool.
type INotificationDispatcher interface {
	EnqueueIssueReported(ctx context.Context, issue entities.IssueReport) error
}

// IMailer delivers plain-text mail.
type IMailer interface {
	Send(ctx context.Context, to []string, subject, body string) error
}
