package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"cotizador_taller/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// IssueNotificationWorker mails new issue reports to the workshop admins.
type IssueNotificationWorker struct {
	mailer     interfaces.IMailer
	recipients []string
}

var _ Handler = (*IssueNotificationWorker)(nil)

func NewIssueNotificationWorker(mailer interfaces.IMailer, recipients []string) *IssueNotificationWorker {
	return &IssueNotificationWorker{mailer: mailer, recipients: recipients}
}

// Process sends the notification. Malformed payloads and an empty recipient
// list are dropped without retry.
func (w *IssueNotificationWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload IssueReportedPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("[issue][worker] invalid payload")
		return nil
	}
	if len(w.recipients) == 0 {
		log.Warn().Str("issue_id", payload.ID).Msg("[issue][worker] no recipients configured, skipping")
		return nil
	}

	subject := fmt.Sprintf("Nuevo reporte de problema (%s)", payload.ID)
	body := fmt.Sprintf("Reportado por: %s\nFecha: %s\n\n%s\n",
		payload.Email, payload.Date.Format("02/01/2006 15:04"), payload.Description)
	if err := w.mailer.Send(ctx, w.recipients, subject, body); err != nil {
		return err
	}
	log.Info().Str("issue_id", payload.ID).Msg("[issue][worker] notification sent")
	return nil
}
