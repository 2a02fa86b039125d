package worker

import (
	"context"
	"encoding/json"
	"time"

	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	QueueNotifications = "jobs:notifications"

	JobIssueReported = "issue_reported"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// IssueReportedPayload is the body of a JobIssueReported job.
type IssueReportedPayload struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Date        time.Time `json:"date"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

var _ interfaces.INotificationDispatcher = (*Dispatcher)(nil)

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

func (d *Dispatcher) EnqueueIssueReported(ctx context.Context, issue entities.IssueReport) error {
	return enqueue(ctx, d.rdb, QueueNotifications, JobIssueReported, IssueReportedPayload{
		ID:          issue.ID,
		Description: issue.Description,
		Email:       issue.Email,
		Date:        issue.Date,
	}, 0)
}

func enqueue(ctx context.Context, rdb *redis.Client, queue, jobType string, payload any, attempts int) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data, Attempts: attempts})
	if err != nil {
		return err
	}
	return rdb.LPush(ctx, queue, encoded).Err()
}
