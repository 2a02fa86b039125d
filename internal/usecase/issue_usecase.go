package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidIssueID          = errors.New("invalid issue id")
	ErrInvalidIssueDescription = errors.New("invalid issue description")
	ErrInvalidIssueEmail       = errors.New("invalid issue email")
	ErrIssueNotFound           = errors.New("issue not found")
)

// IIssueUseCase handles advisor feedback reports.
type IIssueUseCase interface {
	Report(ctx context.Context, description, email string) (entities.IssueReport, error)
	List(ctx context.Context) ([]entities.IssueReport, error)
	Resolve(ctx context.Context, id string) (entities.IssueReport, error)
	Delete(ctx context.Context, id string) error
}

type IssueUseCase struct {
	catalog    catalogAccess
	dispatcher interfaces.INotificationDispatcher
	now        func() time.Time
}

var _ IIssueUseCase = (*IssueUseCase)(nil)

func NewIssueUseCase(store interfaces.ICatalogStore, dispatcher interfaces.INotificationDispatcher) *IssueUseCase {
	return &IssueUseCase{catalog: catalogAccess{store: store}, dispatcher: dispatcher, now: time.Now}
}

// Report stores a new open issue, newest first, and queues a notification.
// A failed notification does not fail the report.
func (u *IssueUseCase) Report(ctx context.Context, description, email string) (entities.IssueReport, error) {
	description = strings.TrimSpace(description)
	email = strings.TrimSpace(email)
	if description == "" {
		return entities.IssueReport{}, ErrInvalidIssueDescription
	}
	if email == "" {
		return entities.IssueReport{}, ErrInvalidIssueEmail
	}

	issues, err := u.catalog.issues(ctx)
	if err != nil {
		return entities.IssueReport{}, err
	}

	issue := entities.IssueReport{
		ID:          "issue_" + uuid.NewString(),
		Description: description,
		Email:       email,
		Date:        u.now().UTC(),
		Status:      entities.IssueStatusOpen,
	}
	if err := u.catalog.saveIssues(ctx, append([]entities.IssueReport{issue}, issues...)); err != nil {
		return entities.IssueReport{}, err
	}

	if u.dispatcher != nil {
		if err := u.dispatcher.EnqueueIssueReported(ctx, issue); err != nil {
			log.Warn().Err(err).Str("issue_id", issue.ID).Msg("[issue][usecase] notification enqueue failed")
		}
	}
	log.Info().Str("issue_id", issue.ID).Msg("[issue][usecase] issue reported")
	return issue, nil
}

func (u *IssueUseCase) List(ctx context.Context) ([]entities.IssueReport, error) {
	return u.catalog.issues(ctx)
}

func (u *IssueUseCase) Resolve(ctx context.Context, id string) (entities.IssueReport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.IssueReport{}, ErrInvalidIssueID
	}
	issues, err := u.catalog.issues(ctx)
	if err != nil {
		return entities.IssueReport{}, err
	}
	for i := range issues {
		if issues[i].ID != id {
			continue
		}
		issues[i].Status = entities.IssueStatusResolved
		if err := u.catalog.saveIssues(ctx, issues); err != nil {
			return entities.IssueReport{}, err
		}
		return issues[i], nil
	}
	return entities.IssueReport{}, ErrIssueNotFound
}

func (u *IssueUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidIssueID
	}
	issues, err := u.catalog.issues(ctx)
	if err != nil {
		return err
	}
	kept := make([]entities.IssueReport, 0, len(issues))
	for _, is := range issues {
		if is.ID != id {
			kept = append(kept, is)
		}
	}
	if len(kept) == len(issues) {
		return ErrIssueNotFound
	}
	return u.catalog.saveIssues(ctx, kept)
}
