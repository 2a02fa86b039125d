package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/domain/entities"
	mock_interfaces "cotizador_taller/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const issuesDoc = `[{"id":"issue_old","description":"precio raro","email":"a@taller.co","date":"2024-05-01T10:00:00Z","status":"open"}]`

func TestIssueUseCase_Report(t *testing.T) {
	t.Run("prepends and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, ds := newDocStore(t, ctrl, map[catalog.Path]string{catalog.PathIssues: issuesDoc})
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		dispatcher.EXPECT().EnqueueIssueReported(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		uc := NewIssueUseCase(store, dispatcher)
		uc.now = func() time.Time { return time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC) }

		issue, err := uc.Report(context.Background(), " falta la bujía ", "b@taller.co")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(issue.ID, "issue_") || issue.Status != entities.IssueStatusOpen {
			t.Fatalf("unexpected issue %+v", issue)
		}
		if issue.Description != "falta la bujía" {
			t.Fatalf("description should be trimmed, got %q", issue.Description)
		}

		stored, _ := catalog.DecodeIssues(ds.get(catalog.PathIssues))
		if len(stored) != 2 || stored[0].ID != issue.ID || stored[1].ID != "issue_old" {
			t.Fatalf("expected newest first, got %+v", stored)
		}
	})

	t.Run("notification failure does not fail report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newDocStore(t, ctrl, nil)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		dispatcher.EXPECT().EnqueueIssueReported(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		uc := NewIssueUseCase(store, dispatcher)
		if _, err := uc.Report(context.Background(), "x", "c@taller.co"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newDocStore(t, ctrl, nil)
		uc := NewIssueUseCase(store, nil)

		if _, err := uc.Report(context.Background(), "", "c@taller.co"); !errors.Is(err, ErrInvalidIssueDescription) {
			t.Fatalf("expected ErrInvalidIssueDescription, got %v", err)
		}
		if _, err := uc.Report(context.Background(), "x", " "); !errors.Is(err, ErrInvalidIssueEmail) {
			t.Fatalf("expected ErrInvalidIssueEmail, got %v", err)
		}
	})
}

func TestIssueUseCase_ResolveAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, _ := newDocStore(t, ctrl, map[catalog.Path]string{catalog.PathIssues: issuesDoc})
	uc := NewIssueUseCase(store, nil)
	ctx := context.Background()

	issue, err := uc.Resolve(ctx, "issue_old")
	if err != nil || issue.Status != entities.IssueStatusResolved {
		t.Fatalf("unexpected result %+v %v", issue, err)
	}
	if _, err := uc.Resolve(ctx, "issue_x"); !errors.Is(err, ErrIssueNotFound) {
		t.Fatalf("expected ErrIssueNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, "issue_old"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, _ := uc.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected no issues, got %d", len(list))
	}
}
