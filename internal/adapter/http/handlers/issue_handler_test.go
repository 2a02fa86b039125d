package handlers

import (
	"net/http"
	"testing"
	"time"

	"cotizador_taller/internal/adapter/http/handlers/mocks"
	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newIssueRouter(uc usecase.IIssueUseCase) *gin.Engine {
	h := NewIssueHandler(uc)
	r := gin.New()
	r.POST("/v1/issues", h.ReportIssue)
	r.GET("/v1/admin/issues", h.ListIssues)
	r.PATCH("/v1/admin/issues/:issue_id/resolve", h.ResolveIssue)
	r.DELETE("/v1/admin/issues/:issue_id", h.DeleteIssue)
	return r
}

func TestIssueHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("report invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)

		w := performRequest(newIssueRouter(uc), http.MethodPost, "/v1/issues", `{"description":"precio raro","email":"no-es-correo"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Error.Details["Email"] != "email" {
			t.Fatalf("unexpected details: %s", w.Body.String())
		}
	})

	t.Run("report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		uc.EXPECT().Report(gomock.Any(), "precio raro", "a@taller.co").Return(entities.IssueReport{
			ID: "issue_1", Description: "precio raro", Email: "a@taller.co", Date: time.Now(), Status: entities.IssueStatusOpen,
		}, nil)

		w := performRequest(newIssueRouter(uc), http.MethodPost, "/v1/issues", `{"description":"precio raro","email":"a@taller.co"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("resolve missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		uc.EXPECT().Resolve(gomock.Any(), "issue_9").Return(entities.IssueReport{}, usecase.ErrIssueNotFound)

		w := performRequest(newIssueRouter(uc), http.MethodPatch, "/v1/admin/issues/issue_9/resolve", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list and delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return([]entities.IssueReport{{ID: "issue_1"}}, nil)
		uc.EXPECT().Delete(gomock.Any(), "issue_1").Return(nil)
		r := newIssueRouter(uc)

		if w := performRequest(r, http.MethodGet, "/v1/admin/issues", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := performRequest(r, http.MethodDelete, "/v1/admin/issues/issue_1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
