package handlers

import (
	"errors"
	"net/http"

	request "cotizador_taller/internal/adapter/http/dto/request"
	"cotizador_taller/internal/usecase"
	"cotizador_taller/pkg"

	"github.com/gin-gonic/gin"
)

type IssueHandler struct {
	usecase usecase.IIssueUseCase
}

func NewIssueHandler(uc usecase.IIssueUseCase) *IssueHandler {
	return &IssueHandler{usecase: uc}
}

func (h *IssueHandler) ReportIssue(c *gin.Context) {
	var payload request.IssueRequest
	if !bindJSON(c, &payload) {
		return
	}
	issue, err := h.usecase.Report(c.Request.Context(), payload.Description, payload.Email)
	if err != nil {
		writeError(c, mapIssueError(err))
		return
	}
	c.JSON(http.StatusCreated, issue)
}

func (h *IssueHandler) ListIssues(c *gin.Context) {
	issues, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapIssueError(err))
		return
	}
	c.JSON(http.StatusOK, issues)
}

func (h *IssueHandler) ResolveIssue(c *gin.Context) {
	issue, err := h.usecase.Resolve(c.Request.Context(), pathParam(c, "issue_id"))
	if err != nil {
		writeError(c, mapIssueError(err))
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (h *IssueHandler) DeleteIssue(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), pathParam(c, "issue_id")); err != nil {
		writeError(c, mapIssueError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapIssueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIssueID), errors.Is(err, usecase.ErrInvalidIssueDescription),
		errors.Is(err, usecase.ErrInvalidIssueEmail):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIssueNotFound):
		return pkg.NewDomainErrorSimple("ISSUE_NOT_FOUND", "Issue not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
