package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "cotizador_taller/internal/adapter/http/dto/request"
	response "cotizador_taller/internal/adapter/http/dto/response"
	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/infrastructure/documents"
	"cotizador_taller/internal/usecase"
	"cotizador_taller/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PartHandler serves the admin parts catalog.
type PartHandler struct {
	usecase  usecase.IPartUseCase
	vehicles usecase.IVehicleUseCase
	now      func() time.Time
}

func NewPartHandler(uc usecase.IPartUseCase, vehicles usecase.IVehicleUseCase) *PartHandler {
	return &PartHandler{usecase: uc, vehicles: vehicles, now: time.Now}
}

// ListParts returns the parts of ?line_id=, or every live part without it.
func (h *PartHandler) ListParts(c *gin.Context) {
	ctx := c.Request.Context()
	lineID := strings.TrimSpace(c.Query("line_id"))

	var list []entities.Part
	var err error
	if lineID != "" {
		list, err = h.usecase.ListByLine(ctx, lineID)
	} else {
		list, err = h.usecase.ListAll(ctx)
	}
	if err != nil {
		writeError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromParts(list))
}

// ListByReference is the general view: one row per reference across lines.
func (h *PartHandler) ListByReference(c *gin.Context) {
	groups, err := h.usecase.ListByReference(c.Request.Context())
	if err != nil {
		writeError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReferenceGroups(groups))
}

func (h *PartHandler) CreatePart(c *gin.Context) {
	var payload request.PartRequest
	if !bindJSON(c, &payload) {
		return
	}
	part, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPart(part))
}

func (h *PartHandler) UpdatePart(c *gin.Context) {
	var payload request.PartUpdateRequest
	if !bindJSON(c, &payload) {
		return
	}
	part, err := h.usecase.Update(c.Request.Context(), pathParam(c, "part_id"), payload.ToUpdate())
	if err != nil {
		writeError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPart(part))
}

// UpdateByReference applies the same edit to every part sharing the reference.
func (h *PartHandler) UpdateByReference(c *gin.Context) {
	var payload request.PartUpdateRequest
	if !bindJSON(c, &payload) {
		return
	}
	n, err := h.usecase.UpdateByReference(c.Request.Context(), pathParam(c, "reference"), payload.ToUpdate())
	if err != nil {
		writeError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusOK, response.UpdatedCountResponse{Updated: n})
}

func (h *PartHandler) DeletePart(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), pathParam(c, "part_id")); err != nil {
		writeError(c, mapPartError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportParts downloads the live parts catalog as a spreadsheet.
func (h *PartHandler) ExportParts(c *gin.Context) {
	ctx := c.Request.Context()
	parts, err := h.usecase.ListAll(ctx)
	if err != nil {
		writeError(c, mapPartError(err))
		return
	}
	lines, err := h.vehicles.ListLines(ctx, 0)
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}

	f, filename, err := documents.PartsWorkbook(parts, lines, h.now())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("[part][handler] failed to write workbook")
	}
}

func mapPartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPartID), errors.Is(err, usecase.ErrInvalidPartName),
		errors.Is(err, usecase.ErrInvalidPartReference), errors.Is(err, usecase.ErrInvalidPartCategory),
		errors.Is(err, usecase.ErrInvalidPrice), errors.Is(err, usecase.ErrInvalidLineID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Vehicle line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
