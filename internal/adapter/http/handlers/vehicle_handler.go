package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "cotizador_taller/internal/adapter/http/dto/request"
	"cotizador_taller/internal/usecase"
	"cotizador_taller/pkg"

	"github.com/gin-gonic/gin"
)

// VehicleHandler serves brands and vehicle lines.
type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) ListBrands(c *gin.Context) {
	brands, err := h.usecase.ListBrands(c.Request.Context())
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *VehicleHandler) CreateBrand(c *gin.Context) {
	var payload request.BrandRequest
	if !bindJSON(c, &payload) {
		return
	}
	brand, err := h.usecase.CreateBrand(c.Request.Context(), payload.Name)
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusCreated, brand)
}

func (h *VehicleHandler) UpdateBrand(c *gin.Context) {
	id, ok := int64Param(c, "brand_id")
	if !ok {
		writeError(c, errInvalidRequest)
		return
	}
	var payload request.BrandRequest
	if !bindJSON(c, &payload) {
		return
	}
	brand, err := h.usecase.UpdateBrand(c.Request.Context(), id, payload.Name)
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, brand)
}

// ListLines returns every line, or only the lines of ?brand_id= when given.
func (h *VehicleHandler) ListLines(c *gin.Context) {
	var brandID int64
	if raw := strings.TrimSpace(c.Query("brand_id")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v <= 0 {
			writeError(c, errInvalidRequest)
			return
		}
		brandID = v
	}
	lines, err := h.usecase.ListLines(c.Request.Context(), brandID)
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *VehicleHandler) CreateLine(c *gin.Context) {
	var payload request.LineRequest
	if !bindJSON(c, &payload) {
		return
	}
	line, err := h.usecase.CreateLine(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusCreated, line)
}

func (h *VehicleHandler) UpdateLine(c *gin.Context) {
	var payload request.LineUpdateRequest
	if !bindJSON(c, &payload) {
		return
	}
	line, err := h.usecase.UpdateLine(c.Request.Context(), pathParam(c, "line_id"), payload.ToUpdate())
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, line)
}

// DeleteLine removes the line and every part that references it.
func (h *VehicleHandler) DeleteLine(c *gin.Context) {
	if err := h.usecase.DeleteLine(c.Request.Context(), pathParam(c, "line_id")); err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBrandName), errors.Is(err, usecase.ErrInvalidLineID),
		errors.Is(err, usecase.ErrInvalidLineName), errors.Is(err, usecase.ErrInvalidServiceInterval):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBrandNotFound):
		return pkg.NewDomainErrorSimple("BRAND_NOT_FOUND", "Brand not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Vehicle line not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
