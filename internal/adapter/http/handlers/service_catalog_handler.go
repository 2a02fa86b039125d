package handlers

import (
	"errors"
	"net/http"

	request "cotizador_taller/internal/adapter/http/dto/request"
	response "cotizador_taller/internal/adapter/http/dto/response"
	"cotizador_taller/internal/usecase"
	"cotizador_taller/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceCatalogHandler serves labor activities, supplies, cross-sell items
// and the labor rate.
type ServiceCatalogHandler struct {
	usecase usecase.IServiceCatalogUseCase
}

func NewServiceCatalogHandler(uc usecase.IServiceCatalogUseCase) *ServiceCatalogHandler {
	return &ServiceCatalogHandler{usecase: uc}
}

func (h *ServiceCatalogHandler) ListLabor(c *gin.Context) {
	list, err := h.usecase.ListLabor(c.Request.Context())
	if err != nil {
		writeError(c, mapServiceCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaborList(list))
}

func (h *ServiceCatalogHandler) CreateLabor(c *gin.Context) {
	var payload request.LaborRequest
	if !bindJSON(c, &payload) {
		return
	}
	labor, err := h.usecase.CreateLabor(c.Request.Context(), payload.Description, *payload.Hours)
	if err != nil {
		writeError(c, mapServiceCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLabor(labor))
}

func (h *ServiceCatalogHandler) UpdateLabor(c *gin.Context) {
	var payload request.LaborUpdateRequest
	if !bindJSON(c, &payload) {
		return
	}
	labor, err := h.usecase.UpdateLabor(c.Request.Context(), pathParam(c, "labor_id"), payload.ToUpdate())
	if err != nil {
		writeError(c, mapServiceCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLabor(labor))
}

func (h *ServiceCatalogHandler) DeleteLabor(c *gin.Context) {
	if err := h.usecase.DeleteLabor(c.Request.Context(), pathParam(c, "labor_id")); err != nil {
		writeError(c, mapServiceCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceCatalogHandler) ListSupplies(c *gin.Context) {
	list, err := h.usecase.ListSupplies(c.Request.Context())
	if err != nil {
		writeError(c, mapServiceCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupplies(list))
}

func (h *ServiceCatalogHandler) UpdateSupply(c *gin.Context) {
	var payload request.PricedItemUpdateRequest
	if !bindJSON(c, &payload) {
		return
	}
	supply, err := h.usecase.UpdateSupply(c.Request.Context(), pathParam(c, "supply_id"), payload.ToUpdate())
	if err != nil {
		writeError(c, mapServiceCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupply(supply))
}

func (h *ServiceCatalogHandler) CreateCrossSell(c *gin.Context) {
	var payload request.PricedItemRequest
	if !bindJSON(c, &payload) {
		return
	}
	item, err := h.usecase.CreateCrossSell(c.Request.Context(), payload.Name, *payload.Price)
	if err != nil {
		writeError(c, mapServiceCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCrossSell(item))
}

func (h *ServiceCatalogHandler) UpdateCrossSell(c *gin.Context) {
	var payload request.PricedItemUpdateRequest
	if !bindJSON(c, &payload) {
		return
	}
	item, err := h.usecase.UpdateCrossSell(c.Request.Context(), pathParam(c, "item_id"), payload.ToUpdate())
	if err != nil {
		writeError(c, mapServiceCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCrossSell(item))
}

func (h *ServiceCatalogHandler) DeleteCrossSell(c *gin.Context) {
	if err := h.usecase.DeleteCrossSell(c.Request.Context(), pathParam(c, "item_id")); err != nil {
		writeError(c, mapServiceCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceCatalogHandler) GetLaborRate(c *gin.Context) {
	rate, err := h.usecase.GetLaborRate(c.Request.Context())
	if err != nil {
		writeError(c, mapServiceCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaborRate(rate))
}

func (h *ServiceCatalogHandler) SetLaborRate(c *gin.Context) {
	var payload request.LaborRateRequest
	if !bindJSON(c, &payload) {
		return
	}
	rate, err := h.usecase.SetLaborRate(c.Request.Context(), *payload.Rate)
	if err != nil {
		writeError(c, mapServiceCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaborRate(rate))
}

func mapServiceCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrInvalidHours), errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidLaborRate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLaborNotFound):
		return pkg.NewDomainErrorSimple("LABOR_NOT_FOUND", "Labor activity not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupplyNotFound):
		return pkg.NewDomainErrorSimple("SUPPLY_NOT_FOUND", "Supply not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCrossSellNotFound):
		return pkg.NewDomainErrorSimple("CROSS_SELL_NOT_FOUND", "Cross-sell item not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
