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

type RecipeHandler struct {
	usecase usecase.IRecipeUseCase
}

func NewRecipeHandler(uc usecase.IRecipeUseCase) *RecipeHandler {
	return &RecipeHandler{usecase: uc}
}

// GetRecipe returns the recipe a milestone resolves to, with the milestones
// that share it.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	view, err := h.usecase.GetDefinition(c.Request.Context(), pathParam(c, "line_id"), pathParam(c, "milestone_id"))
	if err != nil {
		writeError(c, mapRecipeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRecipe(view))
}

// SaveRecipe replaces the recipe. Saving a milestone that inherits its recipe
// writes the shared one.
func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	var payload request.RecipeRequest
	if !bindJSON(c, &payload) {
		return
	}
	view, err := h.usecase.SaveDefinition(c.Request.Context(), pathParam(c, "line_id"), pathParam(c, "milestone_id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapRecipeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRecipe(view))
}

func mapRecipeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLineID), errors.Is(err, usecase.ErrInvalidMilestoneID),
		errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidPartID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomRecipe):
		return pkg.NewDomainErrorSimple("CUSTOM_RECIPE", "The custom milestone has no stored recipe", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Vehicle line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
