package request

import (
	"strings"

	"cotizador_taller/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type RecipePartRequest struct {
	ID       string           `json:"id" binding:"required"`
	Quantity *decimal.Decimal `json:"quantity" binding:"required"`
}

type RecipeRequest struct {
	LaborIDs  []string            `json:"laborIds"`
	SupplyIDs []string            `json:"supplyIds"`
	Parts     []RecipePartRequest `json:"parts" binding:"dive"`
}

// ToEntity never returns nil lists.
func (r RecipeRequest) ToEntity() entities.RecipeDefinition {
	def := entities.EmptyRecipe()
	for _, id := range r.LaborIDs {
		if id = strings.TrimSpace(id); id != "" {
			def.LaborIDs = append(def.LaborIDs, id)
		}
	}
	for _, id := range r.SupplyIDs {
		if id = strings.TrimSpace(id); id != "" {
			def.SupplyIDs = append(def.SupplyIDs, id)
		}
	}
	for _, p := range r.Parts {
		qty := decimal.Zero
		if p.Quantity != nil {
			qty = *p.Quantity
		}
		def.Parts = append(def.Parts, entities.RecipePart{ID: strings.TrimSpace(p.ID), Quantity: qty})
	}
	return def
}
