package response

import (
	"encoding/json"

	"cotizador_taller/internal/usecase"
)

type RecipePartResponse struct {
	ID       string      `json:"id"`
	Quantity json.Number `json:"quantity"`
}

// RecipeResponse carries the editing context: which stored recipe is being
// edited and which milestones share it.
type RecipeResponse struct {
	LineID      string               `json:"lineId"`
	MilestoneID string               `json:"milestoneId"`
	CanonicalID string               `json:"canonicalMilestoneId"`
	SharedWith  []string             `json:"sharedWith"`
	LaborIDs    []string             `json:"laborIds"`
	SupplyIDs   []string             `json:"supplyIds"`
	Parts       []RecipePartResponse `json:"parts"`
}

func FromRecipe(v usecase.RecipeView) RecipeResponse {
	parts := make([]RecipePartResponse, 0, len(v.Definition.Parts))
	for _, p := range v.Definition.Parts {
		parts = append(parts, RecipePartResponse{ID: p.ID, Quantity: number(p.Quantity)})
	}
	return RecipeResponse{
		LineID:      v.LineID,
		MilestoneID: v.MilestoneID,
		CanonicalID: v.CanonicalID,
		SharedWith:  nonNil(v.SharedWith),
		LaborIDs:    nonNil(v.Definition.LaborIDs),
		SupplyIDs:   nonNil(v.Definition.SupplyIDs),
		Parts:       parts,
	}
}
