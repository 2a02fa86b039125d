package entities

import "github.com/shopspring/decimal"

// RecipePart is a priced part reference inside a recipe.
type RecipePart struct {
	ID       string          `json:"id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// RecipeDefinition is the configured labor, supplies and parts for a
// (line, canonical milestone) pair.
//
// Storage model:
//   - collection "maintenanceDefinitions", key "{lineId}_{canonicalMilestoneId}"
//   - an absent key is an empty recipe, never an error
type RecipeDefinition struct {
	LaborIDs  []string     `json:"laborIds"`
	SupplyIDs []string     `json:"supplyIds"`
	Parts     []RecipePart `json:"parts"`
}

// EmptyRecipe returns a recipe with non-nil empty lists.
func EmptyRecipe() RecipeDefinition {
	return RecipeDefinition{LaborIDs: []string{}, SupplyIDs: []string{}, Parts: []RecipePart{}}
}
