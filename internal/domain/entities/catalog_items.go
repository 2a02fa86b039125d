package entities

import "github.com/shopspring/decimal"

type PartCategory string

const (
	PartCategoryMain     PartCategory = "main"
	PartCategoryAdditive PartCategory = "additive"
)

// Part is a line-specific spare part.
//
// Reference is a cross-line grouping key: editing "by reference" updates every
// part sharing it, whatever the line.
type Part struct {
	ID        string          `json:"id"`
	Reference string          `json:"reference"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	LineID    string          `json:"lineId"`
	Category  PartCategory    `json:"category"`
}

// LaborActivity is priced at resolution time as Hours x GlobalLaborRate.
type LaborActivity struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Hours       decimal.Decimal `json:"hours"`
}

// Supply is a flat-priced, line-independent consumable.
type Supply struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CrossSellItem is an optional add-on unrelated to the recipe.
type CrossSellItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
