package response

import (
	"encoding/json"

	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase"

	"github.com/shopspring/decimal"
)

type PartResponse struct {
	ID        string      `json:"id"`
	Reference string      `json:"reference"`
	Name      string      `json:"name"`
	Price     json.Number `json:"price"`
	LineID    string      `json:"lineId"`
	Category  string      `json:"category"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		ID:        p.ID,
		Reference: p.Reference,
		Name:      p.Name,
		Price:     number(p.Price),
		LineID:    p.LineID,
		Category:  string(p.Category),
	}
}

func FromParts(parts []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromPart(p))
	}
	return out
}

// ReferenceGroupResponse backs the general parts view.
type ReferenceGroupResponse struct {
	Reference string         `json:"reference"`
	Name      string         `json:"name"`
	LineIDs   []string       `json:"lineIds"`
	Parts     []PartResponse `json:"parts"`
}

func FromReferenceGroups(groups []usecase.ReferenceGroup) []ReferenceGroupResponse {
	out := make([]ReferenceGroupResponse, 0, len(groups))
	for _, g := range groups {
		lineIDs := make([]string, 0, len(g.Parts))
		for _, p := range g.Parts {
			lineIDs = append(lineIDs, p.LineID)
		}
		out = append(out, ReferenceGroupResponse{
			Reference: g.Reference,
			Name:      g.Name,
			LineIDs:   lineIDs,
			Parts:     FromParts(g.Parts),
		})
	}
	return out
}

type LaborResponse struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Hours       json.Number `json:"hours"`
}

func FromLabor(l entities.LaborActivity) LaborResponse {
	return LaborResponse{ID: l.ID, Description: l.Description, Hours: number(l.Hours)}
}

func FromLaborList(list []entities.LaborActivity) []LaborResponse {
	out := make([]LaborResponse, 0, len(list))
	for _, l := range list {
		out = append(out, FromLabor(l))
	}
	return out
}

// PricedItemResponse is used for supplies and cross-sell items.
type PricedItemResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

func FromSupply(s entities.Supply) PricedItemResponse {
	return PricedItemResponse{ID: s.ID, Name: s.Name, Price: number(s.Price)}
}

func FromSupplies(list []entities.Supply) []PricedItemResponse {
	out := make([]PricedItemResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSupply(s))
	}
	return out
}

func FromCrossSell(x entities.CrossSellItem) PricedItemResponse {
	return PricedItemResponse{ID: x.ID, Name: x.Name, Price: number(x.Price)}
}

func FromCrossSellList(list []entities.CrossSellItem) []PricedItemResponse {
	out := make([]PricedItemResponse, 0, len(list))
	for _, x := range list {
		out = append(out, FromCrossSell(x))
	}
	return out
}

type LaborRateResponse struct {
	Rate json.Number `json:"rate"`
}

func FromLaborRate(rate decimal.Decimal) LaborRateResponse {
	return LaborRateResponse{Rate: number(rate)}
}

type UpdatedCountResponse struct {
	Updated int `json:"updated"`
}
