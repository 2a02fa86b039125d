package response

import (
	"encoding/json"

	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/domain/pricing"
	"cotizador_taller/internal/usecase"
)

type LineItemResponse struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Reference  string      `json:"reference,omitempty"`
	Category   string      `json:"category,omitempty"`
	Quantity   json.Number `json:"quantity"`
	Hours      json.Number `json:"hours"`
	Price      json.Number `json:"price"`
	Total      json.Number `json:"total"`
	Additional bool        `json:"additional"`
}

type TotalsResponse struct {
	Parts    json.Number `json:"parts"`
	Labor    json.Number `json:"labor"`
	Supplies json.Number `json:"supplies"`
	Subtotal json.Number `json:"subtotal"`
	TaxValue json.Number `json:"taxValue"`
	Total    json.Number `json:"total"`
}

// QuoteResponse is the priced service order. Parts are split into main parts
// and additives the way the quote is printed.
type QuoteResponse struct {
	Line            *entities.VehicleLine       `json:"line"`
	Milestone       *entities.Milestone         `json:"milestone"`
	ServiceType     string                      `json:"serviceType"`
	VehicleImageURL string                      `json:"vehicleImageUrl"`
	Additionals     []string                    `json:"additionals"`
	CrossSellIDs    []string                    `json:"crossSellIds"`
	Parts           []LineItemResponse          `json:"parts"`
	Additives       []LineItemResponse          `json:"additives"`
	Labor           []LineItemResponse          `json:"labor"`
	Supplies        []LineItemResponse          `json:"supplies"`
	Totals          TotalsResponse              `json:"totals"`
	Suggestions     []pricing.Suggestion        `json:"suggestions"`
	Dropped         []entities.DroppedReference `json:"dropped,omitempty"`
}

func FromQuote(v usecase.QuoteView) QuoteResponse {
	t := v.Result.Totals
	suggestions := v.Suggestions
	if suggestions == nil {
		suggestions = []pricing.Suggestion{}
	}
	return QuoteResponse{
		Line:            v.Line,
		Milestone:       v.Milestone,
		ServiceType:     string(v.ServiceType),
		VehicleImageURL: v.VehicleImageURL,
		Additionals:     nonNil(v.Additionals),
		CrossSellIDs:    nonNil(v.CrossSellIDs),
		Parts:           fromLineItems(v.Result.MainParts()),
		Additives:       fromLineItems(v.Result.AdditiveParts()),
		Labor:           fromLineItems(v.Result.MergedLabor),
		Supplies:        fromLineItems(v.Result.MergedSupplies),
		Totals: TotalsResponse{
			Parts:    number(t.Parts),
			Labor:    number(t.Labor),
			Supplies: number(t.Supplies),
			Subtotal: number(t.Subtotal),
			TaxValue: number(t.TaxValue),
			Total:    number(t.Total),
		},
		Suggestions: suggestions,
		Dropped:     v.Result.Dropped,
	}
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ID:         it.ID,
			Name:       it.Name,
			Type:       string(it.Kind),
			Reference:  it.Reference,
			Category:   string(it.Category),
			Quantity:   number(it.Quantity),
			Hours:      number(it.Hours),
			Price:      number(it.Price),
			Total:      number(it.Total),
			Additional: it.Additional,
		})
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

type SuggestionsResponse struct {
	Suggestions []pricing.Suggestion `json:"suggestions"`
}
