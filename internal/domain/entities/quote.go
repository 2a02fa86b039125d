package entities

import "github.com/shopspring/decimal"

type ServiceType string

const (
	ServiceTypeParticular ServiceType = "particular"
	ServiceTypeTaxi       ServiceType = "taxi"
	ServiceTypePublico    ServiceType = "publico"
)

// Valid reports whether s is one of the supported service types.
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeParticular, ServiceTypeTaxi, ServiceTypePublico:
		return true
	}
	return false
}

// ItemKind tags a priced line in a quote.
type ItemKind string

const (
	ItemKindPart      ItemKind = "part"
	ItemKindLabor     ItemKind = "labor"
	ItemKindSupply    ItemKind = "supply"
	ItemKindCrossSell ItemKind = "cross_sell"
	ItemKindUnknown   ItemKind = "unknown"
)

// LineItem is a priced line of a service order.
//
// Price is the unit price for parts, the computed cost for labor and the
// flat price for everything else. Total is what counts toward the category sum.
type LineItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Kind       ItemKind        `json:"type"`
	Reference  string          `json:"reference,omitempty"`
	Category   PartCategory    `json:"category,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	Hours      decimal.Decimal `json:"hours"`
	Price      decimal.Decimal `json:"price"`
	Total      decimal.Decimal `json:"total"`
	Additional bool            `json:"additional"`
}

// QuoteTotals are the category sums and the tax-inclusive total.
type QuoteTotals struct {
	Parts    decimal.Decimal `json:"parts"`
	Labor    decimal.Decimal `json:"labor"`
	Supplies decimal.Decimal `json:"supplies"`
	Subtotal decimal.Decimal `json:"subtotal"`
	TaxValue decimal.Decimal `json:"taxValue"`
	Total    decimal.Decimal `json:"total"`
}

// DroppedReference records a catalog reference that resolution skipped.
type DroppedReference struct {
	Kind   ItemKind `json:"kind"`
	ID     string   `json:"id"`
	Reason string   `json:"reason"`
}

// QuoteResult is the full output of the resolution and merge engine.
type QuoteResult struct {
	CurrentParts        []LineItem         `json:"currentParts"`
	CurrentLabor        []LineItem         `json:"currentLabor"`
	CurrentSupplies     []LineItem         `json:"currentSupplies"`
	ResolvedAdditionals []LineItem         `json:"resolvedAdditionals"`
	ResolvedCrossSell   []LineItem         `json:"resolvedCrossSell"`
	MergedParts         []LineItem         `json:"mergedParts"`
	MergedLabor         []LineItem         `json:"mergedLabor"`
	MergedSupplies      []LineItem         `json:"mergedSupplies"`
	Totals              QuoteTotals        `json:"totals"`
	Dropped             []DroppedReference `json:"dropped,omitempty"`
}

// MainParts returns merged parts that are not additives. Additional parts
// resolved from free text carry no category and always land here.
func (q QuoteResult) MainParts() []LineItem {
	out := make([]LineItem, 0, len(q.MergedParts))
	for _, p := range q.MergedParts {
		if p.Category != PartCategoryAdditive {
			out = append(out, p)
		}
	}
	return out
}

// AdditiveParts returns merged parts in the additive category.
func (q QuoteResult) AdditiveParts() []LineItem {
	out := make([]LineItem, 0)
	for _, p := range q.MergedParts {
		if p.Category == PartCategoryAdditive {
			out = append(out, p)
		}
	}
	return out
}
