package pricing

import (
	"cotizador_taller/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// TaxRate is the VAT applied to the quote subtotal.
var TaxRate = decimal.RequireFromString("0.19")

// Drop reasons reported in QuoteResult.Dropped.
const (
	DropMissing   = "missing"
	DropOtherLine = "other_line"
)

// Catalogs are the collections a quote is priced against.
type Catalogs struct {
	Parts     []entities.Part
	Labor     []entities.LaborActivity
	Supplies  []entities.Supply
	CrossSell []entities.CrossSellItem
	LaborRate decimal.Decimal
}

// QuoteInput is everything ResolveQuote depends on.
type QuoteInput struct {
	Line         *entities.VehicleLine
	Milestone    *entities.Milestone
	ServiceType  entities.ServiceType
	Catalogs     Catalogs
	Definitions  Definitions
	Additionals  []string
	CrossSellIDs []string
}

// ResolveQuote prices a selection. It never fails: references that cannot be
// resolved are left out (and listed in Dropped), and unmatched additionals
// are kept as zero-cost lines.
func ResolveQuote(in QuoteInput) entities.QuoteResult {
	res := emptyResult()
	if in.Line == nil || in.Milestone == nil {
		return res
	}

	parts := indexParts(in.Catalogs.Parts)
	labor := indexLabor(in.Catalogs.Labor)
	supplies := indexSupplies(in.Catalogs.Supplies)
	crossSell := indexCrossSell(in.Catalogs.CrossSell)
	rate := in.Catalogs.LaborRate

	def := in.Definitions.Resolve(in.Line.ID, in.Milestone.ID)

	for _, rp := range def.Parts {
		p, ok := parts[rp.ID]
		if !ok {
			res.Dropped = append(res.Dropped, entities.DroppedReference{Kind: entities.ItemKindPart, ID: rp.ID, Reason: DropMissing})
			continue
		}
		if p.LineID != in.Line.ID {
			res.Dropped = append(res.Dropped, entities.DroppedReference{Kind: entities.ItemKindPart, ID: rp.ID, Reason: DropOtherLine})
			continue
		}
		res.CurrentParts = append(res.CurrentParts, entities.LineItem{
			ID:        p.ID,
			Name:      p.Name,
			Kind:      entities.ItemKindPart,
			Reference: p.Reference,
			Category:  p.Category,
			Quantity:  rp.Quantity,
			Price:     p.Price,
			Total:     p.Price.Mul(rp.Quantity),
		})
	}

	for _, id := range def.LaborIDs {
		l, ok := labor[id]
		if !ok {
			res.Dropped = append(res.Dropped, entities.DroppedReference{Kind: entities.ItemKindLabor, ID: id, Reason: DropMissing})
			continue
		}
		total := l.Hours.Mul(rate)
		res.CurrentLabor = append(res.CurrentLabor, entities.LineItem{
			ID:    l.ID,
			Name:  l.Description,
			Kind:  entities.ItemKindLabor,
			Hours: l.Hours,
			Price: total,
			Total: total,
		})
	}

	for _, id := range def.SupplyIDs {
		s, ok := supplies[id]
		if !ok {
			res.Dropped = append(res.Dropped, entities.DroppedReference{Kind: entities.ItemKindSupply, ID: id, Reason: DropMissing})
			continue
		}
		res.CurrentSupplies = append(res.CurrentSupplies, entities.LineItem{
			ID:    s.ID,
			Name:  s.Name,
			Kind:  entities.ItemKindSupply,
			Price: s.Price,
			Total: s.Price,
		})
	}

	for _, name := range in.Additionals {
		item, _ := ResolveAdditional(name, in.Line, in.Catalogs.Labor, in.Catalogs.Parts, rate)
		res.ResolvedAdditionals = append(res.ResolvedAdditionals, item)
	}

	for _, id := range in.CrossSellIDs {
		c, ok := crossSell[id]
		if !ok {
			res.Dropped = append(res.Dropped, entities.DroppedReference{Kind: entities.ItemKindCrossSell, ID: id, Reason: DropMissing})
			continue
		}
		res.ResolvedCrossSell = append(res.ResolvedCrossSell, entities.LineItem{
			ID:    c.ID,
			Name:  c.Name,
			Kind:  entities.ItemKindCrossSell,
			Price: c.Price,
			Total: c.Price,
		})
	}

	res.MergedParts = append(append(res.MergedParts, res.CurrentParts...), additionalsOfKind(res.ResolvedAdditionals, entities.ItemKindPart)...)
	res.MergedLabor = append(append(res.MergedLabor, res.CurrentLabor...), additionalsOfKind(res.ResolvedAdditionals, entities.ItemKindLabor)...)
	res.MergedSupplies = append(res.MergedSupplies, res.CurrentSupplies...)
	res.MergedSupplies = append(res.MergedSupplies, res.ResolvedCrossSell...)
	res.MergedSupplies = append(res.MergedSupplies, additionalsOfKind(res.ResolvedAdditionals, entities.ItemKindUnknown)...)

	res.Totals = ComputeTotals(res.MergedParts, res.MergedLabor, res.MergedSupplies)
	return res
}

// ComputeTotals sums each category and applies TaxRate to the subtotal.
// Nothing is rounded here.
func ComputeTotals(parts, labor, supplies []entities.LineItem) entities.QuoteTotals {
	t := entities.QuoteTotals{
		Parts:    sumTotals(parts),
		Labor:    sumTotals(labor),
		Supplies: sumTotals(supplies),
	}
	t.Subtotal = t.Parts.Add(t.Labor).Add(t.Supplies)
	t.TaxValue = t.Subtotal.Mul(TaxRate)
	t.Total = t.Subtotal.Add(t.TaxValue)
	return t
}

func sumTotals(items []entities.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total)
	}
	return sum
}

func additionalsOfKind(items []entities.LineItem, kind entities.ItemKind) []entities.LineItem {
	out := make([]entities.LineItem, 0)
	for _, it := range items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

func emptyResult() entities.QuoteResult {
	return entities.QuoteResult{
		CurrentParts:        []entities.LineItem{},
		CurrentLabor:        []entities.LineItem{},
		CurrentSupplies:     []entities.LineItem{},
		ResolvedAdditionals: []entities.LineItem{},
		ResolvedCrossSell:   []entities.LineItem{},
		MergedParts:         []entities.LineItem{},
		MergedLabor:         []entities.LineItem{},
		MergedSupplies:      []entities.LineItem{},
		Totals:              ComputeTotals(nil, nil, nil),
	}
}

// The index helpers keep the first occurrence of a duplicated id, matching a
// linear first-found search.

func indexParts(parts []entities.Part) map[string]entities.Part {
	m := make(map[string]entities.Part, len(parts))
	for _, p := range parts {
		if _, dup := m[p.ID]; !dup {
			m[p.ID] = p
		}
	}
	return m
}

func indexLabor(labor []entities.LaborActivity) map[string]entities.LaborActivity {
	m := make(map[string]entities.LaborActivity, len(labor))
	for _, l := range labor {
		if _, dup := m[l.ID]; !dup {
			m[l.ID] = l
		}
	}
	return m
}

func indexSupplies(supplies []entities.Supply) map[string]entities.Supply {
	m := make(map[string]entities.Supply, len(supplies))
	for _, s := range supplies {
		if _, dup := m[s.ID]; !dup {
			m[s.ID] = s
		}
	}
	return m
}

func indexCrossSell(items []entities.CrossSellItem) map[string]entities.CrossSellItem {
	m := make(map[string]entities.CrossSellItem, len(items))
	for _, c := range items {
		if _, dup := m[c.ID]; !dup {
			m[c.ID] = c
		}
	}
	return m
}
