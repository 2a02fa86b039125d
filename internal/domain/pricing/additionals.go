package pricing

import (
	"strings"

	"cotizador_taller/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// additionalQuery is one free-text additional being resolved.
type additionalQuery struct {
	raw    string
	folded string
}

// additionalContext is what the rules may search.
type additionalContext struct {
	line      *entities.VehicleLine
	labor     []entities.LaborActivity
	parts     []entities.Part
	laborRate decimal.Decimal
}

// AdditionalRule resolves a query or reports that it does not apply.
type AdditionalRule struct {
	Name    string
	Resolve func(q additionalQuery, c additionalContext) (entities.LineItem, bool)
}

// AdditionalRules run in order; the first rule that produces an item wins.
// A rule whose trigger matches but whose search finds nothing falls through.
var AdditionalRules = []AdditionalRule{
	{Name: "alignment", Resolve: resolveAlignment},
	{Name: "synchronization", Resolve: resolveSynchronization},
	{Name: "labor", Resolve: resolveGenericLabor},
	{Name: "part", Resolve: resolveLinePart},
}

func resolveAlignment(q additionalQuery, c additionalContext) (entities.LineItem, bool) {
	if !strings.Contains(q.folded, "alineacion") {
		return entities.LineItem{}, false
	}
	for _, l := range c.labor {
		if strings.Contains(Fold(l.Description), "alineacion") {
			return additionalLabor(l, c.laborRate), true
		}
	}
	return entities.LineItem{}, false
}

// resolveSynchronization matches the stored description verbatim, accent included.
func resolveSynchronization(q additionalQuery, c additionalContext) (entities.LineItem, bool) {
	if !strings.Contains(q.folded, "sincronizacion") {
		return entities.LineItem{}, false
	}
	for _, l := range c.labor {
		if strings.Contains(l.Description, "Sincronización") {
			return additionalLabor(l, c.laborRate), true
		}
	}
	return entities.LineItem{}, false
}

func resolveGenericLabor(q additionalQuery, c additionalContext) (entities.LineItem, bool) {
	for _, l := range c.labor {
		if strings.Contains(Fold(l.Description), q.folded) {
			return additionalLabor(l, c.laborRate), true
		}
	}
	return entities.LineItem{}, false
}

// resolveLinePart searches the selected line's parts only. The item carries no
// category, so it is listed with the main parts whatever its catalog category.
func resolveLinePart(q additionalQuery, c additionalContext) (entities.LineItem, bool) {
	if c.line == nil {
		return entities.LineItem{}, false
	}
	for _, p := range c.parts {
		if p.LineID == c.line.ID && strings.Contains(Fold(p.Name), q.folded) {
			return entities.LineItem{
				ID:         p.ID,
				Name:       p.Name,
				Kind:       entities.ItemKindPart,
				Reference:  p.Reference,
				Quantity:   decimal.NewFromInt(1),
				Price:      p.Price,
				Total:      p.Price,
				Additional: true,
			}, true
		}
	}
	return entities.LineItem{}, false
}

func additionalLabor(l entities.LaborActivity, rate decimal.Decimal) entities.LineItem {
	total := l.Hours.Mul(rate)
	return entities.LineItem{
		ID:         l.ID,
		Name:       l.Description,
		Kind:       entities.ItemKindLabor,
		Hours:      l.Hours,
		Price:      total,
		Total:      total,
		Additional: true,
	}
}

// unknownAdditional keeps an unmatched name on the quote at zero cost.
func unknownAdditional(name string) entities.LineItem {
	return entities.LineItem{
		ID:         name,
		Name:       name,
		Kind:       entities.ItemKindUnknown,
		Price:      decimal.Zero,
		Total:      decimal.Zero,
		Additional: true,
	}
}

// ResolveAdditional runs the rule pipeline for one free-text name.
func ResolveAdditional(name string, line *entities.VehicleLine, labor []entities.LaborActivity, parts []entities.Part, laborRate decimal.Decimal) (entities.LineItem, string) {
	q := additionalQuery{raw: name, folded: Fold(name)}
	c := additionalContext{line: line, labor: labor, parts: parts, laborRate: laborRate}
	for _, rule := range AdditionalRules {
		if item, ok := rule.Resolve(q, c); ok {
			return item, rule.Name
		}
	}
	return unknownAdditional(name), "unknown"
}
