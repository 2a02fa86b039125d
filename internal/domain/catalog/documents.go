package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"cotizador_taller/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrMalformedDocument = errors.New("malformed catalog document")

// Stored documents are decoded through these loose shapes: every field is
// `any` so a number written where a string was expected (or the reverse)
// degrades one field instead of rejecting the whole collection.

type brandDoc struct {
	ID   any `json:"id"`
	Name any `json:"name"`
}

type lineDoc struct {
	ID              any `json:"id"`
	BrandID         any `json:"brandId"`
	Name            any `json:"name"`
	ImageURL        any `json:"imageUrl,omitempty"`
	ServiceInterval any `json:"serviceInterval,omitempty"`
}

type partDoc struct {
	ID        any `json:"id"`
	Reference any `json:"reference"`
	Name      any `json:"name"`
	Price     any `json:"price"`
	LineID    any `json:"lineId"`
	Category  any `json:"category,omitempty"`
}

type laborDoc struct {
	ID          any `json:"id"`
	Description any `json:"description"`
	Hours       any `json:"hours"`
}

type pricedDoc struct {
	ID    any `json:"id"`
	Name  any `json:"name"`
	Price any `json:"price"`
}

type recipePartDoc struct {
	ID       any `json:"id"`
	Quantity any `json:"quantity"`
}

type recipeDoc struct {
	LaborIDs  []any           `json:"laborIds"`
	SupplyIDs []any           `json:"supplyIds"`
	Parts     []recipePartDoc `json:"parts"`
}

type issueDoc struct {
	ID          any `json:"id"`
	Description any `json:"description"`
	Email       any `json:"email"`
	Date        any `json:"date"`
	Status      any `json:"status"`
}

func DecodeBrands(raw json.RawMessage) ([]entities.Brand, error) {
	docs, err := decodeList[brandDoc](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Brand, 0, len(docs))
	for _, d := range docs {
		out = append(out, entities.Brand{ID: Int(d.ID), Name: Str(d.Name)})
	}
	return out, nil
}

func EncodeBrands(brands []entities.Brand) (json.RawMessage, error) {
	docs := make([]brandDoc, 0, len(brands))
	for _, b := range brands {
		docs = append(docs, brandDoc{ID: b.ID, Name: b.Name})
	}
	return json.Marshal(docs)
}

func DecodeVehicleLines(raw json.RawMessage) ([]entities.VehicleLine, error) {
	docs, err := decodeList[lineDoc](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.VehicleLine, 0, len(docs))
	for _, d := range docs {
		out = append(out, entities.VehicleLine{
			ID:              Str(d.ID),
			BrandID:         Int(d.BrandID),
			Name:            Str(d.Name),
			ImageURL:        Str(d.ImageURL),
			ServiceInterval: int(Int(d.ServiceInterval)),
		})
	}
	return out, nil
}

func EncodeVehicleLines(lines []entities.VehicleLine) (json.RawMessage, error) {
	docs := make([]lineDoc, 0, len(lines))
	for _, l := range lines {
		d := lineDoc{ID: l.ID, BrandID: l.BrandID, Name: l.Name}
		if l.ImageURL != "" {
			d.ImageURL = l.ImageURL
		}
		if l.ServiceInterval > 0 {
			d.ServiceInterval = l.ServiceInterval
		}
		docs = append(docs, d)
	}
	return json.Marshal(docs)
}

func DecodeParts(raw json.RawMessage) ([]entities.Part, error) {
	docs, err := decodeList[partDoc](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Part, 0, len(docs))
	for _, d := range docs {
		category := entities.PartCategoryMain
		if entities.PartCategory(Str(d.Category)) == entities.PartCategoryAdditive {
			category = entities.PartCategoryAdditive
		}
		out = append(out, entities.Part{
			ID:        Str(d.ID),
			Reference: Str(d.Reference),
			Name:      Str(d.Name),
			Price:     Num(d.Price),
			LineID:    Str(d.LineID),
			Category:  category,
		})
	}
	return out, nil
}

func EncodeParts(parts []entities.Part) (json.RawMessage, error) {
	docs := make([]partDoc, 0, len(parts))
	for _, p := range parts {
		category := p.Category
		if category == "" {
			category = entities.PartCategoryMain
		}
		docs = append(docs, partDoc{
			ID:        p.ID,
			Reference: p.Reference,
			Name:      p.Name,
			Price:     Encode(p.Price),
			LineID:    p.LineID,
			Category:  string(category),
		})
	}
	return json.Marshal(docs)
}

func DecodeLaborActivities(raw json.RawMessage) ([]entities.LaborActivity, error) {
	docs, err := decodeList[laborDoc](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.LaborActivity, 0, len(docs))
	for _, d := range docs {
		out = append(out, entities.LaborActivity{ID: Str(d.ID), Description: Str(d.Description), Hours: Num(d.Hours)})
	}
	return out, nil
}

func EncodeLaborActivities(labor []entities.LaborActivity) (json.RawMessage, error) {
	docs := make([]laborDoc, 0, len(labor))
	for _, l := range labor {
		docs = append(docs, laborDoc{ID: l.ID, Description: l.Description, Hours: Encode(l.Hours)})
	}
	return json.Marshal(docs)
}

func DecodeSupplies(raw json.RawMessage) ([]entities.Supply, error) {
	docs, err := decodeList[pricedDoc](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Supply, 0, len(docs))
	for _, d := range docs {
		out = append(out, entities.Supply{ID: Str(d.ID), Name: Str(d.Name), Price: Num(d.Price)})
	}
	return out, nil
}

func EncodeSupplies(supplies []entities.Supply) (json.RawMessage, error) {
	docs := make([]pricedDoc, 0, len(supplies))
	for _, s := range supplies {
		docs = append(docs, pricedDoc{ID: s.ID, Name: s.Name, Price: Encode(s.Price)})
	}
	return json.Marshal(docs)
}

func DecodeCrossSellItems(raw json.RawMessage) ([]entities.CrossSellItem, error) {
	docs, err := decodeList[pricedDoc](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CrossSellItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, entities.CrossSellItem{ID: Str(d.ID), Name: Str(d.Name), Price: Num(d.Price)})
	}
	return out, nil
}

func EncodeCrossSellItems(items []entities.CrossSellItem) (json.RawMessage, error) {
	docs := make([]pricedDoc, 0, len(items))
	for _, c := range items {
		docs = append(docs, pricedDoc{ID: c.ID, Name: c.Name, Price: Encode(c.Price)})
	}
	return json.Marshal(docs)
}

// DecodeLaborRate accepts a bare number, a numeric string or null.
func DecodeLaborRate(raw json.RawMessage) (decimal.Decimal, error) {
	if isNull(raw) {
		return decimal.Zero, nil
	}
	var v any
	if err := unmarshalNumbers(raw, &v); err != nil {
		return decimal.Zero, ErrMalformedDocument
	}
	return Num(v), nil
}

func EncodeLaborRate(rate decimal.Decimal) (json.RawMessage, error) {
	return json.Marshal(Encode(rate))
}

// DecodeDefinitions reads the recipe map keyed by "{lineId}_{milestoneId}".
func DecodeDefinitions(raw json.RawMessage) (map[string]entities.RecipeDefinition, error) {
	out := map[string]entities.RecipeDefinition{}
	if isNull(raw) {
		return out, nil
	}
	var docs map[string]json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, ErrMalformedDocument
	}
	for key, elem := range docs {
		var d recipeDoc
		if err := unmarshalNumbers(elem, &d); err != nil {
			continue
		}
		out[key] = fromRecipeDoc(d)
	}
	return out, nil
}

func EncodeDefinitions(defs map[string]entities.RecipeDefinition) (json.RawMessage, error) {
	docs := make(map[string]recipeDoc, len(defs))
	for key, def := range defs {
		docs[key] = toRecipeDoc(def)
	}
	return json.Marshal(docs)
}

func DecodeIssues(raw json.RawMessage) ([]entities.IssueReport, error) {
	docs, err := decodeList[issueDoc](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.IssueReport, 0, len(docs))
	for _, d := range docs {
		status := entities.IssueStatus(Str(d.Status))
		if status == "" {
			status = entities.IssueStatusOpen
		}
		out = append(out, entities.IssueReport{
			ID:          Str(d.ID),
			Description: Str(d.Description),
			Email:       Str(d.Email),
			Date:        parseDate(Str(d.Date)),
			Status:      status,
		})
	}
	return out, nil
}

func EncodeIssues(issues []entities.IssueReport) (json.RawMessage, error) {
	docs := make([]issueDoc, 0, len(issues))
	for _, i := range issues {
		docs = append(docs, issueDoc{
			ID:          i.ID,
			Description: i.Description,
			Email:       i.Email,
			Date:        i.Date.UTC().Format(time.RFC3339Nano),
			Status:      string(i.Status),
		})
	}
	return json.Marshal(docs)
}

func fromRecipeDoc(d recipeDoc) entities.RecipeDefinition {
	def := entities.EmptyRecipe()
	for _, id := range d.LaborIDs {
		if s := Str(id); s != "" {
			def.LaborIDs = append(def.LaborIDs, s)
		}
	}
	for _, id := range d.SupplyIDs {
		if s := Str(id); s != "" {
			def.SupplyIDs = append(def.SupplyIDs, s)
		}
	}
	for _, p := range d.Parts {
		def.Parts = append(def.Parts, entities.RecipePart{ID: Str(p.ID), Quantity: Num(p.Quantity)})
	}
	return def
}

func toRecipeDoc(def entities.RecipeDefinition) recipeDoc {
	d := recipeDoc{LaborIDs: []any{}, SupplyIDs: []any{}, Parts: []recipePartDoc{}}
	for _, id := range def.LaborIDs {
		d.LaborIDs = append(d.LaborIDs, id)
	}
	for _, id := range def.SupplyIDs {
		d.SupplyIDs = append(d.SupplyIDs, id)
	}
	for _, p := range def.Parts {
		d.Parts = append(d.Parts, recipePartDoc{ID: p.ID, Quantity: Encode(p.Quantity)})
	}
	return d
}

// decodeList accepts a JSON array, null, or an object whose values form the
// list (sparse arrays come back from some stores as index-keyed objects).
// Elements that cannot be decoded are skipped.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	if isNull(raw) {
		return []T{}, nil
	}

	var elems []json.RawMessage
	trimmed := bytes.TrimSpace(raw)
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, ErrMalformedDocument
		}
	case '{':
		var keyed map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return nil, ErrMalformedDocument
		}
		keys := make([]string, 0, len(keyed))
		for k := range keyed {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return indexLess(keys[i], keys[j]) })
		for _, k := range keys {
			elems = append(elems, keyed[k])
		}
	default:
		return nil, ErrMalformedDocument
	}

	out := make([]T, 0, len(elems))
	for _, elem := range elems {
		if isNull(elem) {
			continue
		}
		var v T
		if err := unmarshalNumbers(elem, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func unmarshalNumbers(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

func isNull(raw []byte) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

func indexLess(a, b string) bool {
	ai, errA := strconv.Atoi(a)
	bi, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return ai < bi
	}
	return a < b
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	return time.Time{}
}
