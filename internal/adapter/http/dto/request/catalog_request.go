package request

import (
	"strings"

	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase"

	"github.com/shopspring/decimal"
)

type BrandRequest struct {
	Name string `json:"name" binding:"required"`
}

type LineRequest struct {
	BrandID         *int64 `json:"brandId" binding:"required"`
	Name            string `json:"name" binding:"required"`
	ImageURL        string `json:"imageUrl"`
	ServiceInterval int    `json:"serviceInterval" binding:"omitempty,oneof=5000 10000"`
}

func (r LineRequest) ToEntity() entities.VehicleLine {
	line := entities.VehicleLine{
		Name:            strings.TrimSpace(r.Name),
		ImageURL:        strings.TrimSpace(r.ImageURL),
		ServiceInterval: r.ServiceInterval,
	}
	if r.BrandID != nil {
		line.BrandID = *r.BrandID
	}
	return line
}

// LineUpdateRequest only changes the fields present in the body.
type LineUpdateRequest struct {
	BrandID         *int64  `json:"brandId"`
	Name            *string `json:"name" binding:"omitempty,min=1"`
	ImageURL        *string `json:"imageUrl"`
	ServiceInterval *int    `json:"serviceInterval" binding:"omitempty,oneof=5000 10000"`
}

func (r LineUpdateRequest) ToUpdate() usecase.LineUpdate {
	return usecase.LineUpdate{
		BrandID:         r.BrandID,
		Name:            r.Name,
		ImageURL:        r.ImageURL,
		ServiceInterval: r.ServiceInterval,
	}
}

type PartRequest struct {
	Reference string           `json:"reference"`
	Name      string           `json:"name" binding:"required"`
	Price     *decimal.Decimal `json:"price" binding:"required"`
	LineID    string           `json:"lineId" binding:"required"`
	Category  string           `json:"category" binding:"omitempty,oneof=main additive"`
}

func (r PartRequest) ToEntity() entities.Part {
	p := entities.Part{
		Reference: strings.TrimSpace(r.Reference),
		Name:      strings.TrimSpace(r.Name),
		LineID:    strings.TrimSpace(r.LineID),
		Category:  entities.PartCategory(r.Category),
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	return p
}

type PartUpdateRequest struct {
	Reference *string          `json:"reference"`
	Name      *string          `json:"name" binding:"omitempty,min=1"`
	Price     *decimal.Decimal `json:"price"`
	Category  *string          `json:"category" binding:"omitempty,oneof=main additive"`
}

func (r PartUpdateRequest) ToUpdate() usecase.PartUpdate {
	upd := usecase.PartUpdate{Reference: r.Reference, Name: r.Name, Price: r.Price}
	if r.Category != nil {
		c := entities.PartCategory(*r.Category)
		upd.Category = &c
	}
	return upd
}

type LaborRequest struct {
	Description string           `json:"description" binding:"required"`
	Hours       *decimal.Decimal `json:"hours" binding:"required"`
}

type LaborUpdateRequest struct {
	Description *string          `json:"description" binding:"omitempty,min=1"`
	Hours       *decimal.Decimal `json:"hours"`
}

func (r LaborUpdateRequest) ToUpdate() usecase.LaborUpdate {
	return usecase.LaborUpdate{Description: r.Description, Hours: r.Hours}
}

// PricedItemRequest creates a cross-sell item.
type PricedItemRequest struct {
	Name  string           `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price" binding:"required"`
}

// PricedItemUpdateRequest edits a supply or a cross-sell item.
type PricedItemUpdateRequest struct {
	Name  *string          `json:"name" binding:"omitempty,min=1"`
	Price *decimal.Decimal `json:"price"`
}

func (r PricedItemUpdateRequest) ToUpdate() usecase.PricedItemUpdate {
	return usecase.PricedItemUpdate{Name: r.Name, Price: r.Price}
}

type LaborRateRequest struct {
	Rate *decimal.Decimal `json:"rate" binding:"required"`
}
