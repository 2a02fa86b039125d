package usecase

import (
	"context"
	"errors"
	"strings"

	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidItemID      = errors.New("invalid item id")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidHours       = errors.New("invalid hours")
	ErrInvalidLaborRate   = errors.New("invalid labor rate")
	ErrLaborNotFound      = errors.New("labor activity not found")
	ErrSupplyNotFound     = errors.New("supply not found")
	ErrCrossSellNotFound  = errors.New("cross-sell item not found")
)

// LaborUpdate carries the editable fields of a labor activity.
type LaborUpdate struct {
	Description *string
	Hours       *decimal.Decimal
}

// PricedItemUpdate carries the editable fields of supplies and cross-sell items.
type PricedItemUpdate struct {
	Name  *string
	Price *decimal.Decimal
}

// IServiceCatalogUseCase manages labor, supplies, cross-sell items and the
// global labor rate.
type IServiceCatalogUseCase interface {
	ListLabor(ctx context.Context) ([]entities.LaborActivity, error)
	CreateLabor(ctx context.Context, description string, hours decimal.Decimal) (entities.LaborActivity, error)
	UpdateLabor(ctx context.Context, id string, upd LaborUpdate) (entities.LaborActivity, error)
	DeleteLabor(ctx context.Context, id string) error

	ListSupplies(ctx context.Context) ([]entities.Supply, error)
	UpdateSupply(ctx context.Context, id string, upd PricedItemUpdate) (entities.Supply, error)

	ListCrossSell(ctx context.Context) ([]entities.CrossSellItem, error)
	CreateCrossSell(ctx context.Context, name string, price decimal.Decimal) (entities.CrossSellItem, error)
	UpdateCrossSell(ctx context.Context, id string, upd PricedItemUpdate) (entities.CrossSellItem, error)
	DeleteCrossSell(ctx context.Context, id string) error

	GetLaborRate(ctx context.Context) (decimal.Decimal, error)
	SetLaborRate(ctx context.Context, rate decimal.Decimal) (decimal.Decimal, error)
}

type ServiceCatalogUseCase struct {
	catalog catalogAccess
}

var _ IServiceCatalogUseCase = (*ServiceCatalogUseCase)(nil)

func NewServiceCatalogUseCase(store interfaces.ICatalogStore) *ServiceCatalogUseCase {
	return &ServiceCatalogUseCase{catalog: catalogAccess{store: store}}
}

func (u *ServiceCatalogUseCase) ListLabor(ctx context.Context) ([]entities.LaborActivity, error) {
	return u.catalog.labor(ctx)
}

func (u *ServiceCatalogUseCase) CreateLabor(ctx context.Context, description string, hours decimal.Decimal) (entities.LaborActivity, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.LaborActivity{}, ErrInvalidDescription
	}
	if hours.IsNegative() {
		return entities.LaborActivity{}, ErrInvalidHours
	}
	labor, err := u.catalog.labor(ctx)
	if err != nil {
		return entities.LaborActivity{}, err
	}
	activity := entities.LaborActivity{ID: "la_" + uuid.NewString(), Description: description, Hours: hours}
	if err := u.catalog.saveLabor(ctx, append(labor, activity)); err != nil {
		return entities.LaborActivity{}, err
	}
	log.Info().Str("labor_id", activity.ID).Msg("[labor][usecase] labor activity created")
	return activity, nil
}

func (u *ServiceCatalogUseCase) UpdateLabor(ctx context.Context, id string, upd LaborUpdate) (entities.LaborActivity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LaborActivity{}, ErrInvalidItemID
	}
	if upd.Description != nil && strings.TrimSpace(*upd.Description) == "" {
		return entities.LaborActivity{}, ErrInvalidDescription
	}
	if upd.Hours != nil && upd.Hours.IsNegative() {
		return entities.LaborActivity{}, ErrInvalidHours
	}

	labor, err := u.catalog.labor(ctx)
	if err != nil {
		return entities.LaborActivity{}, err
	}
	for i := range labor {
		if labor[i].ID != id {
			continue
		}
		if upd.Description != nil {
			labor[i].Description = strings.TrimSpace(*upd.Description)
		}
		if upd.Hours != nil {
			labor[i].Hours = *upd.Hours
		}
		if err := u.catalog.saveLabor(ctx, labor); err != nil {
			return entities.LaborActivity{}, err
		}
		return labor[i], nil
	}
	return entities.LaborActivity{}, ErrLaborNotFound
}

// DeleteLabor leaves recipes untouched; they drop the id at resolution time.
func (u *ServiceCatalogUseCase) DeleteLabor(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidItemID
	}
	labor, err := u.catalog.labor(ctx)
	if err != nil {
		return err
	}
	kept := make([]entities.LaborActivity, 0, len(labor))
	for _, l := range labor {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(labor) {
		return ErrLaborNotFound
	}
	return u.catalog.saveLabor(ctx, kept)
}

func (u *ServiceCatalogUseCase) ListSupplies(ctx context.Context) ([]entities.Supply, error) {
	return u.catalog.supplies(ctx)
}

func (u *ServiceCatalogUseCase) UpdateSupply(ctx context.Context, id string, upd PricedItemUpdate) (entities.Supply, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supply{}, ErrInvalidItemID
	}
	if err := validatePricedUpdate(upd); err != nil {
		return entities.Supply{}, err
	}
	supplies, err := u.catalog.supplies(ctx)
	if err != nil {
		return entities.Supply{}, err
	}
	for i := range supplies {
		if supplies[i].ID != id {
			continue
		}
		if upd.Name != nil {
			supplies[i].Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Price != nil {
			supplies[i].Price = *upd.Price
		}
		if err := u.catalog.saveSupplies(ctx, supplies); err != nil {
			return entities.Supply{}, err
		}
		return supplies[i], nil
	}
	return entities.Supply{}, ErrSupplyNotFound
}

func (u *ServiceCatalogUseCase) ListCrossSell(ctx context.Context) ([]entities.CrossSellItem, error) {
	return u.catalog.crossSell(ctx)
}

func (u *ServiceCatalogUseCase) CreateCrossSell(ctx context.Context, name string, price decimal.Decimal) (entities.CrossSellItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.CrossSellItem{}, ErrInvalidDescription
	}
	if price.IsNegative() {
		return entities.CrossSellItem{}, ErrInvalidPrice
	}
	items, err := u.catalog.crossSell(ctx)
	if err != nil {
		return entities.CrossSellItem{}, err
	}
	item := entities.CrossSellItem{ID: "cs_" + uuid.NewString(), Name: name, Price: price}
	if err := u.catalog.saveCrossSell(ctx, append(items, item)); err != nil {
		return entities.CrossSellItem{}, err
	}
	return item, nil
}

func (u *ServiceCatalogUseCase) UpdateCrossSell(ctx context.Context, id string, upd PricedItemUpdate) (entities.CrossSellItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CrossSellItem{}, ErrInvalidItemID
	}
	if err := validatePricedUpdate(upd); err != nil {
		return entities.CrossSellItem{}, err
	}
	items, err := u.catalog.crossSell(ctx)
	if err != nil {
		return entities.CrossSellItem{}, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if upd.Name != nil {
			items[i].Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Price != nil {
			items[i].Price = *upd.Price
		}
		if err := u.catalog.saveCrossSell(ctx, items); err != nil {
			return entities.CrossSellItem{}, err
		}
		return items[i], nil
	}
	return entities.CrossSellItem{}, ErrCrossSellNotFound
}

func (u *ServiceCatalogUseCase) DeleteCrossSell(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidItemID
	}
	items, err := u.catalog.crossSell(ctx)
	if err != nil {
		return err
	}
	kept := make([]entities.CrossSellItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return ErrCrossSellNotFound
	}
	return u.catalog.saveCrossSell(ctx, kept)
}

func (u *ServiceCatalogUseCase) GetLaborRate(ctx context.Context) (decimal.Decimal, error) {
	return u.catalog.laborRate(ctx)
}

func (u *ServiceCatalogUseCase) SetLaborRate(ctx context.Context, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsNegative() {
		return decimal.Zero, ErrInvalidLaborRate
	}
	if err := u.catalog.saveLaborRate(ctx, rate); err != nil {
		return decimal.Zero, err
	}
	log.Info().Str("rate", rate.String()).Msg("[labor][usecase] global labor rate updated")
	return rate, nil
}

func validatePricedUpdate(upd PricedItemUpdate) error {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return ErrInvalidDescription
	}
	if upd.Price != nil && upd.Price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}
