package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrStoreNotConfigured = errors.New("catalog store not configured")

// catalogAccess reads and writes typed collections. Every write replaces the
// whole collection.
type catalogAccess struct {
	store interfaces.ICatalogStore
}

func (a catalogAccess) load(ctx context.Context, path catalog.Path) (json.RawMessage, error) {
	if a.store == nil {
		return nil, ErrStoreNotConfigured
	}
	return a.store.Load(ctx, path, nil)
}

func (a catalogAccess) save(ctx context.Context, path catalog.Path, raw json.RawMessage, err error) error {
	if err != nil {
		return err
	}
	if a.store == nil {
		return ErrStoreNotConfigured
	}
	return a.store.Save(ctx, path, raw)
}

func (a catalogAccess) brands(ctx context.Context) ([]entities.Brand, error) {
	raw, err := a.load(ctx, catalog.PathBrands)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeBrands(raw)
}

func (a catalogAccess) saveBrands(ctx context.Context, v []entities.Brand) error {
	raw, err := catalog.EncodeBrands(v)
	return a.save(ctx, catalog.PathBrands, raw, err)
}

func (a catalogAccess) lines(ctx context.Context) ([]entities.VehicleLine, error) {
	raw, err := a.load(ctx, catalog.PathVehicleLines)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeVehicleLines(raw)
}

func (a catalogAccess) saveLines(ctx context.Context, v []entities.VehicleLine) error {
	raw, err := catalog.EncodeVehicleLines(v)
	return a.save(ctx, catalog.PathVehicleLines, raw, err)
}

func (a catalogAccess) parts(ctx context.Context) ([]entities.Part, error) {
	raw, err := a.load(ctx, catalog.PathParts)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeParts(raw)
}

func (a catalogAccess) saveParts(ctx context.Context, v []entities.Part) error {
	raw, err := catalog.EncodeParts(v)
	return a.save(ctx, catalog.PathParts, raw, err)
}

func (a catalogAccess) labor(ctx context.Context) ([]entities.LaborActivity, error) {
	raw, err := a.load(ctx, catalog.PathLaborActivities)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeLaborActivities(raw)
}

func (a catalogAccess) saveLabor(ctx context.Context, v []entities.LaborActivity) error {
	raw, err := catalog.EncodeLaborActivities(v)
	return a.save(ctx, catalog.PathLaborActivities, raw, err)
}

func (a catalogAccess) supplies(ctx context.Context) ([]entities.Supply, error) {
	raw, err := a.load(ctx, catalog.PathSupplies)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeSupplies(raw)
}

func (a catalogAccess) saveSupplies(ctx context.Context, v []entities.Supply) error {
	raw, err := catalog.EncodeSupplies(v)
	return a.save(ctx, catalog.PathSupplies, raw, err)
}

func (a catalogAccess) crossSell(ctx context.Context) ([]entities.CrossSellItem, error) {
	raw, err := a.load(ctx, catalog.PathCrossSellItems)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeCrossSellItems(raw)
}

func (a catalogAccess) saveCrossSell(ctx context.Context, v []entities.CrossSellItem) error {
	raw, err := catalog.EncodeCrossSellItems(v)
	return a.save(ctx, catalog.PathCrossSellItems, raw, err)
}

func (a catalogAccess) laborRate(ctx context.Context) (decimal.Decimal, error) {
	raw, err := a.load(ctx, catalog.PathGlobalLaborRate)
	if err != nil {
		return decimal.Zero, err
	}
	return catalog.DecodeLaborRate(raw)
}

func (a catalogAccess) saveLaborRate(ctx context.Context, rate decimal.Decimal) error {
	raw, err := catalog.EncodeLaborRate(rate)
	return a.save(ctx, catalog.PathGlobalLaborRate, raw, err)
}

func (a catalogAccess) definitions(ctx context.Context) (map[string]entities.RecipeDefinition, error) {
	raw, err := a.load(ctx, catalog.PathMaintenanceDefinitions)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeDefinitions(raw)
}

func (a catalogAccess) saveDefinitions(ctx context.Context, v map[string]entities.RecipeDefinition) error {
	raw, err := catalog.EncodeDefinitions(v)
	return a.save(ctx, catalog.PathMaintenanceDefinitions, raw, err)
}

func (a catalogAccess) issues(ctx context.Context) ([]entities.IssueReport, error) {
	raw, err := a.load(ctx, catalog.PathIssues)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeIssues(raw)
}

func (a catalogAccess) saveIssues(ctx context.Context, v []entities.IssueReport) error {
	raw, err := catalog.EncodeIssues(v)
	return a.save(ctx, catalog.PathIssues, raw, err)
}

// snapshot loads every pricing collection. A collection that cannot be read
// is treated as empty so a quote can still be produced.
func (a catalogAccess) snapshot(ctx context.Context) catalog.Snapshot {
	docs := make(map[catalog.Path]json.RawMessage, len(catalog.PricingPaths)+1)
	for _, p := range append([]catalog.Path{catalog.PathBrands}, catalog.PricingPaths...) {
		raw, err := a.load(ctx, p)
		if err != nil {
			log.Warn().Err(err).Str("path", p.String()).Msg("[catalog][usecase] load failed, using empty collection")
			continue
		}
		docs[p] = raw
	}
	snap, failed := catalog.DecodeSnapshot(docs)
	for _, p := range failed {
		log.Warn().Str("path", p.String()).Msg("[catalog][usecase] malformed collection, using empty collection")
	}
	return snap
}
