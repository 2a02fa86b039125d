package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/domain/entities"
	mock_interfaces "cotizador_taller/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// docStore backs a MockICatalogStore with a map so multi-step flows read
// back what they wrote.
type docStore struct {
	mu   sync.Mutex
	docs map[catalog.Path]json.RawMessage
	// saves counts writes per path.
	saves map[catalog.Path]int
}

func newDocStore(t *testing.T, ctrl *gomock.Controller, docs map[catalog.Path]string) (*mock_interfaces.MockICatalogStore, *docStore) {
	t.Helper()
	ds := &docStore{docs: map[catalog.Path]json.RawMessage{}, saves: map[catalog.Path]int{}}
	for p, v := range docs {
		ds.docs[p] = json.RawMessage(v)
	}

	store := mock_interfaces.NewMockICatalogStore(ctrl)
	store.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p catalog.Path, fallback json.RawMessage) (json.RawMessage, error) {
			ds.mu.Lock()
			defer ds.mu.Unlock()
			if v, ok := ds.docs[p]; ok {
				return v, nil
			}
			return fallback, nil
		},
	).AnyTimes()
	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p catalog.Path, v json.RawMessage) error {
			ds.mu.Lock()
			defer ds.mu.Unlock()
			ds.docs[p] = v
			ds.saves[p]++
			return nil
		},
	).AnyTimes()
	return store, ds
}

func (d *docStore) get(p catalog.Path) json.RawMessage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.docs[p]
}

func (d *docStore) saveCount(p catalog.Path) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saves[p]
}

const (
	brandsDoc = `[{"id":1,"name":"Hyundai"}]`
	linesDoc  = `[
		{"id":"l_hb20k","brandId":1,"name":"HB20","imageUrl":"/img/hb20.png","serviceInterval":10000},
		{"id":"l_venue","brandId":1,"name":"VENUE","serviceInterval":10000},
		{"id":"l_i10","brandId":1,"name":"GRAN I10","serviceInterval":10000}
	]`
	partsDoc = `[
		{"id":"pX","reference":"26300-35505","name":"Filtro de aceite","price":30000,"lineId":"l_hb20k","category":"main"},
		{"id":"pV","reference":"26300-35505","name":"Filtro de aceite","price":31000,"lineId":"l_venue","category":"main"},
		{"id":"pO","reference":"26300-35505","name":"Filtro de aceite","price":29000,"lineId":"l_deleted","category":"main"},
		{"id":"pA","reference":"00232-19054","name":"Aditivo","price":18000,"lineId":"l_hb20k","category":"additive"}
	]`
	laborDoc = `[
		{"id":"la1","description":"Cambio de Aceite y Filtros","hours":0.5},
		{"id":"la3","description":"Alineación y Balanceo","hours":1.0}
	]`
	suppliesDoc    = `[{"id":"s1","name":"Insumos / Materiales","price":25000}]`
	crossSellDoc   = `[{"id":"cs1","name":"Lavado de motor","price":40000}]`
	definitionsDoc = `{"l_hb20k_m2":{"laborIds":["la1"],"supplyIds":["s1"],"parts":[{"id":"pX","quantity":4}]}}`
)

func fullCatalog() map[catalog.Path]string {
	return map[catalog.Path]string{
		catalog.PathBrands:                 brandsDoc,
		catalog.PathVehicleLines:           linesDoc,
		catalog.PathParts:                  partsDoc,
		catalog.PathLaborActivities:        laborDoc,
		catalog.PathSupplies:               suppliesDoc,
		catalog.PathCrossSellItems:         crossSellDoc,
		catalog.PathGlobalLaborRate:        `85000`,
		catalog.PathMaintenanceDefinitions: definitionsDoc,
	}
}

func testMilestones() []entities.Milestone {
	return []entities.Milestone{
		{ID: "m1", Name: "Mantenimiento 5.000 KM", Type: entities.MilestoneTypeMileage, Interval: 5000},
		{ID: "m2", Name: "Mantenimiento 10.000 KM", Type: entities.MilestoneTypeMileage, Interval: 10000},
		{ID: "m_15k", Name: "Mantenimiento 15.000 KM", Type: entities.MilestoneTypeMileage, Interval: 15000},
		{ID: "m3", Name: "Mantenimiento 20.000 KM", Type: entities.MilestoneTypeMileage, Interval: 20000},
		{ID: "m5", Name: "Mantenimiento 30.000 KM", Type: entities.MilestoneTypeMileage, Interval: 30000},
		{ID: "m9", Name: "Mantenimiento 70.000 KM", Type: entities.MilestoneTypeMileage, Interval: 70000},
		{ID: "m_oil", Name: "Cambio de Aceite", Type: entities.MilestoneTypeService, Interval: 0},
	}
}

// newFailingStore fails every read with "db".
func newFailingStore(ctrl *gomock.Controller) *mock_interfaces.MockICatalogStore {
	store := mock_interfaces.NewMockICatalogStore(ctrl)
	store.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db")).AnyTimes()
	return store
}
