package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestVehicleUseCase_CreateBrand(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewVehicleUseCase(nil)
		_, err := uc.CreateBrand(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidBrandName) {
			t.Fatalf("expected ErrInvalidBrandName, got %v", err)
		}
	})

	t.Run("ids stay increasing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newDocStore(t, ctrl, map[catalog.Path]string{catalog.PathBrands: `[{"id":9999999999999,"name":"Hyundai"}]`})
		uc := NewVehicleUseCase(store)
		uc.now = func() time.Time { return time.UnixMilli(1000) }

		b, err := uc.CreateBrand(context.Background(), " Kia ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != 10000000000000 || b.Name != "Kia" {
			t.Fatalf("unexpected brand: %+v", b)
		}
		brands, _ := uc.ListBrands(context.Background())
		if len(brands) != 2 {
			t.Fatalf("expected 2 brands, got %d", len(brands))
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := newFailingStore(ctrl)
		uc := NewVehicleUseCase(store)

		_, err := uc.CreateBrand(context.Background(), "Kia")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestVehicleUseCase_UpdateBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, _ := newDocStore(t, ctrl, fullCatalog())
	uc := NewVehicleUseCase(store)

	if _, err := uc.UpdateBrand(context.Background(), 42, "X"); !errors.Is(err, ErrBrandNotFound) {
		t.Fatalf("expected ErrBrandNotFound, got %v", err)
	}
	b, err := uc.UpdateBrand(context.Background(), 1, "Hyundai Motor")
	if err != nil || b.Name != "Hyundai Motor" {
		t.Fatalf("unexpected result: %+v %v", b, err)
	}
}

func TestVehicleUseCase_Lines(t *testing.T) {
	t.Run("list by brand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newDocStore(t, ctrl, fullCatalog())
		uc := NewVehicleUseCase(store)

		lines, err := uc.ListLines(context.Background(), 1)
		if err != nil || len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d (%v)", len(lines), err)
		}
		lines, _ = uc.ListLines(context.Background(), 2)
		if len(lines) != 0 {
			t.Fatalf("expected no lines for brand 2")
		}
	})

	t.Run("create validates brand and interval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newDocStore(t, ctrl, fullCatalog())
		uc := NewVehicleUseCase(store)

		if _, err := uc.CreateLine(context.Background(), entities.VehicleLine{BrandID: 1, Name: "KONA", ServiceInterval: 7000}); !errors.Is(err, ErrInvalidServiceInterval) {
			t.Fatalf("expected ErrInvalidServiceInterval, got %v", err)
		}
		if _, err := uc.CreateLine(context.Background(), entities.VehicleLine{BrandID: 5, Name: "KONA"}); !errors.Is(err, ErrBrandNotFound) {
			t.Fatalf("expected ErrBrandNotFound, got %v", err)
		}
		line, err := uc.CreateLine(context.Background(), entities.VehicleLine{BrandID: 1, Name: " KONA "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.ID == "" || line.Name != "KONA" || line.ServiceInterval != 10000 {
			t.Fatalf("unexpected line: %+v", line)
		}
	})

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newDocStore(t, ctrl, fullCatalog())
		uc := NewVehicleUseCase(store)

		interval := 5000
		line, err := uc.UpdateLine(context.Background(), "l_venue", LineUpdate{ServiceInterval: &interval})
		if err != nil || line.ServiceInterval != 5000 || line.Name != "VENUE" {
			t.Fatalf("unexpected result: %+v %v", line, err)
		}
		if _, err := uc.UpdateLine(context.Background(), "nope", LineUpdate{}); !errors.Is(err, ErrLineNotFound) {
			t.Fatalf("expected ErrLineNotFound, got %v", err)
		}
	})

	t.Run("delete cascades to parts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, ds := newDocStore(t, ctrl, fullCatalog())
		uc := NewVehicleUseCase(store)

		if err := uc.DeleteLine(context.Background(), "l_hb20k"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parts, _ := catalog.DecodeParts(ds.get(catalog.PathParts))
		for _, p := range parts {
			if p.LineID == "l_hb20k" {
				t.Fatalf("part %s of deleted line survived", p.ID)
			}
		}
		if len(parts) != 2 {
			t.Fatalf("expected 2 remaining parts, got %d", len(parts))
		}
		if err := uc.DeleteLine(context.Background(), "l_hb20k"); !errors.Is(err, ErrLineNotFound) {
			t.Fatalf("expected ErrLineNotFound, got %v", err)
		}
	})
}
