package usecase

import (
	"context"
	"errors"
	"testing"

	"cotizador_taller/internal/domain/entities"
	mock_interfaces "cotizador_taller/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, _ := newDocStore(t, ctrl, fullCatalog())
	metrics := mock_interfaces.NewMockIQuoteMetrics(ctrl)
	metrics.EXPECT().QuoteResolved(entities.MilestoneTypeMileage, gomock.Len(0)).Times(1)

	uc := NewQuoteUseCase(store, testMilestones(), metrics)
	view, err := uc.Quote(context.Background(), QuoteRequest{LineID: "l_hb20k", MilestoneID: "m2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	totals := view.Result.Totals
	if !totals.Parts.Equal(decimal.NewFromInt(120000)) {
		t.Fatalf("expected parts 120000, got %s", totals.Parts)
	}
	if !totals.Labor.Equal(decimal.NewFromInt(42500)) {
		t.Fatalf("expected labor 42500, got %s", totals.Labor)
	}
	if !totals.Total.Equal(decimal.NewFromInt(223125)) {
		t.Fatalf("expected total 223125, got %s", totals.Total)
	}
	if view.ServiceType != entities.ServiceTypeParticular {
		t.Fatalf("expected default service type, got %s", view.ServiceType)
	}
	if view.VehicleImageURL != "/img/hb20.png" {
		t.Fatalf("unexpected image %q", view.VehicleImageURL)
	}
}

func TestQuoteUseCase_SatelliteSharesMasterRecipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, _ := newDocStore(t, ctrl, fullCatalog())
	uc := NewQuoteUseCase(store, testMilestones(), nil)

	view, err := uc.Quote(context.Background(), QuoteRequest{LineID: "l_hb20k", MilestoneID: "m5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.Result.Totals.Total.Equal(decimal.NewFromInt(223125)) {
		t.Fatalf("expected 30k to price like 10k, got %s", view.Result.Totals.Total)
	}
}

func TestQuoteUseCase_EmptyQuotes(t *testing.T) {
	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewQuoteUseCase(newFailingStore(ctrl), testMilestones(), nil)

		view, err := uc.Quote(context.Background(), QuoteRequest{LineID: "l_hb20k", MilestoneID: "m2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !view.Result.Totals.Total.IsZero() || view.Line != nil {
			t.Fatalf("expected empty quote, got %+v", view.Result.Totals)
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newDocStore(t, ctrl, fullCatalog())
		uc := NewQuoteUseCase(store, testMilestones(), nil)

		view, err := uc.Quote(context.Background(), QuoteRequest{LineID: "l_gone", MilestoneID: "m2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Result.MergedParts) != 0 || !view.Result.Totals.Total.IsZero() {
			t.Fatalf("expected empty quote")
		}
	})
}

func TestQuoteUseCase_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, _ := newDocStore(t, ctrl, fullCatalog())
	uc := NewQuoteUseCase(store, testMilestones(), nil)
	ctx := context.Background()

	if _, err := uc.Quote(ctx, QuoteRequest{MilestoneID: "m2"}); !errors.Is(err, ErrInvalidLineID) {
		t.Fatalf("expected ErrInvalidLineID, got %v", err)
	}
	if _, err := uc.Quote(ctx, QuoteRequest{LineID: "l_hb20k"}); !errors.Is(err, ErrInvalidMilestoneID) {
		t.Fatalf("expected ErrInvalidMilestoneID, got %v", err)
	}
	if _, err := uc.Quote(ctx, QuoteRequest{LineID: "l_hb20k", MilestoneID: "m2", ServiceType: "bus"}); !errors.Is(err, ErrInvalidServiceType) {
		t.Fatalf("expected ErrInvalidServiceType, got %v", err)
	}
}

func TestQuoteUseCase_AdditionalsAndCrossSell(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, _ := newDocStore(t, ctrl, fullCatalog())
	uc := NewQuoteUseCase(store, testMilestones(), nil)

	view, err := uc.Quote(context.Background(), QuoteRequest{
		LineID:       "l_hb20k",
		MilestoneID:  "m2",
		Additionals:  []string{"Alineación y Balanceo", " ", "Alineación y Balanceo"},
		CrossSellIDs: []string{"cs1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Additionals) != 1 {
		t.Fatalf("expected deduplicated additionals, got %v", view.Additionals)
	}
	// 42500 recipe labor + 85000 alignment; 25000 supplies + 40000 cross-sell.
	if !view.Result.Totals.Labor.Equal(decimal.NewFromInt(127500)) {
		t.Fatalf("expected labor 127500, got %s", view.Result.Totals.Labor)
	}
	if !view.Result.Totals.Supplies.Equal(decimal.NewFromInt(65000)) {
		t.Fatalf("expected supplies 65000, got %s", view.Result.Totals.Supplies)
	}
}

func TestQuoteUseCase_AvailableMilestones(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, _ := newDocStore(t, ctrl, fullCatalog())
	uc := NewQuoteUseCase(store, testMilestones(), nil)
	ctx := context.Background()

	has := func(ms []entities.Milestone, id string) bool {
		for _, m := range ms {
			if m.ID == id {
				return true
			}
		}
		return false
	}

	taxi, err := uc.AvailableMilestones(ctx, "l_i10", entities.ServiceTypeTaxi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !has(taxi, "m_15k") || !has(taxi, "m1") {
		t.Fatalf("fleet cadence should include 5k steps, got %v", taxi)
	}
	if taxi[len(taxi)-1].ID != entities.CustomMilestoneID {
		t.Fatalf("custom must come last")
	}

	private, err := uc.AvailableMilestones(ctx, "l_i10", entities.ServiceTypeParticular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if has(private, "m_15k") || has(private, "m1") {
		t.Fatalf("private cadence should skip 5k steps, got %v", private)
	}

	if _, err := uc.AvailableMilestones(ctx, "l_nope", ""); !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}
