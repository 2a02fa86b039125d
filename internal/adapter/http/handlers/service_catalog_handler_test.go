package handlers

import (
	"net/http"
	"strings"
	"testing"

	"cotizador_taller/internal/adapter/http/handlers/mocks"
	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newServiceCatalogRouter(uc usecase.IServiceCatalogUseCase) *gin.Engine {
	h := NewServiceCatalogHandler(uc)
	r := gin.New()
	r.GET("/v1/admin/labor", h.ListLabor)
	r.POST("/v1/admin/labor", h.CreateLabor)
	r.PUT("/v1/admin/labor/:labor_id", h.UpdateLabor)
	r.DELETE("/v1/admin/labor/:labor_id", h.DeleteLabor)
	r.GET("/v1/admin/supplies", h.ListSupplies)
	r.PUT("/v1/admin/supplies/:supply_id", h.UpdateSupply)
	r.POST("/v1/admin/cross-sell", h.CreateCrossSell)
	r.PUT("/v1/admin/cross-sell/:item_id", h.UpdateCrossSell)
	r.DELETE("/v1/admin/cross-sell/:item_id", h.DeleteCrossSell)
	r.GET("/v1/admin/labor-rate", h.GetLaborRate)
	r.PUT("/v1/admin/labor-rate", h.SetLaborRate)
	return r
}

func TestServiceCatalogHandler_Labor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list renders hours as numbers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCatalogUseCase(ctrl)
		uc.EXPECT().ListLabor(gomock.Any()).Return([]entities.LaborActivity{
			{ID: "la1", Description: "Rutina de mantenimiento", Hours: decimal.RequireFromString("0.5")},
		}, nil)

		w := performRequest(newServiceCatalogRouter(uc), http.MethodGet, "/v1/admin/labor", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"hours":0.5`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCatalogUseCase(ctrl)
		uc.EXPECT().CreateLabor(gomock.Any(), "Alineación", gomock.Any()).
			DoAndReturn(func(_ any, desc string, hours decimal.Decimal) (entities.LaborActivity, error) {
				return entities.LaborActivity{ID: "la_new", Description: desc, Hours: hours}, nil
			})

		w := performRequest(newServiceCatalogRouter(uc), http.MethodPost, "/v1/admin/labor", `{"description":"Alineación","hours":1.25}`)
		if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"hours":1.25`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("create missing hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCatalogUseCase(ctrl)

		w := performRequest(newServiceCatalogRouter(uc), http.MethodPost, "/v1/admin/labor", `{"description":"Alineación"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create negative hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCatalogUseCase(ctrl)
		uc.EXPECT().CreateLabor(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.LaborActivity{}, usecase.ErrInvalidHours)

		w := performRequest(newServiceCatalogRouter(uc), http.MethodPost, "/v1/admin/labor", `{"description":"Alineación","hours":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCatalogUseCase(ctrl)
		uc.EXPECT().DeleteLabor(gomock.Any(), "la9").Return(usecase.ErrLaborNotFound)

		w := performRequest(newServiceCatalogRouter(uc), http.MethodDelete, "/v1/admin/labor/la9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceCatalogHandler_SuppliesAndCrossSell(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update supply not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCatalogUseCase(ctrl)
		uc.EXPECT().UpdateSupply(gomock.Any(), "s9", gomock.Any()).Return(entities.Supply{}, usecase.ErrSupplyNotFound)

		w := performRequest(newServiceCatalogRouter(uc), http.MethodPut, "/v1/admin/supplies/s9", `{"price":70000}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create cross-sell", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCatalogUseCase(ctrl)
		uc.EXPECT().CreateCrossSell(gomock.Any(), "Lavado", gomock.Any()).
			Return(entities.CrossSellItem{ID: "cs_new", Name: "Lavado", Price: decimal.NewFromInt(35000)}, nil)

		w := performRequest(newServiceCatalogRouter(uc), http.MethodPost, "/v1/admin/cross-sell", `{"name":"Lavado","price":35000}`)
		if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"price":35000`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete cross-sell missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCatalogUseCase(ctrl)
		uc.EXPECT().DeleteCrossSell(gomock.Any(), "cs99").Return(usecase.ErrCrossSellNotFound)

		w := performRequest(newServiceCatalogRouter(uc), http.MethodDelete, "/v1/admin/cross-sell/cs99", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceCatalogHandler_LaborRate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCatalogUseCase(ctrl)
		uc.EXPECT().GetLaborRate(gomock.Any()).Return(decimal.NewFromInt(85000), nil)

		w := performRequest(newServiceCatalogRouter(uc), http.MethodGet, "/v1/admin/labor-rate", "")
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != `{"rate":85000}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("set negative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCatalogUseCase(ctrl)
		uc.EXPECT().SetLaborRate(gomock.Any(), gomock.Any()).Return(decimal.Zero, usecase.ErrInvalidLaborRate)

		w := performRequest(newServiceCatalogRouter(uc), http.MethodPut, "/v1/admin/labor-rate", `{"rate":-5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCatalogUseCase(ctrl)
		uc.EXPECT().SetLaborRate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, rate decimal.Decimal) (decimal.Decimal, error) { return rate, nil })

		w := performRequest(newServiceCatalogRouter(uc), http.MethodPut, "/v1/admin/labor-rate", `{"rate":90000}`)
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != `{"rate":90000}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
