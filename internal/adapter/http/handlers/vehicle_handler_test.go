package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"cotizador_taller/internal/adapter/http/handlers/mocks"
	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newVehicleRouter(uc usecase.IVehicleUseCase) *gin.Engine {
	h := NewVehicleHandler(uc)
	r := gin.New()
	r.GET("/v1/brands", h.ListBrands)
	r.POST("/v1/admin/brands", h.CreateBrand)
	r.PUT("/v1/admin/brands/:brand_id", h.UpdateBrand)
	r.GET("/v1/lines", h.ListLines)
	r.POST("/v1/admin/lines", h.CreateLine)
	r.PUT("/v1/admin/lines/:line_id", h.UpdateLine)
	r.DELETE("/v1/admin/lines/:line_id", h.DeleteLine)
	return r
}

func TestVehicleHandler_Brands(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().ListBrands(gomock.Any()).Return([]entities.Brand{{ID: 1, Name: "Hyundai"}}, nil)

		w := performRequest(newVehicleRouter(uc), http.MethodGet, "/v1/brands", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []entities.Brand
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0].Name != "Hyundai" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("create missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)

		w := performRequest(newVehicleRouter(uc), http.MethodPost, "/v1/admin/brands", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)

		w := performRequest(newVehicleRouter(uc), http.MethodPut, "/v1/admin/brands/abc", `{"name":"Kia"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().UpdateBrand(gomock.Any(), int64(9), "Kia").Return(entities.Brand{}, usecase.ErrBrandNotFound)

		w := performRequest(newVehicleRouter(uc), http.MethodPut, "/v1/admin/brands/9", `{"name":"Kia"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestVehicleHandler_Lines(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list filtered by brand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().ListLines(gomock.Any(), int64(1)).Return([]entities.VehicleLine{{ID: "l_hb20k", BrandID: 1}}, nil)

		w := performRequest(newVehicleRouter(uc), http.MethodGet, "/v1/lines?brand_id=1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list rejects bad brand filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)

		w := performRequest(newVehicleRouter(uc), http.MethodGet, "/v1/lines?brand_id=x", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create rejects odd interval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)

		w := performRequest(newVehicleRouter(uc), http.MethodPost, "/v1/admin/lines", `{"brandId":1,"name":"KONA","serviceInterval":7000}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Error.Details["ServiceInterval"] != "oneof" {
			t.Fatalf("expected oneof detail, got %s", w.Body.String())
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().CreateLine(gomock.Any(), entities.VehicleLine{BrandID: 1, Name: "KONA", ServiceInterval: 5000}).
			Return(entities.VehicleLine{ID: "l_new", BrandID: 1, Name: "KONA", ServiceInterval: 5000}, nil)

		w := performRequest(newVehicleRouter(uc), http.MethodPost, "/v1/admin/lines", `{"brandId":1,"name":" KONA ","serviceInterval":5000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("update passes only present fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().UpdateLine(gomock.Any(), "l_hb20k", gomock.Any()).
			DoAndReturn(func(_ any, _ string, upd usecase.LineUpdate) (entities.VehicleLine, error) {
				if upd.Name == nil || *upd.Name != "HB20" || upd.BrandID != nil || upd.ServiceInterval != nil {
					t.Errorf("unexpected update: %+v", upd)
				}
				return entities.VehicleLine{ID: "l_hb20k", Name: "HB20"}, nil
			})

		w := performRequest(newVehicleRouter(uc), http.MethodPut, "/v1/admin/lines/l_hb20k", `{"name":"HB20"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete missing line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().DeleteLine(gomock.Any(), "l_nope").Return(usecase.ErrLineNotFound)

		w := performRequest(newVehicleRouter(uc), http.MethodDelete, "/v1/admin/lines/l_nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete store failure is 500 without cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().DeleteLine(gomock.Any(), "l_hb20k").Return(errors.New("dynamodb: throttled"))

		w := performRequest(newVehicleRouter(uc), http.MethodDelete, "/v1/admin/lines/l_hb20k", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Error.Code != "INTERNAL_ERROR" || body.Error.Message == "dynamodb: throttled" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
