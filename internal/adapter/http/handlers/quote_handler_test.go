package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"cotizador_taller/internal/adapter/http/handlers/mocks"
	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/domain/pricing"
	"cotizador_taller/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/milestones", h.ListMilestones)
	r.GET("/v1/lines/:line_id/milestones", h.AvailableMilestones)
	r.GET("/v1/cross-sell", h.ListCrossSell)
	r.POST("/v1/quotes", h.CreateQuote)
	r.POST("/v1/quotes/pdf", h.QuotePDF)
	r.POST("/v1/quotes/suggestions", h.Suggestions)
	return r
}

func sampleQuoteView() usecase.QuoteView {
	line := entities.VehicleLine{ID: "l_hb20k", Name: "HB20", ImageURL: "/img/hb20.png"}
	milestone := entities.Milestone{ID: "m2", Name: "20.000 km", Type: entities.MilestoneTypeMileage, Interval: 20000}
	return usecase.QuoteView{
		Line:            &line,
		Milestone:       &milestone,
		ServiceType:     entities.ServiceTypeParticular,
		VehicleImageURL: "/img/hb20.png",
		Result: entities.QuoteResult{
			MergedParts: []entities.LineItem{
				{ID: "pA", Name: "Filtro de aceite", Kind: entities.ItemKindPart, Category: entities.PartCategoryMain, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(18000), Total: decimal.NewFromInt(18000)},
			},
			Totals: entities.QuoteTotals{
				Parts:    decimal.NewFromInt(120000),
				Labor:    decimal.NewFromInt(42500),
				Supplies: decimal.NewFromInt(25000),
				Subtotal: decimal.NewFromInt(187500),
				TaxValue: decimal.NewFromInt(35625),
				Total:    decimal.NewFromInt(223125),
			},
		},
		Suggestions: []pricing.Suggestion{{ID: "la4", Name: "Alineación", Kind: entities.ItemKindLabor}},
	}
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing milestone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))

		w := performRequest(newQuoteRouter(h), http.MethodPost, "/v1/quotes", `{"lineId":"l_hb20k"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Error.Details["MilestoneID"] != "required" {
			t.Fatalf("unexpected details: %s", w.Body.String())
		}
	})

	t.Run("invalid service type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(usecase.QuoteView{}, usecase.ErrInvalidServiceType)
		h := NewQuoteHandler(uc)

		w := performRequest(newQuoteRouter(h), http.MethodPost, "/v1/quotes", `{"lineId":"l_hb20k","milestoneId":"m2","serviceType":"uber"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Quote(gomock.Any(), usecase.QuoteRequest{
			LineID:       "l_hb20k",
			MilestoneID:  "m2",
			ServiceType:  entities.ServiceTypeTaxi,
			Additionals:  []string{"Bujía"},
			CrossSellIDs: []string{"cs1"},
		}).Return(sampleQuoteView(), nil)
		h := NewQuoteHandler(uc)

		w := performRequest(newQuoteRouter(h), http.MethodPost, "/v1/quotes",
			`{"lineId":"l_hb20k","milestoneId":"m2","serviceType":"taxi","additionals":["Bujía"],"crossSellIds":["cs1"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			VehicleImageURL string `json:"vehicleImageUrl"`
			Totals          struct {
				Total json.Number `json:"total"`
			} `json:"totals"`
			Parts []map[string]any `json:"parts"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Totals.Total != "223125" || body.VehicleImageURL != "/img/hb20.png" || len(body.Parts) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_PDFAndSuggestions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(sampleQuoteView(), nil)
		h := NewQuoteHandler(uc)
		h.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }

		w := performRequest(newQuoteRouter(h), http.MethodPost, "/v1/quotes/pdf", `{"lineId":"l_hb20k","milestoneId":"m2"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "application/pdf" || !strings.HasPrefix(w.Body.String(), "%PDF") {
			t.Fatalf("expected a pdf, got %q", w.Header().Get("Content-Type"))
		}
	})

	t.Run("suggestions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(sampleQuoteView(), nil)
		h := NewQuoteHandler(uc)

		w := performRequest(newQuoteRouter(h), http.MethodPost, "/v1/quotes/suggestions", `{"lineId":"l_hb20k","milestoneId":"m2"}`)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":"la4"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestQuoteHandler_Milestones(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("available for unknown line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().AvailableMilestones(gomock.Any(), "l_nope", entities.ServiceType("")).Return(nil, usecase.ErrLineNotFound)
		h := NewQuoteHandler(uc)

		w := performRequest(newQuoteRouter(h), http.MethodGet, "/v1/lines/l_nope/milestones", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("available under taxi", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().AvailableMilestones(gomock.Any(), "l_i10", entities.ServiceTypeTaxi).
			Return([]entities.Milestone{{ID: "m_15k"}, entities.CustomMilestone()}, nil)
		h := NewQuoteHandler(uc)

		w := performRequest(newQuoteRouter(h), http.MethodGet, "/v1/lines/l_i10/milestones?service_type=taxi", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []entities.Milestone
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[1].ID != entities.CustomMilestoneID {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("all milestones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Milestones().Return([]entities.Milestone{{ID: "m1"}, {ID: "m2"}})
		h := NewQuoteHandler(uc)

		w := performRequest(newQuoteRouter(h), http.MethodGet, "/v1/milestones", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cross-sell", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().CrossSellItems(gomock.Any()).Return([]entities.CrossSellItem{{ID: "cs1", Name: "Lavado", Price: decimal.NewFromInt(35000)}}, nil)
		h := NewQuoteHandler(uc)

		w := performRequest(newQuoteRouter(h), http.MethodGet, "/v1/cross-sell", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"price":35000`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
