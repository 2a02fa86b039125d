package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInitMetrics_registersAll(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := InitMetrics(reg)

	m.QuoteResolved(entities.MilestoneTypeMileage, nil)
	m.HTTPRequestsTotal.WithLabelValues("GET", "/v1/ping", "200").Inc()
	m.CatalogChanged(catalog.PathParts)
	m.DroppedReferencesTotal.WithLabelValues("part", "missing").Add(0)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"quoter_quotes_resolved_total",
		"quoter_dropped_references_total",
		"quoter_http_requests_total",
		"quoter_catalog_changes_total",
	} {
		if !names[want] {
			t.Errorf("metric %q not registered", want)
		}
	}
}

func TestQuoteResolved_countsDropped(t *testing.T) {
	m := InitMetrics(prometheus.NewRegistry())

	m.QuoteResolved(entities.MilestoneTypeService, []entities.DroppedReference{
		{Kind: entities.ItemKindPart, ID: "p1", Reason: "missing"},
		{Kind: entities.ItemKindPart, ID: "p2", Reason: "missing"},
		{Kind: entities.ItemKindLabor, ID: "la9", Reason: "missing"},
	})

	if got := testutil.ToFloat64(m.QuotesResolvedTotal.WithLabelValues("service")); got != 1 {
		t.Errorf("quotes resolved = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.DroppedReferencesTotal.WithLabelValues("part", "missing")); got != 2 {
		t.Errorf("dropped parts = %v, want 2", got)
	}
}

func TestRecordHTTPRequest_exposedOnHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := InitMetrics(reg)

	m.RecordHTTPRequest("POST", "/v1/quotes", 200)
	m.RecordHTTPRequest("POST", "/v1/quotes", 200)

	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/v1/quotes", "200")); got != 2 {
		t.Errorf("http requests = %v, want 2", got)
	}

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rec.Body.String(), `quoter_http_requests_total{method="POST",path="/v1/quotes",status="200"} 2`) {
		t.Errorf("metrics output missing counter:\n%s", rec.Body.String())
	}
}
