package metrics

import (
	"net/http"
	"strconv"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/domain/entities"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments of the quoting service.
type Metrics struct {
	QuotesResolvedTotal    *prometheus.CounterVec
	DroppedReferencesTotal *prometheus.CounterVec
	HTTPRequestsTotal      *prometheus.CounterVec
	CatalogChangesTotal    *prometheus.CounterVec
}

var _ interfaces.IQuoteMetrics = (*Metrics)(nil)

// InitMetrics creates and registers all instruments on reg.
func InitMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		QuotesResolvedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quoter_quotes_resolved_total",
			Help: "Quotes priced, by milestone type.",
		}, []string{"milestone_type"}),
		DroppedReferencesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quoter_dropped_references_total",
			Help: "Recipe or selection references left out of a quote.",
		}, []string{"kind", "reason"}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quoter_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		CatalogChangesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quoter_catalog_changes_total",
			Help: "Catalog change notifications received, by collection.",
		}, []string{"path"}),
	}
	reg.MustRegister(
		m.QuotesResolvedTotal,
		m.DroppedReferencesTotal,
		m.HTTPRequestsTotal,
		m.CatalogChangesTotal,
	)
	return m
}

func (m *Metrics) QuoteResolved(milestoneType entities.MilestoneType, dropped []entities.DroppedReference) {
	m.QuotesResolvedTotal.WithLabelValues(string(milestoneType)).Inc()
	for _, d := range dropped {
		m.DroppedReferencesTotal.WithLabelValues(string(d.Kind), d.Reason).Inc()
	}
}

func (m *Metrics) CatalogChanged(path catalog.Path) {
	m.CatalogChangesTotal.WithLabelValues(path.String()).Inc()
}

func (m *Metrics) RecordHTTPRequest(method, path string, status int) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// Handler exposes every instrument registered on g for /metrics.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
