package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketing_dashboard"

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por método, rota e status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ComparisonLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparison_loads_total",
			Help:      "Cargas de comparação por resultado (ok, error, stale)",
		},
		[]string{"outcome"},
	)

	ComparisonLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "comparison_load_duration_seconds",
			Help:      "Duração da carga conjunta dos dois períodos",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	RejectedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_rows_total",
			Help:      "Linhas de insight descartadas na validação de borda",
		},
		[]string{"source"},
	)

	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_runs_total",
			Help:      "Execuções de sincronização por conta e resultado",
		},
		[]string{"job", "outcome"},
	)

	SyncedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "synced_rows_total",
			Help:      "Linhas gravadas pela sincronização por tabela",
		},
		[]string{"table"},
	)

	ExternalRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "external_requests_total",
			Help:      "Chamadas a serviços externos por serviço e status",
		},
		[]string{"service", "status"},
	)

	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Estado do circuit breaker (0 fechado, 1 meio aberto, 2 aberto)",
		},
		[]string{"name"},
	)
)

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTP registra uma requisição finalizada
func ObserveHTTP(method, path string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveExternal registra uma chamada a serviço externo. status 0 indica falha de transporte.
func ObserveExternal(service string, status int) {
	label := "transport_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	ExternalRequests.WithLabelValues(service, label).Inc()
}
