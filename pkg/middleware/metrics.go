package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/pkg/metrics"
)

// MetricsMiddleware registra contagem e duração usando o padrão da rota, não o caminho com parâmetros
func MetricsMiddleware(pattern string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			metrics.ObserveHTTP(r.Method, pattern, rec.statusCode, time.Since(start))
		})
	}
}
