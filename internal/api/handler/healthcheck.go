package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// HealthCheck verifica uma dependência externa (postgres, redis) para o readiness
type HealthCheck func(ctx context.Context) error

const readinessTimeout = 3 * time.Second

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// LivenessHandler responde enquanto o processo estiver de pé
func LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}

// ReadinessHandler só responde 200 quando todas as dependências respondem
func ReadinessHandler(checks map[string]HealthCheck) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		resp := readinessResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK

		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.ForContext(ctx).WithError(err).WithField("dependency", name).Warn("readiness: dependência indisponível")
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}

		writeJSON(w, log.ForContext(r.Context()), status, resp)
	})
}
