package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeMonthly      = "monthly-insights"
	CronJobTypeCurrentMonth = "current-month"
)

// MonthlySyncTrigger é a parte do agendador usada pelas rotas de cron
type MonthlySyncTrigger interface {
	TriggerManualSync(ctx context.Context, currentMonth bool) bool
	GetStatus() map[string]any
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(syncService MonthlySyncTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		var currentMonth bool
		switch cronType {
		case CronJobTypeMonthly:
		case CronJobTypeCurrentMonth:
			currentMonth = true
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monthly-insights, current-month", nil)
			return
		}

		// A sincronização continua depois que a requisição termina
		started := syncService.TriggerManualSync(context.WithoutCancel(r.Context()), currentMonth)

		logger.WithFields(log.Fields{
			"type":    cronType,
			"started": started,
		}).Info("cron: execução manual solicitada")

		if !started {
			writeJSON(w, logger, http.StatusConflict, map[string]any{
				"message": "Sincronização já em andamento ou sem período a processar",
				"type":    cronType,
			})
			return
		}

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(syncService MonthlySyncTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, map[string]any{
			"monthly-insights": syncService.GetStatus(),
		})
	}
}
