package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/comparing"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// FormatResultTypesRequest é o corpo de /v1/result-types/format
type FormatResultTypesRequest struct {
	ResultType string             `json:"result_type"`
	Counts     map[string]float64 `json:"counts"`
}

type FormatResultTypesResponse struct {
	Formatted string `json:"formatted"`
}

// LoadComparison carrega os dois períodos juntos; uma carga substituída por outra mais recente responde 409
func LoadComparison(service comparing.ComparisonService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, accountID, ok := accountFromRequest(w, r)
		if !ok {
			return
		}

		req := &domain.ComparisonRequest{
			AccountID: accountID,
			PeriodA:   r.URL.Query().Get("period_a"),
			PeriodB:   r.URL.Query().Get("period_b"),
			ViewerID:  claims.UserID,
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"period_a":   req.PeriodA,
			"period_b":   req.PeriodB,
		}).Info("comparison: carregando comparação")

		report, err := service.LoadComparison(r.Context(), req)
		if err != nil {
			logger.WithError(err).WithField("account_id", accountID).Warn("comparison: carga não concluída")
			writeUsecaseError(w, err, "Erro ao carregar comparação")
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"generation": report.Generation,
			"adsets":     len(report.AdSets),
		}).Info("comparison: comparação carregada")

		writeJSON(w, logger, http.StatusOK, report)
	})
}

func GetLatestComparison(service comparing.ComparisonService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, accountID, ok := accountFromRequest(w, r)
		if !ok {
			return
		}

		report, err := service.GetLatestComparison(r.Context(), claims.UserID, accountID)
		if err != nil {
			writeUsecaseError(w, err, "Erro ao buscar última comparação")
			return
		}

		writeJSON(w, logger, http.StatusOK, report)
	})
}

func GetAvailablePeriods(service comparing.ComparisonService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		_, accountID, ok := accountFromRequest(w, r)
		if !ok {
			return
		}

		periods, err := service.GetAvailablePeriods(r.Context(), accountID)
		if err != nil {
			logger.WithError(err).Error("periods: erro ao buscar períodos disponíveis")
			writeUsecaseError(w, err, "Erro ao buscar períodos disponíveis")
			return
		}

		logger.WithFields(log.Fields{
			"account_id":    accountID,
			"total_periods": len(periods.Periods),
		}).Debug("periods: períodos disponíveis encontrados")

		writeJSON(w, logger, http.StatusOK, periods)
	})
}

func GetCreativePerformance(service comparing.ComparisonService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		_, accountID, ok := accountFromRequest(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		since, until, err := utils.ParseDateRange(query.Get("since"), query.Get("until"), time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Intervalo de datas inválido. Use o formato AAAA-MM-DD", err.Error())
			return
		}

		creatives, err := service.GetCreativePerformance(r.Context(), accountID, since, until)
		if err != nil {
			logger.WithError(err).WithField("account_id", accountID).Error("creatives: erro ao buscar desempenho dos criativos")
			writeUsecaseError(w, err, "Erro ao buscar desempenho dos criativos")
			return
		}

		writeJSON(w, logger, http.StatusOK, creatives)
	})
}

func RecalculateResults(service comparing.ComparisonService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		_, accountID, ok := accountFromRequest(w, r)
		if !ok {
			return
		}

		report, err := service.RecalculateResults(r.Context(), accountID)
		if err != nil {
			logger.WithError(err).WithField("account_id", accountID).Error("recalculate: erro ao recalcular resultados")
			writeUsecaseError(w, err, "Erro ao recalcular resultados")
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"updated":    report.Updated,
		}).Info("recalculate: resultados recalculados")

		writeJSON(w, logger, http.StatusOK, report)
	})
}

func FormatResultTypes() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req FormatResultTypesRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if strings.TrimSpace(req.ResultType) == "" {
			writeJSON(w, logger, http.StatusOK, FormatResultTypesResponse{})
			return
		}

		writeJSON(w, logger, http.StatusOK, FormatResultTypesResponse{
			Formatted: domain.FormatResultTypes(req.ResultType, req.Counts),
		})
	})
}
