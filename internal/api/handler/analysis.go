package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

func Analyze(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.AnalysisRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		logger.WithField("prompt_name", req.PromptName).Info("analysis: gerando análise")

		resp, err := service.Analyze(r.Context(), &req)
		if err != nil {
			logger.WithError(err).WithField("prompt_name", req.PromptName).Error("analysis: erro ao gerar análise")
			writeUsecaseError(w, err, "Erro ao gerar análise")
			return
		}

		writeJSON(w, logger, http.StatusOK, resp)
	})
}
