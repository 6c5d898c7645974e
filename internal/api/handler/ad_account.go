package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

func AdAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := viewerFromRequest(w, r)
		if !ok {
			return
		}

		availableStatus := make([]domain.AdAccountStatus, 0)
		if filterStatus := r.URL.Query().Get("status"); filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.AdAccountStatus(strings.ToUpper(strings.TrimSpace(status))))
			}
		}

		adAccounts, err := service.ListAdAccounts(r.Context(), claims, availableStatus)
		if err != nil {
			logger.WithError(err).Error("accounts: erro ao listar contas")
			writeUsecaseError(w, err, "Erro ao listar contas")
			return
		}

		writeJSON(w, logger, http.StatusOK, adAccounts)
	})
}

func SyncAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("accounts: iniciando sincronização de contas")

		resp, err := service.SyncAccounts(r.Context())
		if err != nil {
			logger.WithError(err).Error("accounts: erro ao sincronizar contas")
			writeUsecaseError(w, err, "Erro ao sincronizar contas")
			return
		}

		writeJSON(w, logger, http.StatusOK, resp)
	})
}

func UpdateAdAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateAdAccountRequest
		if err := decodeBody(r, &updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		resp, err := service.UpdateAccount(r.Context(), &updateRequest)
		if err != nil {
			logger.WithError(err).WithField("account_id", id).Error("accounts: erro ao atualizar conta")
			writeUsecaseError(w, err, "Erro interno ao atualizar conta")
			return
		}

		writeJSON(w, logger, http.StatusOK, resp)
	})
}
