package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/sharing"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// clientFromRequest confere o :client_id da rota contra as contas do usuário
func clientFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Claims, string, bool) {
	claims, ok := viewerFromRequest(w, r)
	if !ok {
		return nil, "", false
	}

	clientID := httprouter.ParamsFromContext(r.Context()).ByName("client_id")
	if clientID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente é obrigatório", nil)
		return nil, "", false
	}

	if !claims.CanAccessAccount(clientID) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Cliente não vinculado ao usuário", nil)
		return nil, "", false
	}

	return claims, clientID, true
}

func ListShareResources(service sharing.SharingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		_, clientID, ok := clientFromRequest(w, r)
		if !ok {
			return
		}

		resources, err := service.ListResources(r.Context(), clientID)
		if err != nil {
			logger.WithError(err).WithField("client_id", clientID).Error("resources: erro ao listar recursos")
			writeUsecaseError(w, err, "Erro ao listar recursos")
			return
		}

		writeJSON(w, logger, http.StatusOK, resources)
	})
}

func CreateShareResource(service sharing.SharingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, clientID, ok := clientFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.CreateShareResourceRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ClientID = clientID

		resource, err := service.CreateResource(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.WithError(err).WithField("client_id", clientID).Error("resources: erro ao criar recurso")
			writeUsecaseError(w, err, "Erro ao criar recurso")
			return
		}

		writeJSON(w, logger, http.StatusCreated, resource)
	})
}

func DeleteShareResource(service sharing.SharingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteResource(r.Context(), id); err != nil {
			logger.WithError(err).WithField("resource_id", id).Error("resources: erro ao remover recurso")
			writeUsecaseError(w, err, "Erro ao remover recurso")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func SendEmail(service sharing.SharingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.EmailRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.SendEmail(r.Context(), &req)
		if err != nil {
			logger.WithError(err).Warn("send-email: envio não realizado")
			writeUsecaseError(w, err, "Erro ao enviar e-mail")
			return
		}

		logger.WithField("delivered", result.Delivered).Info("send-email: e-mail enviado")
		writeJSON(w, logger, http.StatusOK, result)
	})
}

func SendWhatsApp(service sharing.SharingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.WhatsAppRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.SendWhatsApp(r.Context(), &req)
		if err != nil {
			logger.WithError(err).Warn("send-whatsapp: envio não realizado")

			// Falha parcial: devolve o que já foi entregue junto com o erro
			var sharingErr *sharing.SharingError
			if result != nil && errors.As(err, &sharingErr) {
				apiErrors.WriteError(w, sharingErr.Code, sharingErr.Error(), result)
				return
			}
			writeUsecaseError(w, err, "Erro ao enviar mensagem")
			return
		}

		logger.WithField("delivered", result.Delivered).Info("send-whatsapp: mensagens enviadas")
		writeJSON(w, logger, http.StatusOK, result)
	})
}
