package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("http: erro ao codificar resposta")
	}
}

func decodeBody(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// writeUsecaseError usa o código carregado pelo erro do caso de uso ou cai no fallback 500
func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	if !apiErrors.WriteCodedError(w, err) {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// viewerFromRequest devolve as claims gravadas pelo AuthMiddleware
func viewerFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// accountFromRequest lê o :id da rota e confere se o usuário pode ver a conta
func accountFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Claims, string, bool) {
	claims, ok := viewerFromRequest(w, r)
	if !ok {
		return nil, "", false
	}

	accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if accountID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
		return nil, "", false
	}

	if !claims.CanAccessAccount(accountID) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Conta não vinculada ao usuário", map[string]any{
			"account_id": accountID,
		})
		return nil, "", false
	}

	return claims, accountID, true
}
