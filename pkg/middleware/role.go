package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// RequireRoles libera a rota apenas para os perfis informados
func RequireRoles(roles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(roles, claims.UserRoleID) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"role": claims.UserRoleID,
					"path": r.URL.Path,
				}).Warn("acesso negado para o perfil")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly protege a sincronização de contas e o recálculo de resultados
func AdminOnly() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin)
}

// AdminOrSupervisor protege edição de contas, análises, remoção de recursos e os crons
func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleSupervisor)
}

func AllRoles() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleSupervisor, domain.RoleClient)
}
