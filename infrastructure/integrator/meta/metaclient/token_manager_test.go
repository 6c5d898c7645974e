package metaclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
)

func newTestTokenManager(t *testing.T, handler http.HandlerFunc) *TokenManager {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tm := NewTokenManager(&config.Config{Meta: config.Meta{
		BaseURL:     server.URL,
		Version:     "v21.0",
		AppID:       "app",
		AppSecret:   "segredo",
		AccessToken: "curto",
	}})
	tm.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return tm
}

func TestTokenManager_RefreshToken(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, tm *TokenManager, err error)
	}{
		{
			name: "Troca pelo token de longa duração",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v21.0/oauth/access_token", r.URL.Path)
				assert.Equal(t, "fb_exchange_token", r.URL.Query().Get("grant_type"))
				assert.Equal(t, "curto", r.URL.Query().Get("fb_exchange_token"))
				_, _ = w.Write([]byte(`{"access_token":"longo","token_type":"bearer","expires_in":5184000}`))
			},
			validate: func(t *testing.T, tm *TokenManager, err error) {
				require.NoError(t, err)
				assert.Equal(t, "longo", tm.AccessToken())
				assert.Equal(t, time.Date(2024, 6, 29, 12, 0, 0, 0, time.UTC), tm.ExpiresAt())
			},
		},
		{
			name: "Token expirado exige nova autorização",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"message":"Session has expired","type":"OAuthException","code":190}}`))
			},
			validate: func(t *testing.T, tm *TokenManager, err error) {
				assert.ErrorIs(t, err, ErrReauthorizationRequired)
				assert.Equal(t, "curto", tm.AccessToken())
			},
		},
		{
			name: "Resposta sem token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"access_token":""}`))
			},
			validate: func(t *testing.T, tm *TokenManager, err error) {
				assert.ErrorContains(t, err, "token vazio")
				assert.True(t, tm.ExpiresAt().IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := newTestTokenManager(t, tt.handler)
			err := tm.RefreshToken()
			tt.validate(t, tm, err)
		})
	}
}

func TestTokenManager_EnsureValidToken(t *testing.T) {
	calls := 0
	tm := newTestTokenManager(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"access_token":"renovado","expires_in":5184000}`))
	})

	require.NoError(t, tm.EnsureValidToken())
	assert.Zero(t, calls, "sem expiração conhecida o token configurado é mantido")

	tm.expiresAt = tm.now().Add(2 * time.Hour)
	require.NoError(t, tm.EnsureValidToken())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "renovado", tm.AccessToken())
}

func TestTokenManager_HandleExpired(t *testing.T) {
	tm := newTestTokenManager(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"novo","expires_in":3600}`))
	})

	err := tm.HandleExpired(&metadomain.ErrorResponse{Error: metadomain.ErrorDetails{Code: 190}})

	assert.ErrorIs(t, err, ErrTokenRenewed)
	assert.Equal(t, tm.now().Add(30*time.Minute), tm.ExpiresAt())
}

func TestContainsTokenExpirationMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{name: "Token inválido", message: `{"error":{"message":"Error validating access token: Session has expired on Monday"}}`, want: true},
		{name: "Sessão expirada", message: "Session has expired", want: true},
		{name: "Sessão invalidada", message: "The session has been invalidated because the user changed their password", want: true},
		{name: "Erro de parâmetro", message: "Invalid parameter", want: false},
		{name: "Mensagem vazia", message: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsTokenExpirationMessage(tt.message))
		})
	}
}
