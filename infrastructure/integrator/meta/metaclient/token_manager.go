package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
)

var (
	// ErrTokenRenewed indica que o token expirou durante a chamada e já foi renovado
	ErrTokenRenewed = errors.New("token expirado e renovado, por favor tente novamente")

	// ErrReauthorizationRequired indica que a Meta recusou a troca e o app precisa de novo OAuth
	ErrReauthorizationRequired = errors.New("token da Meta expirou e exige nova autorização")
)

const (
	refreshInterval = 23 * time.Hour
	retryInterval   = time.Hour
	renewalMargin   = 24 * time.Hour
	exchangeTimeout = 30 * time.Second
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenManager guarda o token da Graph API e o troca por um de longa duração antes de expirar
type TokenManager struct {
	cfg        config.Meta
	httpClient *http.Client
	now        func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	token := cfg.Meta.AccessToken
	if cfg.Meta.LongLivedToken != "" {
		token = cfg.Meta.LongLivedToken
	}

	return &TokenManager{
		cfg:        cfg.Meta,
		httpClient: &http.Client{Timeout: exchangeTimeout},
		now:        time.Now,
		token:      token,
		expiresAt:  cfg.Meta.TokenExpiresAt,
	}
}

func (tm *TokenManager) AccessToken() string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.token
}

// ExpiresAt é zero enquanto o token configurado não tiver sido trocado
func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.expiresAt
}

// StartAutoRefresh troca o token configurado por um de longa duração e o renova a cada 23h
// até ctx ser cancelado. Desligado por META_AUTO_REFRESH_TOKENS, o token é usado como está.
func (tm *TokenManager) StartAutoRefresh(ctx context.Context) {
	if !tm.cfg.AutoRefreshTokens {
		logrus.Info("Renovação automática do token da Meta desabilitada")
		return
	}

	next := refreshInterval
	if err := tm.refresh(ctx); err != nil {
		logrus.WithError(err).Error("meta: erro ao obter token de longa duração")
		next = retryInterval
	}

	timer := time.NewTimer(next)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Encerrando renovação periódica do token da Meta")
			return
		case <-timer.C:
			next = refreshInterval
			if err := tm.refresh(ctx); err != nil {
				logrus.WithError(err).Error("meta: erro na renovação periódica do token")
				next = retryInterval
			}
			timer.Reset(next)
		}
	}
}

func (tm *TokenManager) RefreshToken() error {
	ctx, cancel := context.WithTimeout(context.Background(), exchangeTimeout)
	defer cancel()
	return tm.refresh(ctx)
}

// EnsureValidToken renova o token quando faltam menos de 24 horas para expirar.
// Sem data de expiração conhecida o token configurado é usado como está.
func (tm *TokenManager) EnsureValidToken() error {
	expiresAt := tm.ExpiresAt()
	if expiresAt.IsZero() || expiresAt.Sub(tm.now()) >= renewalMargin {
		return nil
	}

	logrus.WithField("expires_at", expiresAt.Format(time.RFC3339)).Info("meta: token perto de expirar, renovando")
	return tm.RefreshToken()
}

// HandleExpired renova o token após a Graph API recusá-lo. ErrTokenRenewed autoriza o chamador a repetir a chamada.
func (tm *TokenManager) HandleExpired(errorResp *metadomain.ErrorResponse) error {
	logrus.WithFields(logrus.Fields{
		"code":    errorResp.Error.Code,
		"subcode": errorResp.Error.ErrorSubcode,
	}).Warn("meta: token recusado pela Graph API")

	if err := tm.RefreshToken(); err != nil {
		return errors.Wrap(err, "erro ao renovar token expirado")
	}

	return ErrTokenRenewed
}

func (tm *TokenManager) refresh(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	resp, err := tm.exchange(ctx, tm.token)
	if err != nil {
		return err
	}

	changed := resp.AccessToken != tm.token
	tm.token = resp.AccessToken
	tm.expiresAt = renewalDeadline(tm.now(), resp.ExpiresIn)

	logrus.WithFields(logrus.Fields{
		"expires_at": tm.expiresAt.Format(time.RFC3339),
		"changed":    changed,
	}).Info("meta: token de longa duração atualizado")

	return nil
}

// exchange chama o endpoint fb_exchange_token da Graph API
func (tm *TokenManager) exchange(ctx context.Context, current string) (*tokenResponse, error) {
	if current == "" {
		return nil, errors.New("token de acesso da Meta não configurado")
	}

	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("client_id", tm.cfg.AppID)
	params.Set("client_secret", tm.cfg.AppSecret)
	params.Set("fb_exchange_token", current)
	endpoint := fmt.Sprintf("%s/%s/oauth/access_token?%s", tm.cfg.BaseURL, tm.cfg.Version, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "montando requisição de troca de token")
	}

	res, err := tm.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "trocando token na Meta")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "lendo resposta da troca de token")
	}

	if res.StatusCode != http.StatusOK {
		var metaErr metadomain.ErrorResponse
		if json.Unmarshal(body, &metaErr) == nil && metaErr.IsTokenExpired() {
			return nil, errors.Wrap(ErrReauthorizationRequired, metaErr.Error.Message)
		}
		return nil, errors.Errorf("troca de token recusada: status %d: %s", res.StatusCode, body)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, errors.Wrap(err, "decodificando token")
	}
	if token.AccessToken == "" {
		return nil, errors.New("a Meta devolveu um token vazio")
	}

	return &token, nil
}

// renewalDeadline antecipa a expiração em um dia; tokens curtos usam metade da validade
func renewalDeadline(now time.Time, expiresIn int64) time.Time {
	validity := time.Duration(expiresIn) * time.Second
	if validity > renewalMargin {
		return now.Add(validity - renewalMargin)
	}
	return now.Add(validity / 2)
}

// mensagens de token inválido que a Graph API às vezes devolve sem o código 190
var tokenExpirationMessages = []string{
	"Error validating access token",
	"Session has expired",
	"The session has been invalidated",
}

func containsTokenExpirationMessage(message string) bool {
	for _, fragment := range tokenExpirationMessages {
		if strings.Contains(message, fragment) {
			return true
		}
	}
	return false
}
