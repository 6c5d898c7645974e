package metaclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sony/gobreaker"
	metadomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/pkg/resilience"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks
type Client interface {
	GetAdAccountsByBusinessID(ctx context.Context, businessID string) ([]metadomain.AdAccount, error)
	GetCampaignsByAccountID(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	GetAdsByAccountID(ctx context.Context, accountID string) ([]metadomain.Ad, error)
	GetInsights(ctx context.Context, accountID string, query metadomain.InsightQuery) ([]metadomain.Insight, error)
	RefreshToken() error
	EnsureValidToken() error
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager

	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	sleep      func(ctx context.Context, d time.Duration) error
	maxPages   int
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) *MetaClient {
	interval := cfg.Meta.RequestInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	timeout := cfg.Meta.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: timeout},
		limiter:      rate.NewLimiter(rate.Every(interval), 1),
		breaker:      resilience.NewCircuitBreaker("meta-graph-api"),
		sleep:        sleepContext,
		maxPages:     defaultMaxPages,
	}
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
