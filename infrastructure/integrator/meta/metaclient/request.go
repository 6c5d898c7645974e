package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/metrics"
	"github.com/vfg2006/marketing-dashboard-api/pkg/resilience"
)

const defaultMaxPages = 1000

// StatusError é uma resposta não-200 da Graph API
type StatusError struct {
	StatusCode int
	Body       string
	Meta       *metadomain.ErrorResponse
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("erro na resposta da API. Status: %d, Corpo: %s", e.StatusCode, e.Body)
}

// IsRateLimited cobre o 429 e os códigos de limite que a Graph API devolve com 400
func (e *StatusError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests || (e.Meta != nil && e.Meta.IsRateLimited())
}

// Retryable indica se vale tentar novamente
func (e *StatusError) Retryable() bool {
	return e.IsRateLimited() || e.StatusCode >= http.StatusInternalServerError
}

func newStatusError(statusCode int, body []byte) *StatusError {
	statusErr := &StatusError{StatusCode: statusCode, Body: string(body)}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Code != 0 {
		statusErr.Meta = &errorResp
	}

	return statusErr
}

type graphResponse struct {
	body []byte
	err  *StatusError
}

func (c *MetaClient) buildURL(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.TokenManager.AccessToken())

	return fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, path, params.Encode())
}

// withCurrentToken troca o access_token da URL pelo token vigente. Vale também para paging.next,
// que a Graph API devolve com o token usado na primeira página.
func (c *MetaClient) withCurrentToken(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrap(err, "url inválida para a Graph API")
	}

	query := parsed.Query()
	query.Set("access_token", c.TokenManager.AccessToken())
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// get faz um GET com pacing, circuit breaker e retentativas com backoff exponencial
func (c *MetaClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	maxRetries := c.Cfg.Meta.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	tokenRenewed := false
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if lastErr != nil {
			wait := backoff(attempt-1, lastErr)
			logrus.WithFields(logrus.Fields{
				"attempt": attempt,
				"wait":    wait.String(),
				"error":   lastErr.Error(),
			}).Warn("meta: nova tentativa após falha")

			if err := c.sleep(ctx, wait); err != nil {
				return nil, err
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		attemptURL, err := c.withCurrentToken(rawURL)
		if err != nil {
			return nil, err
		}

		body, err := c.do(ctx, attemptURL)
		if err == nil {
			return body, nil
		}

		// uma única repetição imediata após renovar; um segundo 190 é definitivo
		if errors.Is(err, ErrTokenRenewed) {
			if tokenRenewed {
				return nil, err
			}
			tokenRenewed = true
			lastErr = nil
			attempt--
			continue
		}

		if !isRetryable(err) {
			return nil, err
		}

		lastErr = err
	}

	return nil, errors.Wrapf(lastErr, "meta: falha após %d tentativas", maxRetries+1)
}

func (c *MetaClient) do(ctx context.Context, rawURL string) ([]byte, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.ObserveExternal("meta", 0)
			return nil, errors.Wrap(err, "erro ao fazer a requisição")
		}
		defer resp.Body.Close()

		metrics.ObserveExternal("meta", resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler resposta")
		}

		if resp.StatusCode == http.StatusOK {
			return &graphResponse{body: body}, nil
		}

		statusErr := newStatusError(resp.StatusCode, body)
		if statusErr.Retryable() {
			return nil, statusErr
		}

		// Erros do cliente não contam como falha do serviço
		return &graphResponse{err: statusErr}, nil
	})
	if err != nil {
		return nil, err
	}

	response := result.(*graphResponse)
	if response.err == nil {
		return response.body, nil
	}

	if response.err.Meta != nil && response.err.Meta.IsTokenExpired() {
		return nil, c.TokenManager.HandleExpired(response.err.Meta)
	}
	if containsTokenExpirationMessage(response.err.Body) {
		return nil, c.TokenManager.HandleExpired(&metadomain.ErrorResponse{})
	}

	return nil, response.err
}

func isRetryable(err error) bool {
	if errors.Is(err, ErrTokenRenewed) || errors.Is(err, ErrReauthorizationRequired) {
		return false
	}
	if resilience.IsOpen(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}

	return true
}

// backoff segue 1s*2^n, limitado a 30s para rate limit e 10s para os demais erros
func backoff(attempt int, err error) time.Duration {
	limit := 10 * time.Second

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.IsRateLimited() {
		limit = 30 * time.Second
	}

	if attempt > 5 {
		return limit
	}

	wait := time.Second * time.Duration(1<<attempt)
	if wait > limit {
		wait = limit
	}

	return wait
}

type page[T any] struct {
	Data   []T                `json:"data"`
	Paging *metadomain.Paging `json:"paging"`
}

// fetchAll segue paging.next até a última página, com pausa entre páginas
func fetchAll[T any](ctx context.Context, c *MetaClient, firstURL string) ([]T, error) {
	items := make([]T, 0)

	next := firstURL
	for pageNumber := 1; next != ""; pageNumber++ {
		if pageNumber > c.maxPages {
			return nil, fmt.Errorf("meta: limite de %d páginas atingido", c.maxPages)
		}

		if pageNumber > 1 {
			if err := c.sleep(ctx, c.Cfg.Meta.PageDelay); err != nil {
				return nil, err
			}
		}

		body, err := c.get(ctx, next)
		if err != nil {
			return nil, err
		}

		var response page[T]
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, errors.Wrap(err, "erro ao decodificar resposta da Graph API")
		}

		items = append(items, response.Data...)

		next = ""
		if response.Paging != nil {
			next = response.Paging.Next
		}
	}

	return items, nil
}
