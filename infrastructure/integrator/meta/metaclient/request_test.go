package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/pkg/resilience"
)

const accountsPath = "/v21.0/bm-1/owned_ad_accounts"

type graphServer struct {
	mu        sync.Mutex
	tokens    []string
	hits      int
	exchanges int
}

func (g *graphServer) record(r *http.Request) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hits++
	g.tokens = append(g.tokens, r.URL.Query().Get("access_token"))
	return g.hits
}

type testClient struct {
	client *MetaClient
	graph  *graphServer
	url    string
	waits  []time.Duration
}

// newGraphTestClient sobe uma Graph API falsa. O endpoint de troca de token sempre devolve "novo".
func newGraphTestClient(t *testing.T, maxRetries int, handler func(g *graphServer, w http.ResponseWriter, r *http.Request)) *testClient {
	t.Helper()

	tc := &testClient{graph: &graphServer{}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v21.0/oauth/access_token" {
			tc.graph.mu.Lock()
			tc.graph.exchanges++
			tc.graph.mu.Unlock()
			_, _ = w.Write([]byte(`{"access_token":"novo","expires_in":5184000}`))
			return
		}
		handler(tc.graph, w, r)
	}))
	t.Cleanup(server.Close)
	tc.url = server.URL

	cfg := &config.Config{Meta: config.Meta{
		BaseURL:         server.URL,
		URL:             server.URL + "/v21.0",
		Version:         "v21.0",
		AppID:           "app",
		AppSecret:       "segredo",
		AccessToken:     "velho",
		MaxRetries:      maxRetries,
		RequestInterval: time.Millisecond,
		PageDelay:       200 * time.Millisecond,
	}}

	tm := NewTokenManager(cfg)
	tm.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	tc.client = NewClient(cfg, tm)
	tc.client.sleep = func(_ context.Context, d time.Duration) error {
		tc.waits = append(tc.waits, d)
		return nil
	}

	return tc
}

func writeAccounts(w http.ResponseWriter, next string) {
	paging := ""
	if next != "" {
		paging = fmt.Sprintf(`,"paging":{"next":%q}`, next)
	}
	_, _ = fmt.Fprintf(w, `{"data":[{"id":"act_1","account_id":"1","name":"Loja","currency":"BRL","account_status":1}]%s}`, paging)
}

func writeExpiredToken(w http.ResponseWriter) {
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write([]byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`))
}

func TestBackoff(t *testing.T) {
	rateLimited := &StatusError{StatusCode: http.StatusTooManyRequests}
	serverErr := &StatusError{StatusCode: http.StatusInternalServerError}

	tests := []struct {
		name    string
		attempt int
		err     error
		want    time.Duration
	}{
		{name: "Primeira espera de um segundo", attempt: 0, err: serverErr, want: time.Second},
		{name: "Dobra a cada tentativa", attempt: 3, err: serverErr, want: 8 * time.Second},
		{name: "Erro comum limitado a 10s", attempt: 4, err: serverErr, want: 10 * time.Second},
		{name: "Rate limit passa de 10s", attempt: 4, err: rateLimited, want: 16 * time.Second},
		{name: "Rate limit limitado a 30s", attempt: 5, err: rateLimited, want: 30 * time.Second},
		{name: "Tentativas altas ficam no teto", attempt: 12, err: rateLimited, want: 30 * time.Second},
		{name: "Erro de rede segue o teto comum", attempt: 8, err: errors.New("connection reset"), want: 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backoff(tt.attempt, tt.err))
		})
	}
}

func TestMetaClient_Get(t *testing.T) {
	tests := []struct {
		name       string
		maxRetries int
		handler    func(g *graphServer, w http.ResponseWriter, r *http.Request)
		validate   func(t *testing.T, tc *testClient, err error)
	}{
		{
			name:       "Repete erro 5xx com backoff exponencial",
			maxRetries: 3,
			handler: func(g *graphServer, w http.ResponseWriter, r *http.Request) {
				if g.record(r) < 3 {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				writeAccounts(w, "")
			},
			validate: func(t *testing.T, tc *testClient, err error) {
				require.NoError(t, err)
				assert.Equal(t, 3, tc.graph.hits)
				assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, tc.waits)
			},
		},
		{
			name:       "Rate limit com 429 é repetido",
			maxRetries: 3,
			handler: func(g *graphServer, w http.ResponseWriter, r *http.Request) {
				if g.record(r) == 1 {
					w.WriteHeader(http.StatusTooManyRequests)
					return
				}
				writeAccounts(w, "")
			},
			validate: func(t *testing.T, tc *testClient, err error) {
				require.NoError(t, err)
				assert.Equal(t, []time.Duration{time.Second}, tc.waits)
			},
		},
		{
			name:       "Desiste após esgotar as tentativas",
			maxRetries: 2,
			handler: func(g *graphServer, w http.ResponseWriter, r *http.Request) {
				g.record(r)
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			validate: func(t *testing.T, tc *testClient, err error) {
				assert.ErrorContains(t, err, "falha após 3 tentativas")
				assert.Equal(t, 3, tc.graph.hits)
			},
		},
		{
			name:       "Erro 4xx não é repetido",
			maxRetries: 3,
			handler: func(g *graphServer, w http.ResponseWriter, r *http.Request) {
				g.record(r)
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"message":"Invalid parameter","type":"OAuthException","code":100}}`))
			},
			validate: func(t *testing.T, tc *testClient, err error) {
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
				assert.Equal(t, 1, tc.graph.hits)
				assert.Empty(t, tc.waits)
			},
		},
		{
			name:       "Token renovado é usado na nova tentativa",
			maxRetries: 3,
			handler: func(g *graphServer, w http.ResponseWriter, r *http.Request) {
				g.record(r)
				if r.URL.Query().Get("access_token") != "novo" {
					writeExpiredToken(w)
					return
				}
				writeAccounts(w, "")
			},
			validate: func(t *testing.T, tc *testClient, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"velho", "novo"}, tc.graph.tokens)
				assert.Equal(t, 1, tc.graph.exchanges)
				assert.Equal(t, "novo", tc.client.TokenManager.AccessToken())
				assert.Empty(t, tc.waits)
			},
		},
		{
			name:       "Segundo token recusado encerra sem novas tentativas",
			maxRetries: 3,
			handler: func(g *graphServer, w http.ResponseWriter, r *http.Request) {
				g.record(r)
				writeExpiredToken(w)
			},
			validate: func(t *testing.T, tc *testClient, err error) {
				assert.ErrorIs(t, err, ErrTokenRenewed)
				assert.Equal(t, []string{"velho", "novo"}, tc.graph.tokens)
				assert.Empty(t, tc.waits)
			},
		},
		{
			name:       "Mensagem de sessão expirada sem código também renova",
			maxRetries: 0,
			handler: func(g *graphServer, w http.ResponseWriter, r *http.Request) {
				g.record(r)
				if r.URL.Query().Get("access_token") != "novo" {
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(`Session has expired on Tuesday`))
					return
				}
				writeAccounts(w, "")
			},
			validate: func(t *testing.T, tc *testClient, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"velho", "novo"}, tc.graph.tokens)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newGraphTestClient(t, tt.maxRetries, tt.handler)
			_, err := tc.client.GetAdAccountsByBusinessID(context.Background(), "bm-1")
			tt.validate(t, tc, err)
		})
	}
}

func TestMetaClient_CircuitBreaker(t *testing.T) {
	t.Run("Respostas 4xx não abrem o breaker", func(t *testing.T) {
		tc := newGraphTestClient(t, 0, func(g *graphServer, w http.ResponseWriter, r *http.Request) {
			g.record(r)
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"message":"Unknown path","type":"GraphMethodException","code":803}}`))
		})

		for i := 0; i < 5; i++ {
			_, err := tc.client.GetAdAccountsByBusinessID(context.Background(), "bm-1")
			require.Error(t, err)
			assert.False(t, resilience.IsOpen(err))
		}

		assert.Equal(t, gobreaker.StateClosed, tc.client.breaker.State())
		assert.Equal(t, 5, tc.graph.hits)
	})

	t.Run("Falhas 5xx seguidas abrem o breaker", func(t *testing.T) {
		tc := newGraphTestClient(t, 0, func(g *graphServer, w http.ResponseWriter, r *http.Request) {
			g.record(r)
			w.WriteHeader(http.StatusBadGateway)
		})

		for i := 0; i < 3; i++ {
			_, err := tc.client.GetAdAccountsByBusinessID(context.Background(), "bm-1")
			require.Error(t, err)
		}

		_, err := tc.client.GetAdAccountsByBusinessID(context.Background(), "bm-1")
		assert.True(t, resilience.IsOpen(err))
		assert.Equal(t, 3, tc.graph.hits, "com o breaker aberto a Graph API não é chamada")
	})
}

func TestFetchAll(t *testing.T) {
	t.Run("Segue paging.next trocando o token embutido", func(t *testing.T) {
		var tc *testClient
		tc = newGraphTestClient(t, 0, func(g *graphServer, w http.ResponseWriter, r *http.Request) {
			switch g.record(r) {
			case 1:
				writeAccounts(w, tc.url+accountsPath+"?after=c1&access_token=antigo")
			case 2:
				assert.Equal(t, "c1", r.URL.Query().Get("after"))
				writeAccounts(w, tc.url+accountsPath+"?after=c2&access_token=antigo")
			default:
				writeAccounts(w, "")
			}
		})

		accounts, err := tc.client.GetAdAccountsByBusinessID(context.Background(), "bm-1")

		require.NoError(t, err)
		assert.Len(t, accounts, 3)
		assert.Equal(t, "bm-1", accounts[2].BusinessManagerID)
		assert.Equal(t, []string{"velho", "velho", "velho"}, tc.graph.tokens)
		assert.Equal(t, []time.Duration{200 * time.Millisecond, 200 * time.Millisecond}, tc.waits)
	})

	t.Run("Interrompe ao atingir o limite de páginas", func(t *testing.T) {
		var tc *testClient
		tc = newGraphTestClient(t, 0, func(g *graphServer, w http.ResponseWriter, r *http.Request) {
			g.record(r)
			writeAccounts(w, tc.url+accountsPath+"?after=sempre")
		})
		tc.client.maxPages = 2

		accounts, err := tc.client.GetAdAccountsByBusinessID(context.Background(), "bm-1")

		assert.Nil(t, accounts)
		assert.ErrorContains(t, err, "limite de 2 páginas")
		assert.Equal(t, 2, tc.graph.hits)
	})
}
