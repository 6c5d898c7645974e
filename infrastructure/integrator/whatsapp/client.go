package whatsapp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/metrics"
	"github.com/vfg2006/marketing-dashboard-api/pkg/resilience"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrNotConfigured = errors.New("credenciais do WhatsApp não configuradas")

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks
type Client interface {
	SendText(ctx context.Context, phone, message string) (string, error)
	SendMedia(ctx context.Context, phone string, file domain.ResourceFile) (string, error)
}

type CloudClient struct {
	cfg        config.WhatsApp
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func NewClient(cfg *config.Config) *CloudClient {
	timeout := cfg.WhatsApp.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &CloudClient{
		cfg:        cfg.WhatsApp,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    resilience.NewCircuitBreaker("whatsapp"),
	}
}

type messageResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SendText envia uma mensagem de texto simples
func (c *CloudClient) SendText(ctx context.Context, phone, message string) (string, error) {
	return c.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"to":                phone,
		"type":              "text",
		"text":              map[string]any{"body": message},
	})
}

// SendMedia envia um arquivo por link; o tipo vem do MIME e documentos levam o nome do arquivo
func (c *CloudClient) SendMedia(ctx context.Context, phone string, file domain.ResourceFile) (string, error) {
	mediaType := file.MediaType()

	media := map[string]any{"link": file.URL}
	if mediaType == "document" && file.Name != "" {
		media["filename"] = file.Name
	}

	return c.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"to":                phone,
		"type":              mediaType,
		mediaType:           media,
	})
}

func (c *CloudClient) send(ctx context.Context, payload map[string]any) (string, error) {
	if c.cfg.AccessToken == "" || c.cfg.PhoneNumberID == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar mensagem do WhatsApp")
	}

	url := fmt.Sprintf("%s/%s/messages", c.cfg.BaseURL, c.cfg.PhoneNumberID)

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição")
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.ObserveExternal("whatsapp", 0)
			return nil, errors.Wrap(err, "erro ao chamar a API do WhatsApp")
		}
		defer resp.Body.Close()

		metrics.ObserveExternal("whatsapp", resp.StatusCode)

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler resposta do WhatsApp")
		}

		if resp.StatusCode >= 300 {
			return nil, fmt.Errorf("whatsapp retornou status %d: %s", resp.StatusCode, string(respBody))
		}

		return respBody, nil
	})
	if err != nil {
		return "", err
	}

	var response messageResponse
	if err := json.Unmarshal(result.([]byte), &response); err != nil {
		return "", errors.Wrap(err, "erro ao decodificar resposta do WhatsApp")
	}

	if response.Error != nil {
		return "", fmt.Errorf("whatsapp erro %d: %s", response.Error.Code, response.Error.Message)
	}

	if len(response.Messages) == 0 {
		return "", nil
	}

	return response.Messages[0].ID, nil
}
