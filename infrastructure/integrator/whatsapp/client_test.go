package whatsapp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *CloudClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.Config{WhatsApp: config.WhatsApp{
		BaseURL:       server.URL,
		AccessToken:   "token",
		PhoneNumberID: "555",
	}})
}

func TestCloudClient_SendText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/555/messages", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"messaging_product":"whatsapp","to":"5511999999999","type":"text","text":{"body":"Olá"}}`, string(body))

		w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	})

	id, err := client.SendText(context.Background(), "5511999999999", "Olá")

	require.NoError(t, err)
	assert.Equal(t, "wamid.1", id)
}

func TestCloudClient_SendMedia(t *testing.T) {
	tests := []struct {
		name     string
		file     domain.ResourceFile
		expected string
	}{
		{
			name:     "Imagem",
			file:     domain.ResourceFile{Name: "banner.png", URL: "https://cdn.example.com/banner.png", MimeType: "image/png"},
			expected: `{"messaging_product":"whatsapp","to":"5511999999999","type":"image","image":{"link":"https://cdn.example.com/banner.png"}}`,
		},
		{
			name:     "Documento leva o nome do arquivo",
			file:     domain.ResourceFile{Name: "relatorio.pdf", URL: "https://cdn.example.com/relatorio.pdf", MimeType: "application/pdf"},
			expected: `{"messaging_product":"whatsapp","to":"5511999999999","type":"document","document":{"link":"https://cdn.example.com/relatorio.pdf","filename":"relatorio.pdf"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, tt.expected, string(body))
				w.Write([]byte(`{"messages":[{"id":"wamid.2"}]}`))
			})

			id, err := client.SendMedia(context.Background(), "5511999999999", tt.file)

			require.NoError(t, err)
			assert.Equal(t, "wamid.2", id)
		})
	}
}

func TestCloudClient_Erros(t *testing.T) {
	t.Run("Status de erro da API", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":190,"message":"expired"}}`))
		})

		_, err := client.SendText(context.Background(), "5511999999999", "Olá")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("Sem credenciais não chama a API", func(t *testing.T) {
		client := NewClient(&config.Config{})

		_, err := client.SendText(context.Background(), "5511999999999", "Olá")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}
