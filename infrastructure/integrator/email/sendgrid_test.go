package email

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
)

func TestSendGridSender_Send(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		validate func(t *testing.T, err error)
	}{
		{
			name:   "Envio aceito",
			status: http.StatusAccepted,
			validate: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:   "Status de erro vira erro",
			status: http.StatusBadRequest,
			validate: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "400")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v3/mail/send", r.URL.Path)
				assert.Equal(t, "Bearer chave", r.Header.Get("Authorization"))

				body, _ := io.ReadAll(r.Body)
				assert.Contains(t, string(body), "a@example.com")
				assert.Contains(t, string(body), "b@example.com")
				assert.Contains(t, string(body), "Relatório mensal")

				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			sender := NewSendGridSender(&config.Config{SendGrid: config.SendGrid{
				APIKey:    "chave",
				FromEmail: "no-reply@example.com",
				FromName:  "Painel",
			}})
			sender.host = server.URL

			err := sender.Send(context.Background(), []string{"a@example.com", "b@example.com"}, "Relatório mensal", "corpo", false)
			tt.validate(t, err)
		})
	}
}

func TestSendGridSender_SemChave(t *testing.T) {
	sender := NewSendGridSender(&config.Config{})

	err := sender.Send(context.Background(), []string{"a@example.com"}, "assunto", "corpo", false)
	assert.Error(t, err)
}
