package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/pkg/metrics"
)

const defaultHost = "https://api.sendgrid.com"

//go:generate mockgen -source=sendgrid.go -destination=mocks/sendgrid_mock.go -package=mocks
type Sender interface {
	Send(ctx context.Context, to []string, subject, body string, isHTML bool) error
}

// SendGridSender envia e-mails pela API v3 do SendGrid
type SendGridSender struct {
	apiKey    string
	fromEmail string
	fromName  string
	host      string
}

func NewSendGridSender(cfg *config.Config) *SendGridSender {
	return &SendGridSender{
		apiKey:    cfg.SendGrid.APIKey,
		fromEmail: cfg.SendGrid.FromEmail,
		fromName:  cfg.SendGrid.FromName,
		host:      defaultHost,
	}
}

// Send envia uma única mensagem com todos os destinatários na mesma personalização
func (s *SendGridSender) Send(ctx context.Context, to []string, subject, body string, isHTML bool) error {
	if s.apiKey == "" {
		return fmt.Errorf("sendgrid: chave da API não configurada")
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(s.fromName, s.fromEmail))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, recipient := range to {
		personalization.AddTos(mail.NewEmail("", recipient))
	}
	message.AddPersonalizations(personalization)

	if isHTML {
		message.AddContent(mail.NewContent("text/html", body))
	} else {
		message.AddContent(mail.NewContent("text/plain", body))
	}

	request := sendgrid.GetRequest(s.apiKey, "/v3/mail/send", s.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(message)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		metrics.ObserveExternal("sendgrid", 0)
		return fmt.Errorf("sendgrid error: %w", err)
	}

	metrics.ObserveExternal("sendgrid", response.StatusCode)

	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}
