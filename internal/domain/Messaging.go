package domain

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	ErrMissingRecipients = errors.New("informe ao menos um destinatário")
	ErrInvalidEmail      = errors.New("e-mail inválido")
	ErrMissingSubject    = errors.New("assunto é obrigatório")
	ErrMissingBody       = errors.New("mensagem é obrigatória")
	ErrMissingPhone      = errors.New("telefone é obrigatório")
	ErrInvalidPhone      = errors.New("telefone inválido")
	ErrEmptyMessage      = errors.New("informe uma mensagem ou ao menos um arquivo")
)

var nonDigits = regexp.MustCompile(`[^\d]`)

// ResourceFile é um arquivo anexado a um envio
type ResourceFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size,omitempty"`
}

// MediaType deriva o tipo de mídia do WhatsApp a partir do MIME
func (f ResourceFile) MediaType() string {
	mime := strings.ToLower(f.MimeType)
	switch {
	case strings.Contains(mime, "image"):
		return "image"
	case strings.Contains(mime, "video"):
		return "video"
	case strings.Contains(mime, "audio"):
		return "audio"
	default:
		return "document"
	}
}

type EmailRequest struct {
	Recipients  []string `json:"recipients"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	ResourceIDs []string `json:"resource_ids"`
	IsHTML      bool     `json:"is_html"`
}

// Validate normaliza e confere destinatários, assunto e corpo
func (r *EmailRequest) Validate() error {
	recipients := make([]string, 0, len(r.Recipients))
	for _, recipient := range r.Recipients {
		recipient = strings.TrimSpace(recipient)
		if recipient == "" {
			continue
		}
		address, err := mail.ParseAddress(recipient)
		if err != nil || address.Address != recipient {
			return &InvalidRowError{Err: ErrInvalidEmail, Field: "recipients", Value: recipient}
		}
		recipients = append(recipients, recipient)
	}
	if len(recipients) == 0 {
		return ErrMissingRecipients
	}
	r.Recipients = recipients

	if strings.TrimSpace(r.Subject) == "" {
		return ErrMissingSubject
	}
	if strings.TrimSpace(r.Body) == "" {
		return ErrMissingBody
	}

	return nil
}

type WhatsAppRequest struct {
	Phone       string         `json:"phone"`
	Message     string         `json:"message"`
	ResourceIDs []string       `json:"resource_ids"`
	Files       []ResourceFile `json:"files"`
}

// Validate remove tudo que não for dígito do telefone e exige mensagem ou arquivos
func (r *WhatsAppRequest) Validate() error {
	if strings.TrimSpace(r.Phone) == "" {
		return ErrMissingPhone
	}

	clean := nonDigits.ReplaceAllString(r.Phone, "")
	if len(clean) < 10 || len(clean) > 15 {
		return &InvalidRowError{Err: ErrInvalidPhone, Field: "phone", Value: r.Phone}
	}
	r.Phone = clean

	for _, file := range r.Files {
		if !IsHTTPURL(file.URL) {
			return &InvalidRowError{Err: ErrInvalidResourceURL, Field: "files", Value: file.Name}
		}
	}

	if strings.TrimSpace(r.Message) == "" && len(r.Files) == 0 && len(r.ResourceIDs) == 0 {
		return ErrEmptyMessage
	}

	return nil
}

// SendResult resume um envio
type SendResult struct {
	Channel    string   `json:"channel"`
	Delivered  int      `json:"delivered"`
	MessageIDs []string `json:"message_ids,omitempty"`
}
