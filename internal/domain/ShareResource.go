package domain

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

type ShareResourceType string

const (
	ShareResourceFile  ShareResourceType = "file"
	ShareResourceLink  ShareResourceType = "link"
	ShareResourceImage ShareResourceType = "image"
)

var (
	ErrInvalidResourceType = errors.New("tipo de recurso inválido")
	ErrMissingTitle        = errors.New("título é obrigatório")
	ErrMissingClient       = errors.New("cliente é obrigatório")
	ErrInvalidResourceURL  = errors.New("url do recurso inválida")
)

// ShareResource é um material compartilhado com um cliente
type ShareResource struct {
	ID          string            `json:"id"`
	ClientID    string            `json:"client_id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Type        ShareResourceType `json:"type"`
	URL         string            `json:"url"`
	FilePath    *string           `json:"file_path"`
	MimeType    *string           `json:"mime_type"`
	Size        *int64            `json:"size"`
	CreatedBy   int               `json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type CreateShareResourceRequest struct {
	ClientID    string            `json:"client_id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Type        ShareResourceType `json:"type"`
	URL         string            `json:"url"`
	FilePath    *string           `json:"file_path"`
	MimeType    *string           `json:"mime_type"`
	Size        *int64            `json:"size"`
}

// Validate confere os campos antes de persistir
func (r *CreateShareResourceRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.URL = strings.TrimSpace(r.URL)

	if strings.TrimSpace(r.ClientID) == "" {
		return ErrMissingClient
	}
	if r.Title == "" {
		return ErrMissingTitle
	}

	switch r.Type {
	case ShareResourceFile, ShareResourceLink, ShareResourceImage:
	default:
		return ErrInvalidResourceType
	}

	if !IsHTTPURL(r.URL) {
		return ErrInvalidResourceURL
	}

	return nil
}

// IsHTTPURL aceita apenas URLs absolutas http ou https
func IsHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
