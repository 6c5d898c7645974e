package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingPromptName = errors.New("nome do prompt é obrigatório")
	ErrMissingData       = errors.New("dados para análise são obrigatórios")
)

// AIPrompt é um template de prompt cadastrado para análises
type AIPrompt struct {
	ID        int       `json:"id"`
	Name      string    `json:"prompt_name"`
	Template  string    `json:"prompt_template"`
	Active    bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AnalysisRequest struct {
	PromptName string `json:"promptName"`
	Data       any    `json:"data"`
}

func (r *AnalysisRequest) Validate() error {
	r.PromptName = strings.TrimSpace(r.PromptName)
	if r.PromptName == "" {
		return ErrMissingPromptName
	}
	if r.Data == nil {
		return ErrMissingData
	}
	return nil
}

type AnalysisResponse struct {
	PromptName string `json:"prompt_name"`
	Analysis   string `json:"analysis"`
}
