package analyzing

import (
	"context"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/resilience"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const noAnalysisGenerated = "No analysis generated"

type Analyzer interface {
	Analyze(ctx context.Context, req *domain.AnalysisRequest) (*domain.AnalysisResponse, error)
}

type Service struct {
	prompts repository.PromptRepository
	gemini  gemini.Client
}

func NewService(prompts repository.PromptRepository, geminiClient gemini.Client) *Service {
	return &Service{
		prompts: prompts,
		gemini:  geminiClient,
	}
}

// Analyze monta o prompt cadastrado com os dados em JSON e pede a análise ao Gemini
func (s *Service) Analyze(ctx context.Context, req *domain.AnalysisRequest) (*domain.AnalysisResponse, error) {
	if req == nil {
		return nil, NewAnalysisError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "corpo vazio")
	}
	if err := req.Validate(); err != nil {
		return nil, NewAnalysisError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, err.Error())
	}

	prompt, err := s.prompts.GetActiveByName(ctx, req.PromptName)
	if err != nil {
		logrus.WithError(err).WithField("prompt_name", req.PromptName).Error("Erro ao buscar prompt de análise")
		return nil, NewAnalysisError(ErrDatabase, apiErrors.ErrDatabaseOperation, "")
	}
	if prompt == nil {
		return nil, NewAnalysisError(ErrPromptNotFound, apiErrors.ErrResourceNotFound, req.PromptName)
	}

	fullPrompt, err := BuildPrompt(prompt.Template, req.Data)
	if err != nil {
		return nil, NewAnalysisError(ErrSerializingData, apiErrors.ErrInvalidFormat, err.Error())
	}

	text, err := s.gemini.GenerateContent(ctx, fullPrompt)
	if err != nil {
		logrus.WithError(err).WithField("prompt_name", req.PromptName).Error("Erro ao chamar o Gemini")
		if resilience.IsOpen(err) {
			return nil, NewAnalysisError(ErrGeminiFailure, apiErrors.ErrCommunication, "serviço de análise temporariamente indisponível")
		}
		return nil, NewAnalysisError(ErrGeminiFailure, apiErrors.ErrExternalService, err.Error())
	}

	if strings.TrimSpace(text) == "" {
		text = noAnalysisGenerated
	}

	return &domain.AnalysisResponse{
		PromptName: req.PromptName,
		Analysis:   text,
	}, nil
}

// BuildPrompt anexa os dados indentados ao template em um bloco json
func BuildPrompt(template string, data any) (string, error) {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}

	return template + "\n\n**Data to Analyze:**\n\n```json\n" + string(payload) + "\n```", nil
}
