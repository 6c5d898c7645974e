package analyzing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geminimocks "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/gemini/mocks"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt("Analise as campanhas.", map[string]int{"clicks": 10})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(prompt, "Analise as campanhas.\n\n**Data to Analyze:**\n\n```json\n"))
	assert.Contains(t, prompt, `"clicks": 10`)
	assert.True(t, strings.HasSuffix(prompt, "\n```"))
}

func TestService_Analyze(t *testing.T) {
	activePrompt := &domain.AIPrompt{ID: 1, Name: "comparativo", Template: "Compare os períodos.", Active: true}

	tests := []struct {
		name     string
		request  *domain.AnalysisRequest
		setup    func(prompts *mocks.MockPromptRepository, client *geminimocks.MockClient)
		validate func(t *testing.T, resp *domain.AnalysisResponse, err error)
	}{
		{
			name:    "Sucesso - deve devolver o texto gerado",
			request: &domain.AnalysisRequest{PromptName: " comparativo ", Data: map[string]any{"spend": 100}},
			setup: func(prompts *mocks.MockPromptRepository, client *geminimocks.MockClient) {
				prompts.EXPECT().GetActiveByName(gomock.Any(), "comparativo").Return(activePrompt, nil)
				client.EXPECT().
					GenerateContent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, prompt string) (string, error) {
						assert.True(t, strings.HasPrefix(prompt, "Compare os períodos."))
						assert.Contains(t, prompt, `"spend": 100`)
						return "O segundo período teve melhor CTR.", nil
					})
			},
			validate: func(t *testing.T, resp *domain.AnalysisResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "comparativo", resp.PromptName)
				assert.Equal(t, "O segundo período teve melhor CTR.", resp.Analysis)
			},
		},
		{
			name:    "Sem candidatos - deve devolver o texto padrão",
			request: &domain.AnalysisRequest{PromptName: "comparativo", Data: []int{1}},
			setup: func(prompts *mocks.MockPromptRepository, client *geminimocks.MockClient) {
				prompts.EXPECT().GetActiveByName(gomock.Any(), "comparativo").Return(activePrompt, nil)
				client.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).Return("", nil)
			},
			validate: func(t *testing.T, resp *domain.AnalysisResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "No analysis generated", resp.Analysis)
			},
		},
		{
			name:    "Prompt inexistente - deve retornar não encontrado sem chamar o Gemini",
			request: &domain.AnalysisRequest{PromptName: "inexistente", Data: 1},
			setup: func(prompts *mocks.MockPromptRepository, client *geminimocks.MockClient) {
				prompts.EXPECT().GetActiveByName(gomock.Any(), "inexistente").Return(nil, nil)
			},
			validate: func(t *testing.T, resp *domain.AnalysisResponse, err error) {
				var analysisErr *AnalysisError
				require.ErrorAs(t, err, &analysisErr)
				assert.Equal(t, apiErrors.ErrResourceNotFound, analysisErr.Code)
				assert.ErrorIs(t, err, ErrPromptNotFound)
			},
		},
		{
			name:    "Sem dados - deve falhar na validação",
			request: &domain.AnalysisRequest{PromptName: "comparativo"},
			setup:   func(prompts *mocks.MockPromptRepository, client *geminimocks.MockClient) {},
			validate: func(t *testing.T, resp *domain.AnalysisResponse, err error) {
				assert.ErrorIs(t, err, ErrInvalidRequest)
			},
		},
		{
			name:    "Falha no Gemini - deve retornar erro de serviço externo",
			request: &domain.AnalysisRequest{PromptName: "comparativo", Data: 1},
			setup: func(prompts *mocks.MockPromptRepository, client *geminimocks.MockClient) {
				prompts.EXPECT().GetActiveByName(gomock.Any(), gomock.Any()).Return(activePrompt, nil)
				client.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).Return("", errors.New("gemini retornou status 500"))
			},
			validate: func(t *testing.T, resp *domain.AnalysisResponse, err error) {
				var analysisErr *AnalysisError
				require.ErrorAs(t, err, &analysisErr)
				assert.Equal(t, apiErrors.ErrExternalService, analysisErr.Code)
			},
		},
		{
			name:    "Breaker aberto - deve retornar serviço indisponível",
			request: &domain.AnalysisRequest{PromptName: "comparativo", Data: 1},
			setup: func(prompts *mocks.MockPromptRepository, client *geminimocks.MockClient) {
				prompts.EXPECT().GetActiveByName(gomock.Any(), gomock.Any()).Return(activePrompt, nil)
				client.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).Return("", gobreaker.ErrOpenState)
			},
			validate: func(t *testing.T, resp *domain.AnalysisResponse, err error) {
				var analysisErr *AnalysisError
				require.ErrorAs(t, err, &analysisErr)
				assert.Equal(t, apiErrors.ErrCommunication, analysisErr.Code)
			},
		},
		{
			name:    "Erro no banco - deve retornar código de banco",
			request: &domain.AnalysisRequest{PromptName: "comparativo", Data: 1},
			setup: func(prompts *mocks.MockPromptRepository, client *geminimocks.MockClient) {
				prompts.EXPECT().GetActiveByName(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, resp *domain.AnalysisResponse, err error) {
				assert.ErrorIs(t, err, ErrDatabase)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			prompts := mocks.NewMockPromptRepository(ctrl)
			client := geminimocks.NewMockClient(ctrl)
			tt.setup(prompts, client)

			resp, err := NewService(prompts, client).Analyze(context.Background(), tt.request)
			tt.validate(t, resp, err)
		})
	}
}
