package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/sharing"
	sharingmocks "github.com/vfg2006/marketing-dashboard-api/internal/usecases/sharing/mocks"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestShareResourcesRoutes(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		token        string
		body         string
		setup        func(service *sharingmocks.MockSharingService)
		expectedCode int
	}{
		{
			name:   "Cliente lista recursos da própria conta",
			method: http.MethodGet,
			path:   "/v1/clients/111/resources",
			token:  "client",
			setup: func(service *sharingmocks.MockSharingService) {
				service.EXPECT().ListResources(gomock.Any(), "111").Return([]*domain.ShareResource{{ID: "r1"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Cliente não lista recursos de outra conta",
			method:       http.MethodGet,
			path:         "/v1/clients/222/resources",
			token:        "client",
			setup:        func(service *sharingmocks.MockSharingService) {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Criação usa o cliente da rota e o usuário do token",
			method: http.MethodPost,
			path:   "/v1/clients/111/resources",
			token:  "client",
			body:   `{"client_id":"999","title":"Manual","type":"link","url":"https://loja.com/manual"}`,
			setup: func(service *sharingmocks.MockSharingService) {
				service.EXPECT().CreateResource(gomock.Any(), 9, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, req *domain.CreateShareResourceRequest) (*domain.ShareResource, error) {
						assert.Equal(t, "111", req.ClientID)
						return &domain.ShareResource{ID: "novo", ClientID: req.ClientID}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "Validação do caso de uso - 400",
			method: http.MethodPost,
			path:   "/v1/clients/111/resources",
			token:  "client",
			body:   `{"title":"","type":"link","url":"https://loja.com"}`,
			setup: func(service *sharingmocks.MockSharingService) {
				service.EXPECT().CreateResource(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, sharing.NewSharingError(sharing.ErrInvalidRequest, apiErrors.ErrInvalidRequest, domain.ErrMissingTitle.Error()))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Cliente não remove recursos",
			method:       http.MethodDelete,
			path:         "/v1/resources/r1",
			token:        "client",
			setup:        func(service *sharingmocks.MockSharingService) {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Admin remove recurso",
			method: http.MethodDelete,
			path:   "/v1/resources/r1",
			token:  "admin",
			setup: func(service *sharingmocks.MockSharingService) {
				service.EXPECT().DeleteResource(gomock.Any(), "r1").Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Remoção de recurso inexistente - 404",
			method: http.MethodDelete,
			path:   "/v1/resources/r2",
			token:  "admin",
			setup: func(service *sharingmocks.MockSharingService) {
				service.EXPECT().DeleteResource(gomock.Any(), "r2").
					Return(sharing.NewSharingError(sharing.ErrResourceNotFound, apiErrors.ErrResourceNotFound, "r2"))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Envio de e-mail",
			method: http.MethodPost,
			path:   "/v1/send/email",
			token:  "client",
			body:   `{"recipients":["ana@loja.com"],"subject":"Relatório","body":"Segue"}`,
			setup: func(service *sharingmocks.MockSharingService) {
				service.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(&domain.SendResult{Channel: "email", Delivered: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Corpo inválido no WhatsApp",
			method:       http.MethodPost,
			path:         "/v1/send/whatsapp",
			token:        "client",
			body:         `[`,
			setup:        func(service *sharingmocks.MockSharingService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := sharingmocks.NewMockSharingService(ctrl)
			tt.setup(service)

			server := newTestServer(t, ctrl, ShareResources(service))
			rec := doRequest(server, tt.method, tt.path, tt.token, tt.body)

			require.Equal(t, tt.expectedCode, rec.Code, rec.Body.String())
		})
	}
}

func TestSendWhatsApp_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := sharingmocks.NewMockSharingService(ctrl)
	service.EXPECT().SendWhatsApp(gomock.Any(), gomock.Any()).Return(
		&domain.SendResult{Channel: "whatsapp", Delivered: 1, MessageIDs: []string{"wamid.1"}},
		sharing.NewSharingError(sharing.ErrSendFailed, apiErrors.ErrExternalService, "manual.pdf: timeout"),
	)

	server := newTestServer(t, ctrl, ShareResources(service))
	rec := doRequest(server, http.MethodPost, "/v1/send/whatsapp", "client",
		`{"phone":"11987654321","message":"Olá","files":[{"name":"manual.pdf","url":"https://loja.com/manual.pdf"}]}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var apiErr struct {
		Code    string             `json:"code"`
		Details *domain.SendResult `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
	require.NotNil(t, apiErr.Details)
	assert.Equal(t, 1, apiErr.Details.Delivered)
}
