package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:        "segredo-de-teste",
			TokenDuration: time.Hour,
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	activeUser := &domain.User{
		ID:             7,
		Name:           "Ana",
		Email:          "ana@loja.com",
		PasswordHash:   hashPassword(t, "Senha@123"),
		Active:         true,
		RoleID:         domain.RoleClient,
		LinkedAccounts: []string{"111", "222"},
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *mocks.MockUserRepository)
		validate func(t *testing.T, service *Service, resp *domain.LoginResponse, err error)
	}{
		{
			name:     "Sucesso - deve gerar token com as contas vinculadas",
			email:    "  ANA@loja.com ",
			password: "Senha@123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(activeUser, nil)
			},
			validate: func(t *testing.T, service *Service, resp *domain.LoginResponse, err error) {
				require.NoError(t, err)
				require.NotEmpty(t, resp.Token)
				assert.Empty(t, resp.User.PasswordHash)

				claims, err := service.ValidateToken(resp.Token)
				require.NoError(t, err)
				assert.Equal(t, 7, claims.UserID)
				assert.Equal(t, []string{"111", "222"}, claims.UserAccounts)
				assert.True(t, claims.CanAccessAccount("222"))
				assert.False(t, claims.CanAccessAccount("333"))
			},
		},
		{
			name:     "Campos vazios - deve falhar sem consultar o banco",
			email:    "",
			password: "",
			setup:    func(repo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, service *Service, resp *domain.LoginResponse, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name:     "Usuário inexistente - deve retornar não encontrado",
			email:    "outro@loja.com",
			password: "x",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "outro@loja.com").Return(nil, nil)
			},
			validate: func(t *testing.T, service *Service, resp *domain.LoginResponse, err error) {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrUserNotFound, authErr.Code)
			},
		},
		{
			name:     "Usuário desativado - deve bloquear o login",
			email:    "ana@loja.com",
			password: "Senha@123",
			setup: func(repo *mocks.MockUserRepository) {
				inactive := *activeUser
				inactive.Active = false
				repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&inactive, nil)
			},
			validate: func(t *testing.T, service *Service, resp *domain.LoginResponse, err error) {
				assert.True(t, IsCredentialsError(err))
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "Senha incorreta - deve retornar credenciais inválidas",
			email:    "ana@loja.com",
			password: "errada",
			setup: func(repo *mocks.MockUserRepository) {
				user := *activeUser
				repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&user, nil)
			},
			validate: func(t *testing.T, service *Service, resp *domain.LoginResponse, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "Erro no banco - deve retornar código de banco",
			email:    "ana@loja.com",
			password: "Senha@123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, service *Service, resp *domain.LoginResponse, err error) {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, authErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, newTestConfig()).(*Service)
			resp, err := service.LoginUser(context.Background(), tt.email, tt.password)
			tt.validate(t, service, resp, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	user := &domain.User{ID: 1, RoleID: domain.RoleAdmin}

	t.Run("Token expirado - deve retornar ErrExpiredToken", func(t *testing.T) {
		service := NewService(nil, newTestConfig()).(*Service)
		token, err := generateJWT(user, "segredo-de-teste", time.Now().Add(-time.Minute))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Assinatura com outro segredo - deve retornar ErrInvalidToken", func(t *testing.T) {
		service := NewService(nil, newTestConfig()).(*Service)
		token, err := generateJWT(user, "outro-segredo", time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Token malformado - deve retornar ErrInvalidToken", func(t *testing.T) {
		service := NewService(nil, newTestConfig()).(*Service)

		_, err := service.ValidateToken("nao.e.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, newTestConfig())

	userRepo.EXPECT().GetUserByID(gomock.Any(), 5).Return(&domain.User{ID: 5, PasswordHash: "hash"}, nil)
	userRepo.EXPECT().GetUserByID(gomock.Any(), 6).Return(nil, nil)

	user, err := service.GetUserProfile(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	_, err = service.GetUserProfile(context.Background(), 6)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
