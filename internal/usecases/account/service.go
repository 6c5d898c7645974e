package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
)

type AccountService interface {
	ListAdAccounts(ctx context.Context, viewer *domain.Claims, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	UpdateAccount(ctx context.Context, request *domain.UpdateAdAccountRequest) (*domain.AdAccount, error)
	SyncAccounts(ctx context.Context) (*domain.SyncAccountsResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	metaService       meta.Integrator
}

func NewService(accountRepository repository.AccountRepository, metaService meta.Integrator) AccountService {
	return &Service{
		accountRepository: accountRepository,
		metaService:       metaService,
	}
}

// ListAdAccounts devolve as contas visíveis para o usuário: admin e supervisor veem todas, clientes apenas as vinculadas
func (s *Service) ListAdAccounts(ctx context.Context, viewer *domain.Claims, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	accounts, err := s.accountRepository.ListAccounts(ctx, availableStatus)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas no repositório")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	if viewer == nil {
		return accounts, nil
	}

	visible := make([]*domain.AdAccount, 0, len(accounts))
	for _, account := range accounts {
		if viewer.CanAccessAccount(account.ExternalID) {
			visible = append(visible, account)
		}
	}

	return visible, nil
}

// SyncAccounts importa as contas dos business managers configurados. Apelido e status locais são preservados.
func (s *Service) SyncAccounts(ctx context.Context) (*domain.SyncAccountsResponse, error) {
	response := &domain.SyncAccountsResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar contas",
		Error:    true,
	}

	accounts, err := s.metaService.GetAdAccounts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao obter contas do integrador Meta")
		return response, NewAccountError(ErrMetaIntegration, apiErrors.ErrExternalService, "Falha ao obter contas da API do Meta")
	}

	for _, acc := range accounts {
		if acc.ID == "" {
			acc.ID = uuid.NewString()
		}
	}

	if err := s.accountRepository.SaveOrUpdate(ctx, accounts); err != nil {
		logrus.WithError(err).Error("Erro ao salvar contas sincronizadas")
		return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar contas")
	}

	quantity := len(accounts)

	logrus.WithField("quantity", quantity).Info("Contas sincronizadas com sucesso")

	response.Quantity = quantity
	response.Message = fmt.Sprintf("%d contas foram sincronizadas com sucesso", quantity)
	response.Error = false

	return response, nil
}

func (s *Service) UpdateAccount(ctx context.Context, request *domain.UpdateAdAccountRequest) (*domain.AdAccount, error) {
	if request.ID == "" {
		return nil, ErrAccountIDRequired
	}

	if request.Status != nil {
		status := domain.AdAccountStatus(*request.Status)
		if status != domain.AdAccountStatusActive && status != domain.AdAccountStatusInactive {
			return nil, NewAccountErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, request.ID, "Status deve ser ACTIVE ou INACTIVE")
		}
	}

	err := s.accountRepository.UpdateAccount(ctx, request)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, request.ID, "Conta não encontrada")
	}
	if err != nil {
		logrus.WithError(err).WithField("account_id", request.ID).Error("Erro ao atualizar conta no repositório")
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	account, err := s.accountRepository.GetAccountByExternalID(ctx, request.ID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Erro ao buscar conta no banco de dados")
	}
	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, request.ID, "Conta não encontrada")
	}

	return account, nil
}
