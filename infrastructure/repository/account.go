package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

var ErrAccountNotFound = errors.New("conta não encontrada")

var accountColumns = []string{"id", "external_id", "name", "nickname", "currency", "status", "synced_at"}

// Contas de anúncio importadas dos business managers. external_id (sem act_) é a chave dos insights.
//
//go:generate mockgen -source=account.go -destination=mocks/account_mock.go -package=mocks
type AccountRepository interface {
	GetAccountByExternalID(ctx context.Context, externalID string) (*domain.AdAccount, error)
	ListAccounts(ctx context.Context, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	SaveOrUpdate(ctx context.Context, accounts []*domain.AdAccount) error
	UpdateAccount(ctx context.Context, account *domain.UpdateAdAccountRequest) error
	MarkSynced(ctx context.Context, accountID string) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{conn: conn}
}

func scanAccount(row interface{ Scan(...any) error }) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}
	err := row.Scan(&acc.ID, &acc.ExternalID, &acc.Name, &acc.Nickname, &acc.Currency, &acc.Status, &acc.SyncedAt)
	return acc, err
}

// pqError acrescenta o código do postgres à mensagem para facilitar o diagnóstico de constraints
func pqError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w (código: %s)", op, err, pqErr.Code)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// GetAccountByExternalID devolve (nil, nil) quando a conta ainda não foi importada
func (a *accountRepository) GetAccountByExternalID(ctx context.Context, externalID string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("montando consulta de conta: %w", err)
	}

	acc, err := scanAccount(a.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, pqError("consultando conta", err)
	}

	return acc, nil
}

// ListAccounts ordena pelo nome exibido no painel (apelido quando houver)
func (a *accountRepository) ListAccounts(ctx context.Context, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	builder := squirrel.
		Select(accountColumns...).
		From("accounts").
		OrderBy("COALESCE(nickname, name) ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		statuses := make([]string, len(availableStatus))
		for i, status := range availableStatus {
			statuses[i] = string(status)
		}
		builder = builder.Where(squirrel.Eq{"status": statuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("montando listagem de contas: %w", err)
	}

	rows, err := a.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, pqError("listando contas", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("lendo conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

// SaveOrUpdate importa as contas vindas da Meta. Nome e moeda seguem a Meta; apelido e status locais são preservados.
func (a *accountRepository) SaveOrUpdate(ctx context.Context, accounts []*domain.AdAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	builder := squirrel.
		Insert("accounts").
		Columns("id", "external_id", "name", "nickname", "currency", "status").
		PlaceholderFormat(squirrel.Dollar)

	for _, acc := range accounts {
		builder = builder.Values(acc.ID, acc.ExternalID, acc.Name, acc.Nickname, acc.Currency, string(acc.Status))
	}

	query, args, err := builder.
		Suffix(`ON CONFLICT (external_id) DO UPDATE SET
			name = EXCLUDED.name,
			currency = EXCLUDED.currency,
			nickname = COALESCE(accounts.nickname, EXCLUDED.nickname)`).
		ToSql()
	if err != nil {
		return fmt.Errorf("montando importação de contas: %w", err)
	}

	if _, err := a.conn.ExecContext(ctx, query, args...); err != nil {
		return pqError("importando contas", err)
	}

	return nil
}

func (a *accountRepository) UpdateAccount(ctx context.Context, account *domain.UpdateAdAccountRequest) error {
	if account.ID == "" {
		return domain.ErrMissingAccount
	}
	if account.Nickname == nil && account.Status == nil {
		return nil
	}

	builder := squirrel.
		Update("accounts").
		Where(squirrel.Eq{"external_id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)
	if account.Nickname != nil {
		builder = builder.Set("nickname", *account.Nickname)
	}
	if account.Status != nil {
		builder = builder.Set("status", *account.Status)
	}

	return a.execOne(ctx, builder, "atualizando conta")
}

// MarkSynced registra o fim de uma sincronização de insights da conta
func (a *accountRepository) MarkSynced(ctx context.Context, accountID string) error {
	builder := squirrel.
		Update("accounts").
		Set("synced_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"external_id": accountID}).
		PlaceholderFormat(squirrel.Dollar)

	return a.execOne(ctx, builder, "marcando sincronização")
}

// execOne executa o update e devolve ErrAccountNotFound se nenhuma conta casou
func (a *accountRepository) execOne(ctx context.Context, builder squirrel.UpdateBuilder, op string) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := a.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return pqError(op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
