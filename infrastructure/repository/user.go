package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// Usuários e as contas de anúncio (external_id) que cada um pode visualizar
//
//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{conn: conn}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Eq{"u.email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Eq{"u.id": userID})
}

// findOne carrega o usuário junto com as contas vinculadas numa única consulta.
// Usuário inexistente devolve (nil, nil).
func (r *userRepository) findOne(ctx context.Context, where squirrel.Sqlizer) (*domain.User, error) {
	query, args, err := squirrel.
		Select(
			"u.id", "u.name", "u.lastname", "u.email", "u.password_hash", "u.active",
			"u.role_id", "u.avatar_url", "u.created_at", "u.updated_at",
			"COALESCE(array_agg(ua.account_id) FILTER (WHERE ua.account_id IS NOT NULL), '{}')",
		).
		From("users u").
		LeftJoin("user_accounts ua ON ua.user_id = u.id").
		Where(where).
		GroupBy("u.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando consulta de usuário")
	}

	var user domain.User
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.AvatarURL,
		&user.CreatedAt,
		&user.UpdatedAt,
		pq.Array(&user.LinkedAccounts),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "consultando usuário")
	}

	return &user, nil
}
