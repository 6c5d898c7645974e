package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

//go:generate mockgen -source=prompt.go -destination=mocks/prompt_mock.go -package=mocks
type PromptRepository interface {
	GetActiveByName(ctx context.Context, name string) (*domain.AIPrompt, error)
}

type promptRepository struct {
	conn *postgres.Connection
}

func NewPromptRepository(conn *postgres.Connection) PromptRepository {
	return &promptRepository{
		conn: conn,
	}
}

// GetActiveByName retorna nil quando não há prompt ativo com esse nome
func (r *promptRepository) GetActiveByName(ctx context.Context, name string) (*domain.AIPrompt, error) {
	query, args, err := squirrel.
		Select("id, prompt_name, prompt_template, is_active, updated_at").
		From("ai_prompts").
		Where(squirrel.Eq{"prompt_name": name, "is_active": true}).
		OrderBy("updated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	prompt := &domain.AIPrompt{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&prompt.ID,
		&prompt.Name,
		&prompt.Template,
		&prompt.Active,
		&prompt.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar prompt: %w", err)
	}

	return prompt, nil
}
