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

const shareResourcesTable = "share_resources"

var ErrShareResourceNotFound = errors.New("recurso não encontrado")

var shareResourceColumns = []string{
	"id", "client_id", "title", "description", "type", "url", "file_path", "mime_type", "size", "created_by", "created_at", "updated_at",
}

//go:generate mockgen -source=share_resource.go -destination=mocks/share_resource_mock.go -package=mocks
type ShareResourceRepository interface {
	Create(ctx context.Context, resource *domain.ShareResource) (*domain.ShareResource, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.ShareResource, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.ShareResource, error)
	Delete(ctx context.Context, id string) error
}

type shareResourceRepository struct {
	conn *postgres.Connection
}

func NewShareResourceRepository(conn *postgres.Connection) ShareResourceRepository {
	return &shareResourceRepository{
		conn: conn,
	}
}

func (r *shareResourceRepository) Create(ctx context.Context, resource *domain.ShareResource) (*domain.ShareResource, error) {
	var description, filePath, mimeType, size interface{}
	if resource.Description != nil {
		description = *resource.Description
	}
	if resource.FilePath != nil {
		filePath = *resource.FilePath
	}
	if resource.MimeType != nil {
		mimeType = *resource.MimeType
	}
	if resource.Size != nil {
		size = *resource.Size
	}

	query, args, err := squirrel.
		Insert(shareResourcesTable).
		Columns("id", "client_id", "title", "description", "type", "url", "file_path", "mime_type", "size", "created_by").
		Values(resource.ID, resource.ClientID, resource.Title, description, string(resource.Type), resource.URL, filePath, mimeType, size, resource.CreatedBy).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&resource.CreatedAt, &resource.UpdatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return resource, nil
}

func (r *shareResourceRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.ShareResource, error) {
	return r.list(ctx, squirrel.Eq{"client_id": clientID})
}

func (r *shareResourceRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.ShareResource, error) {
	if len(ids) == 0 {
		return []*domain.ShareResource{}, nil
	}
	return r.list(ctx, squirrel.Eq{"id": ids})
}

func (r *shareResourceRepository) list(ctx context.Context, where squirrel.Eq) ([]*domain.ShareResource, error) {
	query, args, err := squirrel.
		Select(shareResourceColumns...).
		From(shareResourcesTable).
		Where(where).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	resources := make([]*domain.ShareResource, 0)
	for rows.Next() {
		var (
			resource                        domain.ShareResource
			description, filePath, mimeType sql.NullString
			size                            sql.NullInt64
		)
		if err := rows.Scan(
			&resource.ID,
			&resource.ClientID,
			&resource.Title,
			&description,
			&resource.Type,
			&resource.URL,
			&filePath,
			&mimeType,
			&size,
			&resource.CreatedBy,
			&resource.CreatedAt,
			&resource.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear recurso: %w", err)
		}

		if description.Valid {
			resource.Description = &description.String
		}
		if filePath.Valid {
			resource.FilePath = &filePath.String
		}
		if mimeType.Valid {
			resource.MimeType = &mimeType.String
		}
		if size.Valid {
			resource.Size = &size.Int64
		}

		resources = append(resources, &resource)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return resources, nil
}

func (r *shareResourceRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(shareResourcesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrShareResourceNotFound
	}

	return nil
}
