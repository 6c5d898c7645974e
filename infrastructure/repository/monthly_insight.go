package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const monthlyInsightsTable = "meta_monthly_insights"

var monthlyInsights = newInsightTable(monthlyInsightsTable, []string{"adset_id", "month_year"})

//go:generate mockgen -source=monthly_insight.go -destination=mocks/monthly_insight_mock.go -package=mocks
type MonthlyInsightRepository interface {
	ListByAccountAndPeriod(ctx context.Context, accountID, period string) ([]*domain.InsightRow, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.InsightRow, error)
	ListPeriods(ctx context.Context, accountID string) ([]string, error)
	SaveOrUpdate(ctx context.Context, rows []*domain.InsightRow) error
	UpdateResults(ctx context.Context, rows []*domain.InsightRow) (int, error)
}

type monthlyInsightRepository struct {
	conn *postgres.Connection
}

func NewMonthlyInsightRepository(conn *postgres.Connection) MonthlyInsightRepository {
	return &monthlyInsightRepository{
		conn: conn,
	}
}

func (r *monthlyInsightRepository) ListByAccountAndPeriod(ctx context.Context, accountID, period string) ([]*domain.InsightRow, error) {
	builder := squirrel.
		Select(monthlyInsights.columns("mi")...).
		From(monthlyInsightsTable + " mi").
		Where(squirrel.Eq{"mi.account_id": accountID, "mi.month_year": period}).
		OrderBy("mi.spend DESC")

	return monthlyInsights.list(ctx, r.conn, builder)
}

func (r *monthlyInsightRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.InsightRow, error) {
	builder := squirrel.
		Select(monthlyInsights.columns("mi")...).
		From(monthlyInsightsTable + " mi").
		Where(squirrel.Eq{"mi.account_id": accountID}).
		OrderBy("mi.month_year DESC")

	return monthlyInsights.list(ctx, r.conn, builder)
}

// ListPeriods retorna os meses distintos com dados, do mais recente para o mais antigo
func (r *monthlyInsightRepository) ListPeriods(ctx context.Context, accountID string) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT mi.month_year").
		From(monthlyInsightsTable + " mi").
		Where(squirrel.Eq{"mi.account_id": accountID}).
		OrderBy("mi.month_year DESC").
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

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func (r *monthlyInsightRepository) SaveOrUpdate(ctx context.Context, rows []*domain.InsightRow) error {
	return monthlyInsights.upsert(ctx, r.conn, rows)
}

// UpdateResults regrava apenas as colunas derivadas das actions
func (r *monthlyInsightRepository) UpdateResults(ctx context.Context, rows []*domain.InsightRow) (int, error) {
	updated := 0

	for _, row := range rows {
		query, args, err := squirrel.
			Update(monthlyInsightsTable).
			Set("results", row.Results).
			Set("result_type", row.ResultType).
			Set("sales_purchase", row.SalesPurchase).
			Set("sales_add_to_cart", row.SalesAddToCart).
			Set("sales_initiate_checkout", row.SalesInitiateCheckout).
			Set("leads", row.Leads).
			Set("traffic", row.Traffic).
			Set("engagement", row.Engagement).
			Set("awareness", row.Awareness).
			Set("app_installs", row.AppInstalls).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"adset_id": row.AdSetID, "month_year": row.PeriodKey}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return updated, fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := r.conn.ExecContext(ctx, query, args...)
		if err != nil {
			return updated, fmt.Errorf("erro ao executar a query: %w", err)
		}

		if affected, err := result.RowsAffected(); err == nil && affected > 0 {
			updated++
		}
	}

	return updated, nil
}
