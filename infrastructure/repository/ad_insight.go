package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const adInsightsTable = "meta_ad_insights"

// Linhas diárias por anúncio; month_year é derivado da data
var adInsights = newInsightTable(
	adInsightsTable,
	[]string{"ad_id", "date"},
	stringField("ad_id", func(r *domain.InsightRow) *string { return &r.AdID }),
	stringField("ad_name", func(r *domain.InsightRow) *string { return &r.AdName }),
	stringField("creative_id", func(r *domain.InsightRow) *string { return &r.CreativeID }),
	stringField("date", func(r *domain.InsightRow) *string { return &r.Date }),
)

//go:generate mockgen -source=ad_insight.go -destination=mocks/ad_insight_mock.go -package=mocks
type AdInsightRepository interface {
	ListByAccountAndPeriod(ctx context.Context, accountID, period string) ([]*domain.InsightRow, error)
	ListByAccountAndRange(ctx context.Context, accountID string, since, until time.Time) ([]*domain.InsightRow, error)
	SaveOrUpdate(ctx context.Context, rows []*domain.InsightRow) error
}

type adInsightRepository struct {
	conn *postgres.Connection
}

func NewAdInsightRepository(conn *postgres.Connection) AdInsightRepository {
	return &adInsightRepository{
		conn: conn,
	}
}

func (r *adInsightRepository) ListByAccountAndPeriod(ctx context.Context, accountID, period string) ([]*domain.InsightRow, error) {
	builder := squirrel.
		Select(adInsights.columns("ai")...).
		From(adInsightsTable + " ai").
		Where(squirrel.Eq{"ai.account_id": accountID, "ai.month_year": period})

	return adInsights.list(ctx, r.conn, builder)
}

func (r *adInsightRepository) ListByAccountAndRange(ctx context.Context, accountID string, since, until time.Time) ([]*domain.InsightRow, error) {
	builder := squirrel.
		Select(adInsights.columns("ai")...).
		From(adInsightsTable + " ai").
		Where(squirrel.Eq{"ai.account_id": accountID}).
		Where(squirrel.GtOrEq{"ai.date": since.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ai.date": until.Format(time.DateOnly)})

	return adInsights.list(ctx, r.conn, builder)
}

func (r *adInsightRepository) SaveOrUpdate(ctx context.Context, rows []*domain.InsightRow) error {
	return adInsights.upsert(ctx, r.conn, rows)
}
