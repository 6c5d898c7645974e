package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const monthlyPlatformsTable = "meta_monthly_platforms"

var monthlyPlatforms = newInsightTable(
	monthlyPlatformsTable,
	[]string{"account_id", "campaign_id", "adset_id", "month_year", "publisher_platform"},
	stringField("publisher_platform", func(r *domain.InsightRow) *string { return &r.PublisherPlatform }),
)

//go:generate mockgen -source=platform_insight.go -destination=mocks/platform_insight_mock.go -package=mocks
type PlatformInsightRepository interface {
	ListByAccountAndPeriod(ctx context.Context, accountID, period string) ([]*domain.InsightRow, error)
	SaveOrUpdate(ctx context.Context, rows []*domain.InsightRow) error
}

type platformInsightRepository struct {
	conn *postgres.Connection
}

func NewPlatformInsightRepository(conn *postgres.Connection) PlatformInsightRepository {
	return &platformInsightRepository{
		conn: conn,
	}
}

func (r *platformInsightRepository) ListByAccountAndPeriod(ctx context.Context, accountID, period string) ([]*domain.InsightRow, error) {
	builder := squirrel.
		Select(monthlyPlatforms.columns("mp")...).
		From(monthlyPlatformsTable + " mp").
		Where(squirrel.Eq{"mp.account_id": accountID, "mp.month_year": period})

	return monthlyPlatforms.list(ctx, r.conn, builder)
}

func (r *platformInsightRepository) SaveOrUpdate(ctx context.Context, rows []*domain.InsightRow) error {
	return monthlyPlatforms.upsert(ctx, r.conn, rows)
}
