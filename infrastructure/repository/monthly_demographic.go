package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const monthlyDemographicsTable = "meta_monthly_demographics"

var monthlyDemographics = newInsightTable(
	monthlyDemographicsTable,
	[]string{"adset_id", "month_year", "age_group", "gender"},
	stringField("age_group", func(r *domain.InsightRow) *string { return &r.AgeGroup }),
	stringField("gender", func(r *domain.InsightRow) *string { return &r.Gender }),
)

//go:generate mockgen -source=monthly_demographic.go -destination=mocks/monthly_demographic_mock.go -package=mocks
type MonthlyDemographicRepository interface {
	ListByAccountAndPeriod(ctx context.Context, accountID, period string) ([]*domain.InsightRow, error)
	SaveOrUpdate(ctx context.Context, rows []*domain.InsightRow) error
}

type monthlyDemographicRepository struct {
	conn *postgres.Connection
}

func NewMonthlyDemographicRepository(conn *postgres.Connection) MonthlyDemographicRepository {
	return &monthlyDemographicRepository{
		conn: conn,
	}
}

func (r *monthlyDemographicRepository) ListByAccountAndPeriod(ctx context.Context, accountID, period string) ([]*domain.InsightRow, error) {
	builder := squirrel.
		Select(monthlyDemographics.columns("md")...).
		From(monthlyDemographicsTable + " md").
		Where(squirrel.Eq{"md.account_id": accountID, "md.month_year": period})

	return monthlyDemographics.list(ctx, r.conn, builder)
}

func (r *monthlyDemographicRepository) SaveOrUpdate(ctx context.Context, rows []*domain.InsightRow) error {
	return monthlyDemographics.upsert(ctx, r.conn, rows)
}
