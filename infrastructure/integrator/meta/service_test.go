package meta

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func salesInsight() *metadomain.Insight {
	return &metadomain.Insight{
		AccountID:    "123",
		CampaignID:   "c-1",
		CampaignName: "Black Friday",
		AdSetID:      "as-1",
		AdSetName:    "Remarketing",
		Objective:    domain.ObjectiveOutcomeSales,
		Spend:        "123.45",
		Impressions:  "1000",
		Clicks:       "37",
		Reach:        " 800 ",
		DateStart:    "2024-03-01",
		DateStop:     "2024-03-31",
		Actions: []metadomain.Action{
			{ActionType: "purchase", Value: "3"},
			{ActionType: "omni_purchase", Value: "5"},
			{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "4"},
			{ActionType: "add_to_cart", Value: "9"},
			{ActionType: "omni_add_to_cart", Value: "11"},
		},
		ActionValues: []metadomain.Action{
			{ActionType: "purchase", Value: "150.50"},
			{ActionType: "omni_purchase", Value: "200.25"},
		},
	}
}

func TestFactoryInsightRow(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *metadomain.Insight
		validate func(t *testing.T, row *domain.InsightRow, err error)
	}{
		{
			name:  "Converte medidas em string",
			setup: salesInsight,
			validate: func(t *testing.T, row *domain.InsightRow, err error) {
				require.NoError(t, err)
				assert.Equal(t, "123", row.AccountID)
				assert.Equal(t, 123.45, row.Spend)
				assert.Equal(t, float64(1000), row.Impressions)
				assert.Equal(t, float64(37), row.Clicks)
				assert.Equal(t, float64(800), row.Reach)
				assert.Equal(t, "2024-03-01", row.Date)
			},
		},
		{
			name:  "Família de vendas usa o maior alias",
			setup: salesInsight,
			validate: func(t *testing.T, row *domain.InsightRow, err error) {
				require.NoError(t, err)
				assert.Equal(t, float64(5), row.SalesPurchase)
				assert.Equal(t, float64(11), row.SalesAddToCart)
				assert.Equal(t, float64(5), row.Conversions)
			},
		},
		{
			name:  "Valor de conversão vem de action_values",
			setup: salesInsight,
			validate: func(t *testing.T, row *domain.InsightRow, err error) {
				require.NoError(t, err)
				assert.Equal(t, 200.25, row.ConversionValues)
			},
		},
		{
			name: "Medida vazia vira zero",
			setup: func() *metadomain.Insight {
				insight := salesInsight()
				insight.Reach = ""
				insight.Actions = nil
				insight.ActionValues = nil
				return insight
			},
			validate: func(t *testing.T, row *domain.InsightRow, err error) {
				require.NoError(t, err)
				assert.Zero(t, row.Reach)
				assert.Zero(t, row.SalesPurchase)
				assert.Zero(t, row.ConversionValues)
			},
		},
		{
			name: "Sem account_id na linha usa a conta consultada",
			setup: func() *metadomain.Insight {
				insight := salesInsight()
				insight.AccountID = ""
				return insight
			},
			validate: func(t *testing.T, row *domain.InsightRow, err error) {
				require.NoError(t, err)
				assert.Equal(t, "999", row.AccountID)
			},
		},
		{
			name: "Rejeita gasto inválido",
			setup: func() *metadomain.Insight {
				insight := salesInsight()
				insight.Spend = "12,30"
				return insight
			},
			validate: func(t *testing.T, row *domain.InsightRow, err error) {
				assert.Nil(t, row)
				assert.ErrorIs(t, err, domain.ErrInvalidMeasure)

				var rowErr *domain.InvalidRowError
				require.ErrorAs(t, err, &rowErr)
				assert.Equal(t, "spend", rowErr.Field)
			},
		},
		{
			name: "Rejeita valor de ação inválido",
			setup: func() *metadomain.Insight {
				insight := salesInsight()
				insight.ActionValues = []metadomain.Action{{ActionType: "purchase", Value: "NaN?"}}
				return insight
			},
			validate: func(t *testing.T, row *domain.InsightRow, err error) {
				var rowErr *domain.InvalidRowError
				require.ErrorAs(t, err, &rowErr)
				assert.Equal(t, "actions.purchase", rowErr.Field)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := FactoryInsightRow("999", tt.setup())
			tt.validate(t, row, err)
		})
	}
}

func TestSumActions(t *testing.T) {
	counts, err := sumActions([]metadomain.Action{
		{ActionType: "purchase", Value: "1.5"},
		{ActionType: "purchase", Value: " 2.5"},
		{ActionType: "", Value: "9"},
		{ActionType: "lead", Value: "0.1"},
		{ActionType: "lead", Value: "0.2"},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"purchase": 4, "lead": 0.3}, counts)
}

func TestMetaIntegrator_GetMonthlyInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	query := func(breakdown metadomain.Breakdown) metadomain.InsightQuery {
		return metadomain.InsightQuery{Level: metadomain.LevelAdSet, Breakdown: breakdown, Since: "2024-03-01", Until: "2024-03-31"}
	}

	broken := salesInsight()
	broken.Impressions = "mil"
	demographic := salesInsight()
	demographic.Age = "25-34"
	demographic.Gender = "female"
	platform := salesInsight()
	platform.PublisherPlatform = "instagram"

	client.EXPECT().GetInsights(gomock.Any(), "123", query(metadomain.BreakdownNone)).
		Return([]metadomain.Insight{*salesInsight(), *broken}, nil)
	client.EXPECT().GetInsights(gomock.Any(), "123", query(metadomain.BreakdownAgeGender)).
		Return([]metadomain.Insight{*demographic}, nil)
	client.EXPECT().GetInsights(gomock.Any(), "123", query(metadomain.BreakdownPublisher)).
		Return([]metadomain.Insight{*platform}, nil)

	batch, err := New(&config.Config{}, client).GetMonthlyInsights(context.Background(), "123", since, until)

	require.NoError(t, err)
	require.Len(t, batch.AdSets, 1)
	assert.Equal(t, "2024-03", batch.AdSets[0].PeriodKey)
	require.Len(t, batch.Demographics, 1)
	assert.Equal(t, "25-34", batch.Demographics[0].AgeGroup)
	require.Len(t, batch.Platforms, 1)
	assert.Equal(t, "instagram", batch.Platforms[0].PublisherPlatform)
	require.Len(t, batch.Rejected, 1)
	assert.ErrorIs(t, batch.Rejected[0], domain.ErrInvalidMeasure)
}
