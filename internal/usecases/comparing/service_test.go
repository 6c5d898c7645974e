package comparing

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/marketing-dashboard-api/infrastructure/cache/mocks"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	monthly      *mocks.MockMonthlyInsightRepository
	demographics *mocks.MockMonthlyDemographicRepository
	platforms    *mocks.MockPlatformInsightRepository
	ads          *mocks.MockAdInsightRepository
	catalog      *mocks.MockCatalogRepository
	snapshots    *cachemocks.MockSnapshotCache
}

func newTestService(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		monthly:      mocks.NewMockMonthlyInsightRepository(ctrl),
		demographics: mocks.NewMockMonthlyDemographicRepository(ctrl),
		platforms:    mocks.NewMockPlatformInsightRepository(ctrl),
		ads:          mocks.NewMockAdInsightRepository(ctrl),
		catalog:      mocks.NewMockCatalogRepository(ctrl),
		snapshots:    cachemocks.NewMockSnapshotCache(ctrl),
	}

	service := NewService(Repositories{
		MonthlyInsights: m.monthly,
		Demographics:    m.demographics,
		Platforms:       m.platforms,
		AdInsights:      m.ads,
		Catalog:         m.catalog,
	}, m.snapshots, time.Minute)

	return service, m
}

func monthlyRows(period string) []*domain.InsightRow {
	if period == "2024-01" {
		return []*domain.InsightRow{
			{PeriodKey: "2024-01", AccountID: "acc-1", CampaignID: "c1", AdSetID: "as-1", AdSetName: "Conjunto", Spend: 100, Impressions: 1000, Clicks: 10, Results: 5, ResultType: "link_click", ActionCounts: map[string]float64{"link_click": 5}},
		}
	}
	return []*domain.InsightRow{
		{PeriodKey: "2024-02", AccountID: "acc-1", CampaignID: "c1", AdSetID: "as-1", AdSetName: "Conjunto", Spend: 200, Impressions: 1000, Clicks: 20, Results: 10},
		{PeriodKey: "2024-02", AccountID: "acc-1", CampaignID: "c2", AdSetID: "as-2", AdSetName: "Novo", Spend: 50, Impressions: 500, Clicks: 5, Results: 1},
		// linha inválida é descartada antes da agregação
		{PeriodKey: "2024-13", AccountID: "acc-1", CampaignID: "c1", Spend: 1000},
	}
}

func expectEmptySecondaryData(m *serviceMocks) {
	m.demographics.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", gomock.Any()).Return([]*domain.InsightRow{}, nil).AnyTimes()
	m.platforms.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", gomock.Any()).Return([]*domain.InsightRow{}, nil).AnyTimes()
	m.ads.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", gomock.Any()).Return([]*domain.InsightRow{}, nil).AnyTimes()
	m.catalog.EXPECT().ListCampaigns(gomock.Any(), "acc-1").Return([]*domain.Campaign{
		{ID: "c1", AccountID: "acc-1", Name: "Tráfego", Objective: "OUTCOME_TRAFFIC", Status: "ACTIVE"},
	}, nil).AnyTimes()
}

func TestService_LoadComparison(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.ComparisonRequest
		setup    func(m *serviceMocks)
		validate func(t *testing.T, report *domain.ComparisonReport, err error)
	}{
		{
			name:    "Requisição com períodos iguais é rejeitada sem acessar o banco",
			request: &domain.ComparisonRequest{AccountID: "acc-1", PeriodA: "2024-01", PeriodB: "2024-01", ViewerID: 1},
			setup:   func(m *serviceMocks) {},
			validate: func(t *testing.T, report *domain.ComparisonReport, err error) {
				assert.Nil(t, report)
				require.ErrorIs(t, err, ErrInvalidRequest)

				var compErr *ComparisonError
				require.True(t, errors.As(err, &compErr))
				assert.Equal(t, apiErrors.ErrInvalidRequest, compErr.Code)
			},
		},
		{
			name:    "Período em formato inválido é rejeitado",
			request: &domain.ComparisonRequest{AccountID: "acc-1", PeriodA: "01/2024", PeriodB: "2024-02", ViewerID: 1},
			setup:   func(m *serviceMocks) {},
			validate: func(t *testing.T, report *domain.ComparisonReport, err error) {
				require.ErrorIs(t, err, ErrInvalidRequest)
			},
		},
		{
			name:    "Carga completa gera relatório e grava o snapshot",
			request: &domain.ComparisonRequest{AccountID: "acc-1", PeriodA: "2024-01", PeriodB: "2024-02", ViewerID: 1},
			setup: func(m *serviceMocks) {
				m.monthly.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", "2024-01").Return(monthlyRows("2024-01"), nil)
				m.monthly.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", "2024-02").Return(monthlyRows("2024-02"), nil)
				expectEmptySecondaryData(m)
				m.snapshots.EXPECT().SaveSnapshot(gomock.Any(), 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, report *domain.ComparisonReport) error {
						assert.Equal(t, uint64(1), report.Generation)
						return nil
					})
			},
			validate: func(t *testing.T, report *domain.ComparisonReport, err error) {
				require.NoError(t, err)
				require.NotNil(t, report)

				assert.Equal(t, 1, report.RejectedRows)
				assert.Equal(t, 100.0, report.Totals.PeriodA.Spend)
				assert.Equal(t, 250.0, report.Totals.PeriodB.Spend)
				assert.InDelta(t, 150.0, report.Totals.Changes[domain.MetricSpend], 1e-9)

				require.Len(t, report.Objectives, 2)
				assert.Equal(t, "OUTCOME_TRAFFIC", report.Objectives[0].Key)
				assert.Equal(t, domain.UnknownObjective, report.Objectives[1].Key)

				require.Len(t, report.AdSets, 2)
				assert.Equal(t, "Conjunto", report.AdSets[0].Key)

				require.Len(t, report.ResultTypes.PeriodA, 1)
				assert.Equal(t, "link_click", report.ResultTypes.PeriodA[0].ActionType)
			},
		},
		{
			name:    "Falha em qualquer busca invalida a carga e não grava snapshot",
			request: &domain.ComparisonRequest{AccountID: "acc-1", PeriodA: "2024-01", PeriodB: "2024-02", ViewerID: 1},
			setup: func(m *serviceMocks) {
				m.monthly.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, period string) ([]*domain.InsightRow, error) {
						return monthlyRows(period), nil
					}).AnyTimes()
				m.demographics.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", "2024-02").Return(nil, errors.New("conexão recusada")).AnyTimes()
				m.demographics.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", "2024-01").Return([]*domain.InsightRow{}, nil).AnyTimes()
				m.platforms.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", gomock.Any()).Return([]*domain.InsightRow{}, nil).AnyTimes()
				m.ads.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", gomock.Any()).Return([]*domain.InsightRow{}, nil).AnyTimes()
				m.catalog.EXPECT().ListCampaigns(gomock.Any(), "acc-1").Return([]*domain.Campaign{}, nil).AnyTimes()
			},
			validate: func(t *testing.T, report *domain.ComparisonReport, err error) {
				assert.Nil(t, report)
				require.ErrorIs(t, err, ErrLoadFailed)
				assert.False(t, IsStale(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl)
			tt.setup(m)

			report, err := service.LoadComparison(context.Background(), tt.request)
			tt.validate(t, report, err)
		})
	}
}

func TestService_LoadComparison_DescartaCargaAntiga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	expectEmptySecondaryData(m)

	var calls int32
	blocked := make(chan struct{})
	m.monthly.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, period string) ([]*domain.InsightRow, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				// primeira chamada segura a carga antiga até ser cancelada pela nova
				close(blocked)
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return monthlyRows(period), nil
		}).AnyTimes()

	// Apenas a carga mais nova grava o snapshot
	m.snapshots.EXPECT().SaveSnapshot(gomock.Any(), 7, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, report *domain.ComparisonReport) error {
			assert.Equal(t, uint64(2), report.Generation)
			assert.Equal(t, "2024-03", report.PeriodA)
			return nil
		}).Times(1)

	oldResult := make(chan error, 1)
	go func() {
		_, err := service.LoadComparison(context.Background(), &domain.ComparisonRequest{
			AccountID: "acc-1", PeriodA: "2024-01", PeriodB: "2024-02", ViewerID: 7,
		})
		oldResult <- err
	}()

	<-blocked

	report, err := service.LoadComparison(context.Background(), &domain.ComparisonRequest{
		AccountID: "acc-1", PeriodA: "2024-03", PeriodB: "2024-02", ViewerID: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), report.Generation)

	select {
	case err := <-oldResult:
		require.Error(t, err)
		assert.True(t, IsStale(err))

		var compErr *ComparisonError
		require.True(t, errors.As(err, &compErr))
		assert.Equal(t, apiErrors.ErrStaleRequest, compErr.Code)
	case <-time.After(5 * time.Second):
		t.Fatal("carga antiga não terminou")
	}
}

func TestService_LoadComparison_VisualizadoresIndependentes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	expectEmptySecondaryData(m)
	m.monthly.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, period string) ([]*domain.InsightRow, error) {
			return monthlyRows(period), nil
		}).AnyTimes()
	m.snapshots.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	reportA, err := service.LoadComparison(context.Background(), &domain.ComparisonRequest{AccountID: "acc-1", PeriodA: "2024-01", PeriodB: "2024-02", ViewerID: 1})
	require.NoError(t, err)
	reportB, err := service.LoadComparison(context.Background(), &domain.ComparisonRequest{AccountID: "acc-1", PeriodA: "2024-01", PeriodB: "2024-02", ViewerID: 2})
	require.NoError(t, err)

	// as gerações crescem no serviço inteiro e a chave é liberada ao final de cada carga
	assert.Equal(t, uint64(1), reportA.Generation)
	assert.Equal(t, uint64(2), reportB.Generation)
	assert.Empty(t, service.loads)
}

func TestService_LoadComparison_SnapshotLentoNaoBloqueiaOutroVisualizador(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	expectEmptySecondaryData(m)
	m.monthly.EXPECT().ListByAccountAndPeriod(gomock.Any(), "acc-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, period string) ([]*domain.InsightRow, error) {
			return monthlyRows(period), nil
		}).AnyTimes()

	saving := make(chan struct{})
	release := make(chan struct{})
	m.snapshots.EXPECT().SaveSnapshot(gomock.Any(), 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ *domain.ComparisonReport) error {
			close(saving)
			<-release
			return nil
		})
	m.snapshots.EXPECT().SaveSnapshot(gomock.Any(), 2, gomock.Any()).Return(nil)

	slowResult := make(chan error, 1)
	go func() {
		_, err := service.LoadComparison(context.Background(), &domain.ComparisonRequest{AccountID: "acc-1", PeriodA: "2024-01", PeriodB: "2024-02", ViewerID: 1})
		slowResult <- err
	}()
	<-saving

	done := make(chan error, 1)
	go func() {
		_, err := service.LoadComparison(context.Background(), &domain.ComparisonRequest{AccountID: "acc-1", PeriodA: "2024-01", PeriodB: "2024-02", ViewerID: 2})
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		close(release)
		t.Fatal("carga do visualizador 2 ficou presa atrás da gravação do visualizador 1")
	}

	close(release)
	require.NoError(t, <-slowResult)
	assert.Empty(t, service.loads)
}

func TestService_GetLatestComparison(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.snapshots.EXPECT().GetSnapshot(gomock.Any(), 1, "acc-1").Return(&domain.ComparisonReport{AccountID: "acc-1", Generation: 4}, nil)
	m.snapshots.EXPECT().GetSnapshot(gomock.Any(), 1, "acc-2").Return(nil, nil)

	report, err := service.GetLatestComparison(context.Background(), 1, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), report.Generation)

	report, err = service.GetLatestComparison(context.Background(), 1, "acc-2")
	assert.Nil(t, report)
	require.ErrorIs(t, err, ErrSnapshotMissing)
}

func TestService_GetAvailablePeriods(t *testing.T) {
	tests := []struct {
		name     string
		periods  []string
		repoErr  error
		validate func(t *testing.T, available *domain.AvailablePeriods, err error)
	}{
		{
			name:    "Seleciona os dois meses mais recentes",
			periods: []string{"2024-01", "2024-03", "2024-02"},
			validate: func(t *testing.T, available *domain.AvailablePeriods, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"2024-03", "2024-02", "2024-01"}, available.Periods)
				assert.Equal(t, "2024-02", available.DefaultPeriodA)
				assert.Equal(t, "2024-03", available.DefaultPeriodB)
			},
		},
		{
			name:    "Sem dados retorna lista vazia",
			periods: []string{},
			validate: func(t *testing.T, available *domain.AvailablePeriods, err error) {
				require.NoError(t, err)
				assert.Empty(t, available.Periods)
				assert.Empty(t, available.DefaultPeriodA)
			},
		},
		{
			name:    "Erro do banco é propagado",
			repoErr: errors.New("timeout"),
			validate: func(t *testing.T, available *domain.AvailablePeriods, err error) {
				assert.Nil(t, available)
				require.ErrorIs(t, err, ErrDatabase)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl)
			m.monthly.EXPECT().ListPeriods(gomock.Any(), "acc-1").Return(tt.periods, tt.repoErr)

			available, err := service.GetAvailablePeriods(context.Background(), "acc-1")
			tt.validate(t, available, err)
		})
	}
}

func TestService_GetCreativePerformance_IntervaloInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	until := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	since := until.AddDate(0, 1, 0)

	result, err := service.GetCreativePerformance(context.Background(), "acc-1", since, until)
	assert.Nil(t, result)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestService_GetCreativePerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	m.ads.EXPECT().ListByAccountAndRange(gomock.Any(), "acc-1", since, until).Return([]*domain.InsightRow{
		{PeriodKey: "2024-01", AccountID: "acc-1", AdID: "ad-1", CreativeID: "cr-1", Spend: 10, Impressions: 100, Clicks: 2},
		{PeriodKey: "2024-01", AccountID: "acc-1", AdID: "ad-2", CreativeID: "cr-2", Spend: 30, Impressions: 100, Clicks: 3},
	}, nil)
	m.catalog.EXPECT().ListCreatives(gomock.Any(), "acc-1").Return([]*domain.AdCreative{}, nil)

	result, err := service.GetCreativePerformance(context.Background(), "acc-1", since, until)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "cr-2", result[0].CreativeID)
	assert.Equal(t, 1, result[0].AdCount)
}

func TestService_RecalculateResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	rows := []*domain.InsightRow{
		{PeriodKey: "2024-01", AccountID: "acc-1", CampaignID: "c1", AdSetID: "as-1", ActionCounts: map[string]float64{"purchase": 2, "add_to_cart": 4, "link_click": 50}},
		{PeriodKey: "2024-01", AccountID: "acc-1", CampaignID: "c2", AdSetID: "as-2"},
	}
	m.monthly.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return(rows, nil)
	m.catalog.EXPECT().ListCampaigns(gomock.Any(), "acc-1").Return([]*domain.Campaign{
		{ID: "c1", Objective: "OUTCOME_SALES"},
	}, nil)
	m.monthly.EXPECT().UpdateResults(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated []*domain.InsightRow) (int, error) {
			require.Len(t, updated, 1)
			assert.Equal(t, 2.0, updated[0].SalesPurchase)
			assert.Equal(t, 4.0, updated[0].SalesAddToCart)
			assert.Contains(t, updated[0].ResultType, "purchase")
			return 1, nil
		})

	report, err := service.RecalculateResults(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalInsights)
	assert.Equal(t, 1, report.Updated)
}
