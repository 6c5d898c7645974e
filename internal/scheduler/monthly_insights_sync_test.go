package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metamocks "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type syncMocks struct {
	accounts     *mocks.MockAccountRepository
	monthly      *mocks.MockMonthlyInsightRepository
	demographics *mocks.MockMonthlyDemographicRepository
	platforms    *mocks.MockPlatformInsightRepository
	ads          *mocks.MockAdInsightRepository
	catalog      *mocks.MockCatalogRepository
	meta         *metamocks.MockIntegrator
}

func newTestSyncService(t *testing.T, now time.Time, lookBack int) (*MonthlyInsightsSyncService, *syncMocks) {
	ctrl := gomock.NewController(t)

	m := &syncMocks{
		accounts:     mocks.NewMockAccountRepository(ctrl),
		monthly:      mocks.NewMockMonthlyInsightRepository(ctrl),
		demographics: mocks.NewMockMonthlyDemographicRepository(ctrl),
		platforms:    mocks.NewMockPlatformInsightRepository(ctrl),
		ads:          mocks.NewMockAdInsightRepository(ctrl),
		catalog:      mocks.NewMockCatalogRepository(ctrl),
		meta:         metamocks.NewMockIntegrator(ctrl),
	}

	service := &MonthlyInsightsSyncService{
		config: MonthlyInsightsSyncConfig{
			MaxConcurrentJobs:   2,
			RequestDelaySeconds: 1,
			SyncEnabled:         true,
			MonthLookBack:       lookBack,
		},
		repos: SyncRepositories{
			Accounts:        m.accounts,
			MonthlyInsights: m.monthly,
			Demographics:    m.demographics,
			Platforms:       m.platforms,
			AdInsights:      m.ads,
			Catalog:         m.catalog,
		},
		metaService: m.meta,
		now:         func() time.Time { return now },
		sleep:       func(time.Duration) {},
	}

	return service, m
}

func TestMonthlyInsightsSyncService_lookBackMonths(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lookBack int
		expected [][2]string
	}{
		{
			name:     "Um mês - deve retornar apenas o mês anterior",
			lookBack: 1,
			expected: [][2]string{{"2024-02-01", "2024-02-29"}},
		},
		{
			name:     "Três meses - deve atravessar a virada do ano do mais antigo para o mais recente",
			lookBack: 3,
			expected: [][2]string{
				{"2023-12-01", "2023-12-31"},
				{"2024-01-01", "2024-01-31"},
				{"2024-02-01", "2024-02-29"},
			},
		},
		{
			name:     "Valor inválido - deve assumir um mês",
			lookBack: 0,
			expected: [][2]string{{"2024-02-01", "2024-02-29"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestSyncService(t, now, tt.lookBack)

			months := service.lookBackMonths()

			require.Len(t, months, len(tt.expected))
			for i, month := range months {
				assert.Equal(t, tt.expected[i][0], month.start.Format(time.DateOnly))
				assert.Equal(t, tt.expected[i][1], month.end.Format(time.DateOnly))
			}
		})
	}
}

func TestMonthlyInsightsSyncService_currentMonth(t *testing.T) {
	t.Run("Meio do mês - deve ir do dia 1 até ontem", func(t *testing.T) {
		service, _ := newTestSyncService(t, time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), 1)

		month, ok := service.currentMonth()

		require.True(t, ok)
		assert.Equal(t, "2024-03-01", month.start.Format(time.DateOnly))
		assert.Equal(t, "2024-03-09", month.end.Format(time.DateOnly))
	})

	t.Run("Primeiro dia do mês - não há dias fechados", func(t *testing.T) {
		service, _ := newTestSyncService(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), 1)

		_, ok := service.currentMonth()

		assert.False(t, ok)
	})
}

func TestMonthlyInsightsSyncService_syncMonthlyInsights(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	since := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	account := &domain.AdAccount{ID: "uuid-1", ExternalID: "111", Name: "Loja A", Status: domain.AdAccountStatusActive}

	tests := []struct {
		name     string
		setup    func(m *syncMocks)
		validate func(t *testing.T, reports []*domain.SyncReport)
	}{
		{
			name: "Sucesso - deve gravar as três tabelas mensais e os anúncios com o criativo do catálogo",
			setup: func(m *syncMocks) {
				m.accounts.EXPECT().
					ListAccounts(gomock.Any(), []domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return([]*domain.AdAccount{account}, nil)

				campaigns := []*domain.Campaign{{ID: "c1", AccountID: "111"}}
				m.meta.EXPECT().GetCampaigns(gomock.Any(), "111").Return(campaigns, nil)
				m.catalog.EXPECT().SaveCampaigns(gomock.Any(), campaigns).Return(nil)

				ads := []*domain.Ad{{ID: "ad1", AccountID: "111", CreativeID: "cr1"}}
				creatives := []*domain.AdCreative{{CreativeID: "cr1", AccountID: "111"}}
				m.meta.EXPECT().GetAds(gomock.Any(), "111").Return(ads, creatives, nil)
				m.catalog.EXPECT().SaveCreatives(gomock.Any(), creatives).Return(nil)
				m.catalog.EXPECT().SaveAds(gomock.Any(), ads).Return(nil)

				batch := &domain.MonthlyInsightBatch{
					AdSets:       []*domain.InsightRow{{AdSetID: "as1"}, {AdSetID: "as2"}},
					Demographics: []*domain.InsightRow{{AdSetID: "as1", AgeGroup: "18-24", Gender: "female"}},
					Platforms:    []*domain.InsightRow{{AdSetID: "as1", PublisherPlatform: "instagram"}},
					Rejected:     []error{errors.New("linha inválida")},
				}
				m.meta.EXPECT().GetMonthlyInsights(gomock.Any(), "111", since, until).Return(batch, nil)
				m.monthly.EXPECT().SaveOrUpdate(gomock.Any(), batch.AdSets).Return(nil)
				m.demographics.EXPECT().SaveOrUpdate(gomock.Any(), batch.Demographics).Return(nil)
				m.platforms.EXPECT().SaveOrUpdate(gomock.Any(), batch.Platforms).Return(nil)

				m.meta.EXPECT().
					GetAdInsights(gomock.Any(), "111", since, until).
					Return([]*domain.InsightRow{{AdID: "ad1", Date: "2024-02-01"}}, nil, nil)
				m.ads.EXPECT().
					SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rows []*domain.InsightRow) error {
						require.Len(t, rows, 1)
						assert.Equal(t, "cr1", rows[0].CreativeID)
						return nil
					})

				m.accounts.EXPECT().MarkSynced(gomock.Any(), "111").Return(nil)
			},
			validate: func(t *testing.T, reports []*domain.SyncReport) {
				require.Len(t, reports, 1)
				assert.Equal(t, "111", reports[0].AccountID)
				assert.Equal(t, 2, reports[0].InsightsSynced)
				assert.Equal(t, 1, reports[0].DemographicsSynced)
				assert.Equal(t, 1, reports[0].PlatformsSynced)
				assert.Equal(t, 1, reports[0].AdInsightsSynced)
				assert.Equal(t, 1, reports[0].RejectedRows)
				assert.Empty(t, reports[0].Errors)
			},
		},
		{
			name: "Falha no Meta - deve registrar o erro e não marcar a conta como sincronizada",
			setup: func(m *syncMocks) {
				m.accounts.EXPECT().
					ListAccounts(gomock.Any(), gomock.Any()).
					Return([]*domain.AdAccount{account}, nil)

				m.meta.EXPECT().GetCampaigns(gomock.Any(), "111").Return(nil, errors.New("rate limit"))
				m.meta.EXPECT().
					GetMonthlyInsights(gomock.Any(), "111", since, until).
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, reports []*domain.SyncReport) {
				require.Len(t, reports, 1)
				assert.Len(t, reports[0].Errors, 2)
				assert.Contains(t, reports[0].Errors[0], "rate limit")
				assert.Contains(t, reports[0].Errors[1], "timeout")
				assert.Zero(t, reports[0].InsightsSynced)
			},
		},
		{
			name: "Sem contas ativas - não deve chamar o Meta",
			setup: func(m *syncMocks) {
				m.accounts.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return([]*domain.AdAccount{}, nil)
			},
			validate: func(t *testing.T, reports []*domain.SyncReport) {
				assert.Nil(t, reports)
			},
		},
		{
			name: "Conta sem ID externo - deve ser ignorada com erro no relatório",
			setup: func(m *syncMocks) {
				m.accounts.EXPECT().
					ListAccounts(gomock.Any(), gomock.Any()).
					Return([]*domain.AdAccount{{ID: "uuid-2", Name: "Sem ID"}}, nil)
			},
			validate: func(t *testing.T, reports []*domain.SyncReport) {
				require.Len(t, reports, 1)
				assert.Equal(t, []string{"conta sem ID externo"}, reports[0].Errors)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestSyncService(t, now, 1)
			tt.setup(m)

			reports := service.syncMonthlyInsights(context.Background())

			tt.validate(t, reports)
			assert.False(t, service.syncRunning)
		})
	}
}

func TestMonthlyInsightsSyncService_tryAcquire(t *testing.T) {
	service, _ := newTestSyncService(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 1)

	assert.True(t, service.tryAcquire())
	assert.False(t, service.tryAcquire())
	assert.Nil(t, service.syncMonthlyInsights(context.Background()))
	assert.False(t, service.TriggerManualSync(context.Background(), false))

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_running"])
}

func TestMonthlyInsightsSyncService_syncCurrentMonth(t *testing.T) {
	now := time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)
	service, m := newTestSyncService(t, now, 3)

	account := &domain.AdAccount{ExternalID: "222", Name: "Loja B", Status: domain.AdAccountStatusActive}
	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	m.accounts.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return([]*domain.AdAccount{account}, nil)
	m.meta.EXPECT().GetCampaigns(gomock.Any(), "222").Return(nil, nil)
	m.catalog.EXPECT().SaveCampaigns(gomock.Any(), gomock.Any()).Return(nil)
	m.meta.EXPECT().GetAds(gomock.Any(), "222").Return(nil, nil, nil)
	m.catalog.EXPECT().SaveCreatives(gomock.Any(), gomock.Any()).Return(nil)
	m.catalog.EXPECT().SaveAds(gomock.Any(), gomock.Any()).Return(nil)
	m.meta.EXPECT().GetMonthlyInsights(gomock.Any(), "222", since, until).Return(&domain.MonthlyInsightBatch{}, nil)
	m.monthly.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	m.demographics.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	m.platforms.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	m.meta.EXPECT().GetAdInsights(gomock.Any(), "222", since, until).Return(nil, nil, nil)
	m.ads.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
	m.accounts.EXPECT().MarkSynced(gomock.Any(), "222").Return(nil)

	reports := service.syncCurrentMonth(context.Background())

	require.Len(t, reports, 1)
	assert.Empty(t, reports[0].Errors)
	assert.Equal(t, 1, service.GetStatus()["last_sync_accounts"])
}
