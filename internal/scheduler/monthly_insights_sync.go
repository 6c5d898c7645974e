package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/metrics"
)

const monthlyInsightsJob = "monthly_insights"

// MonthlyInsightsSyncConfig representa a configuração do agendador de insights mensais
type MonthlyInsightsSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
	MonthLookBack       int
	CurrentMonthCron    string
}

// SyncRepositories agrupa os repositórios gravados pela sincronização
type SyncRepositories struct {
	Accounts        repository.AccountRepository
	MonthlyInsights repository.MonthlyInsightRepository
	Demographics    repository.MonthlyDemographicRepository
	Platforms       repository.PlatformInsightRepository
	AdInsights      repository.AdInsightRepository
	Catalog         repository.CatalogRepository
}

// MonthlyInsightsSyncService gerencia o agendamento e execução da sincronização mensal de insights
type MonthlyInsightsSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyInsightsSyncConfig
	repos               SyncRepositories
	metaService         meta.Integrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReports         []*domain.SyncReport
	now                 func() time.Time
	sleep               func(time.Duration)
}

// NewMonthlyInsightsSyncService cria uma nova instância do serviço de sincronização mensal de insights
func NewMonthlyInsightsSyncService(
	repos SyncRepositories,
	metaService meta.Integrator,
	appConfig *config.Config,
) *MonthlyInsightsSyncService {
	insightConfig := MonthlyInsightsSyncConfig{
		CronSchedule:        appConfig.MonthlyInsightsSync.CronSchedule,
		RequestDelaySeconds: appConfig.MonthlyInsightsSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.MonthlyInsightsSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.MonthlyInsightsSync.Enabled,
		MonthLookBack:       appConfig.MonthlyInsightsSync.MonthLookBack,
		CurrentMonthCron:    appConfig.MonthlyInsightsSync.CurrentMonthCron,
	}
	if insightConfig.MaxConcurrentJobs <= 0 {
		insightConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         insightConfig.CronSchedule,
		"request_delay_seconds": insightConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   insightConfig.MaxConcurrentJobs,
		"sync_enabled":          insightConfig.SyncEnabled,
		"month_lookback":        insightConfig.MonthLookBack,
	}).Info("Configuração do agendador de insights mensais carregada")

	return &MonthlyInsightsSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      insightConfig,
		repos:       repos,
		metaService: metaService,
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// Start inicia o agendador
func (s *MonthlyInsightsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização mensal de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização mensal de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyInsights(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização mensal de insights: %w", err)
	}

	if s.config.CurrentMonthCron != "" {
		_, err = s.scheduler.Cron(s.config.CurrentMonthCron).Do(func() {
			s.syncCurrentMonth(ctx)
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar sincronização do mês corrente: %w", err)
		}
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização mensal de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyInsights sincroniza os insights mensais de todas as contas ativas
func (s *MonthlyInsightsSyncService) syncMonthlyInsights(ctx context.Context) []*domain.SyncReport {
	if !s.tryAcquire() {
		logrus.Info("Sincronização mensal de insights já em andamento, ignorando")
		return nil
	}
	return s.run(ctx, s.lookBackMonths())
}

// syncCurrentMonth atualiza o mês em andamento, do dia 1 até ontem
func (s *MonthlyInsightsSyncService) syncCurrentMonth(ctx context.Context) []*domain.SyncReport {
	month, ok := s.currentMonth()
	if !ok {
		logrus.Info("Mês corrente ainda sem dias fechados, ignorando")
		return nil
	}
	if !s.tryAcquire() {
		logrus.Info("Sincronização mensal de insights já em andamento, ignorando mês corrente")
		return nil
	}
	return s.run(ctx, []monthRange{month})
}

func (s *MonthlyInsightsSyncService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *MonthlyInsightsSyncService) run(ctx context.Context, months []monthRange) []*domain.SyncReport {
	startTime := s.now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização mensal de insights para todas as contas ativas")

	activeAccounts, err := s.repos.Accounts.ListAccounts(ctx, []domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização mensal de insights")
		metrics.SyncRuns.WithLabelValues(monthlyInsightsJob, "error").Inc()
		return nil
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização mensal de insights")
		return nil
	}

	reports := s.processAccounts(ctx, activeAccounts, months)

	logrus.WithFields(logrus.Fields{
		"duration": s.now().Sub(startTime).String(),
		"accounts": len(activeAccounts),
		"months":   len(months),
	}).Info("Sincronização mensal de insights concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastReports = reports
	s.syncMutex.Unlock()

	return reports
}

// monthRange é o primeiro e o último dia de um mês
type monthRange struct {
	start time.Time
	end   time.Time
}

// lookBackMonths devolve os meses fechados anteriores ao atual, do mais antigo para o mais recente
func (s *MonthlyInsightsSyncService) lookBackMonths() []monthRange {
	now := s.now()
	lookBack := s.config.MonthLookBack
	if lookBack <= 0 {
		lookBack = 1
	}

	months := make([]monthRange, 0, lookBack)
	for i := lookBack; i >= 1; i-- {
		first := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		months = append(months, monthRange{start: first, end: last})
	}

	return months
}

func (s *MonthlyInsightsSyncService) currentMonth() (monthRange, bool) {
	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yesterday := time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, now.Location())
	if yesterday.Before(first) {
		return monthRange{}, false
	}
	return monthRange{start: first, end: yesterday}, true
}

// processAccounts sincroniza as contas com no máximo MaxConcurrentJobs workers
func (s *MonthlyInsightsSyncService) processAccounts(ctx context.Context, accounts []*domain.AdAccount, months []monthRange) []*domain.SyncReport {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	reports := make([]*domain.SyncReport, len(accounts))

	for i, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, acc *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			reports[i] = s.syncAccount(ctx, acc, months)

			// Aguardar antes da próxima conta para evitar excesso de requisições
			if s.config.RequestDelaySeconds > 0 {
				s.sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
			}
		}(i, account)
	}

	wg.Wait()

	return reports
}

// syncAccount atualiza o cadastro e grava os insights de cada mês. Erros de um mês não interrompem os demais.
func (s *MonthlyInsightsSyncService) syncAccount(ctx context.Context, acc *domain.AdAccount, months []monthRange) *domain.SyncReport {
	report := &domain.SyncReport{AccountID: acc.ExternalID}
	log := logrus.WithFields(logrus.Fields{
		"account_id":   acc.ExternalID,
		"account_name": acc.DisplayName(),
	})

	if acc.ExternalID == "" {
		report.Errors = append(report.Errors, "conta sem ID externo")
		metrics.SyncRuns.WithLabelValues(monthlyInsightsJob, "error").Inc()
		return report
	}

	creativeByAd, err := s.syncCatalog(ctx, acc.ExternalID)
	if err != nil {
		log.WithError(err).Error("Erro ao sincronizar campanhas e anúncios")
		report.Errors = append(report.Errors, err.Error())
	}

	for _, month := range months {
		monthLog := log.WithFields(logrus.Fields{
			"start_date": month.start.Format(time.DateOnly),
			"end_date":   month.end.Format(time.DateOnly),
		})
		monthLog.Info("Processando insights mensais para conta")

		if err := s.syncMonth(ctx, acc.ExternalID, month, creativeByAd, report); err != nil {
			monthLog.WithError(err).Error("Erro ao processar insights mensais")
			report.Errors = append(report.Errors, err.Error())
		}
	}

	outcome := "ok"
	if len(report.Errors) > 0 {
		outcome = "error"
	} else if err := s.repos.Accounts.MarkSynced(ctx, acc.ExternalID); err != nil {
		log.WithError(err).Warn("Erro ao registrar data de sincronização da conta")
	}
	metrics.SyncRuns.WithLabelValues(monthlyInsightsJob, outcome).Inc()

	log.WithFields(logrus.Fields{
		"insights":     report.InsightsSynced,
		"demographics": report.DemographicsSynced,
		"platforms":    report.PlatformsSynced,
		"ads":          report.AdInsightsSynced,
		"rejected":     report.RejectedRows,
		"errors":       len(report.Errors),
	}).Info("Insights mensais salvos")

	return report
}

// syncCatalog grava campanhas, anúncios e criativos e devolve o mapa anúncio → criativo
func (s *MonthlyInsightsSyncService) syncCatalog(ctx context.Context, accountID string) (map[string]string, error) {
	campaigns, err := s.metaService.GetCampaigns(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter campanhas: %w", err)
	}
	if err := s.repos.Catalog.SaveCampaigns(ctx, campaigns); err != nil {
		return nil, fmt.Errorf("erro ao salvar campanhas: %w", err)
	}

	ads, creatives, err := s.metaService.GetAds(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter anúncios: %w", err)
	}
	if err := s.repos.Catalog.SaveCreatives(ctx, creatives); err != nil {
		return nil, fmt.Errorf("erro ao salvar criativos: %w", err)
	}
	if err := s.repos.Catalog.SaveAds(ctx, ads); err != nil {
		return nil, fmt.Errorf("erro ao salvar anúncios: %w", err)
	}

	creativeByAd := make(map[string]string, len(ads))
	for _, ad := range ads {
		if ad.CreativeID != "" {
			creativeByAd[ad.ID] = ad.CreativeID
		}
	}

	return creativeByAd, nil
}

func (s *MonthlyInsightsSyncService) syncMonth(ctx context.Context, accountID string, month monthRange, creativeByAd map[string]string, report *domain.SyncReport) error {
	batch, err := s.metaService.GetMonthlyInsights(ctx, accountID, month.start, month.end)
	if err != nil {
		return fmt.Errorf("erro ao obter insights mensais: %w", err)
	}
	report.RejectedRows += len(batch.Rejected)

	if err := s.repos.MonthlyInsights.SaveOrUpdate(ctx, batch.AdSets); err != nil {
		return fmt.Errorf("erro ao salvar insights mensais: %w", err)
	}
	report.InsightsSynced += len(batch.AdSets)
	metrics.SyncedRows.WithLabelValues("meta_monthly_insights").Add(float64(len(batch.AdSets)))

	if err := s.repos.Demographics.SaveOrUpdate(ctx, batch.Demographics); err != nil {
		return fmt.Errorf("erro ao salvar insights demográficos: %w", err)
	}
	report.DemographicsSynced += len(batch.Demographics)
	metrics.SyncedRows.WithLabelValues("meta_monthly_demographics").Add(float64(len(batch.Demographics)))

	if err := s.repos.Platforms.SaveOrUpdate(ctx, batch.Platforms); err != nil {
		return fmt.Errorf("erro ao salvar insights por plataforma: %w", err)
	}
	report.PlatformsSynced += len(batch.Platforms)
	metrics.SyncedRows.WithLabelValues("meta_monthly_platforms").Add(float64(len(batch.Platforms)))

	adRows, rejected, err := s.metaService.GetAdInsights(ctx, accountID, month.start, month.end)
	if err != nil {
		return fmt.Errorf("erro ao obter insights de anúncios: %w", err)
	}
	report.RejectedRows += len(rejected)

	for _, row := range adRows {
		if row.CreativeID == "" {
			row.CreativeID = creativeByAd[row.AdID]
		}
	}

	if err := s.repos.AdInsights.SaveOrUpdate(ctx, adRows); err != nil {
		return fmt.Errorf("erro ao salvar insights de anúncios: %w", err)
	}
	report.AdInsightsSynced += len(adRows)
	metrics.SyncedRows.WithLabelValues("meta_ad_insights").Add(float64(len(adRows)))

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de insights mensais.
// Com currentMonth o período é o mês em andamento. Retorna false quando já existe uma sincronização em andamento.
func (s *MonthlyInsightsSyncService) TriggerManualSync(ctx context.Context, currentMonth bool) bool {
	months := s.lookBackMonths()
	if currentMonth {
		month, ok := s.currentMonth()
		if !ok {
			return false
		}
		months = []monthRange{month}
	}

	if !s.tryAcquire() {
		logrus.Info("Sincronização mensal de insights já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.WithField("months", len(months)).Info("Iniciando sincronização manual de insights mensais")
	go s.run(ctx, months)

	return true
}

// GetStatus retorna o status atual da sincronização
func (s *MonthlyInsightsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	lastErrors := 0
	for _, report := range s.lastReports {
		if report != nil {
			lastErrors += len(report.Errors)
		}
	}

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"current_month_cron":     s.config.CurrentMonthCron,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_accounts":     len(s.lastReports),
		"last_sync_errors":       lastErrors,
	}
}
