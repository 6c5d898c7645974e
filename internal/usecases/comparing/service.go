package comparing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type ComparisonService interface {
	LoadComparison(ctx context.Context, req *domain.ComparisonRequest) (*domain.ComparisonReport, error)
	GetLatestComparison(ctx context.Context, viewerID int, accountID string) (*domain.ComparisonReport, error)
	GetAvailablePeriods(ctx context.Context, accountID string) (*domain.AvailablePeriods, error)
	GetCreativePerformance(ctx context.Context, accountID string, since, until time.Time) ([]*domain.CreativePerformance, error)
	RecalculateResults(ctx context.Context, accountID string) (*domain.RecalculationReport, error)
}

type Repositories struct {
	MonthlyInsights repository.MonthlyInsightRepository
	Demographics    repository.MonthlyDemographicRepository
	Platforms       repository.PlatformInsightRepository
	AdInsights      repository.AdInsightRepository
	Catalog         repository.CatalogRepository
}

// loadState é a carga em andamento de um visualizador+conta. commit serializa a checagem de geração
// com a gravação do snapshot daquela chave, sem travar as demais.
type loadState struct {
	generation uint64
	cancel     context.CancelFunc
	commit     sync.Mutex
}

type Service struct {
	repos       Repositories
	snapshots   cache.SnapshotCache
	loadTimeout time.Duration
	now         func() time.Time

	mu          sync.Mutex
	generations uint64
	loads       map[string]*loadState
}

func NewService(repos Repositories, snapshots cache.SnapshotCache, loadTimeout time.Duration) *Service {
	return &Service{
		repos:       repos,
		snapshots:   snapshots,
		loadTimeout: loadTimeout,
		now:         time.Now,
		loads:       make(map[string]*loadState),
	}
}

func loadKey(viewerID int, accountID string) string {
	return fmt.Sprintf("%d:%s", viewerID, accountID)
}

// begin registra uma nova geração e cancela a carga anterior ainda em andamento.
// As gerações crescem no serviço inteiro, então uma chave removida e recriada nunca repete número.
func (s *Service) begin(ctx context.Context, key string) (context.Context, *loadState, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.loads[key]
	if !ok {
		state = &loadState{}
		s.loads[key] = state
	}
	if state.cancel != nil {
		state.cancel()
	}

	var (
		loadCtx context.Context
		cancel  context.CancelFunc
	)
	if s.loadTimeout > 0 {
		loadCtx, cancel = context.WithTimeout(ctx, s.loadTimeout)
	} else {
		loadCtx, cancel = context.WithCancel(ctx)
	}

	s.generations++
	state.generation = s.generations
	state.cancel = cancel

	return loadCtx, state, state.generation
}

// finish libera a chave quando a carga que termina ainda é a mais recente
func (s *Service) finish(key string, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loads[key]
	if state == nil || state.generation != generation {
		return
	}
	if state.cancel != nil {
		state.cancel()
	}
	delete(s.loads, key)
}

func (s *Service) isCurrent(key string, generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loads[key]
	return state != nil && state.generation == generation
}

// commitSnapshot grava o snapshot se a geração ainda for a mais recente. O lock global só é usado
// para ler a geração; a escrita no cache acontece sob o lock da própria chave.
func (s *Service) commitSnapshot(ctx context.Context, key string, state *loadState, generation uint64, viewerID int, report *domain.ComparisonReport) bool {
	state.commit.Lock()
	defer state.commit.Unlock()

	if !s.isCurrent(key, generation) {
		return false
	}

	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshot(ctx, viewerID, report); err != nil {
			logrus.WithError(err).WithField("account_id", report.AccountID).Warn("comparação: falha ao gravar snapshot")
		}
	}

	return true
}

type periodData struct {
	monthly      []*domain.InsightRow
	demographics []*domain.InsightRow
	platforms    []*domain.InsightRow
	ads          []*domain.InsightRow
}

// LoadComparison busca os dois períodos em paralelo. Qualquer falha invalida a carga inteira
// e uma carga ultrapassada por outra mais nova é descartada sem tocar no snapshot.
func (s *Service) LoadComparison(ctx context.Context, req *domain.ComparisonRequest) (*domain.ComparisonReport, error) {
	if err := req.Validate(); err != nil {
		return nil, NewComparisonError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	started := s.now()
	key := loadKey(req.ViewerID, req.AccountID)
	loadCtx, state, generation := s.begin(ctx, key)
	defer s.finish(key, generation)

	log := logrus.WithFields(logrus.Fields{
		"account_id": req.AccountID,
		"period_a":   req.PeriodA,
		"period_b":   req.PeriodB,
		"generation": generation,
	})

	var (
		dataA, dataB periodData
		campaigns    []*domain.Campaign
	)

	g, gctx := errgroup.WithContext(loadCtx)
	s.fetchPeriod(g, gctx, req.AccountID, req.PeriodA, &dataA)
	s.fetchPeriod(g, gctx, req.AccountID, req.PeriodB, &dataB)
	g.Go(func() error {
		var err error
		campaigns, err = s.repos.Catalog.ListCampaigns(gctx, req.AccountID)
		return err
	})

	if err := g.Wait(); err != nil {
		if !s.isCurrent(key, generation) {
			log.Debug("comparação: carga cancelada por uma mais recente")
			metrics.ComparisonLoads.WithLabelValues("stale").Inc()
			return nil, NewComparisonError(ErrStaleLoad, apiErrors.ErrStaleRequest, "")
		}
		log.WithError(err).Error("comparação: falha na carga conjunta")
		metrics.ComparisonLoads.WithLabelValues("error").Inc()
		return nil, NewComparisonError(ErrLoadFailed, apiErrors.ErrDatabaseOperation, err.Error())
	}

	rejected := dataA.validate() + dataB.validate()
	if rejected > 0 {
		log.WithField("rejected", rejected).Warn("comparação: linhas inválidas descartadas")
		metrics.RejectedRows.WithLabelValues("storage").Add(float64(rejected))
	}

	report := s.buildReport(req, campaigns, &dataA, &dataB)
	report.Generation = generation
	report.RejectedRows = rejected

	if !s.commitSnapshot(ctx, key, state, generation, req.ViewerID, report) {
		log.Debug("comparação: resultado descartado, existe carga mais recente")
		metrics.ComparisonLoads.WithLabelValues("stale").Inc()
		return nil, NewComparisonError(ErrStaleLoad, apiErrors.ErrStaleRequest, "")
	}

	metrics.ComparisonLoads.WithLabelValues("ok").Inc()
	metrics.ComparisonLoadDuration.Observe(s.now().Sub(started).Seconds())

	return report, nil
}

func (s *Service) fetchPeriod(g *errgroup.Group, ctx context.Context, accountID, period string, data *periodData) {
	g.Go(func() error {
		rows, err := s.repos.MonthlyInsights.ListByAccountAndPeriod(ctx, accountID, period)
		data.monthly = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.repos.Demographics.ListByAccountAndPeriod(ctx, accountID, period)
		data.demographics = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.repos.Platforms.ListByAccountAndPeriod(ctx, accountID, period)
		data.platforms = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.repos.AdInsights.ListByAccountAndPeriod(ctx, accountID, period)
		data.ads = rows
		return err
	})
}

func (d *periodData) validate() int {
	var rejected int
	for _, rows := range []*[]*domain.InsightRow{&d.monthly, &d.demographics, &d.platforms, &d.ads} {
		valid, errs := domain.ValidateRows(*rows)
		*rows = valid
		rejected += len(errs)
	}
	return rejected
}

func (s *Service) buildReport(req *domain.ComparisonRequest, campaigns []*domain.Campaign, a, b *periodData) *domain.ComparisonReport {
	metadata := make(map[string]domain.EntityMetadata, len(campaigns))
	for _, campaign := range campaigns {
		metadata[campaign.ID] = campaign.Metadata()
	}
	objectiveOf := NewObjectiveResolver(metadata)

	campaignRecords := CampaignComparison(a.monthly, b.monthly, metadata, objectiveOf)

	return &domain.ComparisonReport{
		AccountID:       req.AccountID,
		PeriodA:         req.PeriodA,
		PeriodB:         req.PeriodB,
		Totals:          Totals(a.monthly, b.monthly, objectiveOf),
		Objectives:      GroupByObjective(campaignRecords),
		AdSets:          SortByCombinedSpend(AdSetComparison(a.monthly, b.monthly, objectiveOf)),
		CreativesByName: SortByCombinedSpend(CreativeComparison(a.ads, b.ads, false, objectiveOf)),
		CreativesByID:   SortByCombinedSpend(CreativeComparison(a.ads, b.ads, true, objectiveOf)),
		Demographics:    DemographicComparisons(a.demographics, b.demographics, objectiveOf),
		Platforms:       SortByCombinedSpend(PlatformComparison(a.platforms, b.platforms, objectiveOf)),
		ResultTypes: domain.ResultTypeComparison{
			PeriodA: domain.ResultTypeBreakdown(a.monthly),
			PeriodB: domain.ResultTypeBreakdown(b.monthly),
		},
		GeneratedAt: s.now(),
	}
}

func (s *Service) GetLatestComparison(ctx context.Context, viewerID int, accountID string) (*domain.ComparisonReport, error) {
	if accountID == "" {
		return nil, NewComparisonError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, domain.ErrMissingAccount.Error())
	}

	report, err := s.snapshots.GetSnapshot(ctx, viewerID, accountID)
	if err != nil {
		logrus.WithError(err).Error("comparação: falha ao ler snapshot")
		return nil, NewComparisonError(ErrLoadFailed, apiErrors.ErrInternalServer, err.Error())
	}
	if report == nil {
		return nil, NewComparisonError(ErrSnapshotMissing, apiErrors.ErrResourceNotFound, "")
	}

	return report, nil
}

func (s *Service) GetAvailablePeriods(ctx context.Context, accountID string) (*domain.AvailablePeriods, error) {
	if accountID == "" {
		return nil, NewComparisonError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, domain.ErrMissingAccount.Error())
	}

	periods, err := s.repos.MonthlyInsights.ListPeriods(ctx, accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("comparação: falha ao listar períodos")
		return nil, NewComparisonError(ErrDatabase, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return domain.NewAvailablePeriods(periods), nil
}

// GetCreativePerformance consolida por criativo os insights diários de anúncios no intervalo
func (s *Service) GetCreativePerformance(ctx context.Context, accountID string, since, until time.Time) ([]*domain.CreativePerformance, error) {
	if accountID == "" {
		return nil, NewComparisonError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, domain.ErrMissingAccount.Error())
	}
	if since.IsZero() || until.IsZero() || until.Before(since) {
		return nil, NewComparisonError(ErrInvalidRange, apiErrors.ErrInvalidRequest, "")
	}

	var (
		rows      []*domain.InsightRow
		creatives []*domain.AdCreative
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.repos.AdInsights.ListByAccountAndRange(gctx, accountID, since, until)
		return err
	})
	g.Go(func() error {
		var err error
		creatives, err = s.repos.Catalog.ListCreatives(gctx, accountID)
		return err
	})
	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("galeria: falha ao buscar criativos")
		return nil, NewComparisonError(ErrDatabase, apiErrors.ErrDatabaseOperation, err.Error())
	}

	rows, rejected := domain.ValidateRows(rows)
	if len(rejected) > 0 {
		metrics.RejectedRows.WithLabelValues("storage").Add(float64(len(rejected)))
	}

	return BuildCreativePerformance(rows, creatives), nil
}

// BuildCreativePerformance agrega por creative_id; linhas sem criativo ficam de fora
func BuildCreativePerformance(rows []*domain.InsightRow, creatives []*domain.AdCreative) []*domain.CreativePerformance {
	catalog := make(map[string]*domain.AdCreative, len(creatives))
	for _, creative := range creatives {
		catalog[creative.CreativeID] = creative
	}

	performance := make(map[string]*domain.CreativePerformance)
	ads := make(map[string]map[string]struct{})

	for _, row := range rows {
		if row.CreativeID == "" {
			continue
		}

		item, ok := performance[row.CreativeID]
		if !ok {
			item = &domain.CreativePerformance{}
			if creative, found := catalog[row.CreativeID]; found {
				item.AdCreative = *creative
			} else {
				item.CreativeID = row.CreativeID
				item.AccountID = row.AccountID
				item.Name = row.AdName
			}
			performance[row.CreativeID] = item
			ads[row.CreativeID] = make(map[string]struct{})
		}

		item.Spend += row.Spend
		item.Impressions += row.Impressions
		item.Clicks += row.Clicks
		item.Conversions += row.Conversions
		item.ConversionValues += row.ConversionValues
		if row.AdID != "" {
			ads[row.CreativeID][row.AdID] = struct{}{}
		}
	}

	result := make([]*domain.CreativePerformance, 0, len(performance))
	for creativeID, item := range performance {
		item.AdCount = len(ads[creativeID])

		totals := domain.AggregatedMetrics{
			Spend:            item.Spend,
			Impressions:      item.Impressions,
			Clicks:           item.Clicks,
			ConversionValues: item.ConversionValues,
		}
		totals.Finalize()
		item.CTR = totals.CTR
		item.CPC = totals.CPC
		item.ROAS = totals.ROAS()

		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Spend == result[j].Spend {
			return result[i].CreativeID < result[j].CreativeID
		}
		return result[i].Spend > result[j].Spend
	})

	return result
}

// RecalculateResults refaz results, result_type e as colunas de venda a partir das actions gravadas
func (s *Service) RecalculateResults(ctx context.Context, accountID string) (*domain.RecalculationReport, error) {
	if accountID == "" {
		return nil, NewComparisonError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, domain.ErrMissingAccount.Error())
	}

	var (
		rows      []*domain.InsightRow
		campaigns []*domain.Campaign
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.repos.MonthlyInsights.ListByAccount(gctx, accountID)
		return err
	})
	g.Go(func() error {
		var err error
		campaigns, err = s.repos.Catalog.ListCampaigns(gctx, accountID)
		return err
	})
	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("recálculo: falha ao buscar insights")
		return nil, NewComparisonError(ErrDatabase, apiErrors.ErrDatabaseOperation, err.Error())
	}

	metadata := make(map[string]domain.EntityMetadata, len(campaigns))
	for _, campaign := range campaigns {
		metadata[campaign.ID] = campaign.Metadata()
	}
	objectiveOf := NewObjectiveResolver(metadata)

	recalculated := make([]*domain.InsightRow, 0, len(rows))
	for _, row := range rows {
		if len(row.ActionCounts) == 0 {
			continue
		}

		row.ApplyActionCounts(objectiveOf(row), row.ActionCounts)
		recalculated = append(recalculated, row)
	}

	report := &domain.RecalculationReport{
		AccountID:     accountID,
		TotalInsights: len(rows),
	}

	if len(recalculated) == 0 {
		return report, nil
	}

	updated, err := s.repos.MonthlyInsights.UpdateResults(ctx, recalculated)
	report.Updated = updated
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("recálculo: falha ao atualizar insights")
		return report, NewComparisonError(ErrDatabase, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"total":      len(rows),
		"updated":    updated,
	}).Info("recálculo: resultados atualizados")

	return report, nil
}

// IsStale indica se o erro veio de uma carga descartada
func IsStale(err error) bool {
	return errors.Is(err, ErrStaleLoad)
}
