package meta

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Integrator interface {
	GetAdAccounts(ctx context.Context) ([]*domain.AdAccount, error)
	GetCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error)
	GetAds(ctx context.Context, accountID string) ([]*domain.Ad, []*domain.AdCreative, error)
	GetMonthlyInsights(ctx context.Context, accountID string, since, until time.Time) (*domain.MonthlyInsightBatch, error)
	GetAdInsights(ctx context.Context, accountID string, since, until time.Time) ([]*domain.InsightRow, []error, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAdAccounts lista as contas de todos os business managers configurados
func (s *MetaIntegrator) GetAdAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	accounts := make([]*domain.AdAccount, 0)
	seen := make(map[string]struct{})

	for _, businessID := range s.cfg.Meta.BusinessIDs {
		businessID = strings.TrimSpace(businessID)
		if businessID == "" {
			continue
		}

		metaAccounts, err := s.Client.GetAdAccountsByBusinessID(ctx, businessID)
		if err != nil {
			return nil, err
		}

		for _, metaAccount := range metaAccounts {
			externalID := metaAccount.AccountID
			if externalID == "" {
				externalID = strings.TrimPrefix(metaAccount.ID, "act_")
			}
			if _, ok := seen[externalID]; ok {
				continue
			}
			seen[externalID] = struct{}{}

			status := domain.AdAccountStatusInactive
			if metaAccount.IsActive() {
				status = domain.AdAccountStatusActive
			}

			accounts = append(accounts, &domain.AdAccount{
				ExternalID: externalID,
				Name:       metaAccount.Name,
				Currency:   metaAccount.Currency,
				Status:     status,
			})
		}
	}

	logrus.WithField("accounts", len(accounts)).Debug("meta: contas obtidas dos business managers")

	return accounts, nil
}

func (s *MetaIntegrator) GetCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	metaCampaigns, err := s.Client.GetCampaignsByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(metaCampaigns))
	for _, c := range metaCampaigns {
		campaigns = append(campaigns, &domain.Campaign{
			ID:        c.ID,
			AccountID: accountID,
			Name:      c.Name,
			Objective: c.Objective,
			Status:    c.Status,
		})
	}

	return campaigns, nil
}

// GetAds retorna os anúncios e os criativos distintos referenciados por eles
func (s *MetaIntegrator) GetAds(ctx context.Context, accountID string) ([]*domain.Ad, []*domain.AdCreative, error) {
	metaAds, err := s.Client.GetAdsByAccountID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	ads := make([]*domain.Ad, 0, len(metaAds))
	creatives := make([]*domain.AdCreative, 0)
	seen := make(map[string]struct{})

	for _, metaAd := range metaAds {
		ad := &domain.Ad{
			ID:         metaAd.ID,
			AccountID:  accountID,
			AdSetID:    metaAd.AdSetID,
			CampaignID: metaAd.CampaignID,
			Name:       metaAd.Name,
			Status:     metaAd.Status,
		}

		if metaAd.Creative != nil && metaAd.Creative.ID != "" {
			ad.CreativeID = metaAd.Creative.ID

			if _, ok := seen[metaAd.Creative.ID]; !ok {
				seen[metaAd.Creative.ID] = struct{}{}
				creatives = append(creatives, &domain.AdCreative{
					CreativeID:   metaAd.Creative.ID,
					AccountID:    accountID,
					Name:         metaAd.Creative.Name,
					Title:        metaAd.Creative.Title,
					Body:         metaAd.Creative.Body,
					ImageURL:     metaAd.Creative.ImageURL,
					ThumbnailURL: metaAd.Creative.ThumbnailURL,
					VideoID:      metaAd.Creative.VideoID,
					LinkURL:      metaAd.Creative.LinkURL,
				})
			}
		}

		ads = append(ads, ad)
	}

	return ads, creatives, nil
}

// GetMonthlyInsights faz as três passagens mensais por conjunto de anúncios: geral, idade/gênero e plataforma
func (s *MetaIntegrator) GetMonthlyInsights(ctx context.Context, accountID string, since, until time.Time) (*domain.MonthlyInsightBatch, error) {
	batch := &domain.MonthlyInsightBatch{}

	passes := []struct {
		breakdown metadomain.Breakdown
		target    *[]*domain.InsightRow
	}{
		{breakdown: metadomain.BreakdownNone, target: &batch.AdSets},
		{breakdown: metadomain.BreakdownAgeGender, target: &batch.Demographics},
		{breakdown: metadomain.BreakdownPublisher, target: &batch.Platforms},
	}

	for _, pass := range passes {
		insights, err := s.Client.GetInsights(ctx, accountID, metadomain.InsightQuery{
			Level:     metadomain.LevelAdSet,
			Breakdown: pass.breakdown,
			Since:     since.Format(time.DateOnly),
			Until:     until.Format(time.DateOnly),
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"breakdown":  string(pass.breakdown),
				"error":      err.Error(),
			}).Error("meta: falha ao buscar insights mensais")
			return nil, err
		}

		rows, rejected := s.toRows(accountID, insights)
		*pass.target = rows
		batch.Rejected = append(batch.Rejected, rejected...)
	}

	return batch, nil
}

// GetAdInsights busca os insights diários por anúncio usados na galeria de criativos
func (s *MetaIntegrator) GetAdInsights(ctx context.Context, accountID string, since, until time.Time) ([]*domain.InsightRow, []error, error) {
	insights, err := s.Client.GetInsights(ctx, accountID, metadomain.InsightQuery{
		Level:         metadomain.LevelAd,
		Since:         since.Format(time.DateOnly),
		Until:         until.Format(time.DateOnly),
		TimeIncrement: "1",
	})
	if err != nil {
		return nil, nil, err
	}

	rows, rejected := s.toRows(accountID, insights)
	return rows, rejected, nil
}

func (s *MetaIntegrator) toRows(accountID string, insights []metadomain.Insight) ([]*domain.InsightRow, []error) {
	rows := make([]*domain.InsightRow, 0, len(insights))
	rejected := make([]error, 0)

	for i := range insights {
		row, err := FactoryInsightRow(accountID, &insights[i])
		if err == nil {
			err = row.Validate()
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"adset_id":   insights[i].AdSetID,
				"error":      err.Error(),
			}).Warn("meta: linha de insight descartada")
			metrics.RejectedRows.WithLabelValues("meta").Inc()
			rejected = append(rejected, err)
			continue
		}
		rows = append(rows, row)
	}

	return rows, rejected
}

// FactoryInsightRow converte uma linha da Graph API; valores monetários e contagens chegam como string
func FactoryInsightRow(accountID string, insight *metadomain.Insight) (*domain.InsightRow, error) {
	spend, err := parseMeasure("spend", insight.Spend)
	if err != nil {
		return nil, err
	}
	impressions, err := parseMeasure("impressions", insight.Impressions)
	if err != nil {
		return nil, err
	}
	clicks, err := parseMeasure("clicks", insight.Clicks)
	if err != nil {
		return nil, err
	}
	reach, err := parseMeasure("reach", insight.Reach)
	if err != nil {
		return nil, err
	}

	actionCounts, err := sumActions(insight.Actions)
	if err != nil {
		return nil, err
	}
	actionValues, err := sumActions(insight.ActionValues)
	if err != nil {
		return nil, err
	}

	if insight.AccountID != "" {
		accountID = insight.AccountID
	}

	row := &domain.InsightRow{
		PeriodKey:         insight.DateStart,
		Date:              insight.DateStart,
		AccountID:         accountID,
		CampaignID:        insight.CampaignID,
		CampaignName:      insight.CampaignName,
		AdSetID:           insight.AdSetID,
		AdSetName:         insight.AdSetName,
		AdID:              insight.AdID,
		AdName:            insight.AdName,
		PublisherPlatform: insight.PublisherPlatform,
		AgeGroup:          insight.Age,
		Gender:            insight.Gender,
		Objective:         insight.Objective,
		Spend:             spend,
		Impressions:       impressions,
		Clicks:            clicks,
		Reach:             reach,
	}

	row.ApplyActionCounts(insight.Objective, actionCounts)
	row.Conversions = row.SalesPurchase
	row.ConversionValues = domain.FamilyCount(actionValues, domain.PurchaseActionTypes)

	return row, nil
}

func parseMeasure(field, value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, &domain.InvalidRowError{Err: domain.ErrInvalidMeasure, Field: field, Value: value}
	}

	return d.InexactFloat64(), nil
}

// sumActions agrega os pares action_type/value; tipos repetidos são somados
func sumActions(actions []metadomain.Action) (map[string]float64, error) {
	totals := make(map[string]decimal.Decimal, len(actions))
	for _, action := range actions {
		if action.ActionType == "" {
			continue
		}

		d, err := decimal.NewFromString(strings.TrimSpace(action.Value))
		if err != nil {
			return nil, &domain.InvalidRowError{Err: domain.ErrInvalidMeasure, Field: "actions." + action.ActionType, Value: action.Value}
		}
		totals[action.ActionType] = totals[action.ActionType].Add(d)
	}

	counts := make(map[string]float64, len(totals))
	for actionType, total := range totals {
		counts[actionType] = total.InexactFloat64()
	}

	return counts, nil
}
