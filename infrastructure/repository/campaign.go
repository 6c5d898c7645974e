package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const (
	campaignsTable   = "meta_campaigns"
	adsTable         = "meta_ads"
	adCreativesTable = "meta_ad_creatives"
)

// CatalogRepository guarda o cadastro de campanhas, anúncios e criativos de cada conta
//
//go:generate mockgen -source=campaign.go -destination=mocks/campaign_mock.go -package=mocks
type CatalogRepository interface {
	ListCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error)
	SaveCampaigns(ctx context.Context, campaigns []*domain.Campaign) error
	SaveAds(ctx context.Context, ads []*domain.Ad) error
	ListCreatives(ctx context.Context, accountID string) ([]*domain.AdCreative, error)
	SaveCreatives(ctx context.Context, creatives []*domain.AdCreative) error
}

type catalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) ListCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.campaign_id, c.account_id, c.name, c.objective, c.status").
		From(campaignsTable + " c").
		Where(squirrel.Eq{"c.account_id": accountID}).
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		if err := rows.Scan(
			&campaign.ID,
			&campaign.AccountID,
			&campaign.Name,
			&campaign.Objective,
			&campaign.Status,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *catalogRepository) SaveCampaigns(ctx context.Context, campaigns []*domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	query := squirrel.
		Insert(campaignsTable).
		Columns("campaign_id", "account_id", "name", "objective", "status")
	for _, campaign := range campaigns {
		query = query.Values(campaign.ID, campaign.AccountID, campaign.Name, campaign.Objective, campaign.Status)
	}
	query = query.Suffix(`ON CONFLICT (campaign_id) DO UPDATE SET
		name = EXCLUDED.name,
		objective = EXCLUDED.objective,
		status = EXCLUDED.status,
		updated_at = NOW()`)

	return r.exec(ctx, query)
}

func (r *catalogRepository) SaveAds(ctx context.Context, ads []*domain.Ad) error {
	if len(ads) == 0 {
		return nil
	}

	query := squirrel.
		Insert(adsTable).
		Columns("ad_id", "account_id", "adset_id", "campaign_id", "creative_id", "name", "status")
	for _, ad := range ads {
		query = query.Values(ad.ID, ad.AccountID, ad.AdSetID, ad.CampaignID, ad.CreativeID, ad.Name, ad.Status)
	}
	query = query.Suffix(`ON CONFLICT (ad_id) DO UPDATE SET
		creative_id = EXCLUDED.creative_id,
		name = EXCLUDED.name,
		status = EXCLUDED.status,
		updated_at = NOW()`)

	return r.exec(ctx, query)
}

func (r *catalogRepository) ListCreatives(ctx context.Context, accountID string) ([]*domain.AdCreative, error) {
	query, args, err := squirrel.
		Select("cr.creative_id, cr.account_id, cr.name, cr.title, cr.body, cr.image_url, cr.thumbnail_url, cr.video_id, cr.link_url").
		From(adCreativesTable + " cr").
		Where(squirrel.Eq{"cr.account_id": accountID}).
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

	creatives := make([]*domain.AdCreative, 0)
	for rows.Next() {
		var (
			creative                                    domain.AdCreative
			title, body, image, thumbnail, video, link sql.NullString
		)
		if err := rows.Scan(
			&creative.CreativeID,
			&creative.AccountID,
			&creative.Name,
			&title,
			&body,
			&image,
			&thumbnail,
			&video,
			&link,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear criativo: %w", err)
		}

		creative.Title = title.String
		creative.Body = body.String
		creative.ImageURL = image.String
		creative.ThumbnailURL = thumbnail.String
		creative.VideoID = video.String
		creative.LinkURL = link.String
		creatives = append(creatives, &creative)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return creatives, nil
}

func (r *catalogRepository) SaveCreatives(ctx context.Context, creatives []*domain.AdCreative) error {
	if len(creatives) == 0 {
		return nil
	}

	query := squirrel.
		Insert(adCreativesTable).
		Columns("creative_id", "account_id", "name", "title", "body", "image_url", "thumbnail_url", "video_id", "link_url")
	for _, c := range creatives {
		query = query.Values(c.CreativeID, c.AccountID, c.Name, c.Title, c.Body, c.ImageURL, c.ThumbnailURL, c.VideoID, c.LinkURL)
	}
	query = query.Suffix(`ON CONFLICT (creative_id) DO UPDATE SET
		name = EXCLUDED.name,
		title = EXCLUDED.title,
		body = EXCLUDED.body,
		image_url = EXCLUDED.image_url,
		thumbnail_url = EXCLUDED.thumbnail_url,
		video_id = EXCLUDED.video_id,
		link_url = EXCLUDED.link_url,
		updated_at = NOW()`)

	return r.exec(ctx, query)
}

func (r *catalogRepository) exec(ctx context.Context, query squirrel.InsertBuilder) error {
	sqlQuery, args, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
