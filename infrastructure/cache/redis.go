package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SnapshotCache guarda o último relatório de comparação carregado por visualizador e conta
//
//go:generate mockgen -source=redis.go -destination=mocks/redis_mock.go -package=mocks
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, viewerID int, accountID string) (*domain.ComparisonReport, error)
	SaveSnapshot(ctx context.Context, viewerID int, report *domain.ComparisonReport) error
	Close() error
}

type RedisSnapshotCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisSnapshotCache conecta no Redis configurado; com o cache desabilitado devolve um cache em memória do processo
func NewRedisSnapshotCache(ctx context.Context, cfg config.Redis) (SnapshotCache, error) {
	if !cfg.Enabled {
		logrus.Info("Cache Redis desabilitado, usando snapshots em memória")
		return NewMemorySnapshotCache(), nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "url do redis inválida")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "falha ao conectar no redis")
	}

	return NewSnapshotCacheWithClient(client, cfg.KeyPrefix, cfg.SnapshotTTL), nil
}

func NewSnapshotCacheWithClient(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisSnapshotCache) key(viewerID int, accountID string) string {
	return snapshotKey(c.prefix, viewerID, accountID)
}

func snapshotKey(prefix string, viewerID int, accountID string) string {
	return fmt.Sprintf("%scomparison:%d:%s", prefix, viewerID, accountID)
}

func (c *RedisSnapshotCache) GetSnapshot(ctx context.Context, viewerID int, accountID string) (*domain.ComparisonReport, error) {
	data, err := c.client.Get(ctx, c.key(viewerID, accountID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler snapshot do redis")
	}

	var report domain.ComparisonReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar snapshot")
	}

	return &report, nil
}

func (c *RedisSnapshotCache) SaveSnapshot(ctx context.Context, viewerID int, report *domain.ComparisonReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar snapshot")
	}

	return c.client.Set(ctx, c.key(viewerID, report.AccountID), data, c.ttl).Err()
}

func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}

// Ping é usado pelo readiness da API
func (c *RedisSnapshotCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
