package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/email"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/api"
	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/scheduler"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/comparing"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/sharing"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.WithError(err).Warn("Usando nível de log 'info'")
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshots, err := cache.NewRedisSnapshotCache(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, usando snapshots em memória")
		snapshots = cache.NewMemorySnapshotCache()
	}

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	monthlyInsightRepo := repository.NewMonthlyInsightRepository(pgConn)
	demographicRepo := repository.NewMonthlyDemographicRepository(pgConn)
	platformRepo := repository.NewPlatformInsightRepository(pgConn)
	adInsightRepo := repository.NewAdInsightRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)
	shareResourceRepo := repository.NewShareResourceRepository(pgConn)
	promptRepo := repository.NewPromptRepository(pgConn)

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh(ctx)

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	authenticator := authenticating.NewService(userRepo, cfg)
	accountService := account.NewService(accountRepo, metaIntegrator)

	comparisonService := comparing.NewService(comparing.Repositories{
		MonthlyInsights: monthlyInsightRepo,
		Demographics:    demographicRepo,
		Platforms:       platformRepo,
		AdInsights:      adInsightRepo,
		Catalog:         catalogRepo,
	}, snapshots, cfg.Comparison.LoadTimeout)

	analyzer := analyzing.NewService(promptRepo, gemini.NewClient(cfg))
	sharingService := sharing.NewService(shareResourceRepo, email.NewSendGridSender(cfg), whatsapp.NewClient(cfg))

	// Inicializa o agendador de sincronização mensal
	monthlyInsightsSyncService := scheduler.NewMonthlyInsightsSyncService(
		scheduler.SyncRepositories{
			Accounts:        accountRepo,
			MonthlyInsights: monthlyInsightRepo,
			Demographics:    demographicRepo,
			Platforms:       platformRepo,
			AdInsights:      adInsightRepo,
			Catalog:         catalogRepo,
		},
		metaIntegrator,
		cfg,
	)

	if err := monthlyInsightsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização mensal de insights")
	} else {
		logrus.Info("Agendador de sincronização mensal de insights iniciado com sucesso")
	}

	healthChecks := map[string]handler.HealthCheck{"postgres": pgConn.Ping}
	if redisCache, ok := snapshots.(*cache.RedisSnapshotCache); ok {
		healthChecks["redis"] = redisCache.Ping
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Accounts:      accountService,
		Comparison:    comparisonService,
		Analyzer:      analyzer,
		Sharing:       sharingService,
		MonthlySync:   monthlyInsightsSyncService,
		HealthChecks:  healthChecks,
	}, snapshots.Close)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
