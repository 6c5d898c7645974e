package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler"
	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/comparing"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/sharing"
	"github.com/vfg2006/marketing-dashboard-api/pkg/middleware"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	onShutdown      []func() error
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Accounts      account.AccountService
	Comparison    comparing.ComparisonService
	Analyzer      analyzing.Analyzer
	Sharing       sharing.SharingService
	MonthlySync   handler.MonthlySyncTrigger
	HealthChecks  map[string]handler.HealthCheck
}

func New(config *config.Config, services Services, onShutdown ...func() error) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("autenticador não configurado")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.HealthChecks)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.AdAccounts(services.Accounts)...),
		router.WithRoutes(handler.Comparison(services.Comparison)...),
		router.WithRoutes(handler.Analysis(services.Analyzer)...),
		router.WithRoutes(handler.ShareResources(services.Sharing)...),
		router.WithRoutes(handler.CronJobs(services.MonthlySync)...),
	)

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.App.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	shutdownTimeout := config.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 15 * time.Second
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
		onShutdown:      onShutdown,
	}, nil
}

// Run atende até receber SIGINT/SIGTERM ou ctx ser cancelado e então desliga com prazo
// de shutdownTimeout. Uma falha ao abrir a porta encerra Run com erro.
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("servidor http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logrus.WithField("timeout", s.shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Shutdown para de aceitar conexões, espera as requisições em andamento e libera cache e conexões
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("desligando servidor http: %w", err)
	}

	for _, fn := range s.onShutdown {
		if err := fn(); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar recurso no desligamento")
		}
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
