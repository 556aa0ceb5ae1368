package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"github.com/DerekDew/poe2-api-stub/internal/config"
	"github.com/DerekDew/poe2-api-stub/internal/domain/service/alerts"
	"github.com/DerekDew/poe2-api-stub/internal/domain/service/deals"
	"github.com/DerekDew/poe2-api-stub/internal/infrastructure/dedup"
	"github.com/DerekDew/poe2-api-stub/internal/infrastructure/notifier"
	"github.com/DerekDew/poe2-api-stub/internal/server"
	"github.com/DerekDew/poe2-api-stub/pkg/application/connectors"
	"github.com/DerekDew/poe2-api-stub/pkg/application/modules"
	"github.com/DerekDew/poe2-api-stub/pkg/contextx"
	"github.com/DerekDew/poe2-api-stub/pkg/logx"
	"github.com/DerekDew/poe2-api-stub/pkg/middlewarex"
)

const (
	appName    = "poe2-api-stub"
	appVersion = "v0.12.0"

	httpServerReadHeaderTimeout = 5 * time.Second

	logFieldMaxLen = 2048
)

func Run(ctx context.Context, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	if cfg.Alerts.Secret == "" {
		log.Warn("alerts secret is empty, enable/disable endpoints are unprotected")
	}

	// 2. Dedup store: Redis when configured and reachable, in-process
	// otherwise. Never fatal.
	var store dedup.Store = dedup.NewMemoryStore()

	if cfg.Redis.Address != "" {
		redisConn := &connectors.Redis{
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer redisConn.Close(ctx)

		client := redisConn.Client(ctx)

		if pingErr := client.Ping(ctx).Err(); pingErr != nil {
			log.Warn("redis unavailable, using in-memory dedup", logx.Error(pingErr))
		} else {
			log.Info("redis dedup store active", slog.String("address", cfg.Redis.Address))
			store = dedup.NewRedisStore(client)
		}
	}

	// 3. Services
	dealService := deals.NewService(
		deals.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))), //nolint:gosec // mock data
	)

	var alertNotifier alerts.Notifier
	if cfg.Alerts.Webhook != "" {
		alertNotifier = notifier.NewDiscord(cfg.Alerts.Webhook)
	}

	alertService := alerts.NewService(
		dealService,
		store,
		alertNotifier,
		cfg.Alerts.MinScore,
		cfg.Alerts.Enabled,
	)

	// 4. HTTP
	srv := server.NewServer(
		server.NewDealServer(dealService),
		server.NewAlertServer(alertService, cfg.Alerts.Secret),
	)

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTP.Origins(),
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}),
	)

	if cfg.HTTP.VerboseLogging {
		masker := logx.NewSensitiveDataMasker()
		router.Use(
			middlewarex.RequestLogging(masker, logFieldMaxLen),
			middlewarex.ResponseLogging(masker, logFieldMaxLen),
		)
	}

	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          appName,
		Version:       appVersion,
		ListenAddress: cfg.HTTP.ProbeAddress,
	}.Run(ctx, g)
	modules.MetricServer{ListenAddress: cfg.HTTP.MetricsAddress}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
