package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/iamolegga/goqite"
	"github.com/iamolegga/goqite/jobs"
	"github.com/redis/go-redis/v9"

	"github.com/grantsy/mercuryhook/internal/auth"
	"github.com/grantsy/mercuryhook/internal/dispatch"
	"github.com/grantsy/mercuryhook/internal/httptools"
	"github.com/grantsy/mercuryhook/internal/infra/config"
	"github.com/grantsy/mercuryhook/internal/infra/db"
	"github.com/grantsy/mercuryhook/internal/infra/logger"
	"github.com/grantsy/mercuryhook/internal/infra/metrics"
	"github.com/grantsy/mercuryhook/internal/infra/server"
	"github.com/grantsy/mercuryhook/internal/infra/tracing"
	_ "github.com/grantsy/mercuryhook/internal/infra/validation"
	"github.com/grantsy/mercuryhook/internal/mercury"
	"github.com/grantsy/mercuryhook/internal/openapi"
	"github.com/grantsy/mercuryhook/internal/signature"
	"github.com/grantsy/mercuryhook/internal/subscriptions"
	"github.com/grantsy/mercuryhook/internal/webhooks"
	"github.com/grantsy/mercuryhook/internal/workflows"
	"github.com/grantsy/mercuryhook/pkg/gracefulshutdown"
)

const (
	healthcheckProbePath = "/healthz"
	webhookPathPattern   = "/v1/webhook/mercury/*"
)

func main() {
	//
	// Infra
	//

	gracefulshutdown.SubscribeForShutdown()

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Log.Level, cfg.Log.Format, cfg.Env)
	slog.Debug("starting mercuryhook", "env", cfg.Env, "state_driver", cfg.State.Driver)

	if err := db.Migrate(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.Namespace); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	database, err := db.New(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.Namespace)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	mercuryTimeout := mustDuration("mercury.timeout", cfg.Mercury.Timeout)
	tolerance := mustDuration("signature.tolerance", cfg.Signature.Tolerance)
	pollInterval := mustDuration("engine.poll_interval", cfg.Engine.PollInterval)

	//
	// Services
	//

	var flavor goqite.SQLFlavor
	switch cfg.Database.Driver {
	case "postgres":
		flavor = goqite.SQLFlavorPostgreSQL
	case "sqlite":
		flavor = goqite.SQLFlavorSQLite
	default:
		slog.Error("unsupported database driver", "driver", cfg.Database.Driver)
		os.Exit(1)
	}

	engineQueue := goqite.New(goqite.NewOpts{
		DB:         database.DB,
		Name:       webhooks.JobName,
		SQLFlavor:  flavor,
		MaxReceive: cfg.Engine.MaxReceive,
		Timeout:    time.Second * 15,
	})

	store := newStore(cfg, database)

	mercuryAuth, err := mercury.NewAuth(cfg.Mercury.Auth)
	if err != nil {
		slog.Error("failed to configure mercury credentials", "error", err)
		os.Exit(1)
	}
	mercuryClient := mercury.NewClient(gracefulshutdown.GetServerBaseContext(), mercury.Options{
		BaseURL:   cfg.Mercury.BaseURL,
		Auth:      mercuryAuth,
		Timeout:   mercuryTimeout,
		RateLimit: cfg.Mercury.RateLimit,
	})
	go checkCredentials(mercuryClient, mercuryTimeout)

	manager := subscriptions.NewManager(store, mercuryClient)
	verifier := signature.NewVerifier(signature.WithTolerance(tolerance))
	emitter := webhooks.NewService(engineQueue)
	dispatcher := dispatch.NewDispatcher(manager, verifier, mercuryClient, emitter)

	// Start engine delivery worker
	engineWorker, err := webhooks.NewWorker(cfg.Engine.URL, cfg.Engine.Secret)
	if err != nil {
		slog.Error("failed to create engine worker", "error", err)
		os.Exit(1)
	}
	runner := jobs.NewRunner(jobs.NewRunnerOpts{
		Limit:        cfg.Engine.Workers,
		PollInterval: pollInterval,
		Queue:        engineQueue,
		Log:          slog.Default(),
	})
	runner.Register(webhooks.JobName, engineWorker.Handle)
	go runner.Start(gracefulshutdown.GetServerBaseContext())

	//
	// Routes
	//

	reflector := openapi.NewReflector()

	routes := []httptools.Route{
		workflows.NewRouteActivate(manager, cfg.PublicURL),
		workflows.NewRouteDeactivate(manager),
		workflows.NewRouteStatus(manager),
		workflows.NewRouteTriggerTypes(),
		dispatch.NewRouteWebhook(dispatcher),
	}
	mux := http.NewServeMux()
	hideRouteMiddleware := httptools.Hidden(
		httptools.IsLocalNetworkReq,
		http.StatusNotFound,
	)
	if cfg.Metrics.Enable {
		metricsHandler := metrics.Init(cfg.Metrics.GoMetrics)
		mux.Handle(
			"GET "+cfg.Metrics.Path,
			httptools.Wrap(metricsHandler, hideRouteMiddleware),
		)
	}
	mux.Handle(
		"GET "+healthcheckProbePath,
		httptools.Wrap(
			nil,
			hideRouteMiddleware,
			gracefulshutdown.HealthCheckMiddleware,
			db.HealthCheckMiddleware(database),
		),
	)
	for _, route := range routes {
		route.Register(mux, reflector)
	}
	openapi.NewRoute(reflector).Register(mux, reflector)

	//
	// Middlewares
	//

	// skip tracing, logging and metrics for unnecessary endpoints
	// skip auth for healthz, metrics, docs and mercury webhooks (signed per node)
	middlewares := []func(http.Handler) http.Handler{
		httptools.Skip(tracing.Middleware, healthcheckProbePath, cfg.Metrics.Path),
		httptools.Skip(logger.Middleware, healthcheckProbePath, cfg.Metrics.Path),
		logger.RecoveryMiddleware,
		apiKeyMiddleware(cfg.Auth.APIKey, cfg.Metrics.Path),
	}
	if cfg.Metrics.Enable {
		middlewares = append(
			middlewares,
			httptools.Skip(
				metrics.Middleware,
				healthcheckProbePath,
				cfg.Metrics.Path,
			),
		)
	}

	//
	// Start server
	//

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := server.New(addr, httptools.Wrap(mux, middlewares...))
	go func() {
		slog.Info("starting server", "addr", addr, "public_url", cfg.PublicURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()
	gracefulshutdown.WaitForShutdown(srv)
}

func newStore(cfg *config.Config, database *db.DB) subscriptions.Store {
	switch cfg.State.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.State.Redis.Addr,
			Password: cfg.State.Redis.Password,
			DB:       cfg.State.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			slog.Error("failed to connect to redis", "addr", cfg.State.Redis.Addr, "error", err)
			os.Exit(1)
		}
		return subscriptions.NewRedisStore(client, cfg.State.Redis.Prefix)
	default:
		repo := subscriptions.NewRepo(database)
		if counts, err := repo.CountByTriggerType(context.Background()); err == nil {
			slog.Info("loaded trigger subscriptions", "counts", counts)
		}
		return repo
	}
}

// checkCredentials only warns: the API may be reachable later and
// deliveries for existing nodes still verify without it.
func checkCredentials(client *mercury.Client, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(gracefulshutdown.GetServerBaseContext(), timeout)
	defer cancel()
	if err := client.TestCredentials(ctx); err != nil {
		slog.Warn("mercury credential check failed", "error", err)
		return
	}
	slog.Info("mercury credentials verified")
}

func mustDuration(name, value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Error("failed to parse duration", "field", name, "value", value, "error", err)
		os.Exit(1)
	}
	return d
}

// apiKeyMiddleware guards the activation API. Mercury deliveries carry their
// own per-node signature instead.
func apiKeyMiddleware(apiKey, metricsPath string) httptools.Middleware {
	return httptools.Skip(
		auth.Middleware(apiKey),
		healthcheckProbePath,
		metricsPath,
		"/openapi.json",
		"/docs",
		webhookPathPattern,
	)
}
