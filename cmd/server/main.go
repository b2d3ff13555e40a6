package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"connectrpc.com/connect"
	"github.com/castlemilk/cloudcost/gen/cloudcost/v1/cloudcostv1connect"
	"github.com/castlemilk/cloudcost/internal/analytics"
	"github.com/castlemilk/cloudcost/internal/config"
	"github.com/castlemilk/cloudcost/internal/interceptor"
	"github.com/castlemilk/cloudcost/internal/logger"
	"github.com/castlemilk/cloudcost/internal/scheduler"
	"github.com/castlemilk/cloudcost/internal/service"
	"github.com/castlemilk/cloudcost/internal/store"
	"github.com/getsentry/sentry-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/api/option"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Env,
		}); err != nil {
			zl.Fatal("failed to initialise sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()

	storeImpl, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		zl.Fatal("failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closeStore()
	zl.Info("store opened", zap.String("driver", cfg.StoreDriver))

	forecaster := analytics.NewForecaster(storeImpl, storeImpl, analytics.WithLogger(zl.Named("forecast")))
	dashboard := analytics.NewDashboard(storeImpl, analytics.WithLogger(zl.Named("dashboard")))
	snapshots := scheduler.NewSnapshotJob(forecaster, storeImpl, zl)

	sched, err := scheduler.New(snapshots, cfg.ForecastCron, time.Local, zl)
	if err != nil {
		zl.Fatal("failed to create scheduler", zap.Error(err))
	}
	sched.Start()

	costService := service.NewCostService(storeImpl, forecaster, dashboard, snapshots, zl.Named("service"))

	path, handler := cloudcostv1connect.NewCostServiceHandler(
		costService,
		connect.WithInterceptors(interceptor.Logging(zl.Named("rpc")), interceptor.Sentry()),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
			"Content-Type",
			"User-Agent",
			"X-User-Agent",
		},
		ExposedHeaders: []string{
			"Grpc-Status",
			"Grpc-Message",
		},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           h2c.NewHandler(c.Handler(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown failed", zap.Error(err))
	}
	sched.Stop(shutdownCtx)
}

// openStore opens the configured store and returns a function releasing it.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		s, err := store.NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	case config.StorePostgres:
		s, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.StoreFirestore:
		var clientOpts []option.ClientOption
		if cfg.CredentialsFile != "" {
			clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.CredentialsFile))
		}
		client, err := firestore.NewClient(ctx, cfg.ProjectID, clientOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Firestore client: %w", err)
		}
		return store.NewFirestoreStore(client), func() { client.Close() }, nil
	default:
		return store.NewMemoryStore(), func() {}, nil
	}
}
