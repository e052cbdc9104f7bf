package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	adapthttp "fitcore/internal/adapter/http"
	"fitcore/internal/adapter/memory"
	"fitcore/internal/adapter/postgres"
	"fitcore/internal/app"
	"fitcore/internal/config"
	"fitcore/internal/domain"
	"fitcore/internal/logging"
	"fitcore/internal/metrics"
)

// store is everything a storage adapter has to provide.
type store interface {
	domain.ProfileRepository
	domain.MeasurementRepository
	domain.IntakeRepository
	domain.SnapshotRepository
	domain.UserRepository
}

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	// .env is optional; real deployments set the variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("load .env: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	})
	log.Warnf("---->> running in [%s] environment, storage [%s]", *env, cfg.Storage)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, sessions, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open store: %s", err)
	}
	defer closeStore()

	reg := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, cfg.Metrics.Subsystem, reg)

	authSvc := app.NewAuthService(db, sessions, cfg.SessionTTL.Duration)
	nutritionSvc := app.NewNutritionService(db, db, db, db,
		app.NutritionSettings{
			SodiumGoal:    cfg.Nutrition.SodiumGoal,
			StrictProgram: cfg.Nutrition.StrictProgram,
		},
		app.WithMetrics(metricsManager),
	)

	opts := []adapthttp.Option{adapthttp.WithMetrics(metricsManager, reg)}
	if cfg.OIDC.Enabled {
		oidcCfg, err := adapthttp.NewOIDCConfig(ctx, cfg.OIDC.Issuer, cfg.OIDC.ClientID, cfg.OIDC.ClientSecret, cfg.OIDC.RedirectURL)
		if err != nil {
			log.Fatalf("sso setup: %s", err)
		}
		opts = append(opts, adapthttp.WithOIDC(oidcCfg))
		log.Infof("sso enabled, issuer: %s", cfg.OIDC.Issuer)
	}

	server := adapthttp.New(adapthttp.Services{
		Auth:         authSvc,
		Profiles:     app.NewProfileService(db),
		Measurements: app.NewMeasurementService(db),
		Intake:       app.NewIntakeService(db),
		Nutrition:    nutritionSvc,
	}, opts...)

	if cfg.SnapshotJob.Enabled {
		job := app.NewSnapshotJob(db, nutritionSvc, cfg.SnapshotJob.Interval.Duration, metricsManager)
		go job.Run(ctx)
		log.Infof("snapshot job scheduled every %s", cfg.SnapshotJob.Interval.Duration)
	}
	go purgeSessions(ctx, authSvc, time.Hour)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Infof("listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %s", err)
		}
	}()

	<-ctx.Done()
	log.Warnln("signal received, shutting down ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http server shutdown: %s", err)
	}
}

func openStore(cfg *config.Config) (store, domain.SessionRepository, func(), error) {
	switch cfg.Storage {
	case config.StorageMemory:
		log.Warnln("using in-memory storage, data is lost on restart")
		db := memory.New()
		return db, db.NewSessionRepo(), func() {}, nil
	case config.StoragePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		closer := func() {
			if err := db.Close(); err != nil {
				log.Errorf("close db: %s", err)
			}
		}
		return db, postgres.NewSessionRepo(db), closer, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage: %s", cfg.Storage)
	}
}

func purgeSessions(ctx context.Context, auth *app.AuthService, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := auth.PurgeExpired(ctx); err != nil {
				log.Errorf("purge expired sessions: %s", err)
			}
		}
	}
}
