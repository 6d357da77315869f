// @title twentyfourseven API
// @description API for the "twentyfourseven" time tracker and journal
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/limbo/twentyfourseven/docs"
	"github.com/limbo/twentyfourseven/internal/api"
	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/cleanup"
	"github.com/limbo/twentyfourseven/pkg/config"
	jwtservice "github.com/limbo/twentyfourseven/pkg/jwt_service"
	"github.com/limbo/twentyfourseven/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	lg, syncLogs, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal("setting up logger error: " + err.Error())
	}
	slog.SetDefault(lg)
	cleanup.Register(&cleanup.Job{Name: "syncing logger", F: syncLogs})
	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.Username,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
	}
	pool, err := repository.NewPool(ctx, &dbCfg)
	if err != nil {
		slog.Error("connecting to postgres error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loc := cfg.Location()
	entries := repository.NewTimeEntriesRepoWithConn(pool)
	goals := repository.NewGoalsRepoWithConn(pool)
	kv := repository.NewPgKVWithConn(pool)
	locks := service.NewUserLocks()
	activity := service.NewActivityService(repository.NewActivityStore(kv), cfg.HistoryLimit).
		WithIdleTimeout(cfg.ActivityIdle)

	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(repository.NewUsersRepoWithConn(pool)),
		TimerService:    service.NewTimerService(entries),
		GapsService:     service.NewGapsService(entries, cfg.GapThreshold),
		ReportService:   service.NewReportService(entries, goals, loc, cfg.WeekStartDay()),
		TakeawayService: service.NewTakeawayService(repository.NewTakeawaysRepoWithConn(pool), loc),
		CatalogService: service.NewCatalogService(
			repository.NewCategoriesRepoWithConn(pool),
			repository.NewProjectsRepoWithConn(pool),
			goals,
		),
		ActivityService: activity,
		NotesService:    service.NewNotesService(repository.NewNoteStore(kv), loc).WithLocks(locks),
		SettingsService: service.NewSettingsService(repository.NewSettingsStore(kv)).WithLocks(locks),
		BackupService:   service.NewBackupService(kv).WithLocks(locks).WithActivity(activity),
		JwtService:      jwtservice.New(cfg.JWTSecret),
		RequestTimeout:  cfg.RequestTimeout,
		Location:        loc,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(cfg.APIAddress)
	}()
	select {
	case err = <-errCh:
		if err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err = serv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", slog.String("error", err.Error()))
		}
		cancel()
	}
	cleanup.CleanUp()
}
