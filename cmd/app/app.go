package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/api"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/config"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/db"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/logger"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/repository/dao"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	if err = logger.SetLevel(conf.Log.Level); err != nil {
		return fmt.Errorf("failed to set log level -> %w", err)
	}

	_, err = config.Watch(configPath, func(c *config.AppConfig) {
		if err := logger.SetLevel(c.Log.Level); err != nil {
			zap.L().Warn("ignoring log level from reloaded config", zap.Error(err))
			return
		}
		zap.L().Info("log level reloaded", zap.Stringer("level", logger.Level()))
	})
	if err != nil {
		return fmt.Errorf("failed to watch config -> %w", err)
	}

	gormLevel := gormlogger.Warn
	if conf.API.Environment == "production" {
		gormLevel = gormlogger.Silent
	}

	database, err := db.Open(conf.Database.URL, db.WithLogLevel(gormLevel))
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			zap.L().Error("failed to close database", zap.Error(err))
		}
	}()

	if err = dao.InitTables(database); err != nil {
		return fmt.Errorf("failed to create tables -> %w", err)
	}

	s := api.NewServer(conf, database)

	return run(context.Background(), s)
}

func run(ctx context.Context, s *api.Server) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:    ":" + s.Config.API.Port,
		Handler: s.Router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Config.API.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
