package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hsm-gustavo/bucketlist/internal/api/destination"
	"github.com/hsm-gustavo/bucketlist/internal/api/routes"
	"github.com/hsm-gustavo/bucketlist/internal/api/user"
	"github.com/hsm-gustavo/bucketlist/internal/config"
	"github.com/hsm-gustavo/bucketlist/internal/db"
	"github.com/hsm-gustavo/bucketlist/internal/logging"
)

// @title						Bucket List API
// @version					1.0
// @description				Travel bucket list with account signup, login and bearer-token sessions
// @BasePath					/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the JWT.
func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(os.Stdout, cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.MigrateOnStart {
		if err := db.RunMigrations(cfg.Database.MigrateURL()); err != nil {
			return err
		}
		log.Info("migrations applied")
	}

	database, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, rate limits fail open until it recovers", "addr", cfg.Redis.Addr, "error", err)
		}
	}

	router := routes.SetupRoutes(routes.Dependencies{
		Config:       cfg,
		Log:          log,
		Users:        user.NewMySQLStore(database),
		Destinations: destination.NewMySQLStore(database),
		Redis:        rdb,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starts server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", "port", cfg.Server.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server shut down successfully")
	return nil
}
