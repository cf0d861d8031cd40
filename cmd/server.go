package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cse-motors/dealership/internal/api"
	"github.com/cse-motors/dealership/internal/infrastructure/config"
	"github.com/cse-motors/dealership/internal/infrastructure/db/postgres"
	"github.com/cse-motors/dealership/internal/infrastructure/db/redis"
	"github.com/cse-motors/dealership/pkg/logger"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the dealership web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		log := logger.Init(logger.Options{
			Level:  cfg.LogLevel,
			Pretty: cfg.Env == "development",
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()

		e := api.NewRouter(db, rdb, cfg, log)

		go func() {
			log.Info().Str("port", cfg.Port).Msg("server listening")
			if err := e.Start(":" + cfg.Port); err != nil {
				log.Info().Err(err).Msg("server stopped")
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
