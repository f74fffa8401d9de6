package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/employee-onboarding/internal/adapters/repository/postgres"
	"github.com/ogurasousui/employee-onboarding/internal/core/employee"
	"github.com/ogurasousui/employee-onboarding/internal/platform/config"
	pg "github.com/ogurasousui/employee-onboarding/internal/platform/db/postgres"
	"github.com/ogurasousui/employee-onboarding/internal/platform/logging"
	"github.com/ogurasousui/employee-onboarding/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.Logging)

	dbPool, err := pg.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	repo := postgres.NewEmployeeRepository(dbPool)
	tx := pg.NewTransactionManager(dbPool, pg.WithIsolationLevel(pgx.RepeatableRead))
	svc := employee.NewService(repo, nil, tx)
	grpcServer := server.New(cfg.Server, svc, logger)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
	logger.Info("server stopped")
}
