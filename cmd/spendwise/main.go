package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spendwise/internal/amqp"
	"spendwise/internal/auth"
	"spendwise/internal/config"
	apphttp "spendwise/internal/http"
	"spendwise/internal/log"
	"spendwise/internal/services"
	"spendwise/internal/storage"
)

const sessionPurgeInterval = time.Hour

func main() {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", log.FieldError, err)
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open database", log.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("Database ready", "path", cfg.SQLiteDBPath)

	// Event publishing is optional: without an AMQP URL expenses are
	// stored but no events go out.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logger.Error("Failed to connect to AMQP", log.FieldError, err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		logger.Info("AMQP publisher ready", "exchange", cfg.AMQPExchange)
	} else {
		logger.Info("AMQP publishing disabled")
	}

	authSvc := auth.NewService(repo, cfg.SessionTTL, logger)
	expenseSvc := services.NewExpenseService(repo, amqpClient, logger)
	budgetSvc := services.NewBudgetService(repo, logger)
	prefsSvc := services.NewPreferencesService(repo, logger)
	dashboardSvc := services.NewDashboardService(expenseSvc, budgetSvc, prefsSvc, logger)

	srv := apphttp.NewServer(":"+cfg.Port, authSvc, expenseSvc, budgetSvc, prefsSvc, dashboardSvc, logger)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go purgeSessions(ctx, authSvc, logger)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting spendwise server", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

// purgeSessions removes expired sessions on a fixed interval until ctx
// is cancelled.
func purgeSessions(ctx context.Context, authSvc *auth.Service, logger *log.Logger) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := authSvc.PurgeExpiredSessions(ctx); err != nil {
				logger.Warn("Session purge failed", log.FieldError, err)
			}
		}
	}
}
