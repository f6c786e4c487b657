package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"shopbot/internal/bot"
	"shopbot/internal/config"
	"shopbot/internal/database"
	"shopbot/internal/dialog"
	"shopbot/internal/logger"
	"shopbot/internal/repository"
	"shopbot/internal/server"
	"shopbot/internal/service"
	"shopbot/migrations"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	// Load configuration. A missing bot token is fatal: the process
	// refuses to start without its credential.
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting shop bot",
		zap.String("env", cfg.Server.Env),
		zap.String("health_port", cfg.Server.Port),
	)

	// Initialize database
	dbService, err := database.New(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer dbService.Close()

	db := dbService.DB()

	health := dbService.Health(context.Background())
	log.Info("Database health check", zap.Any("health", health))

	// Run migrations
	if err := database.RunMigrations(db, migrations.Embed, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	conversations := dialog.NewStore()
	catalogService := service.NewCatalogService(productRepo, log)
	flowService := service.NewFlowService(productRepo, orderRepo, conversations,
		cfg.Payments, cfg.Admin.Contact, log)
	adminService := service.NewAdminService(orderRepo, productRepo, log)
	access := service.NewAccessChecker(cfg.Admin.IDs, cfg.Admin.Username)

	// Seed the catalog on first startup; the count guard makes this a
	// no-op on every later one.
	if err := catalogService.Seed(context.Background()); err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}

	// Initialize transport
	shopBot, err := bot.New(cfg.Telegram.Token, flowService, catalogService,
		adminService, access, log)
	if err != nil {
		log.Fatal("Failed to create bot", zap.Error(err))
	}

	healthServer := server.New(cfg, log, dbService)

	// Run the bot loop and the health server until SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return shopBot.Run(ctx)
	})

	g.Go(func() error {
		log.Info("Health server listening", zap.String("addr", healthServer.Addr))
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return healthServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Shutdown with error", zap.Error(err))
	}

	log.Info("Graceful shutdown complete")
}
