package main

// @title Tour Planner Service API
// @version 1.0.0
// @description Бэкенд мобильного travel-companion: генерация многодневных пеших туров по каталогу точек интереса и нормализация мультимодальных транспортных маршрутов.
// @description
// @description Основные возможности:
// @description - Генерация плана тура по теме или произвольным тегам
// @description - Поиск транспортного маршрута с разбором участков и пересадок
// @description - Ссылки на покупку билетов по перевозчикам
// @description - История поисков в рамках сессии

// @contact.name API Support
// @contact.email support@trip-planner-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/trip-planner-service/docs"
	"github.com/trip-planner-service/internal/config"
	httpDelivery "github.com/trip-planner-service/internal/delivery/http"
	"github.com/trip-planner-service/internal/delivery/http/handler"
	"github.com/trip-planner-service/internal/infrastructure/routing"
	"github.com/trip-planner-service/internal/pkg/logger"
	"github.com/trip-planner-service/internal/repository/cache"
	"github.com/trip-planner-service/internal/repository/memory"
	"github.com/trip-planner-service/internal/repository/postgres"
	"github.com/trip-planner-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tour Planner Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Load static tables (themes, tickets, transport modes)
	tables, err := config.LoadTables(cfg.Planner.TablesFile)
	if err != nil {
		log.Fatal("Failed to load configuration tables", zap.Error(err))
	}
	log.Info("Configuration tables loaded",
		zap.Int("themes", len(tables.Themes)),
		zap.Int("ticket_agencies", len(tables.Tickets)),
	)

	// 4. Connect to PostgreSQL (place catalog)
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize Repositories
	placeRepo := postgres.NewPlaceRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	historyRepo := memory.NewHistoryRepository(log)
	routingClient := routing.NewClient(&cfg.Routing, log)

	log.Info("Repositories initialized")

	// 8. Initialize Use Cases
	plannerUC := usecase.NewPlannerUseCase(
		placeRepo,
		cacheRepo,
		tables,
		cfg.Planner,
		cfg.Cache.PlacesCacheTTL,
		log,
	)

	routeUC := usecase.NewRouteUseCase(
		routingClient,
		cacheRepo,
		historyRepo,
		tables,
		cfg.Cache.RoutesCacheTTL,
		log,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	planHandler := handler.NewPlanHandler(plannerUC, tables, log)
	routeHandler := handler.NewRouteHandler(routeUC, tables, log)
	catalogHandler := handler.NewCatalogHandler(placeRepo, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		planHandler,
		routeHandler,
		catalogHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
