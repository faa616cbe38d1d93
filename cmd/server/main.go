package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/chocodealers/backend/internal/application/catalog"
	inventoryapp "github.com/chocodealers/backend/internal/application/inventory"
	"github.com/chocodealers/backend/internal/infrastructure/config"
	"github.com/chocodealers/backend/internal/infrastructure/event"
	"github.com/chocodealers/backend/internal/infrastructure/logger"
	"github.com/chocodealers/backend/internal/infrastructure/persistence"
	"github.com/chocodealers/backend/internal/interfaces/http/handler"
	"github.com/chocodealers/backend/internal/interfaces/http/middleware"
	"github.com/chocodealers/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting warehouse backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := persistence.AutoMigrate(db.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database ready")

	// Repositories
	itemRepo := persistence.NewGormItemRepository(db.DB)
	actorRepo := persistence.NewGormActorRepository(db.DB)
	stockRepo := persistence.NewGormStockLevelRepository(db.DB)
	recordRepo := persistence.NewGormTransactionRecordRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)
	if cfg.Alert.Enabled {
		lowStockHandler := inventoryapp.NewLowStockHandler(log).
			WithNotifier(inventoryapp.NewLoggingStockAlertNotifier(log))
		eventBus.Subscribe(lowStockHandler)
		log.Info("Low stock alerting enabled",
			zap.Strings("event_types", lowStockHandler.EventTypes()),
		)
	}
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Application services
	ledgerService := inventoryapp.NewLedgerService(itemRepo, stockRepo, recordRepo, txScope)
	ledgerService.SetEventPublisher(eventBus)
	catalogService := catalogapp.NewCatalogService(itemRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))

	// Health check stays outside API versioning and actor resolution
	engine.GET("/healthz", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.ResolveActor(actorRepo, log))
	r.Register(handler.NewLedgerHandler(ledgerService)).
		Register(handler.NewCatalogHandler(catalogService)).
		Register(handler.NewSystemHandler(cfg.App.Name, cfg.App.Env))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler answers health probes with a database liveness check
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
