package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/intentlock/ibac/alert"
	"github.com/intentlock/ibac/audit"
	"github.com/intentlock/ibac/config"
	"github.com/intentlock/ibac/controller"
	"github.com/intentlock/ibac/db"
	logger "github.com/intentlock/ibac/logging"
	"github.com/intentlock/ibac/pdp/engine"
	"github.com/intentlock/ibac/pep"
	"github.com/intentlock/ibac/policy"
	"github.com/intentlock/ibac/router"
	"github.com/intentlock/ibac/service"
	"github.com/intentlock/ibac/signals"
	"github.com/intentlock/ibac/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Static policy tables, built once and read everywhere
	policies := policy.NewStore()

	// Audit log: Elasticsearch when configured, in-memory otherwise
	var auditRepository audit.Repository
	if esURL := config.GetString("elasticsearch.url"); esURL != "" {
		esRepository, err := audit.NewElasticsearchRepository(esURL)
		if err != nil {
			logger.Fatal("Failed to initialize Elasticsearch audit repository", zap.Error(err))
		}
		auditRepository = esRepository
	} else {
		auditRepository = audit.NewMemoryRepository()
	}
	auditService := audit.NewService(auditRepository)

	// Alert dispatcher for shared signals, subscribed to denial events
	dispatcher := alert.NewDispatcher(
		[]alert.Destination{
			{Name: "SIEM", URL: config.GetString("alert.siemURL")},
			{Name: "RISC", URL: config.GetString("alert.riscURL")},
		},
		config.GetDuration("alert.timeout"),
		config.GetInt("alert.maxRetries"),
	)
	dispatcher.Register(eventBus)

	// Decision source: remote AuthZEN engine when configured and reachable,
	// local rule engine otherwise
	decisionSource := engine.SelectSource(config.GetConfig().AuthZEN, policies)

	// Token issuance
	var tokenIssuer pep.TokenIssuer = pep.OpaqueTokenIssuer{}
	if config.GetString("token.issuer") == "jwt" {
		jwtIssuer, err := pep.NewJWTTokenIssuer(config.GetString("token.jwtSecret"))
		if err != nil {
			logger.Fatal("Failed to initialize JWT token issuer", zap.Error(err))
		}
		tokenIssuer = jwtIssuer
	}

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	validator := signals.NewValidator(policies, config.GetDuration("policy.stalenessWindow"))
	enforcer := pep.NewEnforcer(tokenIssuer, auditService, db.NewTokenStore())
	accessService := service.NewAccessService(
		validationUtil,
		validator,
		decisionSource,
		enforcer,
		auditService,
		eventBus,
	)

	// Initialize controllers
	accessController := controller.NewAccessController(accessService)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engineRouter := router.SetupRouter(accessController, 100, time.Minute) // 100 requests per minute

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engineRouter,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
