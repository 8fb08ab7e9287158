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

	"github.com/adaptivsec/vigil/api/audit"
	"github.com/adaptivsec/vigil/api/auth"
	"github.com/adaptivsec/vigil/api/client"
	"github.com/adaptivsec/vigil/api/config"
	"github.com/adaptivsec/vigil/api/controller"
	"github.com/adaptivsec/vigil/api/dao"
	"github.com/adaptivsec/vigil/api/db"
	logger "github.com/adaptivsec/vigil/api/logging"
	"github.com/adaptivsec/vigil/api/router"
	"github.com/adaptivsec/vigil/api/service"
	"github.com/adaptivsec/vigil/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Redis (content store)
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Register custom binding validators
	if err := util.RegisterValidators(); err != nil {
		logger.Fatal("Failed to register validators", zap.Error(err))
	}

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize audit trail (best-effort)
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)
	audit.SubscribeToBus(eventBus, auditService)

	// Initialize outbound clients
	authClient := client.NewAuthClient(config.GetString("auth.baseUrl"))
	voiceClient := client.NewVoiceClient(config.GetString("voice.baseUrl"), config.GetString("voice.apiKey"))
	summarizerClient := client.NewSummarizerClient(
		config.GetString("summarizer.url"),
		config.GetString("summarizer.apiKey"),
		config.GetDuration("summarizer.timeout"),
	)

	// Initialize the authorization check flow
	tokenCache := auth.NewTokenCache(
		config.GetDuration("auth.cache.positiveTTL"),
		config.GetDuration("auth.cache.negativeTTL"),
	)
	authorizer := auth.NewAuthorizer(tokenCache, authClient, util.RetryPolicy{
		MaxAttempts:       config.GetInt("auth.retry.maxAttempts"),
		Backoff:           config.GetString("auth.retry.backoff"),
		Interval:          config.GetDuration("auth.retry.interval"),
		PerAttemptTimeout: config.GetDuration("auth.retry.perAttemptTimeout"),
	})

	// Initialize services and controllers
	contentDAO := dao.NewContentDAO()
	services := service.InitializeServices(contentDAO, voiceClient, summarizerClient, eventBus)
	controllers := controller.InitializeControllers(services, authorizer, auditService)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(
		controllers,
		config.GetInt("ratelimit.requests"),
		config.GetDuration("ratelimit.window"),
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
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
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
