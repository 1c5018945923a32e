package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "airdrop-tool-backend/docs"
	"airdrop-tool-backend/internal/bot"
	"airdrop-tool-backend/internal/common/cache"
	"airdrop-tool-backend/internal/common/config"
	"airdrop-tool-backend/internal/common/logger"
	"airdrop-tool-backend/internal/common/middleware"
	adminHTTP "airdrop-tool-backend/internal/features/admin/delivery/http"
	airdropHTTP "airdrop-tool-backend/internal/features/airdrop/delivery/http"
	airdropRepo "airdrop-tool-backend/internal/features/airdrop/repository/postgres"
	airdropService "airdrop-tool-backend/internal/features/airdrop/service"
	userHTTP "airdrop-tool-backend/internal/features/user/delivery/http"
	userRepo "airdrop-tool-backend/internal/features/user/repository/postgres"
	userService "airdrop-tool-backend/internal/features/user/service"
	walletHTTP "airdrop-tool-backend/internal/features/wallet/delivery/http"
	walletRepo "airdrop-tool-backend/internal/features/wallet/repository/postgres"
	walletService "airdrop-tool-backend/internal/features/wallet/service"
	"airdrop-tool-backend/internal/platform/postgres"
	"airdrop-tool-backend/internal/platform/redis"
	"airdrop-tool-backend/internal/platform/solana"
	"airdrop-tool-backend/internal/platform/telegram"
	"airdrop-tool-backend/internal/workers"
)

// @title           Airdrop Tool API
// @version         1.0
// @description     API server for the Solana airdrop coordinator. All endpoints require init_data authentication.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey TelegramInitData
// @in header
// @name init_data
// @description Telegram Mini App init_data string for authentication

// @tag.name users
// @tag.description User management

// @tag.name wallets
// @tag.description Wallet registration and withdrawals

// @tag.name airdrops
// @tag.description Airdrop events, batches and progress

// @tag.name admin
// @tag.description Runtime settings

func main() {
	cfg := config.Load()
	logger.Init("airdrop-tool-backend", cfg.Debug)

	logger.Info().Bool("debug", cfg.Debug).Msg("Starting Airdrop Tool Backend")

	postgresClient, err := postgres.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer postgresClient.Close()

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	cacheService := cache.NewCacheService(redisClient)
	settings := config.NewSettings(cfg)

	userRepository := userRepo.NewUserRepository(postgresClient.GetDB())
	walletRepository := walletRepo.NewWalletRepository(postgresClient.GetDB())
	airdropRepository := airdropRepo.NewAirdropRepository(postgresClient.GetDB())

	solanaClient := solana.NewClient(cfg.Solana.RPCEndpoint)
	batchQueue := workers.NewStreamQueue(redisClient)

	userSvc := userService.NewUserService(userRepository, settings)
	walletSvc := walletService.NewWalletService(walletRepository, solanaClient, settings, cacheService, cfg)
	airdropSvc := airdropService.NewAirdropService(airdropRepository, walletRepository, batchQueue, settings, cacheService, cfg)

	processor := airdropService.NewProcessor(airdropRepository, solanaClient, settings, cfg)
	worker := workers.NewRedisStreamWorker(redisClient, airdropRepository, processor)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go worker.Start(rootCtx)

	telegramClient := telegram.NewClient(cfg.Telegram.BotToken)
	chatBot := bot.New(telegramClient, userSvc, walletSvc, airdropSvc, settings)
	go chatBot.Run(rootCtx)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "init_data", middleware.AdminTokenHeader}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.TelegramInitData(cfg))
	v1.Use(middleware.ResolveUser(userSvc))
	v1.Use(middleware.RequireAuth())
	{
		userHTTP.NewUserHandler(userSvc).RegisterRoutes(v1)
		walletHTTP.NewWalletHandler(walletSvc).RegisterRoutes(v1)
		airdropHTTP.NewAirdropHandler(airdropSvc, settings, cfg).RegisterRoutes(v1)
		adminHTTP.NewAdminHandler(settings, cfg).RegisterRoutes(v1)
	}

	registerProbes(router, postgresClient, redisClient)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-rootCtx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func registerProbes(router *gin.Engine, postgresClient *postgres.Client, redisClient *goredis.Client) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "airdrop-tool-backend",
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := postgresClient.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "postgres unavailable",
				"details": err.Error(),
			})
			return
		}

		if err := redisClient.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "redis unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   "airdrop-tool-backend",
		})
	})
}
