package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nhattranq/profilehub/adapters/event"
	httpAdapter "github.com/nhattranq/profilehub/adapters/http"
	"github.com/nhattranq/profilehub/adapters/mail"
	"github.com/nhattranq/profilehub/adapters/media_storage"
	"github.com/nhattranq/profilehub/adapters/persistence"
	authUC "github.com/nhattranq/profilehub/internal/application/usecase/auth"
	directoryUC "github.com/nhattranq/profilehub/internal/application/usecase/directory"
	profileUC "github.com/nhattranq/profilehub/internal/application/usecase/profile"
	searchUC "github.com/nhattranq/profilehub/internal/application/usecase/search"
	"github.com/nhattranq/profilehub/internal/config"
	"github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/pkg/auth"
	"github.com/nhattranq/profilehub/pkg/logger"
	"github.com/nhattranq/profilehub/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("starting profilehub API server", zap.String("port", cfg.App.Port))

	if cfg.Tracing.Enabled {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "profilehub-api")
		if err != nil {
			appLogger.Fatal("cannot init tracing", err)
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				appLogger.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	searchRepo := persistence.NewPostgresSearchRepo(dbPool, appLogger)
	directoryRepo := persistence.NewPostgresDirectoryRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Fatal("cannot init uploader", err)
	}
	aggregateCache := persistence.NewRedisAggregateCache(redisClient, cfg.Cache.AggregateTTL, appLogger)
	resetTokens := persistence.NewRedisResetTokenStore(redisClient, cfg.Auth.ResetTokenTTL)
	mailer := mail.NewLogMailer(appLogger)

	// Use cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)
	usernameUseCase := authUC.NewUpdateUsernameUseCase(userRepo, appLogger)
	resetUseCase := authUC.NewPasswordResetUseCase(userRepo, resetTokens, mailer, appLogger)
	getAggregateUseCase := profileUC.NewGetAggregateUseCase(profileRepo, aggregateCache)
	updateSectionUseCase := profileUC.NewUpdateSectionUseCase(profileRepo, aggregateCache, kafkaClient, appLogger)
	searchUseCase := searchUC.NewSearchProfilesUseCase(searchRepo)
	listUseCase := directoryUC.NewListUseCase(directoryRepo)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, registerUseCase, usernameUseCase, resetUseCase, userRepo)
	profileHandler := httpAdapter.NewProfileHandler(getAggregateUseCase, updateSectionUseCase, userRepo, appLogger)
	searchHandler := httpAdapter.NewSearchHandler(searchUseCase)
	directoryHandler := httpAdapter.NewDirectoryHandler(listUseCase)
	mediaHandler := httpAdapter.NewMediaHandler(uploader, appLogger)

	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	optionalAuth := httpAdapter.OptionalAuthMiddleware(jwtSvc)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

	api := router.Group("/api/auth")
	{
		api.POST("/signup", authHandler.Signup)
		api.POST("/signin", authHandler.Signin)
		api.POST("/forgot-password", authHandler.ForgotPassword)
		api.POST("/reset-password", authHandler.ResetPassword)
		api.PUT("/username/me", authMiddleware, authHandler.UpdateUsername)
		api.GET("/:username", authHandler.GetUserByUsername)
	}

	router.GET("/profiledata/:userId", optionalAuth, profileHandler.GetProfileData)

	// One static route per section; identity comes from the credential.
	for _, key := range profile.SectionKeys {
		router.PUT("/"+string(key)+"/me", authMiddleware, profileHandler.UpdateSection(key))
	}

	router.GET("/profiles", searchHandler.ListProfiles)
	router.GET("/profiles/search", searchHandler.SearchProfiles)
	router.GET("/searchdata/search", searchHandler.SearchDirectory)

	router.GET("/institutions", directoryHandler.ListInstitutions)
	router.GET("/companies", directoryHandler.ListCompanies)

	router.POST("/uploads", authMiddleware, mediaHandler.Upload)
	router.POST("/uploads/remove", authMiddleware, mediaHandler.Remove)

	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
