package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/mpcl/league-api/api/swagger"
	"github.com/mpcl/league-api/internal/handler"
	"github.com/mpcl/league-api/internal/middleware"
	"github.com/mpcl/league-api/internal/models"
	"github.com/mpcl/league-api/internal/repository"
	"github.com/mpcl/league-api/internal/service"
	"github.com/mpcl/league-api/pkg/cache"
	"github.com/mpcl/league-api/pkg/config"
	"github.com/mpcl/league-api/pkg/database"
	"github.com/mpcl/league-api/pkg/logger"
	corsmiddleware "github.com/mpcl/league-api/pkg/middleware/cors"
	reqidmiddleware "github.com/mpcl/league-api/pkg/middleware/requestid"
	"github.com/mpcl/league-api/pkg/storage"
)

// @title MPCL League API
// @version 1.0.0
// @description Cricket league registry: people, clubs, teams, applications and transfers
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}

	metricsService := service.NewMetricsService()
	validate := validator.New()

	var cacheService *service.CacheService
	if redisClient != nil && cfg.Cache.Enabled {
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheService = service.NewCacheService(cacheRepo, metricsService, cfg.Cache.TTL, logr, true)
	}

	personRepo := repository.NewPersonRepository(db)
	clubRepo := repository.NewClubRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	authService := service.NewAuthService(personRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "league-api",
	})
	personService := service.NewPersonService(personRepo, cacheService, validate, logr)
	clubService := service.NewClubService(clubRepo, cacheService, validate, logr)
	teamService := service.NewTeamService(teamRepo, personRepo, cacheService, validate, logr)
	playerService := service.NewPlayerService(applicationRepo, validate, logr)
	approvalService := service.NewApprovalService(applicationRepo, personRepo, teamRepo, cacheService, metricsService, logr)

	var exportService *service.ExportService
	if cfg.Exports.Enabled {
		files, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			logr.Fatal("failed to init export storage", zap.Error(err))
		}
		signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
		exportRepo := repository.NewExportRepository(db)
		exportService = service.NewExportService(exportRepo, personRepo, teamRepo, files, signer, service.ExportConfig{
			Enabled:     true,
			Concurrency: cfg.Exports.WorkerConcurrency,
			Retries:     cfg.Exports.WorkerRetries,
		}, logr)
		exportService.Start(ctx)
		defer exportService.Stop()
	}

	sessionCookie := handler.SessionCookie{
		Name:   cfg.JWT.CookieName,
		Domain: cfg.JWT.CookieDomain,
		Secure: cfg.JWT.CookieSecure,
		MaxAge: int(cfg.JWT.Expiration.Seconds()),
	}
	authHandler := handler.NewAuthHandler(authService, personService, sessionCookie)
	personHandler := handler.NewPersonHandler(personService)
	clubHandler := handler.NewClubHandler(clubService)
	teamHandler := handler.NewTeamHandler(teamService)
	playerHandler := handler.NewPlayerHandler(playerService, approvalService)
	metricsHandler := handler.NewMetricsHandler(metricsService, db, redisClient)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authRequired := middleware.JWT(authService, cfg.JWT.CookieName)
	leagueOnly := middleware.RequireRoles(models.RoleLeagueOfficial, models.RoleLeagueRegistrar)
	reviewers := middleware.RequireRoles(models.RoleClubAdmin, models.RoleLeagueOfficial, models.RoleLeagueRegistrar)
	selfOrLeague := middleware.RBAC("SELF", string(models.RoleLeagueOfficial), string(models.RoleLeagueRegistrar))

	api := r.Group(cfg.APIPrefix)

	people := api.Group("/people")
	{
		people.GET("", personHandler.List)
		people.POST("/login", authHandler.Login)
		people.POST("/refresh", authHandler.Refresh)
		people.POST("/logout", authRequired, authHandler.Logout)
		people.GET("/me", authRequired, authHandler.Me)
		people.GET("/umpires", personHandler.Umpires)
		people.GET("/commitee-members", personHandler.Committee)
		people.POST("/add", authRequired, leagueOnly, personHandler.Add)
		people.POST("/details", personHandler.Details)
		people.GET("/:id", personHandler.Get)
		people.DELETE("/:id", authRequired, selfOrLeague, personHandler.Delete)
	}

	players := api.Group("/players")
	{
		players.POST("/player-registration", playerHandler.Register)
		players.GET("/applications", playerHandler.Applications)
		players.GET("/applications/:id", playerHandler.Application)
		players.DELETE("/applications/:id", authRequired, reviewers, playerHandler.DeleteApplication)
		players.POST("/approve", authRequired, reviewers, playerHandler.Approve)
		players.POST("/reject", authRequired, reviewers, playerHandler.Reject)
		players.POST("/player-transfer", playerHandler.RequestTransfer)
		players.GET("/player-transfers", playerHandler.Transfers)
		players.GET("/player-transfers/:id", playerHandler.Transfer)
		players.DELETE("/player-transfers/:id", authRequired, reviewers, playerHandler.DeleteTransfer)
		players.POST("/approve-transfer", authRequired, reviewers, playerHandler.ApproveTransfer)
		players.POST("/reject-transfer", authRequired, reviewers, playerHandler.RejectTransfer)
		players.POST("/update-player-club", authRequired, leagueOnly, playerHandler.UpdatePlayerClub)
	}

	clubs := api.Group("/clubs")
	{
		clubs.GET("", clubHandler.List)
		clubs.POST("", authRequired, leagueOnly, clubHandler.Upsert)
		clubs.POST("/club-registration", clubHandler.Register)
		clubs.GET("/applications", authRequired, leagueOnly, clubHandler.Applications)
		clubs.POST("/approve", authRequired, leagueOnly, clubHandler.Approve)
		clubs.POST("/reject", authRequired, leagueOnly, clubHandler.Reject)
		clubs.GET("/:id", clubHandler.Get)
		clubs.DELETE("/:id", authRequired, leagueOnly, clubHandler.Delete)
	}

	teams := api.Group("/teams")
	{
		teams.GET("", teamHandler.List)
		teams.POST("", authRequired, reviewers, teamHandler.Upsert)
		teams.GET("/club/:id", teamHandler.ListByClub)
		teams.GET("/:id", teamHandler.Get)
		teams.DELETE("/:id", authRequired, leagueOnly, teamHandler.Delete)
	}

	if exportService != nil {
		exportHandler := handler.NewExportHandler(exportService)
		exports := api.Group("/exports")
		{
			exports.POST("", authRequired, exportHandler.Create)
			exports.GET("", authRequired, exportHandler.List)
			exports.GET("/download", exportHandler.Download)
			exports.GET("/:id", authRequired, exportHandler.Get)
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
