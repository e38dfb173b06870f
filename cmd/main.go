package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ReasonJ01/admin-app/internal/clients/redis"
	"github.com/ReasonJ01/admin-app/internal/db"
	"github.com/ReasonJ01/admin-app/internal/handlers"
	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/middleware"
	"github.com/ReasonJ01/admin-app/internal/repos"
	"github.com/ReasonJ01/admin-app/internal/server"
	"github.com/ReasonJ01/admin-app/internal/services"
	"github.com/ReasonJ01/admin-app/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	port := utils.GetEnv("PORT", "8080", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Redis (admin settings)
	rdb, err := redis.NewClient(log)
	if err != nil {
		log.Error("Redis init failed", "error", err)
		os.Exit(1)
	}

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	serviceRepo := repos.NewServiceRepo(thePG, log)
	faqRepo := repos.NewFAQRepo(thePG, log)
	reviewRepo := repos.NewReviewRepo(thePG, log)
	imageRepo := repos.NewImageRepo(thePG, log)
	questionRepo := repos.NewBookingFlowQuestionRepo(thePG, log)
	optionRepo := repos.NewBookingFlowOptionRepo(thePG, log)
	linkRepo := repos.NewBookingFlowOptionServiceRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo)
	flowService := services.NewBookingFlowService(thePG, log, questionRepo, optionRepo, linkRepo, serviceRepo)
	faqService := services.NewFAQService(thePG, log, faqRepo)
	reviewService := services.NewReviewService(thePG, log, reviewRepo)
	imageService := services.NewImageService(thePG, log, imageRepo)
	catalogService := services.NewCatalogService(thePG, log, serviceRepo)
	settingsService := services.NewSettingsService(thePG, log, rdb, serviceRepo)

	// Handlers
	log.Info("Setting up Handlers from main...")
	authHandler := handlers.NewAuthHandler(log, authService, userService)
	flowHandler := handlers.NewBookingFlowHandler(log, flowService)
	faqHandler := handlers.NewFAQHandler(log, faqService)
	reviewHandler := handlers.NewReviewHandler(log, reviewService)
	imageHandler := handlers.NewImageHandler(log, imageService)
	catalogHandler := handlers.NewCatalogHandler(log, catalogService)
	settingsHandler := handlers.NewSettingsHandler(log, settingsService)
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:        authHandler,
		AuthMiddleware:     authMiddleware,
		BookingFlowHandler: flowHandler,
		FAQHandler:         faqHandler,
		ReviewHandler:      reviewHandler,
		ImageHandler:       imageHandler,
		CatalogHandler:     catalogHandler,
		SettingsHandler:    settingsHandler,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
