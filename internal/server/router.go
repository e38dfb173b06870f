package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ReasonJ01/admin-app/internal/handlers"
	"github.com/ReasonJ01/admin-app/internal/middleware"
)

type RouterConfig struct {
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	BookingFlowHandler *handlers.BookingFlowHandler
	FAQHandler         *handlers.FAQHandler
	ReviewHandler      *handlers.ReviewHandler
	ImageHandler       *handlers.ImageHandler
	CatalogHandler     *handlers.CatalogHandler
	SettingsHandler    *handlers.SettingsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/api/register", cfg.AuthHandler.Register)
	router.POST("/api/login", cfg.AuthHandler.Login)

	// Protected
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())

	api.POST("/refresh", cfg.AuthHandler.Refresh)
	api.POST("/logout", cfg.AuthHandler.Logout)
	api.GET("/me", cfg.AuthHandler.GetMe)

	// Everything below is the admin console surface.
	admin := api.Group("/")
	admin.Use(cfg.AuthMiddleware.RequireAdmin())

	// Booking flow
	admin.GET("/booking-flow", cfg.BookingFlowHandler.GetFlow)
	admin.GET("/booking-flow/questions", cfg.BookingFlowHandler.ListQuestions)
	admin.POST("/booking-flow/questions", cfg.BookingFlowHandler.CreateQuestion)
	admin.PATCH("/booking-flow/questions/:id", cfg.BookingFlowHandler.UpdateQuestion)
	admin.DELETE("/booking-flow/questions/:id", cfg.BookingFlowHandler.DeleteQuestion)
	admin.POST("/booking-flow/options", cfg.BookingFlowHandler.CreateOption)
	admin.PATCH("/booking-flow/options/:id", cfg.BookingFlowHandler.UpdateOption)
	admin.DELETE("/booking-flow/options/:id", cfg.BookingFlowHandler.DeleteOption)
	admin.GET("/booking-flow/options/:id/services", cfg.BookingFlowHandler.ListOptionServices)
	admin.POST("/booking-flow/options/:id/services", cfg.BookingFlowHandler.AddOptionService)
	admin.DELETE("/booking-flow/options/:id/services/:serviceID", cfg.BookingFlowHandler.RemoveOptionService)

	// FAQs
	admin.GET("/faqs", cfg.FAQHandler.ListFAQs)
	admin.POST("/faqs", cfg.FAQHandler.AddFAQ)
	admin.PATCH("/faqs/:id", cfg.FAQHandler.UpdateFAQ)
	admin.POST("/faqs/:id/reorder", cfg.FAQHandler.ReorderFAQ)
	admin.POST("/faqs/delete", cfg.FAQHandler.DeleteFAQs)

	// Reviews
	admin.GET("/reviews", cfg.ReviewHandler.ListReviews)
	admin.POST("/reviews", cfg.ReviewHandler.AddReview)
	admin.PATCH("/reviews/:id", cfg.ReviewHandler.UpdateReview)
	admin.DELETE("/reviews/:id", cfg.ReviewHandler.DeleteReview)

	// Images
	admin.GET("/images", cfg.ImageHandler.ListImages)
	admin.POST("/images", cfg.ImageHandler.AddImage)
	admin.GET("/images/:id", cfg.ImageHandler.GetImageURL)
	admin.DELETE("/images/:id", cfg.ImageHandler.DeleteImage)

	// Service catalog
	admin.GET("/services", cfg.CatalogHandler.ListServices)
	admin.GET("/services/website", cfg.CatalogHandler.ListWebsiteServices)
	admin.GET("/services/:id", cfg.CatalogHandler.GetService)
	admin.POST("/services", cfg.CatalogHandler.CreateService)
	admin.PATCH("/services/:id", cfg.CatalogHandler.UpdateService)
	admin.DELETE("/services/:id", cfg.CatalogHandler.DeleteService)

	// Admin settings
	admin.GET("/settings", cfg.SettingsHandler.GetSettings)
	admin.PUT("/settings", cfg.SettingsHandler.SaveSettings)

	return router
}
