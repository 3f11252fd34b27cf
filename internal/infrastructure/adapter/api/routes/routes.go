package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/api/handler"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	paymentHandler *handler.PaymentHandler,
	userHandler *handler.UserHandler,
	ticketHandler *handler.TicketHandler,
	adminHandler *handler.AdminHandler,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) {
	auth := middleware.Auth(timeProvider, logger)

	// User routes
	userRoutes := router.Group("/user", auth)
	{
		userRoutes.POST("/initPay", paymentHandler.InitPay)
		userRoutes.GET("/confirmPay", paymentHandler.ConfirmPay)
		userRoutes.POST("/walletPay", paymentHandler.WalletPay)

		userRoutes.GET("/dashboard", userHandler.Dashboard)
		userRoutes.GET("/purchases", userHandler.Purchases)
		userRoutes.GET("/receipt", userHandler.Receipt)
		userRoutes.POST("/addMeter", userHandler.AddMeter)
		userRoutes.POST("/removeMeter", userHandler.RemoveMeter)

		userRoutes.POST("/ticket", ticketHandler.Submit)
	}

	// Admin routes. Authorization is re-checked inside each usecase from
	// the claims; the group only shapes the URL space.
	adminRoutes := router.Group("/admin", auth)
	{
		adminRoutes.GET("/users", adminHandler.Users)
		adminRoutes.GET("/user", adminHandler.User)
		adminRoutes.GET("/purchase", adminHandler.Purchase)
		adminRoutes.POST("/userStatus", adminHandler.UserStatus)

		adminRoutes.GET("/tickets", ticketHandler.List)
		adminRoutes.POST("/ticketStatus", ticketHandler.UpdateStatus)
		adminRoutes.POST("/ticketComment", ticketHandler.AddComment)

		adminRoutes.POST("/analytics/transactions", adminHandler.TransactionAnalytics)
		adminRoutes.POST("/analytics/activeUsers", adminHandler.ActiveUserAnalytics)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
