// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"mutant-admin/internal/delivery/api/middleware"
	"mutant-admin/internal/delivery/api/router/handler"
	"mutant-admin/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ModerationHandler *handler.ModerationHandler
	MissionHandler    *handler.MissionHandler
	UserHandler       *handler.UserHandler
	CouponHandler     *handler.CouponHandler
	PaymentHandler    *handler.PaymentHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           service.MetricsRecorder
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	moderationHandler *handler.ModerationHandler
	missionHandler    *handler.MissionHandler
	userHandler       *handler.UserHandler
	couponHandler     *handler.CouponHandler
	paymentHandler    *handler.PaymentHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           service.MetricsRecorder
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		moderationHandler: params.ModerationHandler,
		missionHandler:    params.MissionHandler,
		userHandler:       params.UserHandler,
		couponHandler:     params.CouponHandler,
		paymentHandler:    params.PaymentHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Only a prometheus-backed recorder can be scraped
	if exporter, ok := r.metrics.(interface{ Handler() http.Handler }); ok {
		e.GET("/metrics", echo.WrapHandler(exporter.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session, r.authMiddleware.Authenticate)
	}

	// Admin routes proxied to the backend
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("/kyc", r.moderationHandler.ListKYC)
		adminGroup.DELETE("/kyc/:userId", r.moderationHandler.DeleteKYC)
		adminGroup.PATCH("/kyc/verify/:userId", r.moderationHandler.VerifyKYC)

		adminGroup.GET("/payment/refund", r.moderationHandler.ListRefunds)
		adminGroup.PUT("/payment/refund/:refundId/approve", r.moderationHandler.ApproveRefund)
		adminGroup.PUT("/payment/refund/:refundId/reject", r.moderationHandler.RejectRefund)
		adminGroup.GET("/payment/transactions", r.paymentHandler.Transactions)

		adminGroup.GET("/missions", r.missionHandler.List)
		adminGroup.GET("/missions/:id", r.missionHandler.Get)
		adminGroup.DELETE("/missions/:id", r.missionHandler.Delete)
		adminGroup.PUT("/missions/:id/publish", r.missionHandler.Publish)

		adminGroup.GET("/users/:role", r.userHandler.List)
		adminGroup.GET("/users/:role/:id", r.userHandler.Get)
		adminGroup.DELETE("/users/:role/:id", r.userHandler.Delete)

		adminGroup.GET("/earnings/platform", r.paymentHandler.PlatformEarnings)
		adminGroup.GET("/earnings/instructors/:id", r.paymentHandler.InstructorEarnings)
		adminGroup.GET("/earnings/affiliates/:id", r.paymentHandler.AffiliateEarnings)

		adminGroup.GET("/moderation/history", r.moderationHandler.History)
	}

	// Coupon routes
	couponGroup := e.Group("/api/coupon")
	couponGroup.Use(r.authMiddleware.Authenticate)
	{
		couponGroup.GET("", r.couponHandler.List)
		couponGroup.POST("", r.couponHandler.Create)
		couponGroup.POST("/validate", r.couponHandler.Validate)
		couponGroup.GET("/:id", r.couponHandler.Get)
		couponGroup.PUT("/:id", r.couponHandler.Update)
		couponGroup.DELETE("/:id", r.couponHandler.Delete)
	}
}
