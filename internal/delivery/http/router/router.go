// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"organizer/internal/delivery/http/middleware"
	"organizer/internal/delivery/http/router/handler"
	"organizer/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ContactHandler *handler.ContactHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	contactHandler *handler.ContactHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		contactHandler: params.ContactHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimit:      params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Check)

	api := e.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.ExtractToken)
	}

	// Account routes; confirmation and resend are reachable without a token
	// since the caller may not be able to log in yet.
	userGroup := api.Group("/users")
	{
		userGroup.GET("/confirmed_email/:token", r.userHandler.ConfirmEmail)
		userGroup.POST("/resend_email", r.userHandler.ResendEmail, r.rateLimit.LimitResend())
		userGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate, r.rateLimit.LimitMe())
		userGroup.PATCH("/avatar", r.userHandler.UpdateAvatar, r.authMiddleware.Authenticate)
		userGroup.GET("/admin", r.userHandler.Admin,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin),
		)
	}

	// Contact routes all require authentication.
	contactGroup := api.Group("/contacts")
	contactGroup.Use(r.authMiddleware.Authenticate)
	{
		contactGroup.GET("", r.contactHandler.List)
		contactGroup.POST("", r.contactHandler.Create)
		contactGroup.GET("/birthdays", r.contactHandler.Birthdays)
		contactGroup.GET("/:id", r.contactHandler.Get)
		contactGroup.PUT("/:id", r.contactHandler.Update)
		contactGroup.DELETE("/:id", r.contactHandler.Delete)
	}
}
