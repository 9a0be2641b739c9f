// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Renan-rss/instagram-clone/internal/delivery/http/middleware"
	"github.com/Renan-rss/instagram-clone/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	AuthHandler         *handler.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	authHandler         *handler.AuthHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		authHandler:         params.AuthHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Signup and signin are public, everything else requires a valid token.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.userHandler.CreateUser)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.GET("/username/:username", r.userHandler.GetUserByUsername)
		userGroup.PUT("", r.userHandler.UpdateUser)
		userGroup.PATCH("/:id", r.userHandler.PatchUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
