// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storyhub/config"
	"storyhub/internal/delivery/http/middleware"
	"storyhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BlogHandler    *handler.BlogHandler
	CommentHandler *handler.CommentHandler
	MediaHandler   *handler.MediaHandler
	AuthMiddleware *middleware.AuthMiddleware
	Gatherer       prometheus.Gatherer
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	blogHandler    *handler.BlogHandler
	commentHandler *handler.CommentHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
	gatherer       prometheus.Gatherer
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		blogHandler:    params.BlogHandler,
		commentHandler: params.CommentHandler,
		mediaHandler:   params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
		gatherer:       params.Gatherer,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics == nil || r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	// Uploaded media for file and mem buckets
	e.GET("/media/*", r.mediaHandler.Serve)

	api := e.Group(r.config.HTTP.BasePath)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/check", r.authHandler.Check, r.authMiddleware.Authenticate)
		authGroup.PUT("/update-profile", r.authHandler.UpdateProfile, r.authMiddleware.Authenticate)
	}

	// Blog routes, all authenticated
	blogGroup := api.Group("/blog")
	blogGroup.Use(r.authMiddleware.Authenticate)
	{
		blogGroup.GET("", r.blogHandler.List)
		blogGroup.POST("/create", r.blogHandler.Create)
		blogGroup.GET("/:id", r.blogHandler.Get)
		blogGroup.PUT("/:id", r.blogHandler.Update)
		blogGroup.DELETE("/:id", r.blogHandler.Delete)
		blogGroup.GET("/:id/share-qr", r.blogHandler.ShareQR)
	}

	// Comment routes; listing is public
	commentGroup := api.Group("/comment")
	{
		commentGroup.GET("/:blogId", r.commentHandler.List)
		commentGroup.POST("/:blogId", r.commentHandler.Create, r.authMiddleware.Authenticate)
		commentGroup.PUT("/:id", r.commentHandler.Update, r.authMiddleware.Authenticate)
		commentGroup.DELETE("/:id", r.commentHandler.Delete, r.authMiddleware.Authenticate)
	}
}
