// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"empdir/internal/delivery/graphql"
	"empdir/internal/delivery/http/middleware"
	"empdir/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GraphQLHandler  *graphql.Handler
	UploadHandler   *handler.UploadHandler
	ValidateHandler *handler.ValidateHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	graphqlHandler  *graphql.Handler
	uploadHandler   *handler.UploadHandler
	validateHandler *handler.ValidateHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		graphqlHandler:  params.GraphQLHandler,
		uploadHandler:   params.UploadHandler,
		validateHandler: params.ValidateHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// The authenticator only annotates the request context with the caller's
	// identity when a valid bearer token is present. It never rejects;
	// operations that need a logged-in caller enforce that themselves.
	e.POST("/graphql", r.graphqlHandler.Execute, r.authMiddleware.Authenticate)

	e.POST("/upload", r.uploadHandler.Upload, r.authMiddleware.Authenticate)

	// Standalone body validation, useful for client-side form checks.
	validateGroup := e.Group("/validate")
	{
		validateGroup.POST("/signup", r.validateHandler.Signup)
		validateGroup.POST("/employee", r.validateHandler.Employee)
	}
}
