package routes

import (
	"github.com/gin-gonic/gin"

	"ajussi_backend/internal/auth"
	"ajussi_backend/internal/handlers"
	"ajussi_backend/internal/middleware"
)

// RegisterRoutes wires every handler under the versioned API group.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokenManager *auth.TokenManager,
) {
	authMW := middleware.AuthMiddleware(tokenManager)
	optionalAuthMW := middleware.OptionalAuthMiddleware(tokenManager)

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api, authMW, optionalAuthMW)
		appHandlers.RequestHandler.RegisterRoutes(api, authMW)
		appHandlers.ReviewHandler.RegisterRoutes(api, authMW)
		appHandlers.FavoriteHandler.RegisterRoutes(api, authMW)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authMW)
	}
}
