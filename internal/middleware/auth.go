package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ajussi_backend/internal/auth"
	"ajussi_backend/internal/logger"
	"ajussi_backend/internal/models"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware verifies the bearer token and stores the resolved
// (userID, role) pair in the gin context. Downstream code never touches the
// token again.
func AuthMiddleware(tokenManager *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokenManager.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the identity when a valid bearer token is
// present and stays anonymous otherwise. Used on public routes whose
// response depends on who is asking (owner preview of inactive listings).
func OptionalAuthMiddleware(tokenManager *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := tokenManager.Parse(tokenStr); err == nil {
				c.Set(ContextUserIDKey, claims.UserID)
				c.Set(ContextRoleKey, claims.Role)
				ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

// RoleMiddleware restricts a route group to one role.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetRole extracts the authenticated user's role from the gin context.
func GetRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get(ContextRoleKey)
	if !exists {
		return ""
	}
	if role, ok := roleVal.(models.UserRole); ok {
		return role
	}
	if roleStr, ok := roleVal.(string); ok {
		return models.UserRole(roleStr)
	}
	return ""
}
