package middleware

import (
	"net/http"
	"strings"

	"storefront/models"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Authorization header required",
				Code:    models.CodeNotAuthenticated,
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Invalid authorization header format",
				Code:    models.CodeNotAuthenticated,
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Invalid or expired token",
				Code:    models.CodeNotAuthenticated,
			})
			c.Abort()
			return
		}

		if utils.Revocations.IsRevoked(c.Request.Context(), claims.ID) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Token has been revoked",
				Code:    models.CodeNotAuthenticated,
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role != "admin" {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Message: "Access denied. Admin role required",
				Code:    models.CodeForbidden,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
