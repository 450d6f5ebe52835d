package middleware

import (
	"net/http"
	"strings"

	"MarketStat-Backend/internal/app/config"
	"MarketStat-Backend/internal/app/repository"
	"MarketStat-Backend/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	jwtPrefix = "Bearer "
)

// AuthMiddleware проверяет JWT токен и добавляет пользователя в контекст
func AuthMiddleware(cfg *config.Config, repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Получаем заголовок Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Проверяем формат Bearer токена
		if !strings.HasPrefix(authHeader, jwtPrefix) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			c.Abort()
			return
		}

		// Извлекаем токен
		tokenString := strings.TrimPrefix(authHeader, jwtPrefix)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is empty"})
			c.Abort()
			return
		}

		// Проверяем токен в blacklist (если Redis доступен)
		if repo.GetRedisClient() != nil {
			inBlacklist, err := repo.GetRedisClient().IsInBlacklist(c.Request.Context(), tokenString)
			if err != nil {
				logrus.Error("Failed to check token in blacklist: ", err)
			} else if inBlacklist {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalidated"})
				c.Abort()
				return
			}
		}

		// Валидируем токен
		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Добавляем информацию о пользователе в контекст
		c.Set("user_id", claims.UserID)
		c.Set("login", claims.Login)
		c.Set("is_admin", claims.IsAdmin)
		c.Set("token", tokenString)

		logrus.Debugf("User authenticated: %s (ID: %d, Admin: %t)",
			claims.Login, claims.UserID, claims.IsAdmin)

		c.Next()
	}
}

// AdminOnly middleware проверяет, что пользователь является администратором
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !isAdmin.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
