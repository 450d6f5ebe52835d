package middleware

import (
	"github.com/gin-gonic/gin"
)

// GetUserID возвращает ID пользователя из контекста
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetLogin возвращает логин пользователя из контекста
func GetLogin(c *gin.Context) (string, bool) {
	login, exists := c.Get("login")
	if !exists {
		return "", false
	}
	return login.(string), true
}

// IsAdmin проверяет, является ли пользователь администратором
func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get("is_admin")
	if !exists {
		return false
	}
	return isAdmin.(bool)
}
