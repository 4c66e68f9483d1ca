package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Alisina10/Online-Poll-System/services"
	"github.com/Alisina10/Online-Poll-System/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware — middleware для проверки JWT токена.
// Помещает userID в контекст запроса для последующих обработчиков.
func AuthMiddleware(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Получаем токен из заголовков
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		// Токен в заголовке может быть в формате: "Bearer <token>"
		token := strings.TrimPrefix(authHeader, "Bearer ")

		// Проверяем токен с помощью утилиты
		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Отозванные при выходе токены больше не принимаются
		if sessions.IsRevoked(c.Request.Context(), token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			c.Abort()
			return
		}

		userID, err := strconv.Atoi(claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("userID", uint(userID))

		// Если токен валиден, продолжаем выполнение запроса
		c.Next()
	}
}
