package middleware

import (
	"github.com/gin-gonic/gin"

	"jobtrack/internal/auth"
	"jobtrack/internal/logger"
	"jobtrack/internal/models"
)

// SessionMiddleware восстанавливает сессию из cookie на каждом
// запросе (непрерывный guard: защита страниц проверяется при каждом
// рендере, а не только при переходе). Отсутствие или невалидность
// cookie не прерывает запрос - решение о редиректе принимает
// диспетчер страниц.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(auth.SessionCookieName)
		if err != nil || tokenStr == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			// Протухшая или подделанная cookie - просто считаем,
			// что сессии нет.
			logger.CtxDebug(c.Request.Context(), "session cookie rejected", "error", err.Error())
			c.Next()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)

		ctx := logger.WithUserID(c.Request.Context(), claims.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentUser извлекает пользователя сессии из контекста запроса.
func CurrentUser(c *gin.Context) (models.PublicUser, bool) {
	idVal, ok := c.Get("userID")
	if !ok {
		return models.PublicUser{}, false
	}
	id, ok := idVal.(int64)
	if !ok || id == 0 {
		return models.PublicUser{}, false
	}
	return models.PublicUser{ID: id, Username: c.GetString("username")}, true
}
