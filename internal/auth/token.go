package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobtrack/internal/config"
)

// SessionCookieName - фиксированное имя записи в клиентском хранилище
// (cookie), в которой живет сериализованная текущая сессия.
const SessionCookieName = "jobtrack_session"

// Claims - полезная нагрузка токена сессии
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken выпускает подписанный токен сессии
func GenerateToken(userID int64, username string) (string, error) {
	cfg := config.GetConfig()

	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.Session.TTL) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Session.Secret))
}

// ParseToken проверяет подпись и срок действия токена сессии
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Session.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}
