package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// jwtSecret возвращает секретный ключ. Ключ читается при каждом обращении,
// а не при инициализации пакета: .env загружается уже в main, и значение
// JWT_SECRET оттуда иначе терялось бы.
func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("dev-secret")
}

// GenerateJWT — генерирует JWT токен для пользователя
func GenerateJWT(userID uint) (string, error) {
	// Определяем срок действия токена (например, 24 часа)
	expirationTime := time.Now().Add(24 * time.Hour)

	// Создаем claims токена
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.Itoa(int(userID)), // Преобразуем userID в строку
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	// Создаем токен
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Подписываем токен секретным ключом
	return token.SignedString(jwtSecret())
}

// ValidateToken — проверяет подпись и срок действия токена и возвращает claims
func ValidateToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ExtractUserIDFromToken — извлекает идентификатор пользователя из токена
func ExtractUserIDFromToken(tokenString string) (uint, error) {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return 0, err
	}
	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, errors.New("invalid subject in token")
	}
	return uint(userID), nil
}
