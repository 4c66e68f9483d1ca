package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "revoked_token:"

// SessionService отвечает за выход из системы: отозванные токены
// складываются в Redis до момента их естественного истечения.
type SessionService struct {
	Redis *redis.Client
}

// RevokeToken помечает токен отозванным до expiresAt
func (s *SessionService) RevokeToken(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Токен и так уже истёк
		return nil
	}
	return s.Redis.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err()
}

// IsRevoked сообщает, был ли токен отозван. Без Redis (например, в тестах)
// отзыв не отслеживается и токены считаются действительными.
func (s *SessionService) IsRevoked(ctx context.Context, token string) bool {
	if s == nil || s.Redis == nil {
		return false
	}
	n, err := s.Redis.Exists(ctx, revokedKeyPrefix+token).Result()
	return err == nil && n > 0
}
