package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestRevokeAndCheckToken(t *testing.T) {
	mr := miniredis.RunT(t)
	service := &SessionService{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	ctx := context.Background()

	if service.IsRevoked(ctx, "token") {
		t.Fatal("токен помечен отозванным до отзыва")
	}

	if err := service.RevokeToken(ctx, "token", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	if !service.IsRevoked(ctx, "token") {
		t.Fatal("отозванный токен не помечен")
	}

	// Уже истёкший токен не занимает место в Redis
	if err := service.RevokeToken(ctx, "expired", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("RevokeToken для истёкшего токена: %v", err)
	}
	if service.IsRevoked(ctx, "expired") {
		t.Fatal("истёкший токен попал в список отозванных")
	}
}

func TestIsRevokedWithoutRedis(t *testing.T) {
	// Без Redis отзыв не отслеживается: токены считаются действительными
	var nilService *SessionService
	if nilService.IsRevoked(context.Background(), "token") {
		t.Fatal("nil-сервис пометил токен отозванным")
	}

	service := &SessionService{}
	if service.IsRevoked(context.Background(), "token") {
		t.Fatal("сервис без клиента пометил токен отозванным")
	}
}
