package services

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	defaultFactURL = "http://numbersapi.com/random/trivia"
	factCacheKey   = "dashboard:number_fact"
	factCacheTTL   = 5 * time.Minute

	// Запасной текст, если внешний сервис недоступен
	factFallback = "Could not fetch a number fact right now."

	// Ограничение на размер ответа внешнего сервиса
	factMaxBody = 4096
)

var factClient = &http.Client{Timeout: 5 * time.Second}

// FactService получает забавный факт о числах для дашборда.
// Ответ кэшируется в Redis, любая ошибка внешнего вызова подменяется
// запасным текстом и до пользователя не доходит.
type FactService struct {
	Redis *redis.Client
	URL   string // Если пусто, используется numbersapi.com
}

// GetNumberFact возвращает факт о числах (или запасной текст)
func (s *FactService) GetNumberFact(ctx context.Context) string {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, factCacheKey).Result(); err == nil {
			return cached
		}
	}

	url := s.URL
	if url == "" {
		url = defaultFactURL
	}

	// Отправка GET запроса на внешний сервис; отмена контекста запроса
	// обрывает и этот вызов
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return factFallback
	}
	resp, err := factClient.Do(req)
	if err != nil {
		return factFallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return factFallback
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, factMaxBody))
	if err != nil {
		return factFallback
	}

	fact := string(body)
	if s.Redis != nil {
		s.Redis.Set(ctx, factCacheKey, fact, factCacheTTL)
	}
	return fact
}
