package services

import (
	"errors"
	"math"

	"github.com/Alisina10/Online-Poll-System/models"

	"gorm.io/gorm"
)

// PollResult — итог подсчёта голосов: счётчики по тексту вариантов и
// общее число учтённых голосов.
type PollResult struct {
	Counts     map[string]int `json:"counts"`
	TotalVotes int            `json:"total_votes"`
}

// TallyVotes подсчитывает голоса опроса. Чистая функция без побочных
// эффектов: ключи счётчиков — тексты четырёх слотов вариантов (дубликаты
// текста схлопываются в один ключ), голоса с текстом, не совпадающим ни с
// одним текущим вариантом, молча игнорируются (например, устаревшие голоса
// за отредактированный вариант).
func TallyVotes(poll *models.Poll, votes []models.Vote) PollResult {
	counts := make(map[string]int)
	for _, option := range poll.Options() {
		counts[option] = 0
	}

	for _, vote := range votes {
		if _, ok := counts[vote.SelectedOption]; ok {
			counts[vote.SelectedOption]++
		}
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	return PollResult{Counts: counts, TotalVotes: total}
}

// Percentages возвращает процент голосов по каждому непустому варианту,
// округлённый до целого. При нуле голосов все проценты равны 0.
func (r PollResult) Percentages() map[string]int {
	percentages := make(map[string]int)
	for option, count := range r.Counts {
		if option == "" {
			continue
		}
		if r.TotalVotes > 0 {
			percentages[option] = int(math.Round(float64(count) / float64(r.TotalVotes) * 100))
		} else {
			percentages[option] = 0
		}
	}
	return percentages
}

// ResultService — сервис для получения результатов опроса
type ResultService struct {
	DB *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{DB: db}
}

// GetResult загружает опрос и его голоса и возвращает подсчитанный итог
func (s *ResultService) GetResult(pollID uint) (*models.Poll, PollResult, error) {
	var poll models.Poll
	if err := s.DB.First(&poll, pollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, PollResult{}, ErrPollNotFound
		}
		return nil, PollResult{}, err
	}

	var votes []models.Vote
	if err := s.DB.Where("poll_id = ?", pollID).Find(&votes).Error; err != nil {
		return nil, PollResult{}, err
	}

	result := TallyVotes(&poll, votes)
	return &poll, result, nil
}
