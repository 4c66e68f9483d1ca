package services

import (
	"errors"

	"github.com/Alisina10/Online-Poll-System/models"

	"gorm.io/gorm"
)

// Ошибки голосования, пробрасываемые в контроллеры
var (
	ErrAlreadyVoted = errors.New("you already voted on this poll")
	ErrEmptyOption  = errors.New("please select an option")
)

// VoteService — сервис для подачи голосов
type VoteService struct {
	DB *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{DB: db}
}

// HasVoted сообщает, оставил ли пользователь непустой голос в опросе
func (s *VoteService) HasVoted(userID, pollID uint) (bool, error) {
	var vote models.Vote
	err := s.DB.Where("user_id = ? AND poll_id = ? AND selected_option <> ''", userID, pollID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CastVote записывает голос пользователя в опросе.
// Порядок проверок: существование опроса, повторное голосование, пустой
// вариант. Текст варианта сохраняется как прислан (голоса с текстом, не
// совпадающим ни с одним вариантом, просто не попадут в подсчёт).
func (s *VoteService) CastVote(userID, pollID uint, selectedOption string) (*models.Vote, error) {
	var poll models.Poll
	if err := s.DB.First(&poll, pollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPollNotFound
		}
		return nil, err
	}

	voted, err := s.HasVoted(userID, pollID)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, ErrAlreadyVoted
	}

	if selectedOption == "" {
		return nil, ErrEmptyOption
	}

	vote := &models.Vote{
		UserID:         userID,
		PollID:         poll.ID,
		SelectedOption: selectedOption,
	}

	// Уникальный индекс (user_id, poll_id) отсекает дубликат, если два
	// запроса одного пользователя прошли проверку выше одновременно.
	if err := s.DB.Create(vote).Error; err != nil {
		return nil, err
	}

	return vote, nil
}

// GetVotesForPoll возвращает все голоса опроса
func (s *VoteService) GetVotesForPoll(pollID uint) ([]models.Vote, error) {
	var votes []models.Vote

	if err := s.DB.Where("poll_id = ?", pollID).Find(&votes).Error; err != nil {
		return nil, err
	}

	return votes, nil
}
