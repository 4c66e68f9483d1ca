package services

import (
	"errors"

	"github.com/Alisina10/Online-Poll-System/dto"
	"github.com/Alisina10/Online-Poll-System/models"

	"gorm.io/gorm"
)

// Ошибки опросов, пробрасываемые в контроллеры
var (
	ErrPollNotFound = errors.New("poll not found")
	ErrNotPollOwner = errors.New("you are not authorized to modify this poll")
)

// PollService — сервис для CRUD-операций над опросами
type PollService struct {
	DB *gorm.DB
}

func NewPollService(db *gorm.DB) *PollService {
	return &PollService{DB: db}
}

// CreatePoll создаёт новый опрос от имени пользователя
func (s *PollService) CreatePoll(userID uint, input dto.PollDTO) (*models.Poll, error) {
	poll := &models.Poll{
		Question:  input.Question,
		Option1:   input.Option1,
		Option2:   input.Option2,
		Option3:   input.Option3,
		Option4:   input.Option4,
		CreatedBy: userID,
	}

	// Сохраняем опрос в базе данных
	if err := s.DB.Create(poll).Error; err != nil {
		return nil, err
	}

	return poll, nil
}

// GetPoll возвращает опрос по ID
func (s *PollService) GetPoll(pollID uint) (*models.Poll, error) {
	var poll models.Poll
	if err := s.DB.First(&poll, pollID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPollNotFound
		}
		return nil, err
	}
	return &poll, nil
}

// GetOwnedPoll возвращает опрос, только если он принадлежит пользователю.
// Используется перед редактированием и удалением.
func (s *PollService) GetOwnedPoll(userID, pollID uint) (*models.Poll, error) {
	poll, err := s.GetPoll(pollID)
	if err != nil {
		return nil, err
	}
	if poll.CreatedBy != userID {
		return nil, ErrNotPollOwner
	}
	return poll, nil
}

// GetAllPolls возвращает список всех опросов
func (s *PollService) GetAllPolls() ([]models.Poll, error) {
	var polls []models.Poll

	if err := s.DB.Find(&polls).Error; err != nil {
		return nil, err
	}

	return polls, nil
}

// GetPollsByOwner возвращает список опросов, созданных пользователем
func (s *PollService) GetPollsByOwner(userID uint) ([]models.Poll, error) {
	var polls []models.Poll

	if err := s.DB.Where("created_by = ?", userID).Find(&polls).Error; err != nil {
		return nil, err
	}

	return polls, nil
}

// UpdatePoll обновляет вопрос и варианты ответа. Разрешено только владельцу;
// при отказе опрос не изменяется.
func (s *PollService) UpdatePoll(userID, pollID uint, input dto.PollDTO) (*models.Poll, error) {
	poll, err := s.GetOwnedPoll(userID, pollID)
	if err != nil {
		return nil, err
	}

	poll.Question = input.Question
	poll.Option1 = input.Option1
	poll.Option2 = input.Option2
	poll.Option3 = input.Option3
	poll.Option4 = input.Option4

	if err := s.DB.Save(poll).Error; err != nil {
		return nil, err
	}

	return poll, nil
}

// DeletePoll удаляет опрос вместе со всеми его голосами. Разрешено только
// владельцу. Голоса удаляются в той же транзакции, чтобы не оставлять
// осиротевших записей.
func (s *PollService) DeletePoll(userID, pollID uint) error {
	poll, err := s.GetOwnedPoll(userID, pollID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poll_id = ?", poll.ID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(poll).Error
	})
}
