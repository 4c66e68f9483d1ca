package dto

// CastVoteDTO используется для передачи выбранного варианта при голосовании
type CastVoteDTO struct {
	Option string `json:"option"` // Пустое значение отклоняется сервисом с предупреждением
}
