package dto

// PollDTO используется для передачи данных при создании и редактировании опроса.
// Первые два варианта обязательны, третий и четвёртый можно не заполнять.
type PollDTO struct {
	Question string `json:"question" binding:"required"`
	Option1  string `json:"option1" binding:"required"`
	Option2  string `json:"option2" binding:"required"`
	Option3  string `json:"option3"`
	Option4  string `json:"option4"`
}
