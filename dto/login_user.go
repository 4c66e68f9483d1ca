package dto

// LoginDTO — структура для данных авторизации
type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
