package dto

// RegisterUserDTO — это структура для данных, которые нужно передать при регистрации
type RegisterUserDTO struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
}
