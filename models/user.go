package models

// User представляет сущность пользователя
type User struct {
	ID       uint   `json:"id" gorm:"primary_key"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"` // Храним только хэш пароля
	Email    string `json:"email" gorm:"unique;not null"`
}
