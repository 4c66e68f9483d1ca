package services

import (
	"errors"

	"github.com/Alisina10/Online-Poll-System/dto"
	"github.com/Alisina10/Online-Poll-System/models"
	"github.com/Alisina10/Online-Poll-System/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService — сервис для аутентификации пользователей
type AuthService struct {
	DB *gorm.DB
}

// AuthenticateUser — проверяет данные пользователя и генерирует JWT токен
func (service *AuthService) AuthenticateUser(loginDTO dto.LoginDTO) (string, error) {
	var user models.User

	// Проверяем, существует ли пользователь с указанным username
	if err := service.DB.Where("username = ?", loginDTO.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.New("invalid username or password")
		}
		return "", err
	}

	// Проверяем пароль
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginDTO.Password)); err != nil {
		return "", errors.New("invalid username or password")
	}

	// Генерация JWT токена с помощью утилиты
	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return "", err
	}

	return token, nil
}
