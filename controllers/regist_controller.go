package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Alisina10/Online-Poll-System/dto"
	"github.com/Alisina10/Online-Poll-System/services"
	"github.com/Alisina10/Online-Poll-System/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ErrorResponse — структура для ответа об ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse — структура для ответа с токеном
type TokenResponse struct {
	Token string `json:"token"`
}

// RegistController — контроллер для обработки запросов на регистрацию, вход и выход
type RegistController struct {
	Service_regist  *services.RegistService
	Service_auth    *services.AuthService
	Service_session *services.SessionService
}

// RegisterUser godoc
// @Summary Register new user
// @Description Register a new user by providing username, password, and email
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserDTO true "User data"
// @Success 201 {object} models.User "Successfully created user"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Conflict - user already exists"
// @Router /register [post]
func (controller *RegistController) RegisterUser(c *gin.Context) {
	var userDTO dto.RegisterUserDTO
	if err := c.ShouldBindBodyWith(&userDTO, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := controller.Service_regist.RegisterUser(userDTO)
	if err != nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// LoginUser godoc
// @Summary Login user and return JWT token
// @Description Login a user by providing username and password, and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginDTO true "User login data"
// @Success 200 {object} TokenResponse "JWT token"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized - invalid credentials"
// @Router /login [post]
func (controller *RegistController) LoginUser(c *gin.Context) {
	var loginDTO dto.LoginDTO
	if err := c.ShouldBindBodyWith(&loginDTO, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := controller.Service_auth.AuthenticateUser(loginDTO)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// LogoutUser godoc
// @Summary Выход из системы
// @Description Отзывает предъявленный токен до момента его истечения
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Сообщение об успешном выходе"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /logout [get]
func (controller *RegistController) LogoutUser(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	// Middleware уже проверил токен, но claims нужны ради срока действия
	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired token"})
		return
	}

	expiresAt := time.Now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := controller.Service_session.RevokeToken(c.Request.Context(), token, expiresAt); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}
