package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Alisina10/Online-Poll-System/dto"
	"github.com/Alisina10/Online-Poll-System/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// PollErrorResponse — структура для ответа об ошибке
type PollErrorResponse struct {
	Error string `json:"error"`
}

// PollController — контроллер для обработки запросов на опросы
type PollController struct {
	Service_poll *services.PollService
}

// CreatePoll godoc
// @Summary      Создать опрос
// @Description  Создаёт новый опрос с вопросом и 2–4 вариантами ответа
// @Tags         polls
// @Accept       json
// @Produce      json
// @Security BearerAuth
// @Param        input  body      dto.PollDTO  true  "Данные опроса"
// @Success      201    {object}  models.Poll
// @Failure      400    {object}  PollErrorResponse
// @Failure      500    {object}  PollErrorResponse
// @Router       /create_poll [post]
func (c *PollController) CreatePoll(ctx *gin.Context) {
	var input dto.PollDTO

	// Проверяем и парсим тело запроса
	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Извлекаем userID из контекста
	userID, exists := ctx.Get("userID")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userIDUint, ok := userID.(uint)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse userID"})
		return
	}

	poll, err := c.Service_poll.CreatePoll(userIDUint, input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, poll)
}

// GetAllPolls godoc
// @Summary      Список всех опросов
// @Description  Возвращает все опросы для выбора, в каком голосовать
// @Tags         polls
// @Produce      json
// @Security BearerAuth
// @Success      200  {array}   models.Poll
// @Failure      500  {object}  PollErrorResponse
// @Router       /polls [get]
func (c *PollController) GetAllPolls(ctx *gin.Context) {
	polls, err := c.Service_poll.GetAllPolls()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, PollErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, polls)
}

// GetPollForEdit godoc
// @Summary      Получить опрос для редактирования
// @Description  Возвращает опрос владельцу для предзаполнения формы
// @Tags         polls
// @Produce      json
// @Security BearerAuth
// @Param        id   path      int  true  "ID опроса"
// @Success      200  {object}  models.Poll
// @Failure      403  {object}  PollErrorResponse
// @Failure      404  {object}  PollErrorResponse
// @Router       /edit_poll/{id} [get]
func (c *PollController) GetPollForEdit(ctx *gin.Context) {
	userID := ctx.GetUint("userID") // userID извлекается из middleware
	pollID := parseUint(ctx.Param("id"))

	poll, err := c.Service_poll.GetOwnedPoll(userID, pollID)
	if err != nil {
		respondPollError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, poll)
}

// UpdatePoll godoc
// @Summary      Редактировать опрос
// @Description  Обновляет вопрос и варианты ответа. Доступно только владельцу
// @Tags         polls
// @Accept       json
// @Produce      json
// @Security BearerAuth
// @Param        id     path      int          true  "ID опроса"
// @Param        input  body      dto.PollDTO  true  "Новые данные опроса"
// @Success      200    {object}  models.Poll
// @Failure      400    {object}  PollErrorResponse
// @Failure      403    {object}  PollErrorResponse
// @Failure      404    {object}  PollErrorResponse
// @Router       /edit_poll/{id} [post]
func (c *PollController) UpdatePoll(ctx *gin.Context) {
	var input dto.PollDTO

	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := ctx.GetUint("userID")
	pollID := parseUint(ctx.Param("id"))

	poll, err := c.Service_poll.UpdatePoll(userID, pollID, input)
	if err != nil {
		respondPollError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, poll)
}

// DeletePoll godoc
// @Summary      Удалить опрос
// @Description  Удаляет опрос вместе с его голосами. Доступно только владельцу
// @Tags         polls
// @Produce      json
// @Security BearerAuth
// @Param        id   path      int  true  "ID опроса"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  PollErrorResponse
// @Failure      404  {object}  PollErrorResponse
// @Router       /delete_poll/{id} [get]
func (c *PollController) DeletePoll(ctx *gin.Context) {
	userID := ctx.GetUint("userID")
	pollID := parseUint(ctx.Param("id"))

	if err := c.Service_poll.DeletePoll(userID, pollID); err != nil {
		respondPollError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "poll deleted"})
}

// respondPollError переводит ошибки сервиса опросов в HTTP статусы
func respondPollError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPollNotFound):
		ctx.JSON(http.StatusNotFound, PollErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotPollOwner):
		ctx.JSON(http.StatusForbidden, PollErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, PollErrorResponse{Error: err.Error()})
	}
}

func parseUint(value string) uint {
	// Преобразование строки в uint с обработкой ошибок
	var parsed uint
	_, err := fmt.Sscanf(value, "%d", &parsed)
	if err != nil {
		return 0
	}
	return parsed
}
