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

// VoteErrorResponse — структура для ответа об ошибке
type VoteErrorResponse struct {
	Error string `json:"error"`
}

// VoteController — контроллер для обработки голосования
type VoteController struct {
	Service_vote *services.VoteService
	Service_poll *services.PollService
}

// GetVotePage godoc
// @Summary      Открыть опрос для голосования
// @Description  Возвращает вопрос и непустые варианты ответа. Уже проголосовавших перенаправляет на результаты
// @Tags         votes
// @Produce      json
// @Security BearerAuth
// @Param        id   path      int  true  "ID опроса"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  VoteErrorResponse
// @Router       /vote/{id} [get]
func (c *VoteController) GetVotePage(ctx *gin.Context) {
	userID := ctx.GetUint("userID") // userID извлекается из middleware
	pollID := parseUint(ctx.Param("id"))

	poll, err := c.Service_poll.GetPoll(pollID)
	if err != nil {
		if errors.Is(err, services.ErrPollNotFound) {
			ctx.JSON(http.StatusNotFound, VoteErrorResponse{Error: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, VoteErrorResponse{Error: err.Error()})
		return
	}

	voted, err := c.Service_vote.HasVoted(userID, pollID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, VoteErrorResponse{Error: err.Error()})
		return
	}
	if voted {
		// Повторный заход на страницу голосования ведёт на результаты
		ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/results/%d", poll.ID))
		return
	}

	// Пустые слоты вариантов не показываем
	options := make([]string, 0, 4)
	for _, option := range poll.Options() {
		if option != "" {
			options = append(options, option)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":       poll.ID,
		"question": poll.Question,
		"options":  options,
	})
}

// CastVote godoc
// @Summary      Проголосовать
// @Description  Записывает голос пользователя. Повторное голосование перенаправляет на результаты
// @Tags         votes
// @Accept       json
// @Produce      json
// @Security BearerAuth
// @Param        id     path      int              true  "ID опроса"
// @Param        input  body      dto.CastVoteDTO  true  "Выбранный вариант"
// @Success      201    {object}  models.Vote
// @Failure      400    {object}  VoteErrorResponse
// @Failure      404    {object}  VoteErrorResponse
// @Router       /vote/{id} [post]
func (c *VoteController) CastVote(ctx *gin.Context) {
	var input dto.CastVoteDTO
	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := ctx.GetUint("userID")
	pollID := parseUint(ctx.Param("id"))

	vote, err := c.Service_vote.CastVote(userID, pollID, input.Option)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPollNotFound):
			ctx.JSON(http.StatusNotFound, VoteErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrAlreadyVoted):
			// Голос уже есть — ведём на результаты
			ctx.Redirect(http.StatusSeeOther, fmt.Sprintf("/results/%d", pollID))
		case errors.Is(err, services.ErrEmptyOption):
			ctx.JSON(http.StatusBadRequest, VoteErrorResponse{Error: err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, VoteErrorResponse{Error: err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, vote)
}
