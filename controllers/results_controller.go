package controllers

import (
	"errors"
	"net/http"

	"github.com/Alisina10/Online-Poll-System/services"

	"github.com/gin-gonic/gin"
)

// ResultsErrorResponse — структура для ответа об ошибке
type ResultsErrorResponse struct {
	Error string `json:"error"`
}

// ResultsController — контроллер для выдачи результатов опроса
type ResultsController struct {
	Service_result *services.ResultService
	Live           *services.LiveResultsHandler
}

// GetResults godoc
// @Summary      Результаты опроса в процентах
// @Description  Возвращает процент голосов по каждому непустому варианту и общее число голосов
// @Tags         results
// @Produce      json
// @Security BearerAuth
// @Param        id   path      int  true  "ID опроса"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ResultsErrorResponse
// @Router       /results/{id} [get]
func (c *ResultsController) GetResults(ctx *gin.Context) {
	pollID := parseUint(ctx.Param("id"))

	poll, result, err := c.Service_result.GetResult(pollID)
	if err != nil {
		respondResultsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":          poll.ID,
		"question":    poll.Question,
		"percentages": result.Percentages(),
		"total_votes": result.TotalVotes,
	})
}

// GetResultsJSON godoc
// @Summary      Результаты опроса в сыром виде
// @Description  Возвращает неокруглённые счётчики по каждому варианту (включая пустые слоты) и общее число голосов
// @Tags         results
// @Produce      json
// @Security BearerAuth
// @Param        id   path      int  true  "ID опроса"
// @Success      200  {object}  services.PollResult
// @Failure      404  {object}  ResultsErrorResponse
// @Router       /api/results/{id} [get]
func (c *ResultsController) GetResultsJSON(ctx *gin.Context) {
	pollID := parseUint(ctx.Param("id"))

	_, result, err := c.Service_result.GetResult(pollID)
	if err != nil {
		respondResultsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// StreamResults godoc
// @Summary      Живые результаты опроса
// @Description  Переводит соединение на WebSocket и транслирует снимки результатов. Токен передаётся параметром token
// @Tags         results
// @Param        id     path   int     true  "ID опроса"
// @Param        token  query  string  true  "JWT токен"
// @Router       /ws/results/{id} [get]
func (c *ResultsController) StreamResults(ctx *gin.Context) {
	pollID := parseUint(ctx.Param("id"))
	c.Live.HandleLiveResults(ctx.Writer, ctx.Request, pollID)
}

func respondResultsError(ctx *gin.Context, err error) {
	if errors.Is(err, services.ErrPollNotFound) {
		ctx.JSON(http.StatusNotFound, ResultsErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusInternalServerError, ResultsErrorResponse{Error: err.Error()})
}
