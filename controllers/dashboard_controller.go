package controllers

import (
	"net/http"

	"github.com/Alisina10/Online-Poll-System/services"

	"github.com/gin-gonic/gin"
)

// DashboardErrorResponse — структура для ответа об ошибке
type DashboardErrorResponse struct {
	Error string `json:"error"`
}

// DashboardController — контроллер личного кабинета
type DashboardController struct {
	Service_regist *services.RegistService
	Service_poll   *services.PollService
	Service_fact   *services.FactService
}

// Dashboard godoc
// @Summary      Личный кабинет
// @Description  Возвращает опросы пользователя и факт о числах от внешнего сервиса
// @Tags         dashboard
// @Produce      json
// @Security BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  DashboardErrorResponse
// @Router       /dashboard [get]
func (c *DashboardController) Dashboard(ctx *gin.Context) {
	userID := ctx.GetUint("userID") // userID извлекается из middleware

	user, err := c.Service_regist.GetUserByID(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, DashboardErrorResponse{Error: err.Error()})
		return
	}

	polls, err := c.Service_poll.GetPollsByOwner(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, DashboardErrorResponse{Error: err.Error()})
		return
	}

	// Факт о числах — просто украшение: при сбое внешнего сервиса
	// сервис сам вернёт запасной текст
	fact := c.Service_fact.GetNumberFact(ctx.Request.Context())

	ctx.JSON(http.StatusOK, gin.H{
		"name":        user.Username,
		"polls":       polls,
		"number_fact": fact,
	})
}
