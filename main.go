package main

import (
	"net/http"

	"github.com/Alisina10/Online-Poll-System/controllers"
	"github.com/Alisina10/Online-Poll-System/database"
	docs "github.com/Alisina10/Online-Poll-System/docs"
	"github.com/Alisina10/Online-Poll-System/middleware"
	"github.com/Alisina10/Online-Poll-System/services"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Online Poll System API
// @version 1.0
// @description Сервис опросов: регистрация, создание опросов и голосование

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// Home godoc
// @Summary Стартовая страница
// @Description Приветственное сообщение сервиса опросов
// @Tags Example
// @Produce json
// @Success 200 {object} map[string]string "Приветствие"
// @Router / [get]
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Online Poll System"})
}

func main() {
	// Инициализация подключения к базе данных и Redis
	database.InitDB()
	database.InitRedis()

	// Инициализация сервисов
	registService := &services.RegistService{
		DB: database.GetDB(),
	}
	authService := &services.AuthService{
		DB: database.GetDB(),
	}
	sessionService := &services.SessionService{
		Redis: database.RedisClient,
	}
	pollService := services.NewPollService(database.GetDB())
	voteService := services.NewVoteService(database.GetDB())
	resultService := services.NewResultService(database.GetDB())
	factService := &services.FactService{
		Redis: database.RedisClient,
	}
	liveResults := services.NewLiveResultsHandler(resultService, sessionService)

	// Инициализация контроллеров
	registController := &controllers.RegistController{
		Service_regist:  registService,
		Service_auth:    authService,
		Service_session: sessionService,
	}
	pollController := &controllers.PollController{
		Service_poll: pollService,
	}
	voteController := &controllers.VoteController{
		Service_vote: voteService,
		Service_poll: pollService,
	}
	resultsController := &controllers.ResultsController{
		Service_result: resultService,
		Live:           liveResults,
	}
	dashboardController := &controllers.DashboardController{
		Service_regist: registService,
		Service_poll:   pollService,
		Service_fact:   factService,
	}

	// Настройка маршрутов и Swagger документации
	r := gin.Default()
	docs.SwaggerInfo.BasePath = "/"

	// Открытые маршруты
	r.GET("/", Home)
	r.POST("/register", registController.RegisterUser)
	r.POST("/login", registController.LoginUser)

	// Защищённые маршруты
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(sessionService))
	{
		protected.GET("/logout", registController.LogoutUser)
		protected.GET("/dashboard", dashboardController.Dashboard)
		protected.POST("/create_poll", pollController.CreatePoll)
		protected.GET("/edit_poll/:id", pollController.GetPollForEdit)
		protected.POST("/edit_poll/:id", pollController.UpdatePoll)
		protected.GET("/delete_poll/:id", pollController.DeletePoll)
		protected.GET("/polls", pollController.GetAllPolls)
		protected.GET("/vote/:id", voteController.GetVotePage)
		protected.POST("/vote/:id", voteController.CastVote)
		protected.GET("/results/:id", resultsController.GetResults)
		protected.GET("/api/results/:id", resultsController.GetResultsJSON)
	}

	// WebSocket аутентифицируется токеном в параметрах URL, без middleware
	r.GET("/ws/results/:id", resultsController.StreamResults)

	// Маршрут для Swagger документации
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// Запуск сервера
	r.Run(":8080")
}
