package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alisina10/Online-Poll-System/middleware"
	"github.com/Alisina10/Online-Poll-System/models"
	"github.com/Alisina10/Online-Poll-System/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testApp собирает приложение на SQLite в памяти, без Redis и Swagger
type testApp struct {
	Router *gin.Engine
	DB     *gorm.DB
	Fact   *services.FactService
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("не удалось открыть тестовую базу: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Poll{}, &models.Vote{}); err != nil {
		t.Fatalf("ошибка миграции тестовой базы: %v", err)
	}

	registService := &services.RegistService{DB: db}
	authService := &services.AuthService{DB: db}
	var sessionService *services.SessionService // Без Redis токены не отзываются
	pollService := services.NewPollService(db)
	voteService := services.NewVoteService(db)
	resultService := services.NewResultService(db)
	// Заведомо недоступный адрес: сервис вернёт запасной текст
	factService := &services.FactService{URL: "http://127.0.0.1:1/fact"}

	registController := &RegistController{
		Service_regist:  registService,
		Service_auth:    authService,
		Service_session: sessionService,
	}
	pollController := &PollController{Service_poll: pollService}
	voteController := &VoteController{Service_vote: voteService, Service_poll: pollService}
	resultsController := &ResultsController{Service_result: resultService}
	dashboardController := &DashboardController{
		Service_regist: registService,
		Service_poll:   pollService,
		Service_fact:   factService,
	}

	router := gin.New()
	router.POST("/register", registController.RegisterUser)
	router.POST("/login", registController.LoginUser)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(sessionService))
	{
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

	return &testApp{Router: router, DB: db, Fact: factService}
}

// doJSON выполняет запрос с JSON-телом и опциональным токеном
func (app *testApp) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("не удалось сериализовать тело запроса: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

// registerAndLogin регистрирует пользователя и возвращает его токен
func (app *testApp) registerAndLogin(t *testing.T, username string) string {
	t.Helper()

	w := app.doJSON(t, http.MethodPost, "/register", "", gin.H{
		"username": username,
		"password": "secret123",
		"email":    username + "@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("регистрация %q: статус %d, тело %s", username, w.Code, w.Body.String())
	}

	w = app.doJSON(t, http.MethodPost, "/login", "", gin.H{
		"username": username,
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("вход %q: статус %d, тело %s", username, w.Code, w.Body.String())
	}

	var resp TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("ответ на вход не разбирается: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("получен пустой токен")
	}
	return resp.Token
}

// createPoll создаёт опрос от имени держателя токена и возвращает его ID
func (app *testApp) createPoll(t *testing.T, token string) uint {
	t.Helper()

	w := app.doJSON(t, http.MethodPost, "/create_poll", token, gin.H{
		"question": "Favorite color?",
		"option1":  "Red",
		"option2":  "Blue",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("создание опроса: статус %d, тело %s", w.Code, w.Body.String())
	}

	var poll models.Poll
	if err := json.Unmarshal(w.Body.Bytes(), &poll); err != nil {
		t.Fatalf("ответ на создание опроса не разбирается: %v", err)
	}
	return poll.ID
}

func TestRegisterLoginFlow(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerAndLogin(t, "alice")

	// Токен открывает защищённые маршруты
	w := app.doJSON(t, http.MethodGet, "/polls", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("/polls с токеном: статус %d", w.Code)
	}
}

func TestRegisterDuplicateUsernameConflict(t *testing.T) {
	app := setupTestApp(t)
	app.registerAndLogin(t, "alice")

	w := app.doJSON(t, http.MethodPost, "/register", "", gin.H{
		"username": "alice",
		"password": "another1",
		"email":    "other@example.com",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("повторный username: статус %d, ожидался 409", w.Code)
	}

	var count int64
	app.DB.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("ожидался 1 пользователь, найдено %d", count)
	}
}

func TestRegisterValidation(t *testing.T) {
	app := setupTestApp(t)

	// Слишком короткий пароль отсекается binding-валидацией
	w := app.doJSON(t, http.MethodPost, "/register", "", gin.H{
		"username": "alice",
		"password": "123",
		"email":    "alice@example.com",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("короткий пароль: статус %d, ожидался 400", w.Code)
	}

	// Некорректный email
	w = app.doJSON(t, http.MethodPost, "/register", "", gin.H{
		"username": "alice",
		"password": "secret123",
		"email":    "not-an-email",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("некорректный email: статус %d, ожидался 400", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := setupTestApp(t)

	for _, path := range []string{"/dashboard", "/polls", "/vote/1", "/results/1", "/api/results/1"} {
		w := app.doJSON(t, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s без токена: статус %d, ожидался 401", path, w.Code)
		}
	}

	w := app.doJSON(t, http.MethodGet, "/dashboard", "garbage-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("мусорный токен: статус %d, ожидался 401", w.Code)
	}
}
