package services

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Alisina10/Online-Poll-System/utils"

	"github.com/gorilla/websocket"
)

// LiveResultsHandler для трансляции результатов опроса по WebSocket
type LiveResultsHandler struct {
	ResultService *ResultService
	Sessions      *SessionService
	Interval      time.Duration // Период отправки снимков, по умолчанию 3 секунды
	Clients       map[*websocket.Conn]bool
	mu            sync.Mutex
}

// NewLiveResultsHandler создаёт новый обработчик WebSocket
func NewLiveResultsHandler(resultService *ResultService, sessions *SessionService) *LiveResultsHandler {
	return &LiveResultsHandler{
		ResultService: resultService,
		Sessions:      sessions,
		Interval:      3 * time.Second,
		Clients:       make(map[*websocket.Conn]bool),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // В продакшене настрой проверку происхождения
	},
}

// liveResultsMessage — снимок результатов, отправляемый клиенту
type liveResultsMessage struct {
	PollID      uint           `json:"poll_id"`
	Question    string         `json:"question"`
	Counts      map[string]int `json:"counts"`
	Percentages map[string]int `json:"percentages"`
	TotalVotes  int            `json:"total_votes"`
}

// HandleLiveResults обрабатывает WebSocket-соединение: после аутентификации
// по токену из параметров URL клиенту отправляется текущий итог опроса и
// далее свежие снимки по таймеру, пока клиент не отключится.
func (h *LiveResultsHandler) HandleLiveResults(w http.ResponseWriter, r *http.Request, pollID uint) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Ошибка при переходе на WebSocket: %v, удалённый адрес: %s", err, r.RemoteAddr)
		return
	}

	// Добавляем клиента в список
	h.mu.Lock()
	h.Clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.Clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	// Извлекаем токен из параметров URL
	token := r.URL.Query().Get("token")
	if token == "" {
		if err := conn.WriteJSON(map[string]string{"error": "Токен отсутствует в параметрах URL"}); err != nil {
			log.Printf("Не удалось отправить ошибку отсутствия токена клиенту: %v", err)
		}
		return
	}

	// Извлекаем userID из токена
	userID, err := utils.ExtractUserIDFromToken(token)
	if err != nil {
		log.Printf("Ошибка валидации токена для соединения с %s: %v", r.RemoteAddr, err)
		if err := conn.WriteJSON(map[string]string{"error": "Недействительный или истёкший токен"}); err != nil {
			log.Printf("Не удалось отправить ошибку недействительного токена клиенту: %v", err)
		}
		return
	}

	// Отозванные при выходе токены не открывают трансляцию
	if h.Sessions.IsRevoked(r.Context(), token) {
		log.Printf("Отозванный токен для соединения с %s", r.RemoteAddr)
		if err := conn.WriteJSON(map[string]string{"error": "Токен отозван"}); err != nil {
			log.Printf("Не удалось отправить ошибку отозванного токена клиенту: %v", err)
		}
		return
	}

	if err := h.sendSnapshot(conn, pollID); err != nil {
		log.Printf("Ошибка отправки результатов userID: %d, ошибка: %v", userID, err)
		return
	}

	interval := h.Interval
	if interval <= 0 {
		interval = 3 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Отправляем свежие снимки, пока соединение живо
	for range ticker.C {
		if err := h.sendSnapshot(conn, pollID); err != nil {
			log.Printf("WebSocket-соединение закрыто для userID: %d, удалённый адрес: %s", userID, r.RemoteAddr)
			return
		}
	}
}

func (h *LiveResultsHandler) sendSnapshot(conn *websocket.Conn, pollID uint) error {
	poll, result, err := h.ResultService.GetResult(pollID)
	if err != nil {
		conn.WriteJSON(map[string]string{"error": err.Error()})
		return err
	}

	return conn.WriteJSON(liveResultsMessage{
		PollID:      poll.ID,
		Question:    poll.Question,
		Counts:      result.Counts,
		Percentages: result.Percentages(),
		TotalVotes:  result.TotalVotes,
	})
}
