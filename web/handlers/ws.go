// web/handlers/ws.go
package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	exchangepb "github.com/MaiAphrodite/difie-hellman/proto/exchangepb"
	"github.com/MaiAphrodite/difie-hellman/web/grpcclient"
)

// Объявление upgrader для WebSocket
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // В реальном приложении ограничьте происхождение
	},
}

// WebSocketHandler транслирует события шагов сессии в WebSocket:
// браузер получает каждый переход, включая переходы автопроигрывания.
func WebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Ошибка при обновлении соединения:", err)
		return
	}
	defer conn.Close()

	sessionID := c.Query("session_id")
	username, exists := c.Get("username")
	if !exists {
		conn.WriteMessage(websocket.TextMessage, []byte("Необходимо войти в систему"))
		return
	}
	if sessionID == "" {
		conn.WriteMessage(websocket.TextMessage, []byte("session_id обязателен"))
		return
	}

	log.Printf("Пользователь %s наблюдает за сессией %s\n", username.(string), sessionID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := grpcclient.Exchange.WatchSteps(ctx, &exchangepb.SessionRequest{
		SessionId: sessionID,
	})
	if err != nil {
		log.Println("Ошибка при подписке на события:", err)
		return
	}

	// Отдельная горутина читает WebSocket: закрытие браузером
	// обрывает подписку через cancel
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		event, err := stream.Recv()
		if err != nil {
			log.Println("Поток событий завершён:", err)
			return
		}
		if err := conn.WriteJSON(gin.H{
			"step":  event.GetStep(),
			"title": event.GetTitle(),
			"state": event.GetState(),
		}); err != nil {
			log.Println("Ошибка при отправке события в WebSocket:", err)
			return
		}
	}
}
