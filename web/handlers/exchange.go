// web/handlers/exchange.go
package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	exchangepb "github.com/MaiAphrodite/difie-hellman/proto/exchangepb"
	"github.com/MaiAphrodite/difie-hellman/web/grpcclient"
)

// LobbyHandler отображает страницу создания и подключения к демонстрации
func LobbyHandler(c *gin.Context) {
	username, _ := c.Get("username")
	c.HTML(http.StatusOK, "lobby.html", gin.H{"username": username})
}

// ExchangePage отображает страницу демонстрации с session_id
func ExchangePage(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.Redirect(http.StatusSeeOther, "/demo/lobby")
		return
	}
	username, _ := c.Get("username")
	c.HTML(http.StatusOK, "exchange.html", gin.H{
		"username":   username,
		"session_id": sessionID,
	})
}

// CreateExchange обрабатывает создание новой демонстрационной сессии
func CreateExchange(c *gin.Context) {
	_, exists := c.Get("username")
	if !exists {
		c.HTML(http.StatusUnauthorized, "lobby.html", gin.H{"error": "Необходимо войти в систему"})
		return
	}

	req := &exchangepb.CreateSessionRequest{
		P:         c.PostForm("p"),
		G:         c.PostForm("g"),
		A:         c.PostForm("a"),
		B:         c.PostForm("b"),
		Randomize: c.PostForm("randomize") == "on",
	}

	resp, err := grpcclient.Exchange.CreateSession(context.Background(), req)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "lobby.html", gin.H{"error": "Не удалось создать сессию"})
		return
	}
	if !resp.GetSuccess() {
		c.HTML(http.StatusBadRequest, "lobby.html", gin.H{"error": resp.GetError()})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/demo/exchange?session_id=%s", resp.GetState().GetSessionId()))
}

// JoinExchange обрабатывает подключение к существующей сессии
func JoinExchange(c *gin.Context) {
	sessionID := c.PostForm("session_id")
	_, exists := c.Get("username")
	if !exists {
		c.HTML(http.StatusUnauthorized, "lobby.html", gin.H{"error": "Необходимо войти в систему"})
		return
	}

	_, err := grpcclient.Exchange.GetSession(context.Background(), &exchangepb.SessionRequest{
		SessionId: sessionID,
	})
	if err != nil {
		c.HTML(http.StatusNotFound, "lobby.html", gin.H{"error": "Сессия не найдена"})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/demo/exchange?session_id=%s", sessionID))
}

type sessionOp func(context.Context, *exchangepb.SessionRequest, ...grpc.CallOption) (*exchangepb.SessionResponse, error)

// sessionAction выполняет унарную операцию над сессией из query-параметра
// session_id и возвращает состояние в JSON.
func sessionAction(c *gin.Context, op sessionOp) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id обязателен"})
		return
	}

	resp, err := op(context.Background(), &exchangepb.SessionRequest{SessionId: sessionID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !resp.GetSuccess() {
		c.JSON(http.StatusBadRequest, gin.H{"error": resp.GetError()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": resp.GetState()})
}

func StateHandler(c *gin.Context) { sessionAction(c, grpcclient.Exchange.GetSession) }

func AdvanceHandler(c *gin.Context) { sessionAction(c, grpcclient.Exchange.Advance) }

func RetreatHandler(c *gin.Context) { sessionAction(c, grpcclient.Exchange.Retreat) }

func ResetHandler(c *gin.Context) { sessionAction(c, grpcclient.Exchange.Reset) }

func RandomizeKeysHandler(c *gin.Context) { sessionAction(c, grpcclient.Exchange.RandomizeKeys) }

func RandomizeAllHandler(c *gin.Context) { sessionAction(c, grpcclient.Exchange.RandomizeAll) }

func StartAutoHandler(c *gin.Context) { sessionAction(c, grpcclient.Exchange.StartAutoAdvance) }

func StopAutoHandler(c *gin.Context) { sessionAction(c, grpcclient.Exchange.StopAutoAdvance) }

func CloseHandler(c *gin.Context) { sessionAction(c, grpcclient.Exchange.CloseSession) }
