package server

import (
	"net/http"
	"time"

	"pirate-server/internal/engine"
	"pirate-server/pkg/api"
	"pirate-server/pkg/logger"
	"pirate-server/pkg/utils"

	"github.com/gorilla/websocket"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client — посредник между websocket-соединением и GameService.
// Каждая сессия получает свой канал в хабе и видит все кадры партии.
type Client struct {
	Service *engine.GameService
	Conn    *websocket.Conn
	Send    chan api.ServerResponse
	ID      string
}

func NewClient(service *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Service: service,
		Conn:    conn,
		Send:    make(chan api.ServerResponse, 64),
	}
}

// readPump читает команды от клиента.
func (c *Client) readPump() {
	defer func() {
		if c.ID != "" {
			c.Service.Hub.Unregister(c.ID)
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("websocket close in readPump")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// HANDSHAKE: первое сообщение определяет идентичность сессии.
	var loginCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&loginCmd); err != nil {
		logger.Log.Warn("Handshake failed")
		return
	}
	c.ID = loginCmd.Token
	if c.ID == "" {
		c.ID = utils.GenerateID()
	}
	logger.Log.WithField("client_id", c.ID).Info("Client connected")

	// Подписка на кадры партии.
	updates := c.Service.Hub.Register(c.ID)
	go func() {
		for msg := range updates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	// Первый кадр — по INIT.
	c.Service.ProcessCommand(api.ClientCommand{Action: api.ActionInit, Token: c.ID})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS error: %v", err)
			}
			break
		}
		cmd.Token = c.ID
		c.Service.ProcessCommand(cmd)
	}
}

// writePump отправляет кадры клиенту и держит соединение пингами.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("websocket close in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write frame failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
