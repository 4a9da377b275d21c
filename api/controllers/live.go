package controllers

import (
	"encoding/json"
	"github.com/alex-pricope/hackathon-voting/live"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/voting"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"net/http"
	"time"
)

const maxClientMessageSize = 4096

type clientMessage struct {
	Event string `json:"event"`
}

type LiveController struct {
	broadcaster  *live.Broadcaster
	admin        *voting.AdminService
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
}

func NewLiveController(broadcaster *live.Broadcaster, admin *voting.AdminService, writeTimeout time.Duration) *LiveController {
	return &LiveController{
		broadcaster: broadcaster,
		admin:       admin,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		writeTimeout: writeTimeout,
	}
}

func (c *LiveController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/live", c.connect)
}

// connect godoc
// @Summary Live results channel
// @Description Websocket. The server sends voting_update, results_update and award_ceremony events; clients may send award_ceremony_started.
// @Tags live
// @Success 101
// @Router /api/live [get]
func (c *LiveController) connect(g *gin.Context) {
	ws, err := c.upgrader.Upgrade(g.Writer, g.Request, nil)
	if err != nil {
		logging.Log.Warnf("LIVE: websocket upgrade failed: %v", err)
		return
	}
	ws.SetReadLimit(maxClientMessageSize)

	sub := c.broadcaster.Subscribe(&wsConn{ws: ws, writeTimeout: c.writeTimeout})
	defer c.broadcaster.Unsubscribe(sub)

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Log.Warnf("LIVE: viewer %s read failed: %v", sub.ID, err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logging.Log.Debugf("LIVE: ignoring malformed message from %s", sub.ID)
			continue
		}
		switch msg.Event {
		case live.EventAwardCeremonyStarted:
			c.admin.StartAwardCeremony()
		default:
			logging.Log.Debugf("LIVE: ignoring event %q from %s", msg.Event, sub.ID)
		}
	}
}

// wsConn adapts a websocket connection to live.Conn.
type wsConn struct {
	ws           *websocket.Conn
	writeTimeout time.Duration
}

func (c *wsConn) WriteJSON(v interface{}) error {
	if c.writeTimeout > 0 {
		if err := c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return err
		}
	}
	return c.ws.WriteJSON(v)
}

func (c *wsConn) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return c.ws.Close()
}
