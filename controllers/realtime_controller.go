package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gift-xipu/fitness-calculaor/middlewares"
	"github.com/gift-xipu/fitness-calculaor/models"
	"github.com/gift-xipu/fitness-calculaor/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT           *services.RealtimeHub
	Calc         *CalculatorController
	PingInterval time.Duration
}

func NewRealtimeController(rt *services.RealtimeHub, calc *CalculatorController, ping time.Duration) *RealtimeController {
	return &RealtimeController{RT: rt, Calc: calc, PingInterval: ping}
}

// maxFrameBytes bounds one inbound calculation frame. A full request with
// every field set is well under 1 KiB.
const maxFrameBytes = 4 << 10

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// calculator pages are often served from a different host than the API
	CheckOrigin: func(*http.Request) bool { return true },
}

// CalculateWS handles GET /api/fitness/ws. Each text frame is a calculation
// request; each reply is the envelope POST /api/fitness would return.
func (rc *RealtimeController) CalculateWS(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	conn.SetReadLimit(maxFrameBytes)
	cl := &services.WSClient{ID: uuid.NewString(), Conn: conn}
	log.Printf("[%s] websocket session %s opened", middlewares.RequestID(c), cl.ID)
	rc.RT.Register(cl)

	done := make(chan struct{})
	defer close(done)

	if rc.PingInterval > 0 {
		go func() {
			t := time.NewTicker(rc.PingInterval)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					if err := cl.Ping(time.Now().Add(rc.PingInterval)); err != nil {
						rc.RT.Unregister(cl)
						return
					}
				}
			}
		}()
	}

	// An oversized frame makes ReadMessage fail after gorilla has sent a
	// 1009 close, so it ends the session like any other read error.
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			rc.RT.Unregister(cl)
			return
		}

		var req models.CalculationRequest
		var reply any
		if err := json.Unmarshal(data, &req); err != nil {
			reply = models.ErrorResponse{Error: errCalculationFailed, Message: err.Error()}
		} else {
			_, reply = rc.Calc.evaluate(req)
		}
		if err := cl.WriteJSON(reply); err != nil {
			log.Printf("[%s] websocket write: %v", cl.ID, err)
			rc.RT.Unregister(cl)
			return
		}
	}
}
