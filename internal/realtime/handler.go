package realtime

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxFrameSize   = 4096
	peerSendBuffer = 16
)

// Handler upgrades websocket requests into hub subscriptions and serves the
// channel status probe clients use to discover the endpoint.
type Handler struct {
	hub      *Hub
	wsURL    string
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, wsURL string) *Handler {
	return &Handler{
		hub:   hub,
		wsURL: wsURL,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The browser app runs on a different origin in development.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// --------------------------------------------------
// GET /api/channel (status probe)
// --------------------------------------------------
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"clients": h.hub.ClientCount(),
		"wsUrl":   h.wsURL,
	})
}

// --------------------------------------------------
// GET /ws (subscriber connect)
// --------------------------------------------------
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("channel: upgrade failed: %v", err)
		return
	}

	p := &peer{conn: conn, out: make(chan []byte, peerSendBuffer)}
	h.hub.Subscribe(p)
	go p.writePump()
	go p.readPump(h.hub)
}

// peer adapts one websocket connection to the hub's subscriber contract.
// Outbound frames go through a buffered channel so a stalled peer never
// blocks a broadcast; a full buffer marks the peer dead.
type peer struct {
	conn *websocket.Conn
	out  chan []byte
	once sync.Once
}

func (p *peer) send(msg []byte) bool {
	select {
	case p.out <- msg:
		return true
	default:
		return false
	}
}

func (p *peer) close() {
	p.once.Do(func() { close(p.out) })
}

func (p *peer) writePump() {
	defer p.conn.Close()
	for msg := range p.out {
		p.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	p.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

func (p *peer) readPump(hub *Hub) {
	defer func() {
		hub.Unsubscribe(p)
		p.close()
		p.conn.Close()
	}()

	p.conn.SetReadLimit(maxFrameSize)
	for {
		_, raw, err := p.conn.ReadMessage()
		if err != nil {
			return
		}
		hub.HandleControl(raw)
	}
}
