package realtime

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxReconnectAttempts = 5
	reconnectDelay       = 2 * time.Second
)

// State is the client connection state. The generating flag runs alongside
// the state and resets to false on every disconnect.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Conn is the minimal connection surface the client state machine needs.
type Conn interface {
	ReadMessage() ([]byte, error)
	WriteMessage(data []byte) error
	Close() error
}

// Dialer opens channel connections. The production dialer wraps gorilla's;
// tests substitute their own.
type Dialer interface {
	Dial(url string) (Conn, error)
}

// Scheduler defers a reconnect. Tests substitute a manual implementation so
// the state machine runs without real timers.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type wsDialer struct{}

func (wsDialer) Dial(url string) (Conn, error) {
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return wsConn{c}, nil
}

type wsConn struct{ conn *websocket.Conn }

func (c wsConn) ReadMessage() ([]byte, error) {
	_, data, err := c.conn.ReadMessage()
	return data, err
}

func (c wsConn) WriteMessage(data []byte) error {
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c wsConn) Close() error { return c.conn.Close() }

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Client maintains a single subscriber connection with bounded reconnects: a
// fixed 2s delay, at most 5 consecutive close events, then terminal. Every
// decoded inbound frame is forwarded to the handler.
type Client struct {
	statusURL string
	handler   func(Message)

	dialer Dialer
	sched  Scheduler
	probe  func() (string, error)

	mu              sync.Mutex
	state           State
	generating      bool
	attempts        int
	conn            Conn
	cancelReconnect func()
	closed          bool
}

// NewClient builds a client that discovers the channel endpoint through the
// status probe URL. Call Start to begin connecting.
func NewClient(statusURL string, handler func(Message)) *Client {
	c := &Client{
		statusURL: statusURL,
		handler:   handler,
		dialer:    wsDialer{},
		sched:     timerScheduler{},
	}
	c.probe = c.probeStatus
	return c
}

// Start runs the first connection attempt. Further attempts are driven by
// close events until the retry budget is spent.
func (c *Client) Start() {
	c.connect()
}

// State reports the connection state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsConnected reports whether the channel connection is open.
func (c *Client) IsConnected() bool {
	return c.State() == Connected
}

// IsGenerating reports the last generation status pushed by the server.
func (c *Client) IsGenerating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generating
}

// SendControl sends a start_generation or stop_generation frame. It is a
// silent no-op when the client is not connected.
func (c *Client) SendControl(typ string) {
	c.mu.Lock()
	conn := c.conn
	connected := c.state == Connected
	c.mu.Unlock()
	if !connected || conn == nil {
		return
	}

	data, err := json.Marshal(Message{Type: typ})
	if err != nil {
		return
	}
	if err := conn.WriteMessage(data); err != nil {
		log.Printf("channel client: send %s: %v", typ, err)
	}
}

// Close cancels any pending reconnect and closes the live connection. The
// client never reconnects after Close.
func (c *Client) Close() {
	c.mu.Lock()
	c.closed = true
	if c.cancelReconnect != nil {
		c.cancelReconnect()
		c.cancelReconnect = nil
	}
	conn := c.conn
	c.conn = nil
	c.state = Disconnected
	c.generating = false
	c.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
}

func (c *Client) connect() {
	c.mu.Lock()
	if c.closed || c.attempts >= maxReconnectAttempts {
		c.mu.Unlock()
		return
	}
	c.state = Connecting
	c.cancelReconnect = nil
	c.mu.Unlock()

	wsURL, err := c.probe()
	if err != nil {
		log.Printf("channel client: status probe: %v", err)
		c.onClose()
		return
	}

	conn, err := c.dialer.Dial(wsURL)
	if err != nil {
		log.Printf("channel client: dial %s: %v", wsURL, err)
		c.onClose()
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return
	}
	c.conn = conn
	c.state = Connected
	c.attempts = 0
	c.mu.Unlock()

	go c.readLoop(conn)
}

func (c *Client) readLoop(conn Conn) {
	for {
		data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		c.handleMessage(data)
	}
	conn.Close()
	c.onClose()
}

// onClose is the single close-event transition: drop connection state and,
// while the retry budget lasts, schedule the next attempt.
func (c *Client) onClose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Disconnected
	c.generating = false
	c.conn = nil
	if c.closed {
		return
	}

	c.attempts++
	if c.attempts < maxReconnectAttempts {
		c.cancelReconnect = c.sched.AfterFunc(reconnectDelay, c.connect)
	} else {
		log.Printf("channel client: giving up after %d attempts", c.attempts)
	}
}

func (c *Client) handleMessage(data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Printf("channel client: dropping malformed frame: %v", err)
		return
	}

	if msg.Type == TypeGenerationStatus || msg.Type == TypeConnected {
		c.mu.Lock()
		c.generating = msg.IsGenerating != nil && *msg.IsGenerating
		c.mu.Unlock()
	}

	if c.handler != nil {
		c.handler(msg)
	}
}

// probeStatus asks the status endpoint where the channel lives.
func (c *Client) probeStatus() (string, error) {
	resp, err := http.Get(c.statusURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var status struct {
		Status string `json:"status"`
		WsURL  string `json:"wsUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", err
	}
	if status.WsURL == "" {
		return "", errors.New("channel endpoint not advertised")
	}
	return status.WsURL, nil
}
