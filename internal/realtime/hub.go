package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// DefaultInterval is the generation tick period.
const DefaultInterval = 5 * time.Second

// subscriber is one connected channel peer. send reports false when the peer
// cannot keep up and should be dropped.
type subscriber interface {
	send(msg []byte) bool
	close()
}

// Hub owns the subscriber set and the single generation loop. It is built
// once by the hosting process and stopped with Close; there is no ambient
// instance and no init-time side effect.
type Hub struct {
	interval time.Duration
	gen      *Generator

	mu         sync.Mutex
	subs       map[subscriber]struct{}
	generating bool
	stopTick   chan struct{}
	closed     bool
}

// NewHub returns a stopped hub. interval <= 0 selects DefaultInterval.
func NewHub(interval time.Duration) *Hub {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Hub{
		interval: interval,
		gen:      NewGenerator(time.Now().UnixNano()),
		subs:     make(map[subscriber]struct{}),
	}
}

// Subscribe adds a peer and sends it the initial status frame.
func (h *Hub) Subscribe(s subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		s.close()
		return
	}
	h.subs[s] = struct{}{}

	msg, err := json.Marshal(statusMessage(TypeConnected, h.generating))
	if err != nil {
		return
	}
	s.send(msg)
}

// Unsubscribe removes a peer. When the set empties the generation loop stops;
// nobody is listening, so ticking would only burn the timer.
func (h *Hub) Unsubscribe(s subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s]; !ok {
		return
	}
	delete(h.subs, s)
	if len(h.subs) == 0 {
		h.stopGenerationLocked()
	}
}

// ClientCount reports the current subscriber count, for the status probe.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// IsGenerating reports whether the generation loop is running.
func (h *Hub) IsGenerating() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.generating
}

// StartGeneration starts the process-wide generation loop. Idempotent.
func (h *Hub) StartGeneration() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.generating || h.closed {
		return
	}
	h.generating = true
	stop := make(chan struct{})
	h.stopTick = stop
	h.broadcastLocked(statusMessage(TypeGenerationStatus, true))

	go func() {
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				h.tick()
			case <-stop:
				return
			}
		}
	}()
}

// StopGeneration cancels the generation loop. Idempotent.
func (h *Hub) StopGeneration() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopGenerationLocked()
}

func (h *Hub) stopGenerationLocked() {
	if !h.generating {
		return
	}
	h.generating = false
	close(h.stopTick)
	h.stopTick = nil
	h.broadcastLocked(statusMessage(TypeGenerationStatus, false))
}

// tick runs one generation step: with at least one subscriber connected,
// synthesize one item and broadcast it. With nobody connected it is a no-op.
func (h *Hub) tick() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.generating || len(h.subs) == 0 {
		return
	}
	it := h.gen.Next()
	h.broadcastLocked(Message{Type: TypeNewItem, Item: &it})
}

// HandleControl processes one inbound client frame. Malformed or unknown
// frames are logged and dropped, never fatal.
func (h *Hub) HandleControl(raw []byte) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Printf("channel: dropping malformed frame: %v", err)
		return
	}

	switch msg.Type {
	case TypeStartGeneration:
		h.StartGeneration()
	case TypeStopGeneration:
		h.StopGeneration()
	default:
		log.Printf("channel: ignoring frame type %q", msg.Type)
	}
}

// Close stops generation and disconnects every subscriber. The hub is
// unusable afterwards.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.stopGenerationLocked()
	for s := range h.subs {
		s.close()
	}
	h.subs = make(map[subscriber]struct{})
}

func (h *Hub) broadcastLocked(m Message) {
	msg, err := json.Marshal(m)
	if err != nil {
		log.Printf("channel: marshal broadcast: %v", err)
		return
	}

	var dead []subscriber
	for s := range h.subs {
		if !s.send(msg) {
			dead = append(dead, s)
		}
	}
	for _, s := range dead {
		delete(h.subs, s)
		s.close()
	}
	// Evicting the last peer empties the set just like an Unsubscribe would.
	if len(h.subs) == 0 {
		h.stopGenerationLocked()
	}
}
