package realtime

import "tavolo/internal/item"

// Frame types on the channel. Server to client: connected, new_item,
// generation_status. Client to server: start_generation, stop_generation.
const (
	TypeConnected        = "connected"
	TypeNewItem          = "new_item"
	TypeGenerationStatus = "generation_status"
	TypeStartGeneration  = "start_generation"
	TypeStopGeneration   = "stop_generation"
)

// Message is the JSON frame exchanged over the channel, both directions.
// Optional fields stay off the wire for frame types that don't carry them.
type Message struct {
	Type         string     `json:"type"`
	Item         *item.Item `json:"item,omitempty"`
	IsGenerating *bool      `json:"isGenerating,omitempty"`
}

func statusMessage(typ string, generating bool) Message {
	return Message{Type: typ, IsGenerating: &generating}
}
