package amqp

import (
	"encoding/json"
	"time"
)

// ChangeMessage notifies the mirror worker that a list changed. It
// carries identifiers only; the worker reloads the snapshot from the
// store rather than trusting message payloads.
type ChangeMessage struct {
	Op         string    `json:"op"`         // created | updated | deleted | toggled
	Collection string    `json:"collection"` // entries | goals
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewChangeMessage creates a change message stamped with the current time.
func NewChangeMessage(op, collection, id string) *ChangeMessage {
	return &ChangeMessage{
		Op:         op,
		Collection: collection,
		ID:         id,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ChangeMessageFromJSON creates a message from JSON bytes
func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
