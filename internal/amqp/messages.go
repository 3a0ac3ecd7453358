package amqp

import (
	"encoding/json"
	"time"

	"tripledger/internal/core"
)

// Record event kinds.
const (
	EventRecordCreated = "record.created"
	EventRecordsClear  = "records.cleared"
)

// RecordEventMessage notifies the export worker about manual record changes.
// Created events carry the full record so the worker does not need store
// access; clear events carry only the kind.
type RecordEventMessage struct {
	Kind      string             `json:"kind"`
	Record    *core.ManualRecord `json:"record,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

// NewRecordCreatedMessage builds a created event for one record.
func NewRecordCreatedMessage(rec core.ManualRecord) *RecordEventMessage {
	return &RecordEventMessage{
		Kind:      EventRecordCreated,
		Record:    &rec,
		Timestamp: time.Now(),
	}
}

// NewRecordsClearedMessage builds a bulk-clear event.
func NewRecordsClearedMessage() *RecordEventMessage {
	return &RecordEventMessage{
		Kind:      EventRecordsClear,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *RecordEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordEventMessageFromJSON creates a message from JSON bytes
func RecordEventMessageFromJSON(data []byte) (*RecordEventMessage, error) {
	var msg RecordEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
