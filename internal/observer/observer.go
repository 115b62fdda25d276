package observer

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the kind of table mutation
type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
	EventSave   EventType = "save"
)

// Event represents one successful mutation of a table
type Event struct {
	ID        string    // unique event identifier for tracing
	Type      EventType // kind of mutation
	Source    string    // table source path, or "memory" for in-memory tables
	Rows      int       // number of rows affected
	Timestamp time.Time // when the mutation completed
}

// NewEvent creates an event with a fresh unique ID
func NewEvent(typ EventType, source string, rows int) Event {
	if source == "" {
		source = "memory"
	}
	return Event{
		ID:        uuid.New().String(),
		Type:      typ,
		Source:    source,
		Rows:      rows,
		Timestamp: time.Now(),
	}
}

// Observer interface for event subscribers
// Observers receive one event per successful mutation
type Observer interface {
	OnEvent(event Event)
}
