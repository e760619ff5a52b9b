// Package amqp publishes expense change events to a RabbitMQ exchange.
// Publishing is best-effort: the write that triggered the event is
// already durable, so failures are logged and never surfaced.
package amqp

import (
	"encoding/json"
	"time"
)

// Event kinds carried by ExpenseEvent.
const (
	EventExpenseCreated = "expense.created"
	EventExpenseUpdated = "expense.updated"
	EventExpenseDeleted = "expense.deleted"
)

// ExpenseEvent is a lightweight change notification. Consumers that need
// the full record fetch it by id.
type ExpenseEvent struct {
	Kind      string    `json:"kind"`
	ExpenseID string    `json:"expense_id"`
	OwnerID   string    `json:"owner_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewExpenseEvent builds an event stamped with the current time.
func NewExpenseEvent(kind, expenseID, ownerID string) *ExpenseEvent {
	return &ExpenseEvent{
		Kind:      kind,
		ExpenseID: expenseID,
		OwnerID:   ownerID,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *ExpenseEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ExpenseEventFromJSON parses an event from JSON bytes.
func ExpenseEventFromJSON(data []byte) (*ExpenseEvent, error) {
	var e ExpenseEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
