package amqp

import (
	"testing"
)

func TestExpenseEventRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind string
	}{
		{"created", EventExpenseCreated},
		{"updated", EventExpenseUpdated},
		{"deleted", EventExpenseDeleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := NewExpenseEvent(tt.kind, "exp-1", "owner-1")
			if event.Timestamp.IsZero() {
				t.Fatal("event must be stamped with the current time")
			}

			body, err := event.ToJSON()
			if err != nil {
				t.Fatalf("ToJSON() error = %v", err)
			}

			decoded, err := ExpenseEventFromJSON(body)
			if err != nil {
				t.Fatalf("ExpenseEventFromJSON() error = %v", err)
			}
			if decoded.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", decoded.Kind, tt.kind)
			}
			if decoded.ExpenseID != "exp-1" || decoded.OwnerID != "owner-1" {
				t.Errorf("ids = (%q, %q), want (exp-1, owner-1)", decoded.ExpenseID, decoded.OwnerID)
			}
			if !decoded.Timestamp.Equal(event.Timestamp) {
				t.Errorf("Timestamp = %v, want %v", decoded.Timestamp, event.Timestamp)
			}
		})
	}
}

func TestExpenseEventFromJSONInvalid(t *testing.T) {
	if _, err := ExpenseEventFromJSON([]byte(`{"kind":`)); err == nil {
		t.Fatal("malformed JSON must fail")
	}
}
