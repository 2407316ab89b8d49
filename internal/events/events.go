package events

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Type identifies a domain event kind. The set is closed; receivers must
// ignore kinds they do not recognize.
type Type string

const (
	// TypeTaskAssigned fires when an instance becomes owned by an employee,
	// either freshly materialized or as the target of a reassignment.
	TypeTaskAssigned Type = "task:assigned"

	// TypeTaskUpdated fires when completion state changes or a batch
	// operation occurred. Batch notifications carry a zero TaskID.
	TypeTaskUpdated Type = "task:updated"
)

// AssignedPayload is the fixed payload shape for task:assigned
type AssignedPayload struct {
	TaskID          uuid.UUID `json:"task_id"`
	EmployeeID      uuid.UUID `json:"employee_id"`
	EmployeeName    string    `json:"employee_name"`
	TaskTitle       string    `json:"task_title"`
	TaskDescription string    `json:"task_description,omitempty"`
	TaskDate        string    `json:"task_date,omitempty"`
}

// UpdatedPayload is the fixed payload shape for task:updated
type UpdatedPayload struct {
	TaskID      uuid.UUID `json:"task_id"`
	EmployeeID  uuid.UUID `json:"employee_id"`
	IsCompleted bool      `json:"is_completed"`
	TaskTitle   string    `json:"task_title"`
}

// Envelope is the wire form of an event. Exactly one payload field is set,
// matching Type. Each event is self-contained: it carries enough data for the
// receiver to act or to trigger a scoped re-fetch.
type Envelope struct {
	Type     Type             `json:"type"`
	Assigned *AssignedPayload `json:"assigned,omitempty"`
	Updated  *UpdatedPayload  `json:"updated,omitempty"`
}

// NewAssigned builds a task:assigned envelope
func NewAssigned(p AssignedPayload) Envelope {
	return Envelope{Type: TypeTaskAssigned, Assigned: &p}
}

// NewUpdated builds a task:updated envelope
func NewUpdated(p UpdatedPayload) Envelope {
	return Envelope{Type: TypeTaskUpdated, Updated: &p}
}

// IsBatch reports whether an updated event is a batch-level notification
// rather than a single-instance change.
func (e Envelope) IsBatch() bool {
	return e.Type == TypeTaskUpdated && e.Updated != nil && e.Updated.TaskID == uuid.Nil
}

// Encode marshals the envelope for transport
func (e Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Decode parses an envelope off the wire. Unknown event kinds decode without
// error and are left to the caller to ignore.
func Decode(data []byte) (Envelope, error) {
	var e Envelope
	err := json.Unmarshal(data, &e)
	return e, err
}

// Publisher fans an event out to every live connection of a team. Delivery is
// at-most-once and best-effort: events are a latency optimization, never the
// consistency mechanism.
type Publisher interface {
	Publish(teamID uuid.UUID, event Envelope)
}

// NopPublisher discards all events. Used where no real-time channel exists;
// the system stays correct because every direct read hits the store.
type NopPublisher struct{}

// Publish implements Publisher
func (NopPublisher) Publish(uuid.UUID, Envelope) {}
