package entities

import "time"

// AilmentEventType represents the type of ailment change event
type AilmentEventType string

const (
	AilmentEventTypeCreated AilmentEventType = "CREATE"
	AilmentEventTypeUpdated AilmentEventType = "UPDATE"
	AilmentEventTypeDeleted AilmentEventType = "DELETE"
)

// AilmentEvent is a push-delivered notification of a remote-origin change to
// an ailment aggregate. Delete events carry only the aggregate id and the
// delete outcome, not the full aggregate.
type AilmentEvent struct {
	ID        string           `json:"id"`
	AilmentID string           `json:"ailment_id"`
	EventType AilmentEventType `json:"event_type"`
	Timestamp time.Time        `json:"timestamp"`
	Ailment   *Ailment         `json:"ailment,omitempty"`
	Delete    *DeleteResponse  `json:"delete,omitempty"`
}

// DeleteResponse is the result of a delete operation and the payload of a
// delete push event.
type DeleteResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewAilmentCreatedEvent builds a CREATE push event carrying the aggregate
func NewAilmentCreatedEvent(ailment Ailment) *AilmentEvent {
	return newAilmentEvent(ailment.ID, AilmentEventTypeCreated, &ailment, nil)
}

// NewAilmentUpdatedEvent builds an UPDATE push event carrying the aggregate
func NewAilmentUpdatedEvent(ailment Ailment) *AilmentEvent {
	return newAilmentEvent(ailment.ID, AilmentEventTypeUpdated, &ailment, nil)
}

// NewAilmentDeletedEvent builds a DELETE push event carrying only the outcome
func NewAilmentDeletedEvent(result DeleteResponse) *AilmentEvent {
	return newAilmentEvent(result.ID, AilmentEventTypeDeleted, nil, &result)
}

func newAilmentEvent(ailmentID string, eventType AilmentEventType, ailment *Ailment, del *DeleteResponse) *AilmentEvent {
	return &AilmentEvent{
		ID:        GenerateID(),
		AilmentID: ailmentID,
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Ailment:   ailment,
		Delete:    del,
	}
}
