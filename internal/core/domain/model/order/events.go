package order

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// StatusChangedEvent is emitted to the notification collaborator after every
// accepted transition. Emission is best-effort: a failed publish never rolls
// back the state change that produced it.
type StatusChangedEvent struct {
	OrderID    kernel.UUID
	OldStatus  Status
	NewStatus  Status
	OccurredAt time.Time
}

// NewStatusChangedEvent creates an event for an accepted transition,
// timestamped with the current time.
func NewStatusChangedEvent(orderID kernel.UUID, oldStatus, newStatus Status) StatusChangedEvent {
	return StatusChangedEvent{
		OrderID:    orderID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		OccurredAt: time.Now().UTC(),
	}
}
