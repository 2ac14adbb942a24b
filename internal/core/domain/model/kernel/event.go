package kernel

import "time"

// Event type names published after a committed transition.
const (
	EventTripCreated          = "trip.created"
	EventTripDispatched       = "trip.dispatched"
	EventTripCompleted        = "trip.completed"
	EventTripCancelled        = "trip.cancelled"
	EventMaintenanceOpened    = "maintenance.opened"
	EventMaintenanceCompleted = "maintenance.completed"
	EventDriverSuspended      = "driver.suspended"
	EventVehicleRetired       = "vehicle.retired"
	EventVehicleReinstated    = "vehicle.reinstated"
	EventVehicleDeleted       = "vehicle.deleted"
	EventDriverDeleted        = "driver.deleted"
	EventExpenseRecorded      = "expense.recorded"
)

// Event describes a state change that has already been committed.
// Attributes hold the identifiers and statuses a consumer needs to react
// without re-reading the store.
type Event struct {
	Type        string
	AggregateID UUID
	OccurredAt  time.Time
	Attributes  map[string]string
}

// NewEvent builds an Event with an empty attribute map.
func NewEvent(eventType string, aggregateID UUID, occurredAt time.Time) Event {
	return Event{
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  occurredAt.UTC(),
		Attributes:  map[string]string{},
	}
}

// With returns a copy of e with key set to value.
func (e Event) With(key, value string) Event {
	attrs := make(map[string]string, len(e.Attributes)+1)
	for k, v := range e.Attributes {
		attrs[k] = v
	}
	attrs[key] = value
	e.Attributes = attrs
	return e
}
