// Package events publishes one message per successful domain mutation.
// Publishing is best-effort observability: a failed publish is logged by the
// caller and never affects the mutation itself.
package events

import "time"

const (
	TypeRoomCreated = "room.created"
	TypeRoomUpdated = "room.updated"
	TypeRoomDeleted = "room.deleted"

	TypeBookingCreated = "booking.created"
	TypeBookingUpdated = "booking.updated"
	TypeBookingDeleted = "booking.deleted"
)

// Header keys carried on every published message.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   string    `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}
