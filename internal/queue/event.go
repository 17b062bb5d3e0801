// Package queue defines message payloads exchanged over the message broker.
package queue

// Reservation event types published to the reservation.events queue.
const (
    EventReservationCreated   = "reservation.created"
    EventReservationCancelled = "reservation.cancelled"
    EventReservationRestored  = "reservation.restored"
)

// ReservationEvent is published whenever a reservation is created,
// cancelled or restored. It carries enough information for downstream
// consumers to log, notify, or feed analytics without querying the
// primary database. EventID is a UUID so consumers can deduplicate
// redelivered messages.
type ReservationEvent struct {
    EventID       string `json:"event_id"`
    Type          string `json:"type"`
    ReservationID uint64 `json:"reservation_id"`
    UserID        uint64 `json:"user_id"`
    FlightID      uint64 `json:"flight_id"`
    FlightNumber  string `json:"flight_number,omitempty"`
    Origin        string `json:"origin,omitempty"`
    Destination   string `json:"destination,omitempty"`
    OccurredAt    string `json:"occurred_at"`
}
