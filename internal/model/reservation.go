package model

// Reservation statuses as stored in the reservations.status column.
// A reservation is Cancelled exactly when cancelled_at is non-NULL.
// The row itself lives in the repository package as ReservationDetail,
// joined with its flight snapshot.
const (
    ReservationActive    = "Active"
    ReservationCancelled = "Cancelled"
)
