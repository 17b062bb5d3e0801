package repository

import (
    "context"
    "database/sql"
    "time"

    "flightinfo-server/internal/model"
)

// ReservationRepo provides CRUD operations for reservations. Every query
// that reads or mutates a reservation on behalf of a user is scoped by
// user_id in SQL, so ownership is enforced at the storage layer and a
// foreign reservation id behaves exactly like a missing one. All
// timestamp columns are stored in UTC.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// ReservationDetail is a reservation joined with a snapshot of its flight,
// as returned to customers. The flight columns come from a LEFT JOIN: when
// the flight row is gone the snapshot fields stay empty and FlightID still
// identifies what was booked.
type ReservationDetail struct {
    ID            uint64     `json:"id"`
    UserID        uint64     `json:"userId"`
    FlightID      uint64     `json:"flightId"`
    FlightNumber  string     `json:"flightNumber,omitempty"`
    Origin        string     `json:"origin,omitempty"`
    Destination   string     `json:"destination,omitempty"`
    DepartureTime *time.Time `json:"departureTime,omitempty"`
    ArrivalTime   *time.Time `json:"arrivalTime,omitempty"`
    Status        string     `json:"status"`
    CreatedAt     time.Time  `json:"createdAt"`
    CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
}

const detailQuery = `SELECT r.id, r.user_id, r.flight_id, r.status, r.created_at, r.cancelled_at,
                            f.flight_number, f.origin, f.destination, f.departure_time, f.arrival_time
                       FROM reservations r
                       LEFT JOIN flights f ON f.id = r.flight_id`

func scanDetail(row interface{ Scan(...any) error }) (ReservationDetail, error) {
    var (
        det          ReservationDetail
        cancelledAt  sql.NullTime
        flightNumber sql.NullString
        origin       sql.NullString
        destination  sql.NullString
        departure    sql.NullTime
        arrival      sql.NullTime
    )
    err := row.Scan(&det.ID, &det.UserID, &det.FlightID, &det.Status, &det.CreatedAt, &cancelledAt,
        &flightNumber, &origin, &destination, &departure, &arrival)
    if err != nil {
        return ReservationDetail{}, err
    }
    if cancelledAt.Valid {
        t := cancelledAt.Time
        det.CancelledAt = &t
    }
    det.FlightNumber = flightNumber.String
    det.Origin = origin.String
    det.Destination = destination.String
    if departure.Valid {
        t := departure.Time
        det.DepartureTime = &t
    }
    if arrival.Valid {
        t := arrival.Time
        det.ArrivalTime = &t
    }
    return det, nil
}

// Create inserts an Active reservation for the user and flight and returns
// the stored row joined with its flight snapshot.
func (r *ReservationRepo) Create(ctx context.Context, userID, flightID uint64) (ReservationDetail, error) {
    res, err := r.db.ExecContext(ctx,
        "INSERT INTO reservations (user_id, flight_id, status) VALUES (?, ?, ?)",
        userID, flightID, model.ReservationActive)
    if err != nil {
        return ReservationDetail{}, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return ReservationDetail{}, err
    }
    return r.GetByIDForUser(ctx, uint64(id), userID)
}

// ListByUser returns the caller's reservations joined with flight
// snapshots, newest first.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uint64) ([]ReservationDetail, error) {
    rows, err := r.db.QueryContext(ctx,
        detailQuery+" WHERE r.user_id = ? ORDER BY r.created_at DESC, r.id DESC", userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]ReservationDetail, 0)
    for rows.Next() {
        det, err := scanDetail(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, det)
    }
    return out, rows.Err()
}

// GetByIDForUser returns one reservation owned by the user, or
// ErrReservationNotFound when the row is missing or owned by someone else.
func (r *ReservationRepo) GetByIDForUser(ctx context.Context, reservationID, userID uint64) (ReservationDetail, error) {
    det, err := scanDetail(r.db.QueryRowContext(ctx,
        detailQuery+" WHERE r.id = ? AND r.user_id = ? LIMIT 1", reservationID, userID))
    if err == sql.ErrNoRows {
        return ReservationDetail{}, ErrReservationNotFound
    }
    return det, err
}

// Cancel marks an Active reservation Cancelled and stamps cancelled_at.
// Returns ErrReservationNotFound for missing/foreign rows and ErrNotActive
// when the reservation exists but is not Active. Status and cancelled_at
// change in one UPDATE so the two can never disagree.
func (r *ReservationRepo) Cancel(ctx context.Context, reservationID, userID uint64) error {
    res, err := r.db.ExecContext(ctx,
        "UPDATE reservations SET status = ?, cancelled_at = NOW() WHERE id = ? AND user_id = ? AND status = ?",
        model.ReservationCancelled, reservationID, userID, model.ReservationActive)
    if err != nil {
        return err
    }
    return r.checkMutated(ctx, res, reservationID, userID, ErrNotActive)
}

// Restore reverses a cancellation: the reservation becomes Active again
// and cancelled_at is cleared. Returns ErrReservationNotFound or
// ErrNotCancelled analogous to Cancel.
func (r *ReservationRepo) Restore(ctx context.Context, reservationID, userID uint64) error {
    res, err := r.db.ExecContext(ctx,
        "UPDATE reservations SET status = ?, cancelled_at = NULL WHERE id = ? AND user_id = ? AND status = ?",
        model.ReservationActive, reservationID, userID, model.ReservationCancelled)
    if err != nil {
        return err
    }
    return r.checkMutated(ctx, res, reservationID, userID, ErrNotCancelled)
}

// checkMutated distinguishes "row absent" from "row in the wrong state"
// after a guarded UPDATE touched zero rows.
func (r *ReservationRepo) checkMutated(ctx context.Context, res sql.Result, reservationID, userID uint64, stateErr error) error {
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n > 0 {
        return nil
    }
    var exists bool
    err = r.db.QueryRowContext(ctx,
        "SELECT EXISTS(SELECT 1 FROM reservations WHERE id = ? AND user_id = ?)",
        reservationID, userID).Scan(&exists)
    if err != nil {
        return err
    }
    if !exists {
        return ErrReservationNotFound
    }
    return stateErr
}
