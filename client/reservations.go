package client

import (
    "context"
    "fmt"
    "net/http"
    "sync"
    "time"
)

// Reservation is a booking owned by the authenticated caller. The
// backend usually embeds a flattened flight snapshot; when it does not,
// ReservationsWithFlights resolves the Flight field separately. Status
// is normalized at the JSON boundary regardless of wire shape.
type Reservation struct {
    ID            uint64            `json:"id"`
    UserID        uint64            `json:"userId"`
    FlightID      uint64            `json:"flightId"`
    FlightNumber  string            `json:"flightNumber,omitempty"`
    Origin        string            `json:"origin,omitempty"`
    Destination   string            `json:"destination,omitempty"`
    DepartureTime *time.Time        `json:"departureTime,omitempty"`
    ArrivalTime   *time.Time        `json:"arrivalTime,omitempty"`
    Status        ReservationStatus `json:"status"`
    CreatedAt     time.Time         `json:"createdAt"`
    CancelledAt   *time.Time        `json:"cancelledAt,omitempty"`

    // Flight is populated by ReservationsWithFlights. Nil when the
    // fetch failed or was never attempted; render a placeholder then.
    Flight *Flight `json:"-"`
}

// CanCancel reports whether the cancel action applies. Eligibility
// follows the normalized status; Unknown allows neither action.
func (r Reservation) CanCancel() bool { return r.Status == StatusActive }

// CanRestore reports whether the restore action applies.
func (r Reservation) CanRestore() bool { return r.Status == StatusCancelled }

// Reservations lists the caller's reservations. Requires a credential;
// when the backend rejects it the stored session is purged so the
// caller can prompt for re-authentication.
func (c *Client) Reservations(ctx context.Context) ([]Reservation, error) {
    var out []Reservation
    if err := c.do(ctx, http.MethodGet, "/api/Reservation", nil, &out); err != nil {
        if IsUnauthorized(err) {
            c.purgeCredentials()
        }
        return nil, err
    }
    return out, nil
}

// ReservationsWithFlights lists reservations and resolves the full
// Flight for each one that lacks an embedded snapshot. The per-flight
// fetches run concurrently and are assembled by index; one failed
// resolution leaves that reservation's Flight nil and is logged, never
// propagated. The returned slice always has one entry per reservation.
func (c *Client) ReservationsWithFlights(ctx context.Context) ([]Reservation, error) {
    list, err := c.Reservations(ctx)
    if err != nil {
        return nil, err
    }

    var wg sync.WaitGroup
    for i := range list {
        if list[i].FlightNumber != "" || list[i].FlightID == 0 {
            continue // snapshot already embedded, or nothing to resolve
        }
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            f, err := c.Flight(ctx, list[i].FlightID)
            if err != nil {
                c.Logf("reservations: resolve flight %d: %v", list[i].FlightID, err)
                return
            }
            list[i].Flight = &f
        }(i)
    }
    wg.Wait()
    return list, nil
}

type createReservationRequest struct {
    FlightID uint64 `json:"flightId"`
}

// CreateReservation books a flight, returning the created reservation
// and the caller's refreshed list. Validation is entirely server-side;
// a duplicate or impossible booking surfaces as a Conflict. The list is
// re-fetched after the mutation rather than patched locally, so what
// the caller renders is exactly the backend's state.
func (c *Client) CreateReservation(ctx context.Context, flightID uint64) (Reservation, []Reservation, error) {
    var created Reservation
    err := c.do(ctx, http.MethodPost, "/api/Reservation", createReservationRequest{FlightID: flightID}, &created)
    if err != nil {
        if IsUnauthorized(err) {
            c.purgeCredentials()
        }
        return Reservation{}, nil, err
    }
    list, err := c.Reservations(ctx)
    return created, list, err
}

// CancelReservation cancels a reservation and returns the refreshed
// list. The backend decides whether the reservation may be cancelled; a
// non-Active reservation yields a Conflict.
func (c *Client) CancelReservation(ctx context.Context, id uint64) ([]Reservation, error) {
    return c.mutateAndReload(ctx, http.MethodDelete, fmt.Sprintf("/api/Reservation/%d", id))
}

// RestoreReservation reverses a cancellation and returns the refreshed
// list. Restoring a reservation that is not Cancelled yields a Conflict.
func (c *Client) RestoreReservation(ctx context.Context, id uint64) ([]Reservation, error) {
    return c.mutateAndReload(ctx, http.MethodPut, fmt.Sprintf("/api/Reservation/restore/%d", id))
}

func (c *Client) mutateAndReload(ctx context.Context, method, path string) ([]Reservation, error) {
    if err := c.do(ctx, method, path, nil, nil); err != nil {
        if IsUnauthorized(err) {
            c.purgeCredentials()
        }
        return nil, err
    }
    return c.Reservations(ctx)
}

// ReservationByID fetches one reservation owned by the caller.
func (c *Client) ReservationByID(ctx context.Context, id uint64) (Reservation, error) {
    var out Reservation
    if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/Reservation/%d", id), nil, &out); err != nil {
        if IsUnauthorized(err) {
            c.purgeCredentials()
        }
        return Reservation{}, err
    }
    return out, nil
}
