package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "flightinfo-server/internal/model"
    "flightinfo-server/internal/queue"
    "flightinfo-server/internal/repository"
)

// ReservationStore is the subset of the reservation repository the
// handler needs. Ownership scoping happens inside the store; every
// method takes the authenticated user id.
type ReservationStore interface {
    Create(ctx context.Context, userID, flightID uint64) (repository.ReservationDetail, error)
    ListByUser(ctx context.Context, userID uint64) ([]repository.ReservationDetail, error)
    GetByIDForUser(ctx context.Context, reservationID, userID uint64) (repository.ReservationDetail, error)
    Cancel(ctx context.Context, reservationID, userID uint64) error
    Restore(ctx context.Context, reservationID, userID uint64) error
}

// ReservationHandler implements the reservation lifecycle endpoints:
// create, list, cancel and restore. All methods assume JWT middleware
// has already validated the caller; the user id is read from the
// context, never from the request body. Lifecycle changes emit a
// best-effort broker event via Publish.
type ReservationHandler struct {
    Reservations ReservationStore
    Flights      FlightStore
    // Publish sends a lifecycle event to the broker. May be nil (e.g.
    // in tests); failures are logged and never fail the request.
    Publish func(ctx context.Context, ev queue.ReservationEvent) error
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(reservations ReservationStore, flights FlightStore,
    publish func(ctx context.Context, ev queue.ReservationEvent) error) *ReservationHandler {
    if reservations == nil || flights == nil {
        panic("nil store passed to NewReservationHandler")
    }
    return &ReservationHandler{Reservations: reservations, Flights: flights, Publish: publish}
}

type createReservationReq struct {
    FlightID uint64 `json:"flightId"`
}

// Create handles POST /api/Reservation. The body carries only the
// flight id; the owner is the authenticated caller. Booking a flight
// that the backend has cancelled is rejected with 409.
func (h *ReservationHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req createReservationReq
    if err := c.Bind(&req); err != nil || req.FlightID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "flightId is required"})
    }

    ctx := c.Request().Context()
    flight, err := h.Flights.GetByID(ctx, req.FlightID)
    if err != nil {
        if errors.Is(err, repository.ErrFlightNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if flight.Status == model.FlightCancelled {
        return c.JSON(http.StatusConflict, echo.Map{"error": "flight is cancelled"})
    }

    det, err := h.Reservations.Create(ctx, userID, req.FlightID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
    }

    h.emit(ctx, queue.EventReservationCreated, det)
    return c.JSON(http.StatusCreated, det)
}

// List handles GET /api/Reservation and returns the caller's
// reservations with flight snapshots. The result is scoped by the
// credential alone; no filter parameters are accepted.
func (h *ReservationHandler) List(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    list, err := h.Reservations.ListByUser(c.Request().Context(), userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, list)
}

// Get handles GET /api/Reservation/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    det, err := h.Reservations.GetByIDForUser(c.Request().Context(), id, userID)
    if err != nil {
        if errors.Is(err, repository.ErrReservationNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, det)
}

// Cancel handles DELETE /api/Reservation/:id. Only an Active
// reservation can be cancelled; the backend is authoritative and a
// second cancel yields 409.
func (h *ReservationHandler) Cancel(c echo.Context) error {
    return h.transition(c, queue.EventReservationCancelled, h.Reservations.Cancel, repository.ErrNotActive)
}

// Restore handles PUT /api/Reservation/restore/:id and reverses a
// cancellation. Restoring a reservation that is not Cancelled yields 409.
func (h *ReservationHandler) Restore(c echo.Context) error {
    return h.transition(c, queue.EventReservationRestored, h.Reservations.Restore, repository.ErrNotCancelled)
}

// transition runs a guarded state change (cancel or restore) and maps
// the repository sentinels onto HTTP codes. On success the updated
// reservation is returned so clients that want it do not need a second
// round trip, though the reference client re-fetches the whole list.
func (h *ReservationHandler) transition(c echo.Context, eventType string,
    op func(ctx context.Context, reservationID, userID uint64) error, conflict error) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }

    ctx := c.Request().Context()
    if err := op(ctx, id, userID); err != nil {
        switch {
        case errors.Is(err, repository.ErrReservationNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        case errors.Is(err, conflict):
            return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
    }

    det, err := h.Reservations.GetByIDForUser(ctx, id, userID)
    if err != nil {
        // The state change committed; reading it back is best-effort.
        log.Printf("reservation: read-back after %s failed: %v", eventType, err)
        return c.NoContent(http.StatusNoContent)
    }
    h.emit(ctx, eventType, det)
    return c.JSON(http.StatusOK, det)
}

// emit publishes a lifecycle event, logging instead of failing when the
// broker is unavailable.
func (h *ReservationHandler) emit(ctx context.Context, eventType string, det repository.ReservationDetail) {
    if h.Publish == nil {
        return
    }
    ev := queue.ReservationEvent{
        EventID:       uuid.NewString(),
        Type:          eventType,
        ReservationID: det.ID,
        UserID:        det.UserID,
        FlightID:      det.FlightID,
        FlightNumber:  det.FlightNumber,
        Origin:        det.Origin,
        Destination:   det.Destination,
        OccurredAt:    time.Now().UTC().Format(time.RFC3339),
    }
    if err := h.Publish(ctx, ev); err != nil {
        log.Printf("reservation: publish %s failed: %v", eventType, err)
    }
}
