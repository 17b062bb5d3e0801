package handler

import (
    "context"
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "flightinfo-server/internal/model"
    "flightinfo-server/internal/repository"
)

// FlightStore is the subset of the flight repository the handler needs.
// Declared here so tests can substitute a fake without a database.
type FlightStore interface {
    ListAll(ctx context.Context) ([]model.Flight, error)
    ListAllWithPrices(ctx context.Context) ([]model.FlightWithPrices, error)
    GetByID(ctx context.Context, id uint64) (model.Flight, error)
    PricesByFlight(ctx context.Context, flightID uint64) ([]model.FlightPrice, error)
}

// FlightHandler serves the read-only flight catalog. Clients fetch the
// catalog wholesale and filter locally; there is no server-side search.
type FlightHandler struct {
    Flights FlightStore
}

// NewFlightHandler constructs a FlightHandler.
func NewFlightHandler(flights FlightStore) *FlightHandler {
    if flights == nil {
        panic("nil store passed to NewFlightHandler")
    }
    return &FlightHandler{Flights: flights}
}

// List handles GET /api/Flight and returns every flight.
func (h *FlightHandler) List(c echo.Context) error {
    flights, err := h.Flights.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, flights)
}

// ListWithPrices handles GET /api/Flight/with-prices and returns every
// flight with its fare tiers attached.
func (h *FlightHandler) ListWithPrices(c echo.Context) error {
    flights, err := h.Flights.ListAllWithPrices(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, flights)
}

// Get handles GET /api/Flight/:id.
func (h *FlightHandler) Get(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
    }
    flight, err := h.Flights.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrFlightNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, flight)
}

// Prices handles GET /api/Flight/:id/prices. The flight must exist; a
// flight without fare tiers yields an empty array.
func (h *FlightHandler) Prices(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
    }
    ctx := c.Request().Context()
    if _, err := h.Flights.GetByID(ctx, id); err != nil {
        if errors.Is(err, repository.ErrFlightNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    prices, err := h.Flights.PricesByFlight(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, prices)
}
