package client

import (
    "context"
    "fmt"
    "net/http"
    "time"
)

// Flight statuses as reported by the backend. The catalog passes them
// through untouched; only reservation statuses need normalization.
const (
    FlightScheduled  = "Scheduled"
    FlightOnTime     = "OnTime"
    FlightDelayed    = "Delayed"
    FlightCancelled  = "Cancelled"
    FlightBoarding   = "Boarding"
    FlightInProgress = "InProgress"
    FlightCompleted  = "Completed"
)

// Flight is a catalog entry. Immutable from this side; only the backend
// changes flights.
type Flight struct {
    ID            uint64    `json:"id"`
    FlightNumber  string    `json:"flightNumber"`
    Origin        string    `json:"origin"`
    Destination   string    `json:"destination"`
    DepartureTime time.Time `json:"departureTime"`
    ArrivalTime   time.Time `json:"arrivalTime"`
    Status        string    `json:"status"`
}

// FlightPrice is one fare tier of a flight.
type FlightPrice struct {
    ID             uint64  `json:"id"`
    FlightID       uint64  `json:"flightId"`
    FareClass      string  `json:"fareClass"`
    Price          float64 `json:"price"`
    Currency       string  `json:"currency"`
    AvailableSeats int     `json:"availableSeats"`
}

// FlightWithPrices is a flight enriched with its fare tiers. A flight
// with no tiers is still viewable, just not priced.
type FlightWithPrices struct {
    Flight
    Prices []FlightPrice `json:"prices"`
}

// Flights fetches the whole catalog. No pagination, no server-side
// filtering; FilterFlights narrows the result locally.
func (c *Client) Flights(ctx context.Context) ([]Flight, error) {
    var out []Flight
    if err := c.do(ctx, http.MethodGet, "/api/Flight", nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// FlightsWithPrices fetches the catalog with fare tiers embedded.
func (c *Client) FlightsWithPrices(ctx context.Context) ([]FlightWithPrices, error) {
    var out []FlightWithPrices
    if err := c.do(ctx, http.MethodGet, "/api/Flight/with-prices", nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// Flight fetches one flight by id.
func (c *Client) Flight(ctx context.Context, id uint64) (Flight, error) {
    var out Flight
    if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/Flight/%d", id), nil, &out); err != nil {
        return Flight{}, err
    }
    return out, nil
}

// FlightPrices fetches the fare tiers of one flight.
func (c *Client) FlightPrices(ctx context.Context, id uint64) ([]FlightPrice, error) {
    var out []FlightPrice
    if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/Flight/%d/prices", id), nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}
