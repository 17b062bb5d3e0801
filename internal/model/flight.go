package model

import "time"

// Flight statuses as stored in the flights.status column. The backend is
// the only writer of these values; clients treat flights as read-only.
const (
    FlightScheduled  = "Scheduled"
    FlightOnTime     = "OnTime"
    FlightDelayed    = "Delayed"
    FlightCancelled  = "Cancelled"
    FlightBoarding   = "Boarding"
    FlightInProgress = "InProgress"
    FlightCompleted  = "Completed"
)

// Flight describes a scheduled flight between two cities.
//
// Fields:
//  ID            – primary key identifier.
//  FlightNumber  – carrier code plus digits (e.g. TK101).
//  Origin        – departure city name as free text.
//  Destination   – arrival city name as free text.
//  DepartureTime – scheduled departure (UTC).
//  ArrivalTime   – scheduled arrival (UTC).
//  Status        – one of the Flight* constants above.
type Flight struct {
    ID            uint64    `json:"id"`            // flights.id
    FlightNumber  string    `json:"flightNumber"`  // flights.flight_number
    Origin        string    `json:"origin"`        // flights.origin
    Destination   string    `json:"destination"`   // flights.destination
    DepartureTime time.Time `json:"departureTime"` // flights.departure_time
    ArrivalTime   time.Time `json:"arrivalTime"`   // flights.arrival_time
    Status        string    `json:"status"`        // flights.status
}

// FlightPrice is a fare tier sold on a single flight. A flight may carry
// zero or more price rows; one with none is viewable but not priced.
//
// Fields:
//  ID             – primary key identifier.
//  FlightID       – flight the fare belongs to.
//  FareClass      – fare bucket name (Economy, Business, ...).
//  Price          – amount in Currency units.
//  Currency       – ISO currency code.
//  AvailableSeats – seats left in this fare bucket.
type FlightPrice struct {
    ID             uint64  `json:"id"`             // flight_prices.id
    FlightID       uint64  `json:"flightId"`       // flight_prices.flight_id
    FareClass      string  `json:"fareClass"`      // flight_prices.fare_class
    Price          float64 `json:"price"`          // flight_prices.price
    Currency       string  `json:"currency"`       // flight_prices.currency
    AvailableSeats uint32  `json:"availableSeats"` // flight_prices.available_seats
}

// FlightWithPrices bundles a flight with all of its fare tiers for the
// /Flight/with-prices listing.
type FlightWithPrices struct {
    Flight
    Prices []FlightPrice `json:"prices"`
}
