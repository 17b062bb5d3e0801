package client

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func mkFlight(id uint64, number, origin, destination string, dep time.Time, status string) Flight {
    return Flight{
        ID:            id,
        FlightNumber:  number,
        Origin:        origin,
        Destination:   destination,
        DepartureTime: dep,
        ArrivalTime:   dep.Add(3 * time.Hour),
        Status:        status,
    }
}

func TestFilterFlightsByPlaceText(t *testing.T) {
    sep24 := time.Date(2025, 9, 24, 10, 0, 0, 0, time.UTC)
    flights := []Flight{
        mkFlight(1, "TK1001", "Istanbul (IST)", "Paris (CDG)", sep24, FlightScheduled),
        mkFlight(2, "TK1002", "Istanbul (SAW)", "Berlin (BER)", sep24, FlightScheduled),
        mkFlight(3, "AF1003", "Paris (CDG)", "Istanbul (IST)", sep24, FlightScheduled),
        mkFlight(4, "BA1004", "London (LHR)", "Paris (ORY)", sep24, FlightScheduled),
    }

    got := FilterFlights(flights, "istanbul", "paris", nil)
    require.Len(t, got, 1)
    assert.Equal(t, uint64(1), got[0].ID)

    // Case does not matter.
    got = FilterFlights(flights, "ISTANBUL", "PARIS", nil)
    require.Len(t, got, 1)
    assert.Equal(t, uint64(1), got[0].ID)

    // Empty text matches everything on that side.
    got = FilterFlights(flights, "", "paris", nil)
    assert.Len(t, got, 2)
    got = FilterFlights(flights, "", "", nil)
    assert.Len(t, got, 4)
}

func TestFilterFlightsCityVariants(t *testing.T) {
    sep24 := time.Date(2025, 9, 24, 10, 0, 0, 0, time.UTC)
    flights := []Flight{
        mkFlight(1, "TK1001", "İstanbul", "London", sep24, FlightScheduled),
        mkFlight(2, "BA1002", "London", "Roma", sep24, FlightScheduled),
    }

    // An airport code finds the city it belongs to.
    got := FilterFlights(flights, "IST", "london", nil)
    require.Len(t, got, 1)
    assert.Equal(t, uint64(1), got[0].ID)

    // A local-language spelling finds the canonical one and back.
    got = FilterFlights(flights, "londra", "rome", nil)
    require.Len(t, got, 1)
    assert.Equal(t, uint64(2), got[0].ID)
}

func TestFilterFlightsDateIsCalendarDayOnly(t *testing.T) {
    // Two flights 90 minutes apart but on different calendar days.
    lateSep24 := time.Date(2025, 9, 24, 22, 40, 0, 0, time.UTC)
    earlySep25 := time.Date(2025, 9, 25, 0, 10, 0, 0, time.UTC)
    flights := []Flight{
        mkFlight(1, "TK1001", "Istanbul", "Paris", lateSep24, FlightScheduled),
        mkFlight(2, "TK1002", "Istanbul", "Paris", earlySep25, FlightScheduled),
    }

    day := time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC)
    got := FilterFlights(flights, "istanbul", "paris", &day)
    require.Len(t, got, 1)
    assert.Equal(t, uint64(1), got[0].ID, "a 00:10 departure the next day must not match")

    // No date given: both match.
    got = FilterFlights(flights, "istanbul", "paris", nil)
    assert.Len(t, got, 2)
}

func TestSearchFlightsMatchesNumberOriginOrDestination(t *testing.T) {
    sep24 := time.Date(2025, 9, 24, 10, 0, 0, 0, time.UTC)
    flights := []Flight{
        mkFlight(1, "TK101", "Istanbul", "Berlin", sep24, FlightScheduled),
        mkFlight(2, "PC201", "Ankara", "Istanbul", sep24, FlightScheduled),
        mkFlight(3, "BA1004", "London", "Paris", sep24, FlightScheduled),
    }

    // Flight number, any case.
    got := SearchFlights(flights, "tk101")
    require.Len(t, got, 1)
    assert.Equal(t, uint64(1), got[0].ID)

    // One term hits either side of the route.
    got = SearchFlights(flights, "istanbul")
    assert.Equal(t, []uint64{1, 2}, ids(got))

    got = SearchFlights(flights, "paris")
    require.Len(t, got, 1)
    assert.Equal(t, uint64(3), got[0].ID)

    // Empty term matches everything.
    assert.Len(t, SearchFlights(flights, "  "), 3)

    // No hit anywhere.
    assert.Empty(t, SearchFlights(flights, "zurich"))
}

func TestAirlineLookup(t *testing.T) {
    tests := []struct {
        flightNumber string
        wantCode     string
        wantName     string
    }{
        {"TK101", "TK", "Turkish Airlines"},
        {"tk101", "TK", "Turkish Airlines"},
        {"PC201", "PC", "Pegasus Airlines"},
        {"PGS401", "PGS", "Pegasus Airlines"},
        {"BA1004", "BA", "British Airways"},
        {"EK77", "EK", "Emirates"},
        {"XX999", "UNKNOWN", "Unknown Airline"},
        {"123", "UNKNOWN", "Unknown Airline"},
        {"", "UNKNOWN", "Unknown Airline"},
    }
    for _, tt := range tests {
        t.Run(tt.flightNumber, func(t *testing.T) {
            a := AirlineFor(tt.flightNumber)
            if tt.wantCode == "UNKNOWN" {
                assert.Equal(t, "UNKNOWN", a.Code)
            } else {
                assert.Equal(t, tt.wantCode, a.Code)
            }
            assert.Equal(t, tt.wantName, a.Name)
        })
    }

    // The prefix extractor stops at the first digit.
    assert.Equal(t, "PGS", AirlineCode("PGS403"))
    assert.Equal(t, "UNKNOWN", AirlineCode("9TK1"))
}

func TestSortFlights(t *testing.T) {
    base := time.Date(2025, 9, 24, 8, 0, 0, 0, time.UTC)
    flights := []Flight{
        mkFlight(1, "TK1", "A", "B", base.Add(4*time.Hour), FlightDelayed),
        mkFlight(2, "TK2", "A", "B", base, FlightScheduled),
        mkFlight(3, "TK3", "A", "B", base.Add(2*time.Hour), FlightBoarding),
    }

    SortFlights(flights, SortByDeparture)
    assert.Equal(t, []uint64{2, 3, 1}, ids(flights))

    SortFlights(flights, SortByArrival)
    assert.Equal(t, []uint64{2, 3, 1}, ids(flights))

    // Status sorts lexicographically on the label.
    SortFlights(flights, SortByStatus)
    assert.Equal(t, []uint64{3, 1, 2}, ids(flights))

    // Unknown key leaves the order alone.
    before := ids(flights)
    SortFlights(flights, SortKey("bogus"))
    assert.Equal(t, before, ids(flights))
}

func ids(flights []Flight) []uint64 {
    out := make([]uint64, len(flights))
    for i, f := range flights {
        out[i] = f.ID
    }
    return out
}
