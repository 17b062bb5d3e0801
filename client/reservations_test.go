package client

import (
    "context"
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/httptest"
    "strings"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

// fakeBackend is a minimal in-memory stand-in for the reservation and
// flight endpoints. Reservations are returned without an embedded
// flight snapshot so enrichment has work to do.
type fakeBackend struct {
    mu           sync.Mutex
    flights      map[uint64]Flight
    reservations map[uint64]*wireReservation
    failFlights  map[uint64]bool // flight ids whose fetch returns 500
}

// wireReservation lets tests emit the status as a string or a number.
type wireReservation struct {
    ID          uint64
    FlightID    uint64
    Status      any
    CreatedAt   time.Time
    CancelledAt *time.Time
}

func (w *wireReservation) MarshalJSON() ([]byte, error) {
    return json.Marshal(map[string]any{
        "id":          w.ID,
        "userId":      1,
        "flightId":    w.FlightID,
        "status":      w.Status,
        "createdAt":   w.CreatedAt,
        "cancelledAt": w.CancelledAt,
    })
}

func (b *fakeBackend) handler(t *testing.T) http.Handler {
    mux := http.NewServeMux()
    mux.HandleFunc("/api/Reservation", func(w http.ResponseWriter, r *http.Request) {
        b.mu.Lock()
        defer b.mu.Unlock()
        switch r.Method {
        case http.MethodGet:
            out := make([]*wireReservation, 0, len(b.reservations))
            for _, res := range b.reservations {
                out = append(out, res)
            }
            json.NewEncoder(w).Encode(out)
        case http.MethodPost:
            var req struct {
                FlightID uint64 `json:"flightId"`
            }
            require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
            id := uint64(len(b.reservations) + 1)
            b.reservations[id] = &wireReservation{
                ID: id, FlightID: req.FlightID, Status: "Active", CreatedAt: time.Now().UTC(),
            }
            w.WriteHeader(http.StatusCreated)
            json.NewEncoder(w).Encode(b.reservations[id])
        }
    })
    mux.HandleFunc("/api/Reservation/", func(w http.ResponseWriter, r *http.Request) {
        b.mu.Lock()
        defer b.mu.Unlock()
        var id uint64
        switch r.Method {
        case http.MethodDelete:
            fmt.Sscanf(r.URL.Path, "/api/Reservation/%d", &id)
            res, ok := b.reservations[id]
            if !ok {
                http.Error(w, `{"error":"reservation not found"}`, http.StatusNotFound)
                return
            }
            if res.Status != "Active" && res.Status != 1 {
                http.Error(w, `{"error":"reservation is not active"}`, http.StatusConflict)
                return
            }
            now := time.Now().UTC()
            res.Status = 2 // numeric on purpose: clients must normalize
            res.CancelledAt = &now
            w.WriteHeader(http.StatusNoContent)
        case http.MethodPut:
            if !strings.HasPrefix(r.URL.Path, "/api/Reservation/restore/") {
                http.NotFound(w, r)
                return
            }
            fmt.Sscanf(r.URL.Path, "/api/Reservation/restore/%d", &id)
            res, ok := b.reservations[id]
            if !ok {
                http.Error(w, `{"error":"reservation not found"}`, http.StatusNotFound)
                return
            }
            if ParseReservationStatus(res.Status) != StatusCancelled {
                http.Error(w, `{"error":"reservation is not cancelled"}`, http.StatusConflict)
                return
            }
            res.Status = "active" // lowercase on purpose
            res.CancelledAt = nil
            json.NewEncoder(w).Encode(res)
        }
    })
    mux.HandleFunc("/api/Flight/", func(w http.ResponseWriter, r *http.Request) {
        b.mu.Lock()
        defer b.mu.Unlock()
        var id uint64
        fmt.Sscanf(r.URL.Path, "/api/Flight/%d", &id)
        if b.failFlights[id] {
            http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
            return
        }
        f, ok := b.flights[id]
        if !ok {
            http.Error(w, `{"error":"flight not found"}`, http.StatusNotFound)
            return
        }
        json.NewEncoder(w).Encode(f)
    })
    return mux
}

func newTestClient(t *testing.T, b *fakeBackend) (*Client, *MemCredentialStore) {
    t.Helper()
    srv := httptest.NewServer(b.handler(t))
    t.Cleanup(srv.Close)
    store := NewMemCredentialStore()
    require.NoError(t, store.SetSession("test-token", Profile{ID: 1, Email: "a@b.c"}))
    c := New(srv.URL, store)
    c.Logf = t.Logf
    return c, store
}

func TestCancelThenRestoreRoundTrip(t *testing.T) {
    dep := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
    b := &fakeBackend{
        flights:      map[uint64]Flight{7: mkFlight(7, "TK7", "Istanbul", "Paris", dep, FlightScheduled)},
        reservations: map[uint64]*wireReservation{},
        failFlights:  map[uint64]bool{},
    }
    c, _ := newTestClient(t, b)
    ctx := context.Background()

    created, list, err := c.CreateReservation(ctx, 7)
    require.NoError(t, err)
    assert.Equal(t, uint64(7), created.FlightID)
    assert.Equal(t, StatusActive, created.Status)
    require.Len(t, list, 1)
    rid := created.ID
    assert.Equal(t, rid, list[0].ID, "the reloaded list contains the created reservation")
    assert.Equal(t, StatusActive, list[0].Status)
    assert.Nil(t, list[0].CancelledAt)

    // Cancel, then the re-fetched list must show Cancelled with a
    // timestamp, even though the backend switched to a numeric status.
    list, err = c.CancelReservation(ctx, rid)
    require.NoError(t, err)
    require.Len(t, list, 1)
    assert.Equal(t, StatusCancelled, list[0].Status)
    require.NotNil(t, list[0].CancelledAt)

    // Cancelling again is a backend-decided conflict.
    _, err = c.CancelReservation(ctx, rid)
    require.Error(t, err)
    assert.True(t, IsConflict(err))

    // Restore clears the timestamp and the list reflects it.
    list, err = c.RestoreReservation(ctx, rid)
    require.NoError(t, err)
    require.Len(t, list, 1)
    assert.Equal(t, StatusActive, list[0].Status)
    assert.Nil(t, list[0].CancelledAt)

    _, err = c.RestoreReservation(ctx, rid)
    require.Error(t, err)
    assert.True(t, IsConflict(err))
}

func TestReservationsWithFlightsDegradesPerItem(t *testing.T) {
    dep := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
    b := &fakeBackend{
        flights: map[uint64]Flight{
            1: mkFlight(1, "TK1", "Istanbul", "Paris", dep, FlightScheduled),
            2: mkFlight(2, "TK2", "Istanbul", "Berlin", dep, FlightScheduled),
            3: mkFlight(3, "TK3", "Istanbul", "Rome", dep, FlightScheduled),
        },
        reservations: map[uint64]*wireReservation{
            10: {ID: 10, FlightID: 1, Status: "Active", CreatedAt: dep},
            11: {ID: 11, FlightID: 2, Status: "Active", CreatedAt: dep},
            12: {ID: 12, FlightID: 3, Status: "Active", CreatedAt: dep},
        },
        failFlights: map[uint64]bool{2: true},
    }
    c, _ := newTestClient(t, b)

    list, err := c.ReservationsWithFlights(context.Background())
    require.NoError(t, err, "one failed flight fetch must not fail the batch")
    require.Len(t, list, 3, "every reservation comes back, enriched or not")

    resolved := 0
    for _, r := range list {
        if r.FlightID == 2 {
            assert.Nil(t, r.Flight, "the failed fetch leaves the flight unset")
            continue
        }
        require.NotNil(t, r.Flight)
        assert.Equal(t, r.FlightID, r.Flight.ID)
        resolved++
    }
    assert.Equal(t, 2, resolved)
}

func TestUnauthorizedPurgesCredentials(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
    }))
    t.Cleanup(srv.Close)

    store := NewMemCredentialStore()
    require.NoError(t, store.SetSession("stale-token", Profile{ID: 1}))
    c := New(srv.URL, store)
    c.Logf = t.Logf

    _, err := c.Reservations(context.Background())
    require.Error(t, err)
    assert.True(t, IsUnauthorized(err))
    assert.Empty(t, store.Token(), "a rejected credential is purged")
    _, ok := store.Profile()
    assert.False(t, ok, "the profile snapshot goes with it")
}
