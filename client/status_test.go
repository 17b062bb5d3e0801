package client

import (
    "encoding/json"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestParseReservationStatus(t *testing.T) {
    tests := []struct {
        name string
        in   any
        want ReservationStatus
    }{
        {"string Active", "Active", StatusActive},
        {"string lowercase active", "active", StatusActive},
        {"numeric 1", 1, StatusActive},
        {"float 1", float64(1), StatusActive},
        {"string Cancelled", "Cancelled", StatusCancelled},
        {"string lowercase cancelled", "cancelled", StatusCancelled},
        {"numeric 2", 2, StatusCancelled},
        {"float 2", float64(2), StatusCancelled},
        {"padded string", "  Active  ", StatusActive},
        {"string digit is not a code", "1", StatusUnknown},
        {"string digit two", "2", StatusUnknown},
        {"unknown string", "Pending", StatusUnknown},
        {"unknown numeric", 3, StatusUnknown},
        {"zero", 0, StatusUnknown},
        {"fractional number", 1.5, StatusUnknown},
        {"empty string", "", StatusUnknown},
        {"nil", nil, StatusUnknown},
        {"bool", true, StatusUnknown},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            assert.Equal(t, tt.want, ParseReservationStatus(tt.in))
        })
    }
}

func TestReservationStatusUnmarshalJSON(t *testing.T) {
    tests := []struct {
        name string
        json string
        want ReservationStatus
    }{
        {"string form", `{"status":"Active"}`, StatusActive},
        {"lowercase form", `{"status":"cancelled"}`, StatusCancelled},
        {"integer form", `{"status":1}`, StatusActive},
        {"integer cancelled", `{"status":2}`, StatusCancelled},
        {"out of domain", `{"status":"whatever"}`, StatusUnknown},
        {"quoted number stays unknown", `{"status":"1"}`, StatusUnknown},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            var payload struct {
                Status ReservationStatus `json:"status"`
            }
            require.NoError(t, json.Unmarshal([]byte(tt.json), &payload))
            assert.Equal(t, tt.want, payload.Status)
        })
    }
}

func TestActionEligibilityFollowsNormalizedStatus(t *testing.T) {
    var r Reservation
    require.NoError(t, json.Unmarshal([]byte(`{"id":1,"flightId":2,"status":2}`), &r))
    assert.True(t, r.CanRestore(), "numeric cancelled status must enable restore")
    assert.False(t, r.CanCancel())

    require.NoError(t, json.Unmarshal([]byte(`{"id":1,"flightId":2,"status":"active"}`), &r))
    assert.True(t, r.CanCancel())
    assert.False(t, r.CanRestore())

    require.NoError(t, json.Unmarshal([]byte(`{"id":1,"flightId":2,"status":"Pending"}`), &r))
    assert.False(t, r.CanCancel(), "unknown status enables no action")
    assert.False(t, r.CanRestore())
}
