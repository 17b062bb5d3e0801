package handler

import (
    "encoding/json"
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "flightinfo-server/internal/model"
)

func TestFlightList(t *testing.T) {
    h := NewFlightHandler(testFlights())
    rec := doReq(t, http.MethodGet, "/api/Flight", nil, 0, h.List)
    require.Equal(t, http.StatusOK, rec.Code)

    var flights []model.Flight
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flights))
    assert.Len(t, flights, 2)
}

func TestFlightGet(t *testing.T) {
    h := NewFlightHandler(testFlights())

    rec := doReq(t, http.MethodGet, "/api/Flight/7", nil, 0, h.Get, "id", "7")
    require.Equal(t, http.StatusOK, rec.Code)
    var f model.Flight
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
    assert.Equal(t, "TK7", f.FlightNumber)

    rec = doReq(t, http.MethodGet, "/api/Flight/999", nil, 0, h.Get, "id", "999")
    assert.Equal(t, http.StatusNotFound, rec.Code)

    rec = doReq(t, http.MethodGet, "/api/Flight/abc", nil, 0, h.Get, "id", "abc")
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}
