package client

import (
    "encoding/json"
    "strconv"
    "strings"
)

// ReservationStatus is the canonical reservation state. The backend may
// encode it as a string in either case or as a small integer; all wire
// shapes are parsed at the JSON boundary and only this type leaks past
// it.
type ReservationStatus string

const (
    StatusActive    ReservationStatus = "Active"
    StatusCancelled ReservationStatus = "Cancelled"
    // StatusUnknown marks a wire value outside the known domain. It is
    // never folded into Active or Cancelled; callers render it as its
    // own state.
    StatusUnknown ReservationStatus = "Unknown"
)

// ParseReservationStatus maps any known wire representation onto the
// canonical status. 1, "Active" and "active" are Active; 2, "Cancelled"
// and "cancelled" are Cancelled; everything else is Unknown.
func ParseReservationStatus(v any) ReservationStatus {
    switch t := v.(type) {
    case string:
        // Only the status words count; a numeric string like "1" is
        // outside the wire domain and stays Unknown.
        switch strings.ToLower(strings.TrimSpace(t)) {
        case "active":
            return StatusActive
        case "cancelled":
            return StatusCancelled
        }
    case int:
        return fromCode(int64(t))
    case int64:
        return fromCode(t)
    case float64:
        // JSON numbers decode as float64; only exact 1 and 2 count.
        if t == float64(int64(t)) {
            return fromCode(int64(t))
        }
    case json.Number:
        if n, err := t.Int64(); err == nil {
            return fromCode(n)
        }
    }
    return StatusUnknown
}

func fromCode(n int64) ReservationStatus {
    switch n {
    case 1:
        return StatusActive
    case 2:
        return StatusCancelled
    }
    return StatusUnknown
}

// UnmarshalJSON accepts a JSON string or number and normalizes it. This
// is the single place mixed encodings are tolerated.
func (s *ReservationStatus) UnmarshalJSON(bs []byte) error {
    var raw any
    dec := json.NewDecoder(strings.NewReader(string(bs)))
    dec.UseNumber()
    if err := dec.Decode(&raw); err != nil {
        return err
    }
    *s = ParseReservationStatus(raw)
    return nil
}

// MarshalJSON writes the canonical string form.
func (s ReservationStatus) MarshalJSON() ([]byte, error) {
    return []byte(strconv.Quote(string(s))), nil
}
