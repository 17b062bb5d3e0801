package client

import (
    "sort"
    "strings"
    "time"
)

// cityVariants widens substring matching across surface forms of the
// same city: IATA airport codes, diacritic-stripped spellings and
// local-language names. One fixed lookup table, no fuzzy matching.
var cityVariants = map[string][]string{
    "istanbul":  {"istanbul", "İstanbul", "ist", "saw"},
    "ankara":    {"ankara", "esb"},
    "izmir":     {"izmir", "İzmir", "adb"},
    "antalya":   {"antalya", "ayt"},
    "trabzon":   {"trabzon", "tzx"},
    "berlin":    {"berlin", "ber"},
    "paris":     {"paris", "cdg", "ory"},
    "london":    {"london", "londra", "lhr", "lgw"},
    "amsterdam": {"amsterdam", "ams"},
    "rome":      {"rome", "roma", "fco"},
    "madrid":    {"madrid", "mad"},
    "new york":  {"new york", "newyork", "jfk", "ewr"},
    "dubai":     {"dubai", "dxb"},
    "tokyo":     {"tokyo", "tokyo haneda", "hnd", "nrt"},
}

// matchesPlace reports whether the flight field (origin or destination)
// matches the query. The base rule is a case-insensitive substring
// match in either direction; the variant table then widens it so "IST"
// finds İstanbul and "Londra" finds London. This single algorithm is
// used for both origin and destination at every call site.
func matchesPlace(field, query string) bool {
    query = strings.ToLower(strings.TrimSpace(query))
    if query == "" {
        return true
    }
    field = strings.ToLower(field)
    if strings.Contains(field, query) {
        return true
    }
    for _, variants := range cityVariants {
        if !containsVariant(variants, query) {
            continue
        }
        for _, v := range variants {
            if strings.Contains(field, strings.ToLower(v)) {
                return true
            }
        }
    }
    return false
}

func containsVariant(variants []string, query string) bool {
    for _, v := range variants {
        lv := strings.ToLower(v)
        if lv == query || strings.Contains(lv, query) || strings.Contains(query, lv) {
            return true
        }
    }
    return false
}

// FilterFlights narrows a fetched catalog by origin text, destination
// text and an optional departure date. Text matching is the widened
// substring match above; the date filter compares the calendar day only
// and a nil date matches everything.
func FilterFlights(flights []Flight, origin, destination string, date *time.Time) []Flight {
    out := make([]Flight, 0, len(flights))
    for _, f := range flights {
        if !matchesPlace(f.Origin, origin) || !matchesPlace(f.Destination, destination) {
            continue
        }
        if date != nil && !sameCalendarDay(f.DepartureTime, *date) {
            continue
        }
        out = append(out, f)
    }
    return out
}

// SearchFlights narrows a catalog by one free-text term, matching a
// flight when its origin, destination or flight number contains the
// term case-insensitively. This is the single-box search next to the
// structured origin/destination/date form; an empty term matches all.
func SearchFlights(flights []Flight, term string) []Flight {
    term = strings.ToLower(strings.TrimSpace(term))
    if term == "" {
        return append([]Flight(nil), flights...)
    }
    out := make([]Flight, 0, len(flights))
    for _, f := range flights {
        if strings.Contains(strings.ToLower(f.Origin), term) ||
            strings.Contains(strings.ToLower(f.Destination), term) ||
            strings.Contains(strings.ToLower(f.FlightNumber), term) {
            out = append(out, f)
        }
    }
    return out
}

// sameCalendarDay ignores time-of-day entirely: a flight at 00:10 the
// next day does not match, however close the instants are.
func sameCalendarDay(a, b time.Time) bool {
    ay, am, ad := a.Date()
    by, bm, bd := b.Date()
    return ay == by && am == bm && ad == bd
}

// SortKey selects the field SortFlights orders by.
type SortKey string

const (
    SortByDeparture SortKey = "departure"
    SortByArrival   SortKey = "arrival"
    // SortByStatus orders lexicographically on the status label, not by
    // any severity ranking.
    SortByStatus SortKey = "status"
)

// SortFlights sorts ascending by the chosen key, in place. An unknown
// key leaves the order untouched.
func SortFlights(flights []Flight, key SortKey) {
    switch key {
    case SortByDeparture:
        sort.SliceStable(flights, func(i, j int) bool {
            return flights[i].DepartureTime.Before(flights[j].DepartureTime)
        })
    case SortByArrival:
        sort.SliceStable(flights, func(i, j int) bool {
            return flights[i].ArrivalTime.Before(flights[j].ArrivalTime)
        })
    case SortByStatus:
        sort.SliceStable(flights, func(i, j int) bool {
            return flights[i].Status < flights[j].Status
        })
    }
}
