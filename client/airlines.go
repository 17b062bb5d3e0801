package client

import "strings"

// Airline identifies the carrier behind a flight number prefix.
type Airline struct {
    Code    string
    Name    string
    Country string
}

// airlineUnknown is returned for any prefix outside the table. Callers
// render it as-is instead of guessing.
var airlineUnknown = Airline{Code: "UNKNOWN", Name: "Unknown Airline", Country: "Unknown"}

// airlines maps the carrier-code prefix of a flight number to the
// airline. A plain lookup keyed by the leading letters; no IATA
// registry behind it.
var airlines = map[string]Airline{
    "TK":  {Code: "TK", Name: "Turkish Airlines", Country: "Türkiye"},
    "PC":  {Code: "PC", Name: "Pegasus Airlines", Country: "Türkiye"},
    "PGS": {Code: "PGS", Name: "Pegasus Airlines", Country: "Türkiye"},
    "LH":  {Code: "LH", Name: "Lufthansa", Country: "Germany"},
    "AF":  {Code: "AF", Name: "Air France", Country: "France"},
    "BA":  {Code: "BA", Name: "British Airways", Country: "United Kingdom"},
    "KL":  {Code: "KL", Name: "KLM Royal Dutch Airlines", Country: "Netherlands"},
    "IB":  {Code: "IB", Name: "Iberia", Country: "Spain"},
    "AZ":  {Code: "AZ", Name: "Alitalia", Country: "Italy"},
    "OS":  {Code: "OS", Name: "Austrian Airlines", Country: "Austria"},
    "LX":  {Code: "LX", Name: "Swiss International Air Lines", Country: "Switzerland"},
    "AA":  {Code: "AA", Name: "American Airlines", Country: "United States"},
    "DL":  {Code: "DL", Name: "Delta Air Lines", Country: "United States"},
    "UA":  {Code: "UA", Name: "United Airlines", Country: "United States"},
    "EK":  {Code: "EK", Name: "Emirates", Country: "United Arab Emirates"},
    "EY":  {Code: "EY", Name: "Etihad Airways", Country: "United Arab Emirates"},
    "JL":  {Code: "JL", Name: "Japan Airlines", Country: "Japan"},
    "NH":  {Code: "NH", Name: "ANA (All Nippon Airways)", Country: "Japan"},
}

// AirlineCode extracts the leading letters of a flight number, so
// "TK123" yields "TK". A number with no letter prefix yields "UNKNOWN".
func AirlineCode(flightNumber string) string {
    i := 0
    for i < len(flightNumber) {
        ch := flightNumber[i]
        if (ch < 'A' || ch > 'Z') && (ch < 'a' || ch > 'z') {
            break
        }
        i++
    }
    if i == 0 {
        return airlineUnknown.Code
    }
    return strings.ToUpper(flightNumber[:i])
}

// AirlineFor resolves the carrier of a flight number, falling back to
// the UNKNOWN airline for prefixes outside the table.
func AirlineFor(flightNumber string) Airline {
    if a, ok := airlines[AirlineCode(flightNumber)]; ok {
        return a
    }
    return airlineUnknown
}
