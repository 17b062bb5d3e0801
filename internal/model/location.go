package model

// Country is the root of the location hierarchy used by the search form.
// Countries contain cities which in turn contain airports; all three are
// read-only lookup data seeded at startup.
//
// Fields:
//  ID   – primary key identifier.
//  Code – ISO 3166 alpha-2 code.
//  Name – display name.
type Country struct {
    ID   uint64 `json:"id"`   // countries.id
    Code string `json:"code"` // countries.code
    Name string `json:"name"` // countries.name
}

// City belongs to exactly one country.
//
// Fields:
//  ID         – primary key identifier.
//  CountryID  – owning country.
//  Name       – display name.
//  FlightTime – indicative flight duration shown in the search form.
type City struct {
    ID         uint64 `json:"id"`         // cities.id
    CountryID  uint64 `json:"countryId"`  // cities.country_id
    Name       string `json:"name"`       // cities.name
    FlightTime string `json:"flightTime"` // cities.flight_time
}

// Airport belongs to exactly one city.
//
// Fields:
//  ID     – primary key identifier.
//  CityID – owning city.
//  Code   – IATA code.
//  Name   – display name.
type Airport struct {
    ID     uint64 `json:"id"`     // airports.id
    CityID uint64 `json:"cityId"` // airports.city_id
    Code   string `json:"code"`   // airports.code
    Name   string `json:"name"`   // airports.name
}
