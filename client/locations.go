package client

import (
    "context"
    "fmt"
    "net/http"
)

// Country, City and Airport form a strict containment hierarchy used to
// drive cascading selection inputs. Read-only; there is no caching here
// beyond what the caller keeps for the lifetime of one form.

type Country struct {
    ID   uint64 `json:"id"`
    Code string `json:"code"`
    Name string `json:"name"`
}

type City struct {
    ID         uint64 `json:"id"`
    CountryID  uint64 `json:"countryId"`
    Name       string `json:"name"`
    FlightTime string `json:"flightTime"`
}

type Airport struct {
    ID     uint64 `json:"id"`
    CityID uint64 `json:"cityId"`
    Code   string `json:"code"`
    Name   string `json:"name"`
}

// Countries lists all countries.
func (c *Client) Countries(ctx context.Context) ([]Country, error) {
    var out []Country
    if err := c.do(ctx, http.MethodGet, "/api/Country", nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// Cities lists the cities of one country.
func (c *Client) Cities(ctx context.Context, countryID uint64) ([]City, error) {
    var out []City
    if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/Country/%d/cities", countryID), nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}

// Airports lists the airports of one city.
func (c *Client) Airports(ctx context.Context, cityID uint64) ([]Airport, error) {
    var out []Airport
    if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/Country/cities/%d/airports", cityID), nil, &out); err != nil {
        return nil, err
    }
    return out, nil
}
