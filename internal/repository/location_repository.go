package repository

import (
    "context"
    "database/sql"

    "flightinfo-server/internal/model"
)

// LocationRepo serves the read-only country -> city -> airport hierarchy
// that populates the cascading selects of the search form. There is no
// caching contract here; repeated lookups re-query the database and the
// HTTP layer may cache responses in front of it.
type LocationRepo struct {
    db *sql.DB
}

// NewLocationRepo returns a LocationRepo bound to the given database.
func NewLocationRepo(db *sql.DB) *LocationRepo { return &LocationRepo{db: db} }

// Countries returns all countries ordered by name.
func (r *LocationRepo) Countries(ctx context.Context) ([]model.Country, error) {
    rows, err := r.db.QueryContext(ctx,
        "SELECT id, code, name FROM countries ORDER BY name")
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    countries := make([]model.Country, 0)
    for rows.Next() {
        var c model.Country
        if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
            return nil, err
        }
        countries = append(countries, c)
    }
    return countries, rows.Err()
}

// CountryByID returns one country or ErrCountryNotFound.
func (r *LocationRepo) CountryByID(ctx context.Context, id uint64) (model.Country, error) {
    var c model.Country
    err := r.db.QueryRowContext(ctx,
        "SELECT id, code, name FROM countries WHERE id = ? LIMIT 1", id).
        Scan(&c.ID, &c.Code, &c.Name)
    if err == sql.ErrNoRows {
        return model.Country{}, ErrCountryNotFound
    }
    return c, err
}

// CitiesByCountry returns the cities of one country ordered by name.
// An unknown country id yields an empty slice, not an error.
func (r *LocationRepo) CitiesByCountry(ctx context.Context, countryID uint64) ([]model.City, error) {
    rows, err := r.db.QueryContext(ctx,
        "SELECT id, country_id, name, flight_time FROM cities WHERE country_id = ? ORDER BY name",
        countryID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    cities := make([]model.City, 0)
    for rows.Next() {
        var c model.City
        if err := rows.Scan(&c.ID, &c.CountryID, &c.Name, &c.FlightTime); err != nil {
            return nil, err
        }
        cities = append(cities, c)
    }
    return cities, rows.Err()
}

// AirportsByCity returns the airports of one city ordered by code.
func (r *LocationRepo) AirportsByCity(ctx context.Context, cityID uint64) ([]model.Airport, error) {
    rows, err := r.db.QueryContext(ctx,
        "SELECT id, city_id, code, name FROM airports WHERE city_id = ? ORDER BY code",
        cityID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    airports := make([]model.Airport, 0)
    for rows.Next() {
        var a model.Airport
        if err := rows.Scan(&a.ID, &a.CityID, &a.Code, &a.Name); err != nil {
            return nil, err
        }
        airports = append(airports, a)
    }
    return airports, rows.Err()
}
