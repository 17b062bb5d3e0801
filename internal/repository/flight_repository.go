package repository

import (
    "context"
    "database/sql"

    "flightinfo-server/internal/model"
)

// FlightRepo provides read access to flights and their fare tiers.
// Flights are written only by the seeder; the API never mutates them.
// All timestamp columns are stored in UTC.
type FlightRepo struct {
    db *sql.DB
}

// NewFlightRepo returns a FlightRepo bound to the given database.
func NewFlightRepo(db *sql.DB) *FlightRepo { return &FlightRepo{db: db} }

const flightColumns = "id, flight_number, origin, destination, departure_time, arrival_time, status"

func scanFlight(row interface{ Scan(...any) error }, f *model.Flight) error {
    return row.Scan(&f.ID, &f.FlightNumber, &f.Origin, &f.Destination,
        &f.DepartureTime, &f.ArrivalTime, &f.Status)
}

// ListAll returns every flight ordered by departure time.
func (r *FlightRepo) ListAll(ctx context.Context) ([]model.Flight, error) {
    rows, err := r.db.QueryContext(ctx,
        "SELECT "+flightColumns+" FROM flights ORDER BY departure_time")
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    flights := make([]model.Flight, 0)
    for rows.Next() {
        var f model.Flight
        if err := scanFlight(rows, &f); err != nil {
            return nil, err
        }
        flights = append(flights, f)
    }
    return flights, rows.Err()
}

// GetByID returns a single flight or ErrFlightNotFound.
func (r *FlightRepo) GetByID(ctx context.Context, id uint64) (model.Flight, error) {
    var f model.Flight
    err := scanFlight(r.db.QueryRowContext(ctx,
        "SELECT "+flightColumns+" FROM flights WHERE id = ? LIMIT 1", id), &f)
    if err == sql.ErrNoRows {
        return model.Flight{}, ErrFlightNotFound
    }
    return f, err
}

// PricesByFlight returns all fare tiers for one flight. The slice is empty
// (not nil) when the flight has no price rows.
func (r *FlightRepo) PricesByFlight(ctx context.Context, flightID uint64) ([]model.FlightPrice, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT id, flight_id, fare_class, price, currency, available_seats
           FROM flight_prices WHERE flight_id = ? ORDER BY price`, flightID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    prices := make([]model.FlightPrice, 0)
    for rows.Next() {
        var p model.FlightPrice
        if err := rows.Scan(&p.ID, &p.FlightID, &p.FareClass, &p.Price, &p.Currency, &p.AvailableSeats); err != nil {
            return nil, err
        }
        prices = append(prices, p)
    }
    return prices, rows.Err()
}

// ListAllWithPrices returns every flight with its fare tiers attached.
// Two queries are issued and joined in memory to keep row scanning simple.
func (r *FlightRepo) ListAllWithPrices(ctx context.Context) ([]model.FlightWithPrices, error) {
    flights, err := r.ListAll(ctx)
    if err != nil {
        return nil, err
    }

    rows, err := r.db.QueryContext(ctx,
        `SELECT id, flight_id, fare_class, price, currency, available_seats
           FROM flight_prices ORDER BY flight_id, price`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    byFlight := make(map[uint64][]model.FlightPrice)
    for rows.Next() {
        var p model.FlightPrice
        if err := rows.Scan(&p.ID, &p.FlightID, &p.FareClass, &p.Price, &p.Currency, &p.AvailableSeats); err != nil {
            return nil, err
        }
        byFlight[p.FlightID] = append(byFlight[p.FlightID], p)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }

    out := make([]model.FlightWithPrices, 0, len(flights))
    for _, f := range flights {
        prices := byFlight[f.ID]
        if prices == nil {
            prices = []model.FlightPrice{}
        }
        out = append(out, model.FlightWithPrices{Flight: f, Prices: prices})
    }
    return out, nil
}

// Count returns the number of flight rows. Used by the seeder to decide
// whether seed data is already present.
func (r *FlightRepo) Count(ctx context.Context) (int64, error) {
    var n int64
    err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM flights").Scan(&n)
    return n, err
}
