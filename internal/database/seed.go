package database

import (
    "context"
    "database/sql"
    "log"
    "time"
)

// Seed loads the demo catalog: flights with fare tiers plus the
// country/city/airport hierarchy behind the search form. Each group is
// inserted only when its table is empty, so restarting the server never
// duplicates rows.
func Seed(ctx context.Context, db *sql.DB) error {
    if err := seedFlights(ctx, db); err != nil {
        return err
    }
    return seedLocations(ctx, db)
}

type seedFlight struct {
    number    string
    origin    string
    dest      string
    departure string
    arrival   string
}

var seedFlights19 = []seedFlight{
    {"TK101", "Istanbul", "Berlin", "2025-09-24 09:00:00", "2025-09-24 11:30:00"},
    {"TK102", "Istanbul", "Paris", "2025-09-24 14:00:00", "2025-09-24 16:45:00"},
    {"TK103", "Istanbul", "London", "2025-09-24 18:30:00", "2025-09-24 21:15:00"},
    {"TK104", "Istanbul", "Amsterdam", "2025-09-25 08:00:00", "2025-09-25 10:30:00"},
    {"TK105", "Istanbul", "Rome", "2025-09-25 12:00:00", "2025-09-25 14:45:00"},
    {"TK106", "Istanbul", "Madrid", "2025-09-25 16:00:00", "2025-09-25 18:30:00"},
    {"PC201", "Ankara", "Istanbul", "2025-09-24 08:00:00", "2025-09-24 09:30:00"},
    {"PC202", "Ankara", "Izmir", "2025-09-24 12:00:00", "2025-09-24 13:30:00"},
    {"PC203", "Ankara", "Antalya", "2025-09-24 16:00:00", "2025-09-24 17:30:00"},
    {"PC204", "Ankara", "Trabzon", "2025-09-25 10:00:00", "2025-09-25 11:30:00"},
    {"TK301", "Izmir", "Istanbul", "2025-09-24 07:00:00", "2025-09-24 08:30:00"},
    {"TK302", "Izmir", "Ankara", "2025-09-24 11:00:00", "2025-09-24 12:30:00"},
    {"TK303", "Izmir", "Antalya", "2025-09-24 15:00:00", "2025-09-24 16:00:00"},
    {"PGS401", "Antalya", "Istanbul", "2025-09-24 09:00:00", "2025-09-24 10:30:00"},
    {"PGS402", "Antalya", "Ankara", "2025-09-24 13:00:00", "2025-09-24 14:30:00"},
    {"PGS403", "Antalya", "Izmir", "2025-09-24 17:00:00", "2025-09-24 18:00:00"},
    {"TK501", "Istanbul", "New York", "2025-09-25 22:00:00", "2025-09-26 06:00:00"},
    {"TK502", "Istanbul", "Dubai", "2025-09-25 20:00:00", "2025-09-26 02:00:00"},
    {"TK503", "Istanbul", "Tokyo", "2025-09-25 18:00:00", "2025-09-26 10:00:00"},
}

func seedFlights(ctx context.Context, db *sql.DB) error {
    var n int64
    if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM flights").Scan(&n); err != nil {
        return err
    }
    if n > 0 {
        return nil
    }

    for _, f := range seedFlights19 {
        dep, err := time.Parse("2006-01-02 15:04:05", f.departure)
        if err != nil {
            return err
        }
        arr, err := time.Parse("2006-01-02 15:04:05", f.arrival)
        if err != nil {
            return err
        }
        res, err := db.ExecContext(ctx,
            "INSERT INTO flights (flight_number, origin, destination, departure_time, arrival_time, status) VALUES (?,?,?,?,?,'Scheduled')",
            f.number, f.origin, f.dest, dep, arr)
        if err != nil {
            return err
        }
        flightID, err := res.LastInsertId()
        if err != nil {
            return err
        }

        // Short domestic hops get a single economy fare, longer routes two tiers.
        longHaul := arr.Sub(dep) > 3*time.Hour
        economy := 89.90
        if longHaul {
            economy = 349.90
        }
        if _, err := db.ExecContext(ctx,
            "INSERT INTO flight_prices (flight_id, fare_class, price, currency, available_seats) VALUES (?,?,?,?,?)",
            flightID, "Economy", economy, "EUR", 120); err != nil {
            return err
        }
        if longHaul {
            if _, err := db.ExecContext(ctx,
                "INSERT INTO flight_prices (flight_id, fare_class, price, currency, available_seats) VALUES (?,?,?,?,?)",
                flightID, "Business", economy*3, "EUR", 24); err != nil {
                return err
            }
        }
    }
    log.Printf("seed: inserted %d flights", len(seedFlights19))
    return nil
}

type seedCountry struct {
    code   string
    name   string
    cities []seedCity
}

type seedCity struct {
    name       string
    flightTime string
    airports   []seedAirport
}

type seedAirport struct {
    code string
    name string
}

var seedCountries = []seedCountry{
    {"TR", "Türkiye", []seedCity{
        {"Istanbul", "0h", []seedAirport{{"IST", "Istanbul Airport"}, {"SAW", "Sabiha Gökçen"}}},
        {"Ankara", "1h 15m", []seedAirport{{"ESB", "Esenboğa"}}},
        {"Izmir", "1h 5m", []seedAirport{{"ADB", "Adnan Menderes"}}},
        {"Antalya", "1h 10m", []seedAirport{{"AYT", "Antalya Airport"}}},
        {"Trabzon", "1h 45m", []seedAirport{{"TZX", "Trabzon Airport"}}},
    }},
    {"DE", "Germany", []seedCity{
        {"Berlin", "2h 30m", []seedAirport{{"BER", "Berlin Brandenburg"}}},
    }},
    {"FR", "France", []seedCity{
        {"Paris", "2h 45m", []seedAirport{{"CDG", "Charles de Gaulle"}, {"ORY", "Orly"}}},
    }},
    {"GB", "United Kingdom", []seedCity{
        {"London", "2h 45m", []seedAirport{{"LHR", "Heathrow"}, {"LGW", "Gatwick"}}},
    }},
    {"NL", "Netherlands", []seedCity{
        {"Amsterdam", "2h 30m", []seedAirport{{"AMS", "Schiphol"}}},
    }},
    {"IT", "Italy", []seedCity{
        {"Rome", "2h 45m", []seedAirport{{"FCO", "Fiumicino"}}},
    }},
    {"ES", "Spain", []seedCity{
        {"Madrid", "2h 30m", []seedAirport{{"MAD", "Barajas"}}},
    }},
    {"US", "United States", []seedCity{
        {"New York", "8h", []seedAirport{{"JFK", "John F. Kennedy"}, {"EWR", "Newark"}}},
    }},
    {"AE", "United Arab Emirates", []seedCity{
        {"Dubai", "6h", []seedAirport{{"DXB", "Dubai International"}}},
    }},
    {"JP", "Japan", []seedCity{
        {"Tokyo", "16h", []seedAirport{{"HND", "Haneda"}, {"NRT", "Narita"}}},
    }},
}

func seedLocations(ctx context.Context, db *sql.DB) error {
    var n int64
    if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM countries").Scan(&n); err != nil {
        return err
    }
    if n > 0 {
        return nil
    }

    for _, co := range seedCountries {
        res, err := db.ExecContext(ctx,
            "INSERT INTO countries (code, name) VALUES (?,?)", co.code, co.name)
        if err != nil {
            return err
        }
        countryID, err := res.LastInsertId()
        if err != nil {
            return err
        }
        for _, ci := range co.cities {
            res, err := db.ExecContext(ctx,
                "INSERT INTO cities (country_id, name, flight_time) VALUES (?,?,?)",
                countryID, ci.name, ci.flightTime)
            if err != nil {
                return err
            }
            cityID, err := res.LastInsertId()
            if err != nil {
                return err
            }
            for _, a := range ci.airports {
                if _, err := db.ExecContext(ctx,
                    "INSERT INTO airports (city_id, code, name) VALUES (?,?,?)",
                    cityID, a.code, a.name); err != nil {
                    return err
                }
            }
        }
    }
    log.Printf("seed: inserted %d countries", len(seedCountries))
    return nil
}
