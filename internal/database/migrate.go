package database

import (
    "context"
    "database/sql"
)

// Migrate creates every table the application needs if it does not exist
// yet. Statements are idempotent so the server can run them on every
// start without a separate migration tool.
func Migrate(ctx context.Context, db *sql.DB) error {
    stmts := []string{
        `CREATE TABLE IF NOT EXISTS users (
            id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
            name          VARCHAR(255) NOT NULL,
            email         VARCHAR(255) NOT NULL UNIQUE,
            password_hash VARCHAR(255) NOT NULL,
            is_active     TINYINT(1) NOT NULL DEFAULT 1,
            created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
            updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

        `CREATE TABLE IF NOT EXISTS refresh_tokens (
            id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
            user_id    BIGINT UNSIGNED NOT NULL,
            token_hash CHAR(64) NOT NULL,
            expires_at DATETIME NOT NULL,
            revoked_at DATETIME NULL,
            created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
            KEY idx_refresh_tokens_hash (token_hash),
            CONSTRAINT fk_refresh_tokens_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

        `CREATE TABLE IF NOT EXISTS flights (
            id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
            flight_number  VARCHAR(16) NOT NULL,
            origin         VARCHAR(128) NOT NULL,
            destination    VARCHAR(128) NOT NULL,
            departure_time DATETIME NOT NULL,
            arrival_time   DATETIME NOT NULL,
            status         VARCHAR(32) NOT NULL DEFAULT 'Scheduled',
            KEY idx_flights_departure (departure_time)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

        `CREATE TABLE IF NOT EXISTS flight_prices (
            id              BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
            flight_id       BIGINT UNSIGNED NOT NULL,
            fare_class      VARCHAR(32) NOT NULL,
            price           DECIMAL(10,2) NOT NULL,
            currency        CHAR(3) NOT NULL,
            available_seats INT UNSIGNED NOT NULL,
            CONSTRAINT fk_flight_prices_flight FOREIGN KEY (flight_id) REFERENCES flights (id) ON DELETE CASCADE
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

        `CREATE TABLE IF NOT EXISTS countries (
            id   BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
            code CHAR(2) NOT NULL UNIQUE,
            name VARCHAR(128) NOT NULL
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

        `CREATE TABLE IF NOT EXISTS cities (
            id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
            country_id  BIGINT UNSIGNED NOT NULL,
            name        VARCHAR(128) NOT NULL,
            flight_time VARCHAR(32) NOT NULL DEFAULT '',
            CONSTRAINT fk_cities_country FOREIGN KEY (country_id) REFERENCES countries (id) ON DELETE CASCADE
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

        `CREATE TABLE IF NOT EXISTS airports (
            id      BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
            city_id BIGINT UNSIGNED NOT NULL,
            code    CHAR(3) NOT NULL,
            name    VARCHAR(128) NOT NULL,
            CONSTRAINT fk_airports_city FOREIGN KEY (city_id) REFERENCES cities (id) ON DELETE CASCADE
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

        `CREATE TABLE IF NOT EXISTS reservations (
            id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
            user_id      BIGINT UNSIGNED NOT NULL,
            flight_id    BIGINT UNSIGNED NOT NULL,
            status       VARCHAR(16) NOT NULL DEFAULT 'Active',
            created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
            cancelled_at DATETIME NULL,
            KEY idx_reservations_user (user_id),
            CONSTRAINT fk_reservations_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
    }

    for _, stmt := range stmts {
        if _, err := db.ExecContext(ctx, stmt); err != nil {
            return err
        }
    }
    return nil
}
