package handler

import (
    "context"
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "flightinfo-server/internal/model"
    "flightinfo-server/internal/repository"
)

// LocationStore is the subset of the location repository the handler needs.
type LocationStore interface {
    Countries(ctx context.Context) ([]model.Country, error)
    CountryByID(ctx context.Context, id uint64) (model.Country, error)
    CitiesByCountry(ctx context.Context, countryID uint64) ([]model.City, error)
    AirportsByCity(ctx context.Context, cityID uint64) ([]model.Airport, error)
}

// LocationHandler serves the country -> city -> airport cascade behind
// the search form. All routes are unauthenticated reads.
type LocationHandler struct {
    Locations LocationStore
}

// NewLocationHandler constructs a LocationHandler.
func NewLocationHandler(locations LocationStore) *LocationHandler {
    if locations == nil {
        panic("nil store passed to NewLocationHandler")
    }
    return &LocationHandler{Locations: locations}
}

// Countries handles GET /api/Country.
func (h *LocationHandler) Countries(c echo.Context) error {
    countries, err := h.Locations.Countries(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, countries)
}

// Country handles GET /api/Country/:id.
func (h *LocationHandler) Country(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid country id"})
    }
    country, err := h.Locations.CountryByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrCountryNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "country not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, country)
}

// Cities handles GET /api/Country/:id/cities.
func (h *LocationHandler) Cities(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid country id"})
    }
    cities, err := h.Locations.CitiesByCountry(c.Request().Context(), id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, cities)
}

// Airports handles GET /api/Country/cities/:id/airports.
func (h *LocationHandler) Airports(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid city id"})
    }
    airports, err := h.Locations.AirportsByCity(c.Request().Context(), id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, airports)
}
