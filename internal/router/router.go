package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "flightinfo-server/internal/handler"    // import the handlers that implement business logic
    "flightinfo-server/internal/middleware" // import middleware for JWT authentication and caching
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Map the GET request at path "/healthz" to the Health handler.  This
    // endpoint can be used by load balancers or monitoring systems to verify
    // that the service is up and running.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /api/Auth,
// while protected endpoints sit behind the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    // Group for operations that do not require an existing session
    // (register, login, refresh).  Each of these handlers is responsible
    // for creating accounts or exchanging tokens.
    g := e.Group("/api/Auth")
    // Registration creates the account only; the client logs in afterwards.
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    // Refresh rotates the refresh token and returns a new pair.
    g.POST("/refresh", a.Refresh)
    // refresh-access issues a new access token without rotating the refresh token.
    g.POST("/refresh-access", a.RefreshAccess)
    // Logout does not require JWT authentication: the handler accepts either
    // a Bearer access token (revoke all sessions) or a refresh_token in the
    // body (revoke one session).
    g.POST("/logout", a.Logout)

    // Protected profile endpoint.
    auth := e.Group("/api")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated browse endpoints: the flight
// catalog and the country/city/airport directory.  Responses are static
// between reseeds, so the Redis cache middleware fronts every route here;
// pass nil to run without caching.
func RegisterPublic(e *echo.Echo, f *handler.FlightHandler, l *handler.LocationHandler, cache echo.MiddlewareFunc) {
    g := e.Group("/api")
    if cache != nil {
        g.Use(cache)
    }

    // Flight catalog.
    g.GET("/Flight", f.List)
    g.GET("/Flight/with-prices", f.ListWithPrices)
    g.GET("/Flight/:id", f.Get)
    g.GET("/Flight/:id/prices", f.Prices)

    // Location directory: countries own cities, cities own airports.
    g.GET("/Country", l.Countries)
    g.GET("/Country/:id", l.Country)
    g.GET("/Country/:id/cities", l.Cities)
    g.GET("/Country/cities/:id/airports", l.Airports)
}

// RegisterReservations registers the reservation lifecycle endpoints.  Every
// route requires a valid access token; the handler scopes all reads and
// mutations to the authenticated caller.
func RegisterReservations(e *echo.Echo, r *handler.ReservationHandler, jwtSecret string) {
    g := e.Group("/api/Reservation")
    g.Use(middleware.JWTAuth(jwtSecret))

    g.POST("", r.Create)
    g.GET("", r.List)
    g.GET("/:id", r.Get)
    // DELETE cancels; the row is kept so it can be restored later.
    g.DELETE("/:id", r.Cancel)
    g.PUT("/restore/:id", r.Restore)
}
