package router // package router defines how HTTP routes are registered for the service

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/adcs-example/internal/handler" // import the handlers behind each route
)

// RegisterRoutes registers every route the service exposes on the provided
// Echo instance: the greeting at "/" and the database connectivity check,
// which runs against the pool held by db.
func RegisterRoutes(e *echo.Echo, db *handler.DBHandler) {
	e.GET("/", handler.Index)
	e.GET("/api/test_db_connection", db.TestDBConnection)
}
