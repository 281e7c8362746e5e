package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root is the landing response used by uptime checks on "/".
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "GramSathi API is running!"})
}

// Health reports that the process is serving.  It does not probe redis or
// the broker, both of which are optional.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "healthy", "message": "GramSathi API is operational"})
}

// Healthz is the plain-text probe for load balancers.
func Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
