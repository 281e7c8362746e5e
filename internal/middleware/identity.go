package middleware

import "github.com/labstack/echo/v4"

// CurrentUserID returns the authenticated subject, or "anon" when the route
// is public or the claim is missing.
func CurrentUserID(c echo.Context) string {
	if s, ok := c.Get(CtxUserID).(string); ok && s != "" {
		return s
	}
	return "anon"
}

// CurrentRole returns the authenticated role or "".
func CurrentRole(c echo.Context) string {
	s, _ := c.Get(CtxRole).(string)
	return s
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc { return next }
