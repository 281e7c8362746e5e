package router

import (
	"github.com/labstack/echo/v4"

	"github.com/gramsathi/gramsathi-api/internal/handler"
	"github.com/gramsathi/gramsathi-api/internal/middleware"
)

// RegisterRoutes registers the unauthenticated liveness endpoints.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.Health)
	e.GET("/healthz", handler.Healthz)
}

// RegisterAuth registers /api/auth.  Register, login and profile are open;
// /me requires a USER access token.
func RegisterAuth(api *echo.Group, a *handler.AuthHandler, jwtSecret string) {
	g := api.Group("/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.GET("/profile", a.Profile)
	g.GET("/me", a.Me, middleware.JWTAuth(jwtSecret), middleware.RequireRole("USER"))
}

// RegisterWeather registers /api/weather.  cache wraps every route since
// upstream data refreshes at most every few minutes.
func RegisterWeather(api *echo.Group, w *handler.WeatherHandler, cache echo.MiddlewareFunc) {
	g := api.Group("/weather", cache)
	g.GET("/current/:location", w.Current)
	g.GET("/forecast/:location", w.Forecast)
	g.GET("/cities", w.Cities)
}

// RegisterSchemes registers /api/schemes.  The listing answers both with
// and without a trailing slash.
func RegisterSchemes(api *echo.Group, s *handler.SchemeHandler, cache echo.MiddlewareFunc) {
	g := api.Group("/schemes")
	g.GET("", s.List, cache)
	g.GET("/", s.List, cache)
	g.POST("", s.List)
	g.POST("/", s.List)
	g.POST("/search", s.Search)
	g.POST("/chat", s.Chat)
	g.GET("/:id", s.Get, cache)
}
