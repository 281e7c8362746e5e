package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gramsathi/gramsathi-api/internal/model"
	"github.com/gramsathi/gramsathi-api/internal/service"
)

// WeatherSource is what the weather endpoints need from the weather client.
type WeatherSource interface {
	Current(ctx context.Context, location string) (model.Weather, error)
	Forecast(ctx context.Context, location string, days int) (model.Forecast, error)
	Cities() []string
}

type WeatherHandler struct {
	Weather WeatherSource
	Log     *zap.Logger
}

func NewWeatherHandler(w WeatherSource, log *zap.Logger) *WeatherHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WeatherHandler{Weather: w, Log: log}
}

func (h *WeatherHandler) Current(c echo.Context) error {
	loc := c.Param("location")
	w, err := h.Weather.Current(c.Request().Context(), loc)
	if err != nil {
		return h.unavailable(c, loc, err)
	}
	return c.JSON(http.StatusOK, w)
}

// Forecast serves ?days=N, defaulting to five.  The service caps N.
func (h *WeatherHandler) Forecast(c echo.Context) error {
	days := service.MaxForecastDays
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "days must be a positive integer"})
		}
		days = n
	}
	loc := c.Param("location")
	f, err := h.Weather.Forecast(c.Request().Context(), loc, days)
	if err != nil {
		return h.unavailable(c, loc, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *WeatherHandler) Cities(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"cities": h.Weather.Cities()})
}

func (h *WeatherHandler) unavailable(c echo.Context, loc string, err error) error {
	h.Log.Warn("weather lookup failed", zap.String("location", loc), zap.Error(err))
	if errors.Is(err, service.ErrWeatherUnavailable) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "weather service unavailable"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "weather lookup failed"})
}
