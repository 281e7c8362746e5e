package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gramsathi/gramsathi-api/internal/config"
	"github.com/gramsathi/gramsathi-api/internal/handler"
	"github.com/gramsathi/gramsathi-api/internal/middleware"
	"github.com/gramsathi/gramsathi-api/internal/queue"
	"github.com/gramsathi/gramsathi-api/internal/repository"
	"github.com/gramsathi/gramsathi-api/internal/service"
)

// Deps carries everything New wires into the echo instance.  Redis may be
// nil; Events defaults to a no-op publisher; Registry defaults to a fresh
// registry.
type Deps struct {
	Cfg       config.Config
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
	Redis     *redis.Client
	Events    queue.Publisher
	Log       *zap.Logger
	Registry  *prometheus.Registry
}

// New builds the echo instance with the middleware chain and every
// provider mounted under /api.
func New(d Deps) (*echo.Echo, error) {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Events == nil {
		d.Events = queue.NopPublisher{}
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()

	metrics := middleware.NewMetrics(d.Registry)
	e.Use(
		echomw.RequestID(),
		echomw.Recover(),
		middleware.RequestLogger(d.Log),
		metrics.Middleware(),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     d.Cfg.CORSOrigins,
			AllowCredentials: true,
			AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"*"},
		}),
	)

	RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	auth, err := handler.NewAuthHandler(d.Cfg)
	if err != nil {
		return nil, err
	}
	cache := middleware.NewRedisCache(d.Cache, d.Redis, d.Log)
	weather := service.NewWeatherService(d.Cfg.WeatherAPIKey, d.Cfg.WeatherBaseURL, d.Cfg.WeatherTimeout)

	api := e.Group("/api", middleware.NewTokenBucket(d.RateLimit, d.Redis, d.Log))
	RegisterAuth(api, auth, d.Cfg.JWTSecret)
	RegisterWeather(api, handler.NewWeatherHandler(weather, d.Log), cache)
	RegisterSchemes(api, handler.NewSchemeHandler(repository.NewSchemeRepo()), cache)
	RegisterHealthAdvisor(api, handler.NewHealthAdvisorHandler(repository.NewHealthRepo(), d.Events), cache)
	RegisterMarketplace(api, handler.NewMarketplaceHandler(repository.NewProductRepo(), d.Events), cache)
	RegisterSoil(api, handler.NewSoilHandler(repository.NewSoilRepo()), cache)

	if d.Cfg.WeatherAPIKey == "" {
		d.Log.Info("weather running in mock mode (OPENWEATHER_API_KEY unset)")
	}
	return e, nil
}
