package router

import (
	"github.com/labstack/echo/v4"

	"github.com/gramsathi/gramsathi-api/internal/handler"
)

// RegisterHealthAdvisor registers /api/health.  Only the static tables are
// cached.
func RegisterHealthAdvisor(api *echo.Group, h *handler.HealthAdvisorHandler, cache echo.MiddlewareFunc) {
	g := api.Group("/health")
	g.POST("/symptom-check", h.SymptomCheck)
	g.GET("/tips", h.Tips, cache)
	g.GET("/emergency-contacts", h.EmergencyContacts, cache)
	g.POST("/book-consultation", h.BookConsultation)
}

// RegisterMarketplace registers /api/marketplace.  Product reads are not
// cached because listings change at runtime.
func RegisterMarketplace(api *echo.Group, m *handler.MarketplaceHandler, cache echo.MiddlewareFunc) {
	g := api.Group("/marketplace")
	g.GET("/products", m.ListProducts)
	g.POST("/products", m.CreateProduct)
	g.GET("/products/:id", m.GetProduct)
	g.POST("/products/:id/upload-image", m.UploadImage)
	g.GET("/categories", m.Categories, cache)
	g.POST("/checkout", m.Checkout)
}

// RegisterSoil registers /api/soil.
func RegisterSoil(api *echo.Group, s *handler.SoilHandler, cache echo.MiddlewareFunc) {
	g := api.Group("/soil")
	g.POST("/analyze", s.Analyze)
	g.POST("/image-analysis", s.ImageAnalysis)
	g.GET("/soil-types", s.SoilTypes, cache)
	g.GET("/crop-calendar/:district", s.CropCalendar, cache)
}
