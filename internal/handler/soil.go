package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gramsathi/gramsathi-api/internal/repository"
	"github.com/gramsathi/gramsathi-api/internal/service"
)

type SoilHandler struct {
	Soils   *repository.SoilRepo
	Advisor *service.SoilAdvisor
}

func NewSoilHandler(r *repository.SoilRepo) *SoilHandler {
	return &SoilHandler{Soils: r, Advisor: service.NewSoilAdvisor(r)}
}

// Nutrient readings are accepted for forward compatibility; the advice
// depends on soil_type alone.
type soilAnalysisReq struct {
	SoilType      string   `json:"soil_type" validate:"required"`
	PHLevel       *float64 `json:"ph_level"`
	Nitrogen      *float64 `json:"nitrogen"`
	Phosphorus    *float64 `json:"phosphorus"`
	Potassium     *float64 `json:"potassium"`
	OrganicMatter *float64 `json:"organic_matter"`
}

func (h *SoilHandler) Analyze(c echo.Context) error {
	var req soilAnalysisReq
	if handled, err := bindValid(c, &req); handled {
		return err
	}
	report, err := h.Advisor.Analyze(req.SoilType)
	if errors.Is(err, repository.ErrSoilTypeUnknown) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "soil type not recognized"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "analysis failed"})
	}
	return c.JSON(http.StatusOK, report)
}

// ImageAnalysis returns the canned result; an uploaded file is optional
// and never read.
func (h *SoilHandler) ImageAnalysis(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Advisor.ImageAnalysis())
}

func (h *SoilHandler) SoilTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"soil_types": h.Soils.Types()})
}

func (h *SoilHandler) CropCalendar(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"district": c.Param("district"),
		"calendar": h.Soils.Calendar(),
	})
}
