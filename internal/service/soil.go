package service

import (
	"slices"

	"github.com/gramsathi/gramsathi-api/internal/model"
	"github.com/gramsathi/gramsathi-api/internal/repository"
)

// SoilAdvisor turns a soil label into crop and fertilizer advice.
type SoilAdvisor struct {
	Soils *repository.SoilRepo
}

func NewSoilAdvisor(soils *repository.SoilRepo) *SoilAdvisor {
	return &SoilAdvisor{Soils: soils}
}

// Analyze returns the report for label or repository.ErrSoilTypeUnknown.
func (a *SoilAdvisor) Analyze(label string) (model.SoilReport, error) {
	soil, crops, err := a.Soils.Lookup(label)
	if err != nil {
		return model.SoilReport{}, err
	}
	return model.SoilReport{
		SoilType:                  soil.ID,
		SoilDescription:           soil.Description,
		Characteristics:           slices.Clone(soil.Characteristics),
		CropRecommendations:       slices.Clone(crops),
		FertilizerRecommendations: fertilizersFor(soil.ID),
		GeneralTips:               slices.Clone(generalSoilTips),
	}, nil
}

// ImageAnalysis is a placeholder for model-based soil detection; it always
// reports healthy loamy soil.
func (a *SoilAdvisor) ImageAnalysis() model.SoilImageAnalysis {
	return model.SoilImageAnalysis{
		DetectedSoilType: "loamy",
		Confidence:       85,
		Analysis: map[string]string{
			"color":           "Dark brown",
			"texture":         "Medium",
			"moisture":        "Moderate",
			"organic_content": "Good",
		},
		Recommendations: []string{
			"Soil appears healthy for most crops",
			"Consider adding organic matter",
			"Test pH level for optimal results",
		},
	}
}

// fertilizersFor picks one of three canned sets: sandy, clay, or the
// balanced default for every other soil.
func fertilizersFor(soilType string) []model.FertilizerRecommendation {
	switch soilType {
	case "sandy":
		return []model.FertilizerRecommendation{
			{FertilizerType: "Organic Compost", Quantity: "5-10 tons per hectare", ApplicationMethod: "Mix with soil before planting", Timing: "Before sowing"},
			{FertilizerType: "NPK (10:26:26)", Quantity: "200-300 kg per hectare", ApplicationMethod: "Broadcast and incorporate", Timing: "At sowing"},
		}
	case "clay":
		return []model.FertilizerRecommendation{
			{FertilizerType: "Organic Matter", Quantity: "3-5 tons per hectare", ApplicationMethod: "Mix with soil", Timing: "Before monsoon"},
			{FertilizerType: "Gypsum", Quantity: "500 kg per hectare", ApplicationMethod: "Broadcast", Timing: "Before plowing"},
		}
	default:
		return []model.FertilizerRecommendation{
			{FertilizerType: "Balanced NPK", Quantity: "As per soil test", ApplicationMethod: "Based on crop requirement", Timing: "Split application"},
		}
	}
}

var generalSoilTips = []string{
	"Get soil tested every 2-3 years",
	"Maintain soil organic matter",
	"Practice crop rotation",
	"Use appropriate irrigation methods",
}
