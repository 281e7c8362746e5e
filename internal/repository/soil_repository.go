package repository

import (
	"strings"

	"github.com/gramsathi/gramsathi-api/internal/model"
)

// SoilRepo exposes the static soil, crop and calendar tables.  Soil labels
// are matched after trimming and lower-casing.
type SoilRepo struct{}

func NewSoilRepo() *SoilRepo { return &SoilRepo{} }

// NormalizeSoilType case-folds a user supplied soil label.
func NormalizeSoilType(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Lookup returns the soil entry and its crop recommendations.
func (r *SoilRepo) Lookup(label string) (model.SoilType, []model.CropRecommendation, error) {
	key := NormalizeSoilType(label)
	for _, s := range soilTypes {
		if s.ID == key {
			return s, cropRecommendations[key], nil
		}
	}
	return model.SoilType{}, nil, ErrSoilTypeUnknown
}

// Types lists the supported soil types in display order.
func (r *SoilRepo) Types() []model.SoilType {
	out := make([]model.SoilType, len(soilTypes))
	copy(out, soilTypes)
	return out
}

// Calendar returns the static crop calendar.  It is the same for every
// district.
func (r *SoilRepo) Calendar() []model.CalendarEntry {
	out := make([]model.CalendarEntry, len(cropCalendar))
	copy(out, cropCalendar)
	return out
}

var soilTypes = []model.SoilType{
	{
		ID:              "clay",
		Name:            "Clay Soil",
		Description:     "Heavy soil with good water retention but poor drainage",
		Characteristics: []string{"High water retention", "Poor drainage", "Rich in nutrients", "Hard when dry"},
		SuitableCrops:   []string{"rice", "wheat", "sugarcane", "cotton"},
	},
	{
		ID:              "sandy",
		Name:            "Sandy Soil",
		Description:     "Light soil with good drainage but low water retention",
		Characteristics: []string{"Good drainage", "Low water retention", "Easy to work", "Low nutrient retention"},
		SuitableCrops:   []string{"millet", "groundnut", "watermelon", "carrot"},
	},
	{
		ID:              "loamy",
		Name:            "Loamy Soil",
		Description:     "Ideal soil with balanced properties",
		Characteristics: []string{"Balanced drainage", "Good water retention", "Rich in nutrients", "Easy to work"},
		SuitableCrops:   []string{"tomato", "potato", "corn", "beans", "most vegetables"},
	},
	{
		ID:              "black",
		Name:            "Black Soil",
		Description:     "Cotton soil with high clay content",
		Characteristics: []string{"High clay content", "Rich in lime", "Good for cotton", "Swells when wet"},
		SuitableCrops:   []string{"cotton", "soybean", "sorghum", "chickpea"},
	},
}

var cropRecommendations = map[string][]model.CropRecommendation{
	"clay": {
		{
			CropName:         "Rice",
			SuitabilityScore: 95,
			Season:           "Kharif (June-October)",
			ExpectedYield:    "4-6 tons per hectare",
			CareInstructions: []string{
				"Maintain water level 2-5 cm",
				"Apply nitrogen in 3 splits",
				"Control weeds in early stages",
				"Harvest when 80% grains are golden",
			},
		},
		{
			CropName:         "Wheat",
			SuitabilityScore: 85,
			Season:           "Rabi (November-April)",
			ExpectedYield:    "3-5 tons per hectare",
			CareInstructions: []string{
				"Sow in November for best results",
				"Apply phosphorus at sowing",
				"Irrigate at critical stages",
				"Harvest when moisture is 20-25%",
			},
		},
	},
	"sandy": {
		{
			CropName:         "Groundnut",
			SuitabilityScore: 90,
			Season:           "Kharif (June-October)",
			ExpectedYield:    "2-3 tons per hectare",
			CareInstructions: []string{
				"Ensure good drainage",
				"Apply gypsum for pod development",
				"Control leaf spot diseases",
				"Harvest when pods are mature",
			},
		},
	},
	"loamy": {
		{
			CropName:         "Tomato",
			SuitabilityScore: 95,
			Season:           "Year-round with protection",
			ExpectedYield:    "40-60 tons per hectare",
			CareInstructions: []string{
				"Provide support for plants",
				"Regular watering but avoid waterlogging",
				"Apply balanced fertilizer",
				"Control pests and diseases regularly",
			},
		},
	},
	"black": {
		{
			CropName:         "Cotton",
			SuitabilityScore: 95,
			Season:           "Kharif (June-November)",
			ExpectedYield:    "1.5-2.5 tons per hectare",
			CareInstructions: []string{
				"Sow after the first good monsoon rain",
				"Avoid waterlogging during boll formation",
				"Monitor for bollworm regularly",
				"Pick bolls as they open",
			},
		},
		{
			CropName:         "Soybean",
			SuitabilityScore: 85,
			Season:           "Kharif (June-October)",
			ExpectedYield:    "2-3 tons per hectare",
			CareInstructions: []string{
				"Treat seed with rhizobium culture",
				"Keep field weed free for first 45 days",
				"Provide drainage in heavy rain",
				"Harvest when leaves turn yellow",
			},
		},
	},
}

var cropCalendar = []model.CalendarEntry{
	{
		Month:      "June",
		Activities: []string{"Sow Kharif crops", "Prepare fields", "Apply basal fertilizer"},
		Crops:      []string{"Rice", "Cotton", "Sugarcane"},
	},
	{
		Month:      "November",
		Activities: []string{"Sow Rabi crops", "Harvest Kharif crops", "Prepare for winter"},
		Crops:      []string{"Wheat", "Mustard", "Chickpea"},
	},
	{
		Month:      "March",
		Activities: []string{"Harvest Rabi crops", "Prepare for summer crops"},
		Crops:      []string{"Summer vegetables", "Fodder crops"},
	},
}
