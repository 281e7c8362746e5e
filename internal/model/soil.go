package model

// SoilType describes one entry of the static soil table.  SuitableCrops is a
// coarse list; CropRecommendation carries the detailed advice.
type SoilType struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Characteristics []string `json:"-"`
	SuitableCrops   []string `json:"-"`
}

type CropRecommendation struct {
	CropName         string   `json:"crop_name"`
	SuitabilityScore int      `json:"suitability_score"`
	Season           string   `json:"season"`
	ExpectedYield    string   `json:"expected_yield"`
	CareInstructions []string `json:"care_instructions"`
}

type FertilizerRecommendation struct {
	FertilizerType    string `json:"fertilizer_type"`
	Quantity          string `json:"quantity"`
	ApplicationMethod string `json:"application_method"`
	Timing            string `json:"timing"`
}

// SoilReport is the response of a soil analysis.
type SoilReport struct {
	SoilType                  string                     `json:"soil_type"`
	SoilDescription           string                     `json:"soil_description"`
	Characteristics           []string                   `json:"characteristics"`
	CropRecommendations       []CropRecommendation       `json:"crop_recommendations"`
	FertilizerRecommendations []FertilizerRecommendation `json:"fertilizer_recommendations"`
	GeneralTips               []string                   `json:"general_tips"`
}

// CalendarEntry is one month of the crop calendar.
type CalendarEntry struct {
	Month      string   `json:"month"`
	Activities []string `json:"activities"`
	Crops      []string `json:"crops"`
}

// SoilImageAnalysis is the canned result of the image analysis endpoint.
type SoilImageAnalysis struct {
	DetectedSoilType string            `json:"detected_soil_type"`
	Confidence       int               `json:"confidence"`
	Analysis         map[string]string `json:"analysis"`
	Recommendations  []string          `json:"recommendations"`
}
