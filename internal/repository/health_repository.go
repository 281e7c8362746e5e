package repository

import "github.com/gramsathi/gramsathi-api/internal/model"

// HealthRepo serves the static tips list and emergency numbers.
type HealthRepo struct{}

func NewHealthRepo() *HealthRepo { return &HealthRepo{} }

// Tips returns all tips, or only those of the given category.
func (r *HealthRepo) Tips(category string) []model.HealthTip {
	out := make([]model.HealthTip, 0, len(healthTips))
	for _, t := range healthTips {
		if category == "" || t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// EmergencyContacts returns a fresh copy of the helpline table.
func (r *HealthRepo) EmergencyContacts() map[string]string {
	out := make(map[string]string, len(emergencyContacts))
	for k, v := range emergencyContacts {
		out[k] = v
	}
	return out
}

var healthTips = []model.HealthTip{
	{
		ID:          "fever-care",
		Title:       "Fever Management",
		Description: "Keep hydrated, rest well, use cold compress on forehead. Seek medical help if fever exceeds 102°F or persists for more than 3 days.",
		Category:    "general",
		Urgency:     "medium",
	},
	{
		ID:          "diarrhea-care",
		Title:       "Diarrhea Treatment",
		Description: "Drink ORS solution, avoid dairy and spicy foods. Seek immediate medical attention if blood in stool or severe dehydration.",
		Category:    "digestive",
		Urgency:     "high",
	},
	{
		ID:          "wound-care",
		Title:       "Wound Care",
		Description: "Clean with clean water, apply antiseptic, cover with clean bandage. Change dressing daily and watch for signs of infection.",
		Category:    "injury",
		Urgency:     "medium",
	},
}

var emergencyContacts = map[string]string{
	"ambulance":           "108",
	"police":              "100",
	"fire":                "101",
	"women_helpline":      "1091",
	"child_helpline":      "1098",
	"disaster_management": "108",
	"poison_control":      "1066",
}
