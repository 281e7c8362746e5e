package repository

import (
	"strings"

	"github.com/gramsathi/gramsathi-api/internal/model"
)

// SchemeRepo serves the static welfare-scheme catalogue.  Records are never
// mutated, so no locking is needed.
type SchemeRepo struct {
	schemes []model.Scheme
}

func NewSchemeRepo() *SchemeRepo { return &SchemeRepo{schemes: seedSchemes} }

// List returns all schemes, or only those whose category equals category
// when it is non-empty.
func (r *SchemeRepo) List(category string) []model.Scheme {
	out := make([]model.Scheme, 0, len(r.schemes))
	for _, s := range r.schemes {
		if category == "" || s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// GetByID returns the scheme with the exact id or ErrSchemeNotFound.
func (r *SchemeRepo) GetByID(id string) (model.Scheme, error) {
	for _, s := range r.schemes {
		if s.ID == id {
			return s, nil
		}
	}
	return model.Scheme{}, ErrSchemeNotFound
}

// Search matches query case-insensitively against name, description and
// category.
func (r *SchemeRepo) Search(query string) []model.Scheme {
	q := strings.ToLower(query)
	out := []model.Scheme{}
	for _, s := range r.schemes {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Description), q) ||
			strings.Contains(strings.ToLower(s.Category), q) {
			out = append(out, s)
		}
	}
	return out
}

var seedSchemes = []model.Scheme{
	{
		ID:                 "pm-kisan",
		Name:               "PM-KISAN Samman Nidhi",
		Description:        "Direct income support to farmers",
		Eligibility:        "Small and marginal farmers with cultivable land",
		Benefits:           "₹6,000 per year in three installments",
		ApplicationProcess: "Apply online through PM-KISAN portal or visit nearest CSC",
		DocumentsRequired:  []string{"Aadhaar Card", "Bank Account Details", "Land Records"},
		Category:           "agriculture",
	},
	{
		ID:                 "ayushman-bharat",
		Name:               "Ayushman Bharat - PMJAY",
		Description:        "Health insurance scheme for poor families",
		Eligibility:        "Families listed in SECC-2011 database",
		Benefits:           "Health cover up to ₹5 lakh per family per year",
		ApplicationProcess: "Visit nearest hospital or health center",
		DocumentsRequired:  []string{"Aadhaar Card", "Ration Card", "SECC-2011 verification"},
		Category:           "health",
	},
	{
		ID:                 "mudra-yojana",
		Name:               "Pradhan Mantri MUDRA Yojana",
		Description:        "Micro-finance scheme for small businesses",
		Eligibility:        "Non-corporate, non-farm small/micro enterprises",
		Benefits:           "Loans up to ₹10 lakh without collateral",
		ApplicationProcess: "Apply through banks, NBFCs, or MFIs",
		DocumentsRequired:  []string{"Business Plan", "Identity Proof", "Address Proof", "Bank Statements"},
		Category:           "business",
	},
}
