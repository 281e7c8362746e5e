package model

// Scheme is a government welfare scheme in the static directory.
type Scheme struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Eligibility        string   `json:"eligibility"`
	Benefits           string   `json:"benefits"`
	ApplicationProcess string   `json:"application_process"`
	DocumentsRequired  []string `json:"documents_required"`
	Category           string   `json:"category"`
}

// ChatReply is the keyword assistant's answer together with the scheme
// identifiers it suggests.  SuggestedSchemes is never nil.
type ChatReply struct {
	Response         string   `json:"response"`
	SuggestedSchemes []string `json:"suggested_schemes"`
}
