package model

// HealthTip is a static first-aid or wellbeing tip.
type HealthTip struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Urgency     string `json:"urgency"`
}

// Assessment is the canned outcome of a symptom check.
type Assessment struct {
	Condition       string   `json:"condition"`
	Severity        string   `json:"severity"`
	Recommendations []string `json:"recommendations"`
	Emergency       bool     `json:"emergency"`
}

// Booking is the mock telemedicine consultation confirmation.
type Booking struct {
	BookingID        string `json:"booking_id"`
	Status           string `json:"status"`
	PatientName      string `json:"patient_name"`
	ScheduledTime    string `json:"scheduled_time"`
	Doctor           string `json:"doctor"`
	ConsultationLink string `json:"consultation_link"`
	Message          string `json:"message"`
}
