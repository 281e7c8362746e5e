package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gramsathi/gramsathi-api/internal/model"
	"github.com/gramsathi/gramsathi-api/internal/queue"
	"github.com/gramsathi/gramsathi-api/internal/repository"
	"github.com/gramsathi/gramsathi-api/internal/service"
)

// publishTimeout bounds the best-effort event publish done inline with a
// request.
const publishTimeout = 3 * time.Second

const (
	consultationID     = "CONS-2024-001"
	consultationDoctor = "Dr. Rajesh Kumar"
)

type HealthAdvisorHandler struct {
	Health *repository.HealthRepo
	Events queue.Publisher
}

func NewHealthAdvisorHandler(r *repository.HealthRepo, events queue.Publisher) *HealthAdvisorHandler {
	if events == nil {
		events = queue.NopPublisher{}
	}
	return &HealthAdvisorHandler{Health: r, Events: events}
}

type symptomReq struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1"`
	Age      *int     `json:"age"`
	Gender   string   `json:"gender"`
}

type consultationReq struct {
	PatientName   string `json:"patient_name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	PreferredTime string `json:"preferred_time" validate:"required"`
	Symptoms      string `json:"symptoms" validate:"required"`
}

func (h *HealthAdvisorHandler) SymptomCheck(c echo.Context) error {
	var req symptomReq
	if handled, err := bindValid(c, &req); handled {
		return err
	}
	return c.JSON(http.StatusOK, service.AssessSymptoms(req.Symptoms))
}

func (h *HealthAdvisorHandler) Tips(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Health.Tips(c.QueryParam("category")))
}

func (h *HealthAdvisorHandler) EmergencyContacts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Health.EmergencyContacts())
}

// BookConsultation returns the mock confirmation and announces the booking
// on the consultation queue.
func (h *HealthAdvisorHandler) BookConsultation(c echo.Context) error {
	var req consultationReq
	if handled, err := bindValid(c, &req); handled {
		return err
	}
	booking := model.Booking{
		BookingID:        consultationID,
		Status:           "confirmed",
		PatientName:      req.PatientName,
		ScheduledTime:    req.PreferredTime,
		Doctor:           consultationDoctor,
		ConsultationLink: "https://meet.gramsathi.com/consultation/" + consultationID,
		Message:          "Your consultation has been booked. You will receive a call/video link at the scheduled time.",
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), publishTimeout)
	defer cancel()
	_ = h.Events.Publish(ctx, queue.ConsultationBookedQueue, queue.ConsultationBookedEvent{
		BookingID:     booking.BookingID,
		PatientName:   req.PatientName,
		Phone:         req.Phone,
		PreferredTime: req.PreferredTime,
		Doctor:        booking.Doctor,
		BookedAt:      time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, booking)
}
