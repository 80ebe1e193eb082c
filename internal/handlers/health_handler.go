package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/recruiter-api/internal/inference"
	"alfredoptarigan/recruiter-api/internal/models"
	"alfredoptarigan/recruiter-api/internal/services"
)

type HealthHandler struct {
	recruiter services.RecruiterService
}

func NewHealthHandler(recruiter services.RecruiterService) *HealthHandler {
	return &HealthHandler{recruiter: recruiter}
}

// HandleHealth handles GET /. It answers the same regardless of model state.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:  "Online",
		Message: "AI Recruiter API is ready.",
	})
}

// HandleReady handles GET /health/ready
func (h *HealthHandler) HandleReady(c *fiber.Ctx) error {
	loaded := h.recruiter.Models()

	response := models.ReadinessResponse{
		Status: "ready",
		Models: map[string]models.ModelStatus{
			inference.ClassifierName:  modelStatus(loaded.Classifier),
			inference.RecommenderName: modelStatus(loaded.Recommender),
		},
	}

	if !loaded.Ready() {
		response.Status = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(response)
	}
	return c.JSON(response)
}

func modelStatus[H any](m *inference.Model[H]) models.ModelStatus {
	status := models.ModelStatus{State: string(m.State())}
	if m == nil {
		status.Reason = m.Reason().Error()
		return status
	}

	status.Backend = m.Backend
	status.Path = m.Path
	if m.State() != inference.StateLoaded && m.Reason() != nil {
		status.Reason = m.Reason().Error()
	}
	return status
}
