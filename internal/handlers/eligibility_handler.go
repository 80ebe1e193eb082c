package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/recruiter-api/internal/models"
	"alfredoptarigan/recruiter-api/internal/services"
)

const HeaderInputTruncated = "X-Input-Truncated"

type EligibilityHandler struct {
	recruiter services.RecruiterService
}

func NewEligibilityHandler(recruiter services.RecruiterService) *EligibilityHandler {
	return &EligibilityHandler{recruiter: recruiter}
}

// HandlePredict handles POST /predict_eligibility
func (h *EligibilityHandler) HandlePredict(c *fiber.Ctx) error {
	var req models.EligibilityRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	return h.predict(c, *req.ResumeText, *req.JobDescription)
}

func (h *EligibilityHandler) predict(c *fiber.Ctx, resumeText, jobDescription string) error {
	result, err := h.recruiter.PredictEligibility(c.UserContext(), resumeText, jobDescription)
	if err != nil {
		return err
	}

	if result.Truncated {
		c.Set(HeaderInputTruncated, "true")
	}

	return c.JSON(models.PredictionResponse{
		Status:     models.StatusSuccess,
		Prediction: result.Prediction,
		Confidence: result.Confidence,
	})
}
