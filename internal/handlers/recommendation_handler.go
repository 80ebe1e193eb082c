package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/recruiter-api/internal/models"
	"alfredoptarigan/recruiter-api/internal/services"
)

type RecommendationHandler struct {
	recruiter services.RecruiterService
}

func NewRecommendationHandler(recruiter services.RecruiterService) *RecommendationHandler {
	return &RecommendationHandler{recruiter: recruiter}
}

// HandleRecommend handles POST /recommend_job
func (h *RecommendationHandler) HandleRecommend(c *fiber.Ctx) error {
	var req models.RecommendationRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	return h.recommend(c, *req.ResumeText)
}

func (h *RecommendationHandler) recommend(c *fiber.Ctx, resumeText string) error {
	result, err := h.recruiter.RecommendJob(c.UserContext(), resumeText)
	if err != nil {
		return err
	}

	return c.JSON(models.RecommendationResponse{
		Status:       models.StatusSuccess,
		SuggestedJob: result.SuggestedJob,
	})
}
