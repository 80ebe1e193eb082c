package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/recruiter-api/internal/apperror"
	"alfredoptarigan/recruiter-api/internal/services"
)

// UploadHandler serves the multipart variants of both endpoints: the resume
// arrives as a PDF in the "resume" field and is parsed in memory.
type UploadHandler struct {
	eligibility    *EligibilityHandler
	recommendation *RecommendationHandler
	pdfParser      services.PDFParserService
	maxFileSize    int64
}

func NewUploadHandler(
	eligibility *EligibilityHandler,
	recommendation *RecommendationHandler,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		eligibility:    eligibility,
		recommendation: recommendation,
		pdfParser:      pdfParser,
		maxFileSize:    maxFileSize,
	}
}

// HandlePredictUpload handles POST /predict_eligibility/upload
func (h *UploadHandler) HandlePredictUpload(c *fiber.Ctx) error {
	resumeText, err := h.resumeText(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return apperror.NewValidationError("failed to parse multipart form")
	}
	values, ok := form.Value["job_description"]
	if !ok || len(values) == 0 {
		return apperror.NewValidationError("job_description is required")
	}

	return h.eligibility.predict(c, resumeText, values[0])
}

// HandleRecommendUpload handles POST /recommend_job/upload
func (h *UploadHandler) HandleRecommendUpload(c *fiber.Ctx) error {
	resumeText, err := h.resumeText(c)
	if err != nil {
		return err
	}

	return h.recommendation.recommend(c, resumeText)
}

func (h *UploadHandler) resumeText(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		return "", apperror.NewValidationError("resume file is required")
	}

	if file.Size > h.maxFileSize {
		return "", apperror.NewPayloadTooLargeError(h.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return "", apperror.NewInternalError(err)
	}
	defer src.Close()

	content, err := h.pdfParser.ExtractText(src)
	if err != nil {
		return "", apperror.NewInvalidDocumentError(err)
	}

	return content.Text, nil
}
