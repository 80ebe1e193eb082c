package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/recruiter-api/internal/apperror"
	"alfredoptarigan/recruiter-api/internal/models"
)

// NewErrorHandler maps every error returned by a handler or middleware to an
// ErrorResponse.
func NewErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr, ok := apperror.As(err)
		if !ok {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				appErr = &apperror.AppError{
					Kind:    apperror.KindForStatus(fiberErr.Code),
					Code:    fiberErr.Code,
					Message: fiberErr.Message,
				}
			} else {
				appErr = apperror.NewInternalError(err)
			}
		}

		// Errors raised by fasthttp before routing (body limit) skip the
		// requestid middleware.
		requestID := c.GetRespHeader(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
			c.Set(fiber.HeaderXRequestID, requestID)
		}
		if appErr.Code >= fiber.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("request_id", requestID),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("kind", string(appErr.Kind)),
				zap.Error(err),
			)
		}

		return c.Status(appErr.Code).JSON(models.ErrorResponse{
			Error:     string(appErr.Kind),
			Detail:    appErr.Describe(),
			Code:      appErr.Code,
			RequestID: requestID,
		})
	}
}
