package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name     string
		err      *AppError
		kind     Kind
		code     int
		describe string
	}{
		{"validation", NewValidationError("resume_text is required"), KindValidation, http.StatusUnprocessableEntity, "resume_text is required"},
		{"document", NewInvalidDocumentError(cause), KindInvalidDocument, http.StatusUnprocessableEntity, "connection refused"},
		{"too large", NewPayloadTooLargeError(10), KindPayloadTooLarge, http.StatusRequestEntityTooLarge, "Resume file too large. Max size: 10 bytes"},
		{"unavailable", NewModelUnavailableError("Model 1 is not loaded.", cause), KindModelUnavailable, http.StatusInternalServerError, "Model 1 is not loaded."},
		{"inference", NewInferenceError("eligibility_classifier", cause), KindInferenceFailed, http.StatusInternalServerError, "eligibility_classifier: connection refused"},
		{"timeout", NewInferenceTimeoutError("job_recommender", context.DeadlineExceeded), KindInferenceTimeout, http.StatusGatewayTimeout, "job_recommender"},
		{"internal", NewInternalError(cause), KindInternal, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.describe, tt.err.Describe())
		})
	}
}

func TestAsUnwrapsWrappedErrors(t *testing.T) {
	cause := context.DeadlineExceeded
	wrapped := fmt.Errorf("handler: %w", NewInferenceTimeoutError("job_recommender", cause))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindInferenceTimeout, appErr.Kind)
	assert.ErrorIs(t, wrapped, context.DeadlineExceeded)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestKindForStatus(t *testing.T) {
	assert.Equal(t, KindNotFound, KindForStatus(http.StatusNotFound))
	assert.Equal(t, KindNotFound, KindForStatus(http.StatusMethodNotAllowed))
	assert.Equal(t, KindPayloadTooLarge, KindForStatus(http.StatusRequestEntityTooLarge))
	assert.Equal(t, KindInferenceTimeout, KindForStatus(http.StatusRequestTimeout))
	assert.Equal(t, KindValidation, KindForStatus(http.StatusUnprocessableEntity))
	assert.Equal(t, KindInternal, KindForStatus(http.StatusServiceUnavailable))
}
