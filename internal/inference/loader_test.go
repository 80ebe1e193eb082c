package inference

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/recruiter-api/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Inference: config.InferenceConfig{Timeout: time.Second},
		Classifier: config.ModelConfig{
			Path:     writeArtifact(t, classifierDescriptor),
			Backend:  config.BackendHTTP,
			Endpoint: "http://127.0.0.1:8081/eligibility_classifier",
		},
		Recommender: config.ModelConfig{
			Path:     writeArtifact(t, recommenderDescriptor),
			Backend:  config.BackendHTTP,
			Endpoint: "http://127.0.0.1:8081/job_recommender",
		},
		Gemini: config.GeminiConfig{Model: "gemini-test"},
	}
}

func TestLoaderLoadsBothModels(t *testing.T) {
	cfg := testConfig(t)

	models := NewLoader(cfg, zap.NewNop()).Load(context.Background())

	assert.True(t, models.Ready())
	assert.Equal(t, StateLoaded, models.Classifier.State())
	assert.Equal(t, StateLoaded, models.Recommender.State())
	assert.Equal(t, cfg.Classifier.Path, models.Classifier.Path)
	assert.Equal(t, "t5", models.Recommender.Artifact.ModelType)

	clf, err := models.Classifier.Handle()
	require.NoError(t, err)
	assert.IsType(t, &HTTPBackend{}, clf)
}

func TestLoaderFailsBothWhenOneFails(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr string
	}{
		{
			name:    "classifier directory missing",
			mutate:  func(cfg *config.Config) { cfg.Classifier.Path = filepath.Join(t.TempDir(), "eligibility_classifier") },
			wantErr: "eligibility_classifier: model directory",
		},
		{
			name:    "recommender directory missing",
			mutate:  func(cfg *config.Config) { cfg.Recommender.Path = filepath.Join(t.TempDir(), "job_recommender") },
			wantErr: "job_recommender: model directory",
		},
		{
			name:    "classifier with three labels",
			mutate:  func(cfg *config.Config) { cfg.Classifier.Path = writeArtifact(t, `{"id2label":{"0":"a","1":"b","2":"c"}}`) },
			wantErr: "expected 2 labels",
		},
		{
			name:    "missing endpoint",
			mutate:  func(cfg *config.Config) { cfg.Recommender.Endpoint = "" },
			wantErr: "endpoint is required",
		},
		{
			name:    "unknown backend",
			mutate:  func(cfg *config.Config) { cfg.Classifier.Backend = "onnx" },
			wantErr: `unsupported backend "onnx"`,
		},
		{
			name:    "gemini without key",
			mutate:  func(cfg *config.Config) { cfg.Recommender.Backend = config.BackendGemini },
			wantErr: "GEMINI_API_KEY is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			models := NewLoader(cfg, zap.NewNop()).Load(context.Background())

			assert.False(t, models.Ready())
			assert.Equal(t, StateFailed, models.Classifier.State())
			assert.Equal(t, StateFailed, models.Recommender.State())
			assert.ErrorContains(t, models.Classifier.Reason(), tt.wantErr)
			assert.ErrorContains(t, models.Recommender.Reason(), tt.wantErr)

			_, err := models.Classifier.Handle()
			assert.ErrorIs(t, err, ErrModelNotLoaded)
		})
	}
}

func TestLoaderSharesGeminiClient(t *testing.T) {
	cfg := testConfig(t)
	cfg.Classifier.Backend = config.BackendGemini
	cfg.Recommender.Backend = config.BackendGemini
	cfg.Gemini.APIKey = "test-key"

	calls := 0
	loader := NewLoader(cfg, zap.NewNop())
	loader.newGemini = func(ctx context.Context, apiKey, model string) (*GeminiService, error) {
		calls++
		assert.Equal(t, "test-key", apiKey)
		return newGeminiService(&fakeModels{}, model), nil
	}

	models := loader.Load(context.Background())

	require.True(t, models.Ready())
	assert.Equal(t, 1, calls)

	clf, err := models.Classifier.Handle()
	require.NoError(t, err)
	assert.IsType(t, &geminiClassifier{}, clf)
	assert.Equal(t, []string{"LABEL_0", "LABEL_1"}, clf.(*geminiClassifier).labels)
}

func TestLoaderGeminiClientError(t *testing.T) {
	cfg := testConfig(t)
	cfg.Classifier.Backend = config.BackendGemini
	cfg.Gemini.APIKey = "test-key"

	loader := NewLoader(cfg, zap.NewNop())
	loader.newGemini = func(ctx context.Context, apiKey, model string) (*GeminiService, error) {
		return nil, errors.New("dial failed")
	}

	models := loader.Load(context.Background())

	assert.False(t, models.Ready())
	assert.ErrorContains(t, models.Recommender.Reason(), "dial failed")
}
