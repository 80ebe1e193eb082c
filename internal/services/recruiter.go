package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/recruiter-api/internal/apperror"
	"alfredoptarigan/recruiter-api/internal/inference"
	"alfredoptarigan/recruiter-api/internal/logger"
	"alfredoptarigan/recruiter-api/internal/metrics"
)

const (
	// SeparatorToken joins resume and job description the way the
	// classifier was trained.
	SeparatorToken = " [SEP] "
	// RecommendPrefix is the task prefix the recommender was trained with.
	RecommendPrefix = "recommend job title: "

	MaxInputLength     = 512
	MaxNewTokens       = 30
	NumReturnSequences = 1

	classifierUnavailable  = "Model 1 is not loaded."
	recommenderUnavailable = "Model 2 is not loaded."
)

type RecruiterService interface {
	PredictEligibility(ctx context.Context, resumeText, jobDescription string) (*EligibilityResult, error)
	RecommendJob(ctx context.Context, resumeText string) (*RecommendationResult, error)
	Models() *inference.Models
}

type EligibilityResult struct {
	Prediction string
	Confidence float64
	// Truncated reports that the input was estimated to exceed MaxInputLength
	// tokens and was cut by the model pipeline.
	Truncated bool
}

type RecommendationResult struct {
	SuggestedJob string
}

type recruiterService struct {
	models  *inference.Models
	metrics *metrics.Metrics
	logger  *zap.Logger
	timeout time.Duration
}

func NewRecruiterService(
	models *inference.Models,
	m *metrics.Metrics,
	logger *zap.Logger,
	timeout time.Duration,
) RecruiterService {
	m.SetModelLoaded(inference.ClassifierName, models.Classifier.State() == inference.StateLoaded)
	m.SetModelLoaded(inference.RecommenderName, models.Recommender.State() == inference.StateLoaded)

	return &recruiterService{
		models:  models,
		metrics: m,
		logger:  logger,
		timeout: timeout,
	}
}

func (s *recruiterService) Models() *inference.Models {
	return s.models
}

// PredictEligibility implements RecruiterService.
func (s *recruiterService) PredictEligibility(ctx context.Context, resumeText, jobDescription string) (*EligibilityResult, error) {
	classifier, err := s.models.Classifier.Handle()
	if err != nil {
		s.metrics.RecordInference(inference.ClassifierName, metrics.OutcomeUnavailable, 0)
		return nil, apperror.NewModelUnavailableError(classifierUnavailable, err)
	}

	input := resumeText + SeparatorToken + jobDescription
	truncated := inference.EstimateTokens(input) > MaxInputLength
	if truncated {
		s.metrics.RecordTruncation(inference.ClassifierName)
		s.logger.Warn("Eligibility input exceeds model max length, truncating",
			zap.Int("estimated_tokens", inference.EstimateTokens(input)),
			zap.Int("max_length", MaxInputLength),
		)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	results, err := classifier.Classify(ctx, input, inference.ClassifyOptions{
		Truncation: true,
		MaxLength:  MaxInputLength,
	})
	if err == nil && len(results) == 0 {
		err = inference.ErrEmptyResult
	}
	if err == nil {
		err = s.checkClassification(results[0])
	}
	if err != nil {
		return nil, s.inferenceFailure(inference.ClassifierName, start, err)
	}
	s.metrics.RecordInference(inference.ClassifierName, metrics.OutcomeSuccess, time.Since(start))

	s.logger.Debug("Eligibility predicted",
		zap.String("prediction", results[0].Label),
		zap.Float64("confidence", results[0].Score),
		zap.Duration("latency", time.Since(start)),
	)

	return &EligibilityResult{
		Prediction: results[0].Label,
		Confidence: results[0].Score,
		Truncated:  truncated,
	}, nil
}

// RecommendJob implements RecruiterService.
func (s *recruiterService) RecommendJob(ctx context.Context, resumeText string) (*RecommendationResult, error) {
	recommender, err := s.models.Recommender.Handle()
	if err != nil {
		s.metrics.RecordInference(inference.RecommenderName, metrics.OutcomeUnavailable, 0)
		return nil, apperror.NewModelUnavailableError(recommenderUnavailable, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	results, err := recommender.Generate(ctx, RecommendPrefix+resumeText, inference.GenerateOptions{
		MaxNewTokens:       MaxNewTokens,
		NumReturnSequences: NumReturnSequences,
	})
	if err == nil && (len(results) == 0 || results[0].GeneratedText == "") {
		err = inference.ErrEmptyResult
	}
	if err != nil {
		return nil, s.inferenceFailure(inference.RecommenderName, start, err)
	}
	s.metrics.RecordInference(inference.RecommenderName, metrics.OutcomeSuccess, time.Since(start))

	s.logger.Debug("Job recommended",
		zap.String("suggested_job", logger.Truncate(results[0].GeneratedText, 80)),
		zap.Duration("latency", time.Since(start)),
	)

	return &RecommendationResult{SuggestedJob: results[0].GeneratedText}, nil
}

// checkClassification rejects labels the classifier was not trained on and
// scores outside [0,1].
func (s *recruiterService) checkClassification(result inference.Classification) error {
	if math.IsNaN(result.Score) || result.Score < 0 || result.Score > 1 {
		return fmt.Errorf("confidence %v outside [0,1]", result.Score)
	}

	artifact := s.models.Classifier.Artifact
	if artifact == nil {
		return nil
	}
	labels, err := artifact.Labels()
	if err != nil {
		return err
	}
	for _, label := range labels {
		if label == result.Label {
			return nil
		}
	}
	return fmt.Errorf("label %q is not one of %v", result.Label, labels)
}

func (s *recruiterService) inferenceFailure(model string, start time.Time, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		s.metrics.RecordInference(model, metrics.OutcomeTimeout, time.Since(start))
		s.logger.Warn("⚠️ Inference timed out", zap.String("model", model), zap.Error(err))
		return apperror.NewInferenceTimeoutError(model, err)
	}

	s.metrics.RecordInference(model, metrics.OutcomeError, time.Since(start))
	s.logger.Error("❌ Inference failed", zap.String("model", model), zap.Error(err))
	return apperror.NewInferenceError(model, err)
}

func (s *recruiterService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
