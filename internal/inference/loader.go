package inference

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/recruiter-api/internal/config"
)

const (
	ClassifierName  = "eligibility_classifier"
	RecommenderName = "job_recommender"
)

// Models holds both slots. They are built once by Loader.Load and only read
// afterwards.
type Models struct {
	Classifier  *Model[Classifier]
	Recommender *Model[Generator]
}

func (m *Models) Ready() bool {
	return m.Classifier.State() == StateLoaded && m.Recommender.State() == StateLoaded
}

type Loader struct {
	cfg    *config.Config
	logger *zap.Logger

	newGemini func(ctx context.Context, apiKey, model string) (*GeminiService, error)
	gemini    *GeminiService
}

func NewLoader(cfg *config.Config, logger *zap.Logger) *Loader {
	return &Loader{
		cfg:       cfg,
		logger:    logger,
		newGemini: NewGeminiService,
	}
}

// Load builds both models. Loading is all-or-nothing: if either model fails,
// both end up failed with that reason and the caller keeps serving.
func (l *Loader) Load(ctx context.Context) *Models {
	l.logger.Info("⏳ Loading AI models",
		zap.String("classifier_path", l.cfg.Classifier.Path),
		zap.String("recommender_path", l.cfg.Recommender.Path),
	)

	classifier, err := l.loadClassifier(ctx)
	if err == nil {
		l.logger.Info("✅ Eligibility classifier loaded",
			zap.String("backend", classifier.Backend),
			zap.String("architecture", classifier.Artifact.Architecture()),
		)

		var recommender *Model[Generator]
		recommender, err = l.loadRecommender(ctx)
		if err == nil {
			l.logger.Info("✅ Job recommender loaded",
				zap.String("backend", recommender.Backend),
				zap.String("architecture", recommender.Artifact.Architecture()),
			)
			return &Models{Classifier: classifier, Recommender: recommender}
		}
	}

	l.logger.Error("❌ Could not load models; inference endpoints will reject requests",
		zap.Error(err),
		zap.String("hint", "ensure the eligibility_classifier and job_recommender directories exist and their backends are configured"),
	)

	return &Models{
		Classifier:  Failed[Classifier](ClassifierName, l.cfg.Classifier.Path, l.cfg.Classifier.Backend, err),
		Recommender: Failed[Generator](RecommenderName, l.cfg.Recommender.Path, l.cfg.Recommender.Backend, err),
	}
}

func (l *Loader) loadClassifier(ctx context.Context) (*Model[Classifier], error) {
	mc := l.cfg.Classifier

	artifact, err := ReadArtifact(mc.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ClassifierName, err)
	}

	labels, err := artifact.Labels()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ClassifierName, err)
	}
	if len(labels) != 2 {
		return nil, fmt.Errorf("%s: expected 2 labels, artifact declares %d", ClassifierName, len(labels))
	}

	var handle Classifier
	switch mc.Backend {
	case config.BackendHTTP:
		backend, err := NewHTTPBackend(mc.Endpoint, l.cfg.Inference.APIToken, l.cfg.Inference.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ClassifierName, err)
		}
		handle = backend
	case config.BackendGemini:
		svc, err := l.geminiService(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ClassifierName, err)
		}
		handle = svc.Classifier(labels)
	default:
		return nil, fmt.Errorf("%s: unsupported backend %q", ClassifierName, mc.Backend)
	}

	return Loaded(ClassifierName, mc.Path, mc.Backend, artifact, handle), nil
}

func (l *Loader) loadRecommender(ctx context.Context) (*Model[Generator], error) {
	mc := l.cfg.Recommender

	artifact, err := ReadArtifact(mc.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", RecommenderName, err)
	}

	var handle Generator
	switch mc.Backend {
	case config.BackendHTTP:
		backend, err := NewHTTPBackend(mc.Endpoint, l.cfg.Inference.APIToken, l.cfg.Inference.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", RecommenderName, err)
		}
		handle = backend
	case config.BackendGemini:
		svc, err := l.geminiService(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", RecommenderName, err)
		}
		handle = svc.Generator()
	default:
		return nil, fmt.Errorf("%s: unsupported backend %q", RecommenderName, mc.Backend)
	}

	return Loaded(RecommenderName, mc.Path, mc.Backend, artifact, handle), nil
}

// geminiService shares one client between both models.
func (l *Loader) geminiService(ctx context.Context) (*GeminiService, error) {
	if l.gemini != nil {
		return l.gemini, nil
	}
	if l.cfg.Gemini.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required for the gemini backend")
	}

	svc, err := l.newGemini(ctx, l.cfg.Gemini.APIKey, l.cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}
	l.gemini = svc
	return svc, nil
}
