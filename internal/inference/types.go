// Package inference loads the on-disk models and binds them to the backend
// that runs them.
package inference

import (
	"context"
	"errors"
)

// ErrEmptyResult is returned when a backend answers without any result element.
var ErrEmptyResult = errors.New("model returned no results")

// Classification is one label/score pair from a text-classification model.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Generation is one output sequence from a text2text-generation model.
type Generation struct {
	GeneratedText string `json:"generated_text"`
}

type ClassifyOptions struct {
	Truncation bool
	MaxLength  int
}

type GenerateOptions struct {
	MaxNewTokens       int
	NumReturnSequences int
}

type Classifier interface {
	Classify(ctx context.Context, input string, opts ClassifyOptions) ([]Classification, error)
}

type Generator interface {
	Generate(ctx context.Context, input string, opts GenerateOptions) ([]Generation, error)
}
