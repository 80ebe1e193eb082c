package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// HTTPBackend calls a model server that speaks the Hugging Face inference
// wire format: POST {"inputs": ..., "parameters": {...}}.
type HTTPBackend struct {
	endpoint string
	token    string
	timeout  time.Duration
}

type inferenceRequest struct {
	Inputs     string `json:"inputs"`
	Parameters any    `json:"parameters,omitempty"`
}

type classifyParameters struct {
	Truncation bool `json:"truncation"`
	MaxLength  int  `json:"max_length,omitempty"`
}

type generateParameters struct {
	MaxNewTokens       int `json:"max_new_tokens"`
	NumReturnSequences int `json:"num_return_sequences"`
}

type serverError struct {
	Error string `json:"error"`
}

func NewHTTPBackend(endpoint, token string, timeout time.Duration) (*HTTPBackend, error) {
	if endpoint == "" {
		return nil, errors.New("inference endpoint is required for the http backend")
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid inference endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid inference endpoint scheme %q", parsed.Scheme)
	}

	return &HTTPBackend{
		endpoint: endpoint,
		token:    token,
		timeout:  timeout,
	}, nil
}

// Classify implements Classifier.
func (b *HTTPBackend) Classify(ctx context.Context, input string, opts ClassifyOptions) ([]Classification, error) {
	body, err := b.post(ctx, inferenceRequest{
		Inputs:     input,
		Parameters: classifyParameters{Truncation: opts.Truncation, MaxLength: opts.MaxLength},
	})
	if err != nil {
		return nil, err
	}

	// Servers answer [{...}] for a single input, some wrap it once more.
	var results []Classification
	if err := json.Unmarshal(body, &results); err != nil {
		var nested [][]Classification
		if nestedErr := json.Unmarshal(body, &nested); nestedErr != nil {
			return nil, fmt.Errorf("failed to decode classification response: %w", err)
		}
		if len(nested) > 0 {
			results = nested[0]
		}
	}

	if len(results) == 0 {
		return nil, ErrEmptyResult
	}
	return results, nil
}

// Generate implements Generator.
func (b *HTTPBackend) Generate(ctx context.Context, input string, opts GenerateOptions) ([]Generation, error) {
	body, err := b.post(ctx, inferenceRequest{
		Inputs:     input,
		Parameters: generateParameters{MaxNewTokens: opts.MaxNewTokens, NumReturnSequences: opts.NumReturnSequences},
	})
	if err != nil {
		return nil, err
	}

	var results []Generation
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrEmptyResult
	}
	return results, nil
}

func (b *HTTPBackend) post(ctx context.Context, payload inferenceRequest) ([]byte, error) {
	timeout := b.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); timeout <= 0 || remaining < timeout {
			timeout = remaining
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent := fiber.Post(b.endpoint)
	agent.JSON(payload)
	if b.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+b.token)
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	code, body, errs := agent.Bytes()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, fmt.Errorf("model server request: %w: %w", context.DeadlineExceeded, err)
		}
		return nil, fmt.Errorf("model server request failed: %w", err)
	}

	if code >= fiber.StatusBadRequest {
		var serr serverError
		if err := json.Unmarshal(body, &serr); err == nil && serr.Error != "" {
			return nil, fmt.Errorf("model server returned %d: %s", code, serr.Error)
		}
		return nil, fmt.Errorf("model server returned %d", code)
	}

	return body, nil
}
