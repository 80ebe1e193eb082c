package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// contentGenerator is the part of *genai.Models the backend uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiService runs both pipelines through the Gemini API.
type GeminiService struct {
	models        contentGenerator
	modelName     string
	promptBuilder *PromptBuilder
}

func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newGeminiService(client.Models, model), nil
}

func newGeminiService(models contentGenerator, model string) *GeminiService {
	if model = strings.TrimSpace(model); model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiService{
		models:        models,
		modelName:     model,
		promptBuilder: NewPromptBuilder(),
	}
}

func (g *GeminiService) Classifier(labels []string) Classifier {
	return &geminiClassifier{service: g, labels: labels}
}

func (g *GeminiService) Generator() Generator {
	return &geminiGenerator{service: g}
}

type geminiClassifier struct {
	service *GeminiService
	labels  []string
}

// Classify implements Classifier.
func (c *geminiClassifier) Classify(ctx context.Context, input string, opts ClassifyOptions) ([]Classification, error) {
	if opts.Truncation {
		input, _ = TruncateTokens(input, opts.MaxLength)
	}

	temperature := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  256,
		ResponseMIMEType: "application/json",
		ThinkingConfig:   noThinking(),
	}

	prompt := c.service.promptBuilder.BuildClassificationPrompt(c.labels, input)
	texts, err := c.service.generate(ctx, prompt, config)
	if err != nil {
		return nil, err
	}

	var result Classification
	if err := json.Unmarshal([]byte(extractJSON(texts[0])), &result); err != nil {
		return nil, fmt.Errorf("failed to parse classification response: %w", err)
	}
	return []Classification{result}, nil
}

type geminiGenerator struct {
	service *GeminiService
}

// Generate implements Generator.
func (g *geminiGenerator) Generate(ctx context.Context, input string, opts GenerateOptions) ([]Generation, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(opts.MaxNewTokens),
		ThinkingConfig:  noThinking(),
	}
	if opts.NumReturnSequences > 0 {
		config.CandidateCount = int32(opts.NumReturnSequences)
	}

	texts, err := g.service.generate(ctx, g.service.promptBuilder.BuildGenerationPrompt(input), config)
	if err != nil {
		return nil, err
	}

	generations := make([]Generation, 0, len(texts))
	for _, text := range texts {
		generations = append(generations, Generation{GeneratedText: text})
	}
	return generations, nil
}

// generate returns the text of every candidate that produced any.
func (g *GeminiService) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) ([]string, error) {
	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil {
		return nil, ErrEmptyResult
	}

	var texts []string
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var builder strings.Builder
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			builder.WriteString(part.Text)
		}
		if text := strings.TrimSpace(builder.String()); text != "" {
			texts = append(texts, text)
		}
	}

	if len(texts) == 0 {
		return nil, ErrEmptyResult
	}
	return texts, nil
}

// noThinking keeps the whole output budget for the answer; job titles are
// capped at a few dozen tokens.
func noThinking() *genai.ThinkingConfig {
	budget := int32(0)
	return &genai.ThinkingConfig{ThinkingBudget: &budget}
}

// extractJSON strips markdown fences and anything around the outermost object.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}
	return strings.TrimSpace(text)
}
