package inference

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildClassificationPrompt asks for one of the trained labels for a
// "<resume> [SEP] <job description>" input.
func (pb *PromptBuilder) BuildClassificationPrompt(labels []string, input string) string {
	return fmt.Sprintf(`You are a binary text classifier that decides whether a candidate is eligible for a job.

The input is a resume and a job description separated by the token [SEP].
The first label means NOT eligible, the second label means eligible.

LABELS:
%s

INPUT:
%s

Return ONLY a JSON object in the following format:
{
  "label": "<one of the labels above, copied exactly>",
  "score": <confidence for that label, decimal between 0 and 1>
}`, strings.Join(labels, "\n"), input)
}

// BuildGenerationPrompt passes the recommender input through; the
// "recommend job title: " prefix is already part of it.
func (pb *PromptBuilder) BuildGenerationPrompt(input string) string {
	return fmt.Sprintf(`Complete the task below with a single job title and nothing else.

%s`, input)
}
