package inference

import "strings"

// EstimateTokens counts whitespace-separated words. Subword tokenizers never
// produce fewer tokens than this, so it is a lower bound of the real count.
func EstimateTokens(text string) int {
	return len(strings.Fields(text))
}

// TruncateTokens keeps the first max whitespace-separated words of text.
func TruncateTokens(text string, max int) (string, bool) {
	if max <= 0 {
		return text, false
	}
	words := strings.Fields(text)
	if len(words) <= max {
		return text, false
	}
	return strings.Join(words[:max], " "), true
}
