package inference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens("   "))
	assert.Equal(t, 6, EstimateTokens("5 years Python\n[SEP]  Senior Backend"))
}

func TestTruncateTokens(t *testing.T) {
	text := strings.Repeat("word ", 600)

	out, truncated := TruncateTokens(text, 512)
	assert.True(t, truncated)
	assert.Equal(t, 512, EstimateTokens(out))

	out, truncated = TruncateTokens("short input", 512)
	assert.False(t, truncated)
	assert.Equal(t, "short input", out)

	out, truncated = TruncateTokens(text, 0)
	assert.False(t, truncated)
	assert.Equal(t, text, out)
}
