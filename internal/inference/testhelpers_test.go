package inference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, descriptor string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, artifactDescriptor), []byte(descriptor), 0o644))
	return dir
}

const classifierDescriptor = `{
  "architectures": ["DistilBertForSequenceClassification"],
  "model_type": "distilbert",
  "id2label": {"1": "LABEL_1", "0": "LABEL_0"},
  "max_position_embeddings": 512
}`

const recommenderDescriptor = `{
  "architectures": ["T5ForConditionalGeneration"],
  "model_type": "t5"
}`
