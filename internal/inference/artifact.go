package inference

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

const artifactDescriptor = "config.json"

// Artifact is the subset of a model directory's config.json the service needs.
type Artifact struct {
	Dir                   string            `json:"-"`
	Architectures         []string          `json:"architectures"`
	ModelType             string            `json:"model_type"`
	ID2Label              map[string]string `json:"id2label"`
	MaxPositionEmbeddings int               `json:"max_position_embeddings"`
}

func ReadArtifact(dir string) (*Artifact, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("model directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("model path %s is not a directory", dir)
	}

	raw, err := os.ReadFile(filepath.Join(dir, artifactDescriptor))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", artifactDescriptor, err)
	}

	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse %s in %s: %w", artifactDescriptor, dir, err)
	}
	artifact.Dir = dir

	return &artifact, nil
}

// Labels returns the trained labels ordered by class id. Models exported
// without id2label use the transformers defaults LABEL_0 and LABEL_1.
func (a *Artifact) Labels() ([]string, error) {
	if len(a.ID2Label) == 0 {
		return []string{"LABEL_0", "LABEL_1"}, nil
	}

	ids := make([]int, 0, len(a.ID2Label))
	byID := make(map[int]string, len(a.ID2Label))
	for key, label := range a.ID2Label {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid id2label key %q: %w", key, err)
		}
		ids = append(ids, id)
		byID[id] = label
	}
	sort.Ints(ids)

	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, byID[id])
	}
	return labels, nil
}

func (a *Artifact) Architecture() string {
	if len(a.Architectures) == 0 {
		return a.ModelType
	}
	return a.Architectures[0]
}
