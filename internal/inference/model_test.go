package inference

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct{ Generator }

func TestLoadedModel(t *testing.T) {
	artifact := &Artifact{ModelType: "t5"}
	m := Loaded[Generator](RecommenderName, "./job_recommender", "http", artifact, stubGenerator{})

	assert.Equal(t, StateLoaded, m.State())
	assert.NoError(t, m.Reason())

	handle, err := m.Handle()
	require.NoError(t, err)
	assert.Equal(t, stubGenerator{}, handle)
}

func TestFailedModel(t *testing.T) {
	reason := errors.New("config.json missing")
	m := Failed[Generator](RecommenderName, "./job_recommender", "http", reason)

	assert.Equal(t, StateFailed, m.State())
	assert.Equal(t, reason, m.Reason())

	handle, err := m.Handle()
	assert.Nil(t, handle)
	assert.ErrorIs(t, err, ErrModelNotLoaded)
	assert.ErrorContains(t, err, "config.json missing")
}

func TestNilModelIsFailed(t *testing.T) {
	var m *Model[Classifier]
	assert.Equal(t, StateFailed, m.State())
	_, err := m.Handle()
	assert.ErrorIs(t, err, ErrModelNotLoaded)
}
