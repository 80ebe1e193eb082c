package inference

import (
	"errors"
	"fmt"
)

// ErrModelNotLoaded is returned by Model.Handle for a model in the failed state.
var ErrModelNotLoaded = errors.New("model is not loaded")

type State string

const (
	StateLoaded State = "loaded"
	StateFailed State = "failed"
)

// Model is a load-once slot: either loaded with a handle, or failed with the
// reason. It is never mutated after startup.
type Model[H any] struct {
	Name     string
	Path     string
	Backend  string
	Artifact *Artifact

	handle H
	reason error
	state  State
}

func Loaded[H any](name, path, backend string, artifact *Artifact, handle H) *Model[H] {
	return &Model[H]{
		Name:     name,
		Path:     path,
		Backend:  backend,
		Artifact: artifact,
		handle:   handle,
		state:    StateLoaded,
	}
}

func Failed[H any](name, path, backend string, reason error) *Model[H] {
	if reason == nil {
		reason = ErrModelNotLoaded
	}
	return &Model[H]{
		Name:    name,
		Path:    path,
		Backend: backend,
		reason:  reason,
		state:   StateFailed,
	}
}

func (m *Model[H]) State() State {
	if m == nil {
		return StateFailed
	}
	return m.state
}

func (m *Model[H]) Reason() error {
	if m == nil {
		return ErrModelNotLoaded
	}
	return m.reason
}

// Handle returns the loaded handle or an error wrapping ErrModelNotLoaded.
func (m *Model[H]) Handle() (H, error) {
	var zero H
	if m == nil {
		return zero, ErrModelNotLoaded
	}
	if m.state != StateLoaded {
		return zero, fmt.Errorf("%s: %w: %v", m.Name, ErrModelNotLoaded, m.reason)
	}
	return m.handle, nil
}
