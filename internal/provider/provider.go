package provider

import (
	"context"
	"errors"
	"fmt"
)

// FailureKind classifies why a single adapter could not produce SQL.
type FailureKind int

const (
	// Unavailable: missing credential, or the backing runtime is unreachable.
	Unavailable FailureKind = iota
	// Timeout: the call exceeded its bounded wait.
	Timeout
	// Generation: the provider answered but no SQL statement was extractable.
	Generation
)

func (k FailureKind) String() string {
	switch k {
	case Unavailable:
		return "unavailable"
	case Timeout:
		return "timeout"
	case Generation:
		return "generation_error"
	default:
		return "unknown"
	}
}

// Error is the tagged per-adapter failure. The chain treats every kind the
// same way: record and move on to the next adapter.
type Error struct {
	Provider string
	Kind     FailureKind
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrInsufficientData is returned when a provider explicitly answers that
// the question cannot be answered from the dataset. It terminates the chain.
var ErrInsufficientData = errors.New("provider declared insufficient data")

// ErrAllProvidersFailed is returned by the chain when every attempted
// adapter failed. It is not a server error; it maps to the terminal
// "insufficient data" answer.
var ErrAllProvidersFailed = errors.New("all providers failed")

// Prompt carries everything an adapter needs for one generation call.
type Prompt struct {
	// System is the schema- and intent-aware instruction block.
	System string
	// Question is the raw user text.
	Question string
}

// Generator is the single capability every SQL-generation backend
// implements. Generate is stateless per call and never retries internally.
type Generator interface {
	Name() string
	// Available reports whether the adapter is configured to participate in
	// the chain. Unconfigured adapters are skipped without being attempted.
	Available() bool
	Generate(ctx context.Context, p Prompt) (string, error)
}
