package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/praxpk/prompt-visualizer/internal/provider"
)

// ─── Stubs ────────────────────────────────────────────────────────────────────

type stubGenerator struct {
	name      string
	available bool
	sql       string
	err       error
	calls     int
}

func (s *stubGenerator) Name() string    { return s.name }
func (s *stubGenerator) Available() bool { return s.available }

func (s *stubGenerator) Generate(ctx context.Context, p provider.Prompt) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.sql, nil
}

type stubValidator struct {
	reject map[string]bool
}

func (v *stubValidator) Validate(sql string) error {
	if v.reject[sql] {
		return errors.New("rejected")
	}
	return nil
}

func failure(name string, kind provider.FailureKind) error {
	return &provider.Error{Provider: name, Kind: kind, Err: errors.New("boom")}
}

// ─── Chain ────────────────────────────────────────────────────────────────────

func TestChainFirstProviderWins(t *testing.T) {
	a := &stubGenerator{name: "openai", available: true, sql: "SELECT 1"}
	b := &stubGenerator{name: "anthropic", available: true, sql: "SELECT 2"}
	c := provider.NewChain(&stubValidator{}, a, b)

	q, err := c.Resolve(context.Background(), provider.Prompt{Question: "q"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if q.Source != "openai" || q.SQL != "SELECT 1" {
		t.Errorf("got %+v, want openai/SELECT 1", q)
	}
	if b.calls != 0 {
		t.Errorf("second provider should not be attempted, got %d calls", b.calls)
	}
}

func TestChainSkipsUnconfiguredWithoutAttempt(t *testing.T) {
	a := &stubGenerator{name: "openai", available: false, sql: "SELECT 1"}
	b := &stubGenerator{name: "anthropic", available: true, sql: "SELECT 2"}
	c := provider.NewChain(&stubValidator{}, a, b)

	q, err := c.Resolve(context.Background(), provider.Prompt{Question: "q"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if a.calls != 0 {
		t.Errorf("unconfigured provider must never be invoked, got %d calls", a.calls)
	}
	if q.Source != "anthropic" {
		t.Errorf("source = %q, want anthropic", q.Source)
	}
}

func TestChainFallsThroughFailureKinds(t *testing.T) {
	for _, kind := range []provider.FailureKind{provider.Unavailable, provider.Timeout, provider.Generation} {
		a := &stubGenerator{name: "openai", available: true, err: failure("openai", kind)}
		b := &stubGenerator{name: "ollama", available: true, sql: "SELECT 2"}
		c := provider.NewChain(&stubValidator{}, a, b)

		q, err := c.Resolve(context.Background(), provider.Prompt{Question: "q"})
		if err != nil {
			t.Fatalf("kind %s: Resolve error: %v", kind, err)
		}
		if q.Source != "ollama" {
			t.Errorf("kind %s: source = %q, want ollama", kind, q.Source)
		}
	}
}

func TestChainValidationFailureAdvances(t *testing.T) {
	a := &stubGenerator{name: "openai", available: true, sql: "DROP TABLE data"}
	b := &stubGenerator{name: "anthropic", available: true, sql: "SELECT 2"}
	val := &stubValidator{reject: map[string]bool{"DROP TABLE data": true}}
	c := provider.NewChain(val, a, b)

	q, err := c.Resolve(context.Background(), provider.Prompt{Question: "q"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if q.Source != "anthropic" {
		t.Errorf("source = %q, want anthropic after validation rejection", q.Source)
	}
}

func TestChainAllFail(t *testing.T) {
	a := &stubGenerator{name: "openai", available: true, err: failure("openai", provider.Timeout)}
	b := &stubGenerator{name: "anthropic", available: false}
	c := &stubGenerator{name: "ollama", available: true, err: failure("ollama", provider.Unavailable)}
	ch := provider.NewChain(&stubValidator{}, a, b, c)

	_, err := ch.Resolve(context.Background(), provider.Prompt{Question: "q"})
	if !errors.Is(err, provider.ErrAllProvidersFailed) {
		t.Fatalf("err = %v, want ErrAllProvidersFailed", err)
	}
	if b.calls != 0 {
		t.Errorf("unconfigured provider invoked %d times", b.calls)
	}
}

func TestChainInsufficientDataTerminates(t *testing.T) {
	a := &stubGenerator{name: "openai", available: true, err: provider.ErrInsufficientData}
	b := &stubGenerator{name: "anthropic", available: true, sql: "SELECT 2"}
	c := provider.NewChain(&stubValidator{}, a, b)

	_, err := c.Resolve(context.Background(), provider.Prompt{Question: "q"})
	if !errors.Is(err, provider.ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
	if b.calls != 0 {
		t.Errorf("chain must stop after a provider declares insufficient data, got %d calls", b.calls)
	}
}
