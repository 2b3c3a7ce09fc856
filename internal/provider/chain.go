package provider

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// Validator gates generated SQL before an adapter is allowed to win the chain.
type Validator interface {
	Validate(sql string) error
}

// Query is the winning output of the chain: validated SQL plus the adapter
// that produced it.
type Query struct {
	SQL    string
	Source string
}

// Chain tries adapters strictly in the configured order and returns the
// first one whose SQL both generates and validates. Adapters run
// sequentially on purpose: speculative parallel calls to paid APIs are not
// worth the latency win.
type Chain struct {
	generators []Generator
	validator  Validator
}

func NewChain(validator Validator, generators ...Generator) *Chain {
	return &Chain{generators: generators, validator: validator}
}

// Resolve walks the chain for one question. An unconfigured adapter is
// skipped without counting as a failure. Generation failures and validation
// rejections both advance to the next adapter. A provider declaring
// "insufficient data" terminates the chain immediately with
// ErrInsufficientData; exhausting the chain yields ErrAllProvidersFailed.
func (c *Chain) Resolve(ctx context.Context, p Prompt) (*Query, error) {
	for _, g := range c.generators {
		if !g.Available() {
			log.Debug().Str("provider", g.Name()).Msg("provider not configured, skipping")
			continue
		}

		sql, err := g.Generate(ctx, p)
		if err != nil {
			if errors.Is(err, ErrInsufficientData) {
				log.Info().Str("provider", g.Name()).Msg("provider declared insufficient data")
				return nil, err
			}
			log.Warn().Err(err).Str("provider", g.Name()).Msg("provider failed, trying next")
			continue
		}

		if err := c.validator.Validate(sql); err != nil {
			log.Warn().Err(err).Str("provider", g.Name()).Str("sql", sql).Msg("generated SQL rejected, trying next")
			continue
		}

		log.Info().Str("provider", g.Name()).Msg("provider produced validated SQL")
		return &Query{SQL: sql, Source: g.Name()}, nil
	}

	return nil, ErrAllProvidersFailed
}
