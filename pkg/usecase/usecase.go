package usecase

import (
	"time"

	"github.com/secmon-lab/argos/pkg/domain/model/config"
)

// UseCases bundles the scoring engine operations with their configuration.
// The configuration is immutable after construction.
type UseCases struct {
	cfg   *config.ScoringConfig
	clock func() time.Time
}

type Option func(*UseCases)

// WithClock overrides the time source of the engine. Assessment and
// summary dates are derived from it, so tests inject a fixed clock here.
func WithClock(clock func() time.Time) Option {
	return func(uc *UseCases) {
		uc.clock = clock
	}
}

func New(cfg *config.ScoringConfig, opts ...Option) *UseCases {
	uc := &UseCases{
		cfg:   cfg,
		clock: time.Now,
	}
	if uc.cfg == nil {
		uc.cfg = config.Default()
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
