package dialers

import (
	"context"
)

// Dialer is the provider-agnostic boundary for call origination.
// Dial performs exactly one attempt: network and protocol failures are
// expressed through the Outcome, never retried. An error return is reserved
// for local precondition failures (incomplete settings) detected before any
// network I/O.
type Dialer interface {
	Name() string
	Dial(ctx context.Context, normalizedNumber string) (Outcome, error)
}

// Config selects a provider and carries its free-form settings map,
// decoded per provider via configutil.
type Config struct {
	Provider string         `mapstructure:"provider"`
	Settings map[string]any `mapstructure:"settings"`
}
