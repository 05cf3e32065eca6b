package mock

import (
	"context"
	"sync"

	"github.com/harunnryd/clickcall/pkg/dialers"
)

// Dialer is a scripted in-memory dialer for tests and local integration.
// It records every dialed number and replays a fixed outcome or error.
type Dialer struct {
	Outcome dialers.Outcome
	Err     error

	mu     sync.Mutex
	dialed []string
}

func New() *Dialer {
	return &Dialer{Outcome: dialers.Originated()}
}

func (d *Dialer) Name() string { return "mock" }

func (d *Dialer) Dial(ctx context.Context, normalizedNumber string) (dialers.Outcome, error) {
	_ = ctx
	d.mu.Lock()
	d.dialed = append(d.dialed, normalizedNumber)
	d.mu.Unlock()
	if d.Err != nil {
		return dialers.Outcome{}, d.Err
	}
	return d.Outcome, nil
}

// Dialed exposes recorded numbers for inspection.
func (d *Dialer) Dialed() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.dialed))
	copy(out, d.dialed)
	return out
}

var _ dialers.Dialer = (*Dialer)(nil)
