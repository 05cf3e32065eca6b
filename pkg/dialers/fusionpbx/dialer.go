package fusionpbx

import (
	"context"
	"log/slog"
	"time"

	"github.com/harunnryd/clickcall/pkg/dialers"
	"github.com/harunnryd/clickcall/pkg/redact"
	"github.com/harunnryd/clickcall/pkg/settings"
)

// Config carries the deployment-specific API contract. Path and params
// default to the stock FusionPBX click_to_call endpoint; deployments with a
// customized PBX override them instead of patching code.
type Config struct {
	APIPath   string  `mapstructure:"api_path"`
	Params    []Param `mapstructure:"params"`
	TimeoutMS int     `mapstructure:"timeout_ms"`
}

// Dialer originates calls through the FusionPBX HTTP API.
type Dialer struct {
	st         settings.Settings
	builder    *Builder
	dispatcher *Dispatcher
	log        *slog.Logger
}

// New creates a FusionPBX dialer bound to an immutable settings snapshot.
func New(st settings.Settings, cfg Config, log *slog.Logger) *Dialer {
	if log == nil {
		log = slog.Default()
	}
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	return &Dialer{
		st:         st,
		builder:    NewBuilder(RequestTemplate{Path: cfg.APIPath, Params: cfg.Params}),
		dispatcher: NewDispatcher(timeout),
		log:        log,
	}
}

func (d *Dialer) Name() string { return "fusionpbx" }

// Dial builds and sends one origination request. Build failures are local
// errors returned before any network I/O; everything past that point is a
// classified Outcome.
func (d *Dialer) Dial(ctx context.Context, normalizedNumber string) (dialers.Outcome, error) {
	req, err := d.builder.Build(d.st, normalizedNumber)
	if err != nil {
		return dialers.Outcome{}, err
	}
	d.log.Debug("dispatching origination request",
		slog.String("url", redact.URL(req.URL.String())),
		slog.String("number", normalizedNumber),
	)
	outcome := d.dispatcher.Dispatch(ctx, req)
	d.log.Info("dial attempt classified",
		slog.String("status", string(outcome.Status)),
		slog.Int("code", outcome.Code),
	)
	return outcome, nil
}

var _ dialers.Dialer = (*Dialer)(nil)
