package clickcall

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/harunnryd/clickcall/pkg/configutil"
	"github.com/harunnryd/clickcall/pkg/dialers"
	"github.com/harunnryd/clickcall/pkg/dialers/fusionpbx"
	"github.com/harunnryd/clickcall/pkg/dialers/mock"
	"github.com/harunnryd/clickcall/pkg/dialers/twilio"
	"github.com/harunnryd/clickcall/pkg/settings"
)

// DialerFactory builds a provider dialer from an immutable settings snapshot
// and the provider's free-form settings map.
type DialerFactory func(st settings.Settings, raw map[string]any, log *slog.Logger) (dialers.Dialer, error)

// DialerRegistry maps provider names to factories.
type DialerRegistry struct {
	factories map[string]DialerFactory
}

func NewDialerRegistry() *DialerRegistry {
	return &DialerRegistry{factories: make(map[string]DialerFactory)}
}

func (r *DialerRegistry) Register(name string, factory DialerFactory) {
	r.factories[strings.ToLower(strings.TrimSpace(name))] = factory
}

func (r *DialerRegistry) Build(provider string, st settings.Settings, raw map[string]any, log *slog.Logger) (dialers.Dialer, error) {
	fn := r.factories[strings.ToLower(strings.TrimSpace(provider))]
	if fn == nil {
		return nil, fmt.Errorf("dialer provider not registered: %s", provider)
	}
	return fn(st, raw, log)
}

// DefaultRegistry registers the built-in providers.
func DefaultRegistry() *DialerRegistry {
	r := NewDialerRegistry()
	r.Register("fusionpbx", func(st settings.Settings, raw map[string]any, log *slog.Logger) (dialers.Dialer, error) {
		var cfg fusionpbx.Config
		if err := configutil.DecodeSettings(raw, &cfg); err != nil {
			return nil, fmt.Errorf("decode fusionpbx settings: %w", err)
		}
		return fusionpbx.New(st, cfg, log), nil
	})
	r.Register("twilio", func(st settings.Settings, raw map[string]any, log *slog.Logger) (dialers.Dialer, error) {
		return twilio.New(st, raw, log)
	})
	r.Register("mock", func(st settings.Settings, raw map[string]any, log *slog.Logger) (dialers.Dialer, error) {
		return mock.New(), nil
	})
	return r
}
