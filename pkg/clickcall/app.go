package clickcall

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harunnryd/clickcall/pkg/dialers"
	"github.com/harunnryd/clickcall/pkg/handler"
	"github.com/harunnryd/clickcall/pkg/journal"
	"github.com/harunnryd/clickcall/pkg/logging"
	"github.com/harunnryd/clickcall/pkg/notify"
	"github.com/harunnryd/clickcall/pkg/redact"
	"github.com/harunnryd/clickcall/pkg/settings"
)

// App wires the pipeline for one process: config, settings store, provider
// registry, notifiers, journal and the scheme handler.
type App struct {
	Config  Config
	Log     *slog.Logger
	Store   *settings.Store
	Handler *handler.Handler

	journal *journal.Writer
}

// NewApp builds the application rooted at the given config directory.
func NewApp(dir string) (*App, error) {
	cfg, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}
	log := logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	store := settings.NewStore(dir)
	registry := DefaultRegistry()
	dialerLog := logging.NewComponentLogger(log, "dialer")
	factory := func(st settings.Settings) (dialers.Dialer, error) {
		// The key is a secret from the moment it is loaded.
		redact.RegisterSecret(st.Key)
		return registry.Build(cfg.Dialer.Provider, st, cfg.Dialer.Settings, dialerLog)
	}

	notifiers := []handler.Notifier{
		notify.NewLogNotifier(logging.NewComponentLogger(log, "notify")),
	}
	if cfg.Notify.Desktop {
		notifiers = append(notifiers, notify.NewDesktopNotifier(log))
	}
	app := &App{Config: cfg, Log: log, Store: store}
	if cfg.Journal.Enabled {
		j, err := journal.Open(dir)
		if err != nil {
			return nil, fmt.Errorf("open call journal: %w", err)
		}
		app.journal = j
		notifiers = append(notifiers, j)
	}

	app.Handler = handler.New(
		store,
		factory,
		notify.NewMultiNotifier(notifiers...),
		logging.NewComponentLogger(log, "handler"),
	)
	return app, nil
}

// HandleLink runs one invocation of the pipeline.
func (a *App) HandleLink(ctx context.Context, rawArgument string) handler.Result {
	return a.Handler.Handle(ctx, rawArgument)
}

// Close releases durable resources.
func (a *App) Close() error {
	if a.journal != nil {
		return a.journal.Close()
	}
	return nil
}
