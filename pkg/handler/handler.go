package handler

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/harunnryd/clickcall/pkg/configutil"
	"github.com/harunnryd/clickcall/pkg/dialers"
	"github.com/harunnryd/clickcall/pkg/errorsx"
	"github.com/harunnryd/clickcall/pkg/number"
	"github.com/harunnryd/clickcall/pkg/settings"
)

// DialerFactory builds a provider dialer around an immutable settings
// snapshot, once per invocation.
type DialerFactory func(st settings.Settings) (dialers.Dialer, error)

// Handler orchestrates one scheme invocation:
// normalize → load settings → build → dispatch → done.
// All collaborators are injected; the handler holds no mutable state across
// invocations, so concurrent invocations never race.
type Handler struct {
	store     settings.Loader
	factory   DialerFactory
	notifier  Notifier
	log       *slog.Logger
	listeners []StateListener
}

// New creates a scheme handler. A nil notifier disables user feedback
// (tests); a nil logger falls back to slog.Default.
func New(store settings.Loader, factory DialerFactory, notifier Notifier, log *slog.Logger, listeners ...StateListener) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		store:     store,
		factory:   factory,
		notifier:  notifier,
		log:       log,
		listeners: listeners,
	}
}

// Handle processes one OS-delivered link argument to a terminal Result.
// Local failures (invalid number, missing or incomplete settings) terminate
// before any network I/O; the dispatch outcome is otherwise always one of the
// three classified variants. Each invocation is independent and idempotent.
func (h *Handler) Handle(ctx context.Context, rawArgument string) Result {
	attemptID := uuid.NewString()
	log := h.log.With(slog.String("attempt_id", attemptID))
	sm := newStateMachine(append([]StateListener{&transitionLogger{log: log}}, h.listeners...)...)

	result := Result{AttemptID: attemptID}

	_ = sm.Transition(StateNormalizing, "link received")
	normalized, err := number.Normalize(rawArgument)
	if err != nil {
		return h.done(sm, log, result, err)
	}
	result.Number = normalized

	_ = sm.Transition(StateLoadingSettings, "number normalized")
	st, err := h.store.Load()
	if err != nil {
		return h.done(sm, log, result, err)
	}

	_ = sm.Transition(StateBuilding, "settings loaded")
	if err := validateSettings(st); err != nil {
		return h.done(sm, log, result, err)
	}
	dialer, err := h.factory(st)
	if err != nil {
		return h.done(sm, log, result, err)
	}

	_ = sm.Transition(StateDispatching, "request built")
	outcome, err := dialer.Dial(ctx, normalized)
	if err != nil {
		return h.done(sm, log, result, err)
	}
	result.Outcome = outcome
	return h.done(sm, log, result, nil)
}

func (h *Handler) done(sm *stateMachine, log *slog.Logger, result Result, err error) Result {
	result.Err = err
	_ = sm.Transition(StateDone, result.Status())
	if err != nil {
		log.Warn("invocation failed",
			slog.String("reason", string(errorsx.Reason(err))),
			slog.String("error", err.Error()),
		)
	} else {
		log.Info("invocation done",
			slog.String("status", result.Status()),
			slog.String("number", result.Number),
		)
	}
	if h.notifier != nil {
		h.notifier.ReportOutcome(result)
	}
	return result
}

// validateSettings enforces non-emptiness of the required fields before any
// network operation. The store itself does not validate.
func validateSettings(st settings.Settings) error {
	for _, field := range []struct {
		value string
		name  string
	}{
		{st.Domain, "domain"},
		{st.Extension, "extension"},
		{st.Key, "key"},
	} {
		if err := configutil.RequireString(field.value, field.name); err != nil {
			return errorsx.Wrap(err, errorsx.ReasonIncompleteSettings)
		}
	}
	return nil
}

// transitionLogger traces pipeline phases for debugging.
type transitionLogger struct {
	log *slog.Logger
}

func (l *transitionLogger) OnStateChange(event StateChange) {
	l.log.Debug("pipeline transition",
		slog.String("from", event.FromState.String()),
		slog.String("to", event.ToState.String()),
		slog.String("reason", event.Reason),
	)
}
