package notify

import (
	"context"
	"log/slog"

	"github.com/harunnryd/clickcall/pkg/handler"
)

// LogNotifier reports outcomes through the structured log. Always wired, so
// no outcome is ever silently swallowed even when desktop notifications are
// unavailable.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ReportOutcome(result handler.Result) {
	attrs := []slog.Attr{
		slog.String("attempt_id", result.AttemptID),
		slog.String("status", result.Status()),
		slog.String("message", result.Message()),
	}
	if result.Number != "" {
		attrs = append(attrs, slog.String("number", result.Number))
	}
	level := slog.LevelInfo
	if !result.OK() {
		level = slog.LevelWarn
	}
	n.log.LogAttrs(context.TODO(), level, "call outcome", attrs...)
}

// MultiNotifier fans an outcome out to every configured surface.
type MultiNotifier struct {
	list []handler.Notifier
}

func NewMultiNotifier(list ...handler.Notifier) *MultiNotifier {
	return &MultiNotifier{list: list}
}

func (m *MultiNotifier) ReportOutcome(result handler.Result) {
	for _, n := range m.list {
		if n != nil {
			n.ReportOutcome(result)
		}
	}
}

var (
	_ handler.Notifier = (*LogNotifier)(nil)
	_ handler.Notifier = (*MultiNotifier)(nil)
)
