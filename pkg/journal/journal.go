package journal

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/harunnryd/clickcall/pkg/handler"
)

// Writer appends one JSONL line per dial attempt. It observes results as a
// notifier so the handler stays unaware of the journal format. The access
// key never appears in an entry.
type Writer struct {
	logger *slog.Logger
	closer io.Closer
}

// New creates a journal writing to w.
func New(w io.Writer) *Writer {
	if w == nil {
		return &Writer{logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	}
	return &Writer{logger: slog.New(slog.NewJSONHandler(w, nil))}
}

// Open creates a journal appending to calls.jsonl inside dir.
func Open(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "calls.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	j := New(f)
	j.closer = f
	return j, nil
}

func (j *Writer) ReportOutcome(result handler.Result) {
	attrs := []slog.Attr{
		slog.String("attempt_id", result.AttemptID),
		slog.String("number", result.Number),
		slog.String("status", result.Status()),
	}
	if result.Outcome.Code != 0 {
		attrs = append(attrs, slog.Int("code", result.Outcome.Code))
	}
	if result.Err != nil {
		attrs = append(attrs, slog.String("error", result.Err.Error()))
	}
	j.logger.LogAttrs(context.TODO(), slog.LevelInfo, "dial_attempt", attrs...)
}

func (j *Writer) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}

var _ handler.Notifier = (*Writer)(nil)
