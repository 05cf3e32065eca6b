package fusionpbx

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/harunnryd/clickcall/pkg/dialers"
	"github.com/harunnryd/clickcall/pkg/redact"
)

// DefaultTimeout bounds a single dial attempt.
const DefaultTimeout = 5 * time.Second

// maxMessageBytes caps how much of an error body is read for display.
const maxMessageBytes = 512

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Dispatcher sends one origination request and classifies the result.
// Classification is total: every HTTP status maps to originated or rejected,
// and the absence of a response always maps to unreachable. No retries.
type Dispatcher struct {
	client  httpDoer
	timeout time.Duration
}

// NewDispatcher creates a dispatcher with the given attempt timeout.
func NewDispatcher(timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		client:  &http.Client{},
		timeout: timeout,
	}
}

// Dispatch performs the network call. This is the single blocking point of
// the pipeline, bounded by the configured timeout.
func (d *Dispatcher) Dispatch(ctx context.Context, req *http.Request) dialers.Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	resp, err := d.client.Do(req.WithContext(ctx))
	if err != nil {
		// The client error embeds the request URL; scrub it before it can
		// reach a notifier or the journal.
		return dialers.Unreachable(redact.Error(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return dialers.Originated()
	}
	return dialers.Rejected(resp.StatusCode, serverMessage(resp.Body))
}

// serverMessage extracts a short, redacted human-readable message from an
// error body, best effort.
func serverMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxMessageBytes))
	if err != nil {
		return ""
	}
	return redact.Text(strings.TrimSpace(string(raw)))
}
