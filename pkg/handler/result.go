package handler

import (
	"fmt"

	"github.com/harunnryd/clickcall/pkg/dialers"
	"github.com/harunnryd/clickcall/pkg/errorsx"
)

// Result is the terminal, user-facing outcome of one invocation. Either Err
// is set (local failure before any network I/O) or Outcome carries the
// classified dispatch result.
type Result struct {
	AttemptID string
	Number    string
	Outcome   dialers.Outcome
	Err       error
}

// OK reports whether the call was accepted by the server.
func (r Result) OK() bool {
	return r.Err == nil && r.Outcome.Status == dialers.StatusOriginated
}

// Message renders a short, self-correcting description for user feedback.
// Secrets never appear here: upstream components redact server messages.
func (r Result) Message() string {
	if r.Err != nil {
		switch errorsx.Reason(r.Err) {
		case errorsx.ReasonInvalidNumber:
			return "the link did not contain a dialable number"
		case errorsx.ReasonNotConfigured:
			return "configure your settings first"
		case errorsx.ReasonIncompleteSettings:
			return fmt.Sprintf("settings incomplete: %v", r.Err)
		}
		return r.Err.Error()
	}
	switch r.Outcome.Status {
	case dialers.StatusOriginated:
		return fmt.Sprintf("calling %s...", r.Number)
	case dialers.StatusRejected:
		if r.Outcome.Message != "" {
			return fmt.Sprintf("server rejected the request: %d %s", r.Outcome.Code, r.Outcome.Message)
		}
		return fmt.Sprintf("server rejected the request: %d", r.Outcome.Code)
	case dialers.StatusUnreachable:
		return fmt.Sprintf("server unreachable: %v", r.Outcome.Cause)
	}
	return r.Outcome.String()
}

// Status renders the terminal classification, folding local failures into
// their reason codes.
func (r Result) Status() string {
	if r.Err != nil {
		return string(errorsx.Reason(r.Err))
	}
	return string(r.Outcome.Status)
}

// Notifier is the user feedback surface consumed after every invocation.
// The pipeline never renders UI itself.
type Notifier interface {
	ReportOutcome(result Result)
}
