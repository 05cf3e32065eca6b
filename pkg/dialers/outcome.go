package dialers

import "fmt"

// Status tags the terminal classification of a dial attempt.
type Status string

const (
	// StatusOriginated means the server accepted the origination request.
	StatusOriginated Status = "originated"
	// StatusRejected means the server was reachable and refused the request.
	StatusRejected Status = "rejected"
	// StatusUnreachable means the request never produced an HTTP response.
	StatusUnreachable Status = "unreachable"
)

// Outcome is the classified result of a single dial attempt. It is ephemeral:
// produced by a dialer, consumed for user feedback, never stored beyond the
// journal line.
type Outcome struct {
	Status  Status
	Code    int    // HTTP status code when rejected
	Message string // short server message when rejected, already redacted
	Cause   error  // transport failure when unreachable
}

// Originated builds a success outcome.
func Originated() Outcome {
	return Outcome{Status: StatusOriginated}
}

// Rejected builds a server-refusal outcome.
func Rejected(code int, message string) Outcome {
	return Outcome{Status: StatusRejected, Code: code, Message: message}
}

// Unreachable builds a transport-failure outcome.
func Unreachable(cause error) Outcome {
	return Outcome{Status: StatusUnreachable, Cause: cause}
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusOriginated:
		return "originated"
	case StatusRejected:
		if o.Message != "" {
			return fmt.Sprintf("rejected: %d %s", o.Code, o.Message)
		}
		return fmt.Sprintf("rejected: %d", o.Code)
	case StatusUnreachable:
		if o.Cause != nil {
			return fmt.Sprintf("unreachable: %v", o.Cause)
		}
		return "unreachable"
	}
	return string(o.Status)
}
