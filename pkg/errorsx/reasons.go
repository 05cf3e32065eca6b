package errorsx

// ReasonCode is a short machine-readable error reason.
type ReasonCode string

const (
	ReasonUnknown ReasonCode = "unknown"

	// ReasonInvalidNumber means the link payload contained no dialable digits.
	ReasonInvalidNumber ReasonCode = "invalid_number"

	// ReasonNotConfigured means no settings have ever been saved.
	ReasonNotConfigured ReasonCode = "not_configured"

	// ReasonIncompleteSettings means a required settings field is empty.
	ReasonIncompleteSettings ReasonCode = "incomplete_settings"

	ReasonRejected    ReasonCode = "rejected"
	ReasonUnreachable ReasonCode = "unreachable"
	ReasonPersistence ReasonCode = "persistence"
)
