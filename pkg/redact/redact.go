package redact

import (
	"regexp"
	"strings"
	"sync"
)

var keyParamRe = regexp.MustCompile(`(?i)(key|token|auth_token|password)=[^&\s]*`)

var (
	mu      sync.RWMutex
	secrets []string
)

// RegisterSecret records a literal value to scrub from any redacted text.
// Empty values are ignored.
func RegisterSecret(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	for _, s := range secrets {
		if s == value {
			return
		}
	}
	secrets = append(secrets, value)
}

// Reset clears registered secrets, for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	secrets = nil
}

// Text scrubs credential query parameters and registered secret values.
// The access key must never reach logs or notifications in clear form.
func Text(in string) string {
	if in == "" {
		return in
	}
	out := keyParamRe.ReplaceAllString(in, "$1=[REDACTED]")
	mu.RLock()
	defer mu.RUnlock()
	for _, s := range secrets {
		out = strings.ReplaceAll(out, s, "[REDACTED]")
	}
	return out
}

// URL scrubs a request URL for display in logs and error messages.
func URL(raw string) string {
	return Text(raw)
}

// Error wraps err so its rendered message is scrubbed. The original error
// stays on the chain for errors.Is and errors.As. Transport errors embed the
// full request URL, key included, so they must never render unwrapped.
func Error(err error) error {
	if err == nil {
		return nil
	}
	return &redactedError{err: err}
}

type redactedError struct {
	err error
}

func (e *redactedError) Error() string { return Text(e.err.Error()) }

func (e *redactedError) Unwrap() error { return e.err }
