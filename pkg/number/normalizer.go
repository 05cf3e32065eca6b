package number

import (
	"net/url"
	"strings"

	"github.com/harunnryd/clickcall/pkg/errorsx"
)

// Schemes accepted in the raw argument, matched case-insensitively.
var schemes = []string{"tel:", "callto:"}

// Normalize extracts a dialable number from an OS-delivered link argument.
// The scheme prefix and any decoration (spaces, dashes, parentheses, dots)
// are stripped; digits keep their left-to-right order. A leading plus sign,
// when it appears before the first digit, survives as a single leading "+".
// Returns an invalid_number error when no digits remain. Pure function.
func Normalize(rawArgument string) (string, error) {
	payload := stripScheme(rawArgument)
	if unescaped, err := url.PathUnescape(payload); err == nil {
		payload = unescaped
	}

	var b strings.Builder
	plus := false
	for _, r := range payload {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0 && !plus:
			plus = true
		}
	}
	if b.Len() == 0 {
		return "", errorsx.New("no digits in link payload", errorsx.ReasonInvalidNumber)
	}
	if plus {
		return "+" + b.String(), nil
	}
	return b.String(), nil
}

func stripScheme(raw string) string {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	for _, scheme := range schemes {
		if strings.HasPrefix(lower, scheme) {
			rest := trimmed[len(scheme):]
			// tel URIs may carry the number as an opaque path with
			// leading slashes (tel://...).
			return strings.TrimLeft(rest, "/")
		}
	}
	return trimmed
}
