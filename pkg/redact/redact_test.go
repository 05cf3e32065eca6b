package redact

import (
	"errors"
	"strings"
	"testing"
)

func TestTextScrubsKeyParam(t *testing.T) {
	in := "https://pbx.example.com/app/click_to_call/click_to_call.php?dest=100&key=abc123"
	out := URL(in)
	if strings.Contains(out, "abc123") {
		t.Fatalf("key leaked: %s", out)
	}
	if !strings.Contains(out, "key=[REDACTED]") {
		t.Fatalf("expected redacted key param, got %s", out)
	}
	if !strings.Contains(out, "dest=100") {
		t.Fatalf("non-secret param must survive, got %s", out)
	}
}

func TestTextScrubsRegisteredSecret(t *testing.T) {
	Reset()
	defer Reset()
	RegisterSecret("s3cr3t")
	out := Text("server said: bad credential s3cr3t for ext 101")
	if strings.Contains(out, "s3cr3t") {
		t.Fatalf("registered secret leaked: %s", out)
	}
}

func TestTextEmptyPassthrough(t *testing.T) {
	if Text("") != "" {
		t.Fatalf("empty input must pass through")
	}
}

func TestErrorScrubsMessage(t *testing.T) {
	cause := errors.New(`Get "https://pbx.example.com/x?key=abc123": connection refused`)
	err := Error(cause)
	if strings.Contains(err.Error(), "abc123") {
		t.Fatalf("key leaked: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "key=[REDACTED]") {
		t.Fatalf("expected redacted key param, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected original error on the chain")
	}
}

func TestErrorNilPassthrough(t *testing.T) {
	if Error(nil) != nil {
		t.Fatalf("nil error must pass through")
	}
}
