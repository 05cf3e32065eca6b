package fusionpbx

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/harunnryd/clickcall/pkg/dialers"
	"github.com/harunnryd/clickcall/pkg/settings"
)

func pbxSettings() settings.Settings {
	return settings.Settings{Domain: "pbx.example.com", Extension: "101", Key: "abc123"}
}

func TestDialOriginated(t *testing.T) {
	stub := &stubDoer{status: 200}
	d := New(pbxSettings(), Config{}, nil)
	d.dispatcher.client = stub

	out, err := d.Dial(context.Background(), "+15551234567")
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	if out.Status != dialers.StatusOriginated {
		t.Fatalf("expected originated, got %s", out.Status)
	}
}

func TestDialSendsContractParams(t *testing.T) {
	var captured *url.URL
	stub := &captureDoer{status: 200, captured: &captured}
	d := New(pbxSettings(), Config{}, nil)
	d.dispatcher.client = stub

	if _, err := d.Dial(context.Background(), "+15551234567"); err != nil {
		t.Fatalf("dial error: %v", err)
	}
	if captured == nil {
		t.Fatalf("no request sent")
	}
	if captured.Host != "pbx.example.com" {
		t.Fatalf("expected pbx host, got %s", captured.Host)
	}
	q := captured.Query()
	if q.Get("dest") != "+15551234567" {
		t.Fatalf("expected dest param, got %q", q.Get("dest"))
	}
	if q.Get("src") != "101" {
		t.Fatalf("expected src extension, got %q", q.Get("src"))
	}
	if q.Get("key") != "abc123" {
		t.Fatalf("expected key param, got %q", q.Get("key"))
	}
}

func TestDialIncompleteSettingsBeforeNetwork(t *testing.T) {
	var captured *url.URL
	stub := &captureDoer{status: 200, captured: &captured}
	d := New(settings.Settings{Domain: "pbx.example.com"}, Config{}, nil)
	d.dispatcher.client = stub

	if _, err := d.Dial(context.Background(), "5551234"); err == nil {
		t.Fatalf("expected error")
	}
	if captured != nil {
		t.Fatalf("network must not be contacted")
	}
}

func TestDialRejectedWithServerMessage(t *testing.T) {
	stub := &stubDoer{status: 401, body: "invalid key"}
	d := New(pbxSettings(), Config{}, nil)
	d.dispatcher.client = stub

	out, err := d.Dial(context.Background(), "5551234")
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	if out.Status != dialers.StatusRejected || out.Code != 401 || out.Message != "invalid key" {
		t.Fatalf("unexpected outcome: %s", out)
	}
}

func TestDialTimeoutUnreachable(t *testing.T) {
	d := New(pbxSettings(), Config{TimeoutMS: 20}, nil)
	d.dispatcher.client = &stubDoer{block: true}

	out, err := d.Dial(context.Background(), "5551234")
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	if out.Status != dialers.StatusUnreachable {
		t.Fatalf("expected unreachable, got %s", out.Status)
	}
	if d.dispatcher.timeout != 20*time.Millisecond {
		t.Fatalf("timeout config not applied")
	}
}

type captureDoer struct {
	status   int
	captured **url.URL
}

func (c *captureDoer) Do(req *http.Request) (*http.Response, error) {
	*c.captured = req.URL
	return &http.Response{StatusCode: c.status, Body: http.NoBody}, nil
}
