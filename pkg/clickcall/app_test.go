package clickcall

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harunnryd/clickcall/pkg/errorsx"
	"github.com/harunnryd/clickcall/pkg/settings"
)

func testSettings() settings.Settings {
	return settings.Settings{Domain: "pbx.example.com", Extension: "101", Key: "abc123"}
}

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	body := `dialer:
  provider: mock
notify:
  desktop: false
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app, dir
}

func TestAppHandlesLinkEndToEnd(t *testing.T) {
	app, dir := newTestApp(t)
	if err := app.Store.Save(testSettings()); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	result := app.HandleLink(context.Background(), "tel:+1-555-123-4567")
	if !result.OK() {
		t.Fatalf("expected originated, got %s (%v)", result.Status(), result.Err)
	}
	if result.Number != "+15551234567" {
		t.Fatalf("unexpected number: %s", result.Number)
	}

	if err := app.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "calls.jsonl"))
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	if !strings.Contains(string(raw), `"status":"originated"`) {
		t.Fatalf("expected journal entry, got %s", raw)
	}
}

func TestAppNotConfigured(t *testing.T) {
	app, _ := newTestApp(t)
	result := app.HandleLink(context.Background(), "tel:+15551234567")
	if result.Err == nil || !errorsx.HasReason(result.Err, errorsx.ReasonNotConfigured) {
		t.Fatalf("expected not_configured, got %v", result.Err)
	}
}
