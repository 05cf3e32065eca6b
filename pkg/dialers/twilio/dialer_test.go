package twilio

import (
	"context"
	"errors"
	"testing"

	"github.com/harunnryd/clickcall/pkg/dialers"
	"github.com/harunnryd/clickcall/pkg/errorsx"
	"github.com/harunnryd/clickcall/pkg/settings"
	twilioclient "github.com/twilio/twilio-go/client"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

type stubCreator struct {
	last *api.CreateCallParams
	sid  string
	err  error
}

func (s *stubCreator) CreateCall(params *api.CreateCallParams) (*api.ApiV2010Call, error) {
	s.last = params
	if s.err != nil {
		return nil, s.err
	}
	return &api.ApiV2010Call{Sid: &s.sid}, nil
}

func newDialer(t *testing.T, stub *stubCreator) *Dialer {
	t.Helper()
	d, err := New(
		settings.Settings{Extension: "101"},
		map[string]any{
			"account_sid": "AC1",
			"auth_token":  "token",
			"voice_url":   "https://example.com/voice",
		},
		nil,
	)
	if err != nil {
		t.Fatalf("new dialer: %v", err)
	}
	d.client = stub
	return d
}

func TestDialOriginated(t *testing.T) {
	stub := &stubCreator{sid: "CA123"}
	d := newDialer(t, stub)
	out, err := d.Dial(context.Background(), "+15551234567")
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	if out.Status != dialers.StatusOriginated {
		t.Fatalf("expected originated, got %s", out.Status)
	}
	if stub.last == nil || stub.last.To == nil || *stub.last.To != "+15551234567" {
		t.Fatalf("expected To param")
	}
	if stub.last.From == nil || *stub.last.From != "client:101" {
		t.Fatalf("expected client identity from extension, got %v", stub.last.From)
	}
}

func TestDialRestRefusal(t *testing.T) {
	stub := &stubCreator{err: &twilioclient.TwilioRestError{Status: 401, Message: "authentication failed"}}
	d := newDialer(t, stub)
	out, err := d.Dial(context.Background(), "+15551234567")
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	if out.Status != dialers.StatusRejected || out.Code != 401 {
		t.Fatalf("expected rejected 401, got %s", out)
	}
}

func TestDialTransportFailure(t *testing.T) {
	cause := errors.New("dial tcp: no route to host")
	stub := &stubCreator{err: cause}
	d := newDialer(t, stub)
	out, err := d.Dial(context.Background(), "+15551234567")
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	if out.Status != dialers.StatusUnreachable {
		t.Fatalf("expected unreachable, got %s", out.Status)
	}
}

func TestDialMissingCredentials(t *testing.T) {
	d, err := New(settings.Settings{Extension: "101"}, map[string]any{"voice_url": "https://example.com/voice"}, nil)
	if err != nil {
		t.Fatalf("new dialer: %v", err)
	}
	d.client = &stubCreator{sid: "CA1"}
	_, err = d.Dial(context.Background(), "+15551234567")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errorsx.HasReason(err, errorsx.ReasonIncompleteSettings) {
		t.Fatalf("expected incomplete_settings, got %s", errorsx.Reason(err))
	}
}
