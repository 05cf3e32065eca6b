package twilio

import (
	"context"
	"errors"
	"log/slog"

	"github.com/harunnryd/clickcall/pkg/configutil"
	"github.com/harunnryd/clickcall/pkg/dialers"
	"github.com/harunnryd/clickcall/pkg/errorsx"
	"github.com/harunnryd/clickcall/pkg/redact"
	"github.com/harunnryd/clickcall/pkg/settings"
	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// Config carries the Twilio provider settings, decoded from the free-form
// dialer settings map.
type Config struct {
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	From       string `mapstructure:"from"`
	VoiceURL   string `mapstructure:"voice_url"`
}

type callCreator interface {
	CreateCall(params *api.CreateCallParams) (*api.ApiV2010Call, error)
}

// Dialer originates calls through the Twilio REST API as an alternate
// provider for extensions homed on Twilio rather than a self-hosted PBX.
type Dialer struct {
	cfg    Config
	st     settings.Settings
	client callCreator
	log    *slog.Logger
}

// New creates a Twilio dialer bound to an immutable settings snapshot.
func New(st settings.Settings, raw map[string]any, log *slog.Logger) (*Dialer, error) {
	var cfg Config
	if err := configutil.DecodeSettings(raw, &cfg); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonIncompleteSettings)
	}
	if log == nil {
		log = slog.Default()
	}
	redact.RegisterSecret(cfg.AuthToken)
	return &Dialer{cfg: cfg, st: st, log: log}, nil
}

func (d *Dialer) Name() string { return "twilio" }

// Dial places one outbound call leg. REST refusals become rejected outcomes,
// transport failures unreachable; no retries.
func (d *Dialer) Dial(ctx context.Context, normalizedNumber string) (dialers.Outcome, error) {
	_ = ctx
	for _, field := range []struct {
		value string
		name  string
	}{
		{d.cfg.AccountSID, "account_sid"},
		{d.cfg.AuthToken, "auth_token"},
		{d.cfg.VoiceURL, "voice_url"},
		{d.st.Extension, "extension"},
	} {
		if err := configutil.RequireString(field.value, field.name); err != nil {
			return dialers.Outcome{}, errorsx.Wrap(err, errorsx.ReasonIncompleteSettings)
		}
	}

	from := d.cfg.From
	if from == "" {
		from = "client:" + d.st.Extension
	}
	client := d.client
	if client == nil {
		rest := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: d.cfg.AccountSID,
			Password: d.cfg.AuthToken,
		})
		client = rest.Api
	}
	params := &api.CreateCallParams{}
	params.SetTo(normalizedNumber)
	params.SetFrom(from)
	params.SetUrl(d.cfg.VoiceURL)

	resp, err := client.CreateCall(params)
	if err != nil {
		return classifyError(err), nil
	}
	if resp == nil || resp.Sid == nil {
		return dialers.Rejected(0, "missing call sid"), nil
	}
	d.log.Info("twilio call created", slog.String("call_sid", *resp.Sid))
	return dialers.Originated(), nil
}

func classifyError(err error) dialers.Outcome {
	var restErr *twilioclient.TwilioRestError
	if errors.As(err, &restErr) {
		return dialers.Rejected(restErr.Status, redact.Text(restErr.Message))
	}
	return dialers.Unreachable(redact.Error(err))
}

var _ dialers.Dialer = (*Dialer)(nil)
