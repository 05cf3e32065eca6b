package fusionpbx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/harunnryd/clickcall/pkg/configutil"
	"github.com/harunnryd/clickcall/pkg/errorsx"
	"github.com/harunnryd/clickcall/pkg/settings"
)

// Builder constructs the outbound origination request. Pure: it never sends,
// and identical (settings, number) inputs produce byte-identical requests.
type Builder struct {
	tmpl RequestTemplate
}

// NewBuilder creates a builder for the given template. A zero template falls
// back to the stock FusionPBX contract.
func NewBuilder(tmpl RequestTemplate) *Builder {
	if tmpl.Path == "" {
		tmpl.Path = DefaultTemplate().Path
	}
	if len(tmpl.Params) == 0 {
		tmpl.Params = DefaultTemplate().Params
	}
	return &Builder{tmpl: tmpl}
}

// Build produces the HTTPS GET request for one dial attempt. It fails with
// incomplete_settings before any network operation when domain, extension or
// key is empty.
func (b *Builder) Build(st settings.Settings, normalizedNumber string) (*http.Request, error) {
	for _, field := range []struct {
		value string
		name  string
	}{
		{st.Domain, "domain"},
		{st.Extension, "extension"},
		{st.Key, "key"},
	} {
		if err := configutil.RequireString(field.value, field.name); err != nil {
			return nil, errorsx.Wrap(err, errorsx.ReasonIncompleteSettings)
		}
	}

	vars := map[string]string{
		VarNumber:     normalizedNumber,
		VarExtension:  st.Extension,
		VarKey:        st.Key,
		VarAutoAnswer: strconv.FormatBool(st.AutoAnswer),
	}
	target := "https://" + cleanDomain(st.Domain) + b.tmpl.Path + "?" + b.tmpl.Query(vars)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonIncompleteSettings)
	}
	return req, nil
}

// cleanDomain strips a scheme prefix and trailing slashes so the settings
// form may hold either a bare hostname or a pasted URL.
func cleanDomain(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "https://") {
		v = v[len("https://"):]
	} else if strings.HasPrefix(v, "http://") {
		v = v[len("http://"):]
	}
	for len(v) > 0 && v[len(v)-1] == '/' {
		v = v[:len(v)-1]
	}
	return v
}
