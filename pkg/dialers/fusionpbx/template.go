package fusionpbx

import (
	"net/url"
	"os"
	"strings"
)

// Template variables available to param values.
const (
	VarNumber     = "number"
	VarExtension  = "extension"
	VarKey        = "key"
	VarAutoAnswer = "auto_answer"
)

// Param is one query parameter of the click-to-call request. Order matters:
// the built query string preserves template order so identical inputs yield
// byte-identical requests.
type Param struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// RequestTemplate describes the deployment-specific API contract: the path
// and the query parameters the PBX expects. Values may reference template
// variables with ${number}, ${extension}, ${key} and ${auto_answer}.
type RequestTemplate struct {
	Path   string
	Params []Param
}

// DefaultTemplate reproduces the stock FusionPBX click_to_call contract.
func DefaultTemplate() RequestTemplate {
	return RequestTemplate{
		Path: "/app/click_to_call/click_to_call.php",
		Params: []Param{
			{Key: "src_cid_name", Value: "${number}"},
			{Key: "src_cid_number", Value: "${number}"},
			{Key: "dest_cid_name", Value: "${number}"},
			{Key: "dest_cid_number", Value: "${number}"},
			{Key: "src", Value: "${extension}"},
			{Key: "dest", Value: "${number}"},
			{Key: "auto_answer", Value: "${auto_answer}"},
			{Key: "rec", Value: ""},
			{Key: "ringback", Value: "us-ring"},
			{Key: "key", Value: "${key}"},
		},
	}
}

// Query expands the params against vars and encodes them in template order.
func (t RequestTemplate) Query(vars map[string]string) string {
	var b strings.Builder
	for i, p := range t.Params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(expand(p.Value, vars)))
	}
	return b.String()
}

func expand(value string, vars map[string]string) string {
	return os.Expand(value, func(name string) string {
		return vars[name]
	})
}
