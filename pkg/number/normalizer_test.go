package number

import (
	"testing"

	"github.com/harunnryd/clickcall/pkg/errorsx"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"international with separators", "tel:+1-555-123-4567", "+15551234567"},
		{"parentheses and spaces", "tel:(555) 123 4567", "5551234567"},
		{"uppercase scheme", "TEL:+49 30 1234", "+49301234"},
		{"callto scheme", "callto:555.1234", "5551234"},
		{"double slash form", "tel://+15551234567", "+15551234567"},
		{"percent encoded spaces", "tel:%2B1%20555%20000", "+1555000"},
		{"bare number without scheme", "+1 (555) 000-1111", "+15550001111"},
		{"plus after digits dropped", "tel:555+123", "555123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			if err != nil {
				t.Fatalf("normalize error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeNoDigits(t *testing.T) {
	for _, in := range []string{"tel:", "tel:+", "callto:---", "", "tel:abc"} {
		_, err := Normalize(in)
		if err == nil {
			t.Fatalf("expected error for %q", in)
		}
		if !errorsx.HasReason(err, errorsx.ReasonInvalidNumber) {
			t.Fatalf("expected invalid_number for %q, got %s", in, errorsx.Reason(err))
		}
	}
}
