package errorsx

import "testing"

func TestWrapAndReason(t *testing.T) {
	err := Wrap(assertErr{}, ReasonInvalidNumber)
	if Reason(err) != ReasonInvalidNumber {
		t.Fatalf("expected reason %s, got %s", ReasonInvalidNumber, Reason(err))
	}
	if !HasReason(err, ReasonInvalidNumber) {
		t.Fatalf("expected HasReason true")
	}
}

func TestWrapPreservesExistingReason(t *testing.T) {
	first := Wrap(assertErr{}, ReasonNotConfigured)
	second := Wrap(first, ReasonPersistence)
	if Reason(second) != ReasonNotConfigured {
		t.Fatalf("expected reason preserved, got %s", Reason(second))
	}
}

func TestNewCarriesMessageAndReason(t *testing.T) {
	err := New("no settings saved", ReasonNotConfigured)
	if err.Error() != "no settings saved" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if Reason(err) != ReasonNotConfigured {
		t.Fatalf("expected not_configured, got %s", Reason(err))
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
