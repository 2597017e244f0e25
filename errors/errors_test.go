package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := New(PhaseConfig, KindInvalidTarget).
		Detail("breakpoint target %q", "x,y").
		Build()

	s := err.Error()
	if !strings.Contains(s, "[config]") || !strings.Contains(s, "invalid_target") {
		t.Fatalf("Error() = %q", s)
	}
	if !strings.Contains(s, `"x,y"`) {
		t.Fatalf("Error() = %q, missing detail", s)
	}
}

func TestError_Is(t *testing.T) {
	err := NoHistory()
	if !stderrors.Is(err, &Error{Phase: PhaseHistory, Kind: KindNoHistory}) {
		t.Fatal("Is failed to match phase+kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseConfig, Kind: KindNoHistory}) {
		t.Fatal("Is matched wrong phase")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := InvalidTarget("1,2,3", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("Unwrap chain lost the cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Error() = %q, cause not rendered", err.Error())
	}
}
