package diagnostics_test

import (
	"errors"
	"strings"
	"testing"

	"hexen/internal/diagnostics"
)

func TestErrorRendersPositionCodeAndMessage(t *testing.T) {
	d := diagnostics.New(diagnostics.TypeMismatch, diagnostics.Position{Line: 3, Column: 7}, "expected %s, found %s", "i32", "i64")
	got := d.Error()
	for _, want := range []string{"3:7", "TypeMismatch", "expected i32, found i64"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
}

func TestErrorIncludesIndentedHintWhenPresent(t *testing.T) {
	d := diagnostics.New(diagnostics.ValWithUndef, diagnostics.Position{Line: 1, Column: 1}, "%q needs a value", "x").
		WithHint("declare %q with mut instead", "x")
	got := d.Error()
	if !strings.Contains(got, "hint: declare \"x\" with mut instead") {
		t.Errorf("Error() = %q, missing hint line", got)
	}
}

func TestErrorOmitsSourceAndHintWhenAbsent(t *testing.T) {
	d := diagnostics.New(diagnostics.UndefinedVariable, diagnostics.Position{Line: 1, Column: 1}, "undefined symbol %q", "y")
	got := d.Error()
	if strings.Contains(got, "hint:") {
		t.Errorf("Error() = %q, should have no hint section", got)
	}
	if strings.Contains(got, "\n") {
		t.Errorf("Error() = %q, should be a single line with no source section", got)
	}
}

func TestInternalWrapsCauseIntoInternalErrorCode(t *testing.T) {
	cause := errors.New("index out of range")
	d := diagnostics.Internal(diagnostics.Position{Line: 5, Column: 2}, cause, "resolving array element")
	if d.Code != diagnostics.InternalError {
		t.Errorf("expected InternalError code, got %s", d.Code)
	}
	if !strings.Contains(d.Message, "resolving array element") || !strings.Contains(d.Message, "index out of range") {
		t.Errorf("Message = %q, expected it to wrap both context and cause", d.Message)
	}
}

func TestFormatCountAddsThousandsSeparators(t *testing.T) {
	if got, want := diagnostics.FormatCount(2147483647), "2,147,483,647"; got != want {
		t.Errorf("FormatCount(2147483647) = %q, want %q", got, want)
	}
}

func TestListHasErrorsAndJoinsMessages(t *testing.T) {
	var l diagnostics.List
	if l.HasErrors() {
		t.Fatal("an empty list must report HasErrors() == false")
	}
	l.Add(diagnostics.New(diagnostics.LiteralOverflow, diagnostics.Position{Line: 1, Column: 1}, "literal does not fit in i32"))
	l.Add(diagnostics.New(diagnostics.ArityMismatch, diagnostics.Position{Line: 2, Column: 1}, "expected 2 arguments, found 1"))
	if !l.HasErrors() {
		t.Fatal("expected HasErrors() == true after Add")
	}
	joined := l.Error()
	if !strings.Contains(joined, "LiteralOverflow") || !strings.Contains(joined, "ArityMismatch") {
		t.Errorf("List.Error() = %q, expected both diagnostics rendered", joined)
	}
}
