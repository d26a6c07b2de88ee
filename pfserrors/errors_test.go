package pfserrors

import (
	"errors"
	"testing"
)

func TestIsMatchesKind(t *testing.T) {
	err := Readf("/tmp/x", errors.New("boom"))
	if !Is(err, Read) {
		t.Error("expected Is(err, Read) to be true")
	}
	if Is(err, Write) {
		t.Error("expected Is(err, Write) to be false")
	}
}

func TestIsFalseForForeignError(t *testing.T) {
	if Is(errors.New("plain"), Read) {
		t.Error("expected Is to be false for a non-*Error")
	}
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Writef("/tmp/x", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the wrapped cause")
	}
}

func TestFileExistsErrorMessage(t *testing.T) {
	err := FileExistsf("/tmp/x")
	if err.Kind != FileExists {
		t.Errorf("Kind = %v, want FileExists", err.Kind)
	}
	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}

func TestKindString(t *testing.T) {
	if Read.String() != "Read" {
		t.Errorf("Read.String() = %q, want Read", Read.String())
	}
	if Kind(999).String() != "Unknown" {
		t.Errorf("unknown kind String() = %q, want Unknown", Kind(999).String())
	}
}
