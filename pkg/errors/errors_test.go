package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("GOOGLE_SHEET_ID", "environment variable is not set")

	want := "config error: GOOGLE_SHEET_ID: environment variable is not set"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, ErrConfigMissing) {
		t.Error("expected ConfigError to match ErrConfigMissing")
	}
}

func TestFetchError(t *testing.T) {
	base := errors.New("connection refused")
	err := WrapFetch("sheet", "https://example.com/export", base)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if fetchErr.Resource != "sheet" {
		t.Errorf("Resource = %q, want %q", fetchErr.Resource, "sheet")
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error to match base error")
	}
}

func TestFetchErrorWithStatus(t *testing.T) {
	err := &FetchError{Resource: "sheet", StatusCode: 404, Message: "Not Found"}
	want := "failed to fetch sheet (HTTP 404): Not Found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapHelpersNilPassthrough(t *testing.T) {
	if WrapFetch("sheet", "", nil) != nil {
		t.Error("WrapFetch(nil) should return nil")
	}
	if WrapParse("csv", "", nil) != nil {
		t.Error("WrapParse(nil) should return nil")
	}
	if WrapIO("write", "", nil) != nil {
		t.Error("WrapIO(nil) should return nil")
	}
}

func TestIOErrorUnwrap(t *testing.T) {
	base := fmt.Errorf("disk full")
	err := WrapIO("write", "contributors/kr.json", base)

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T", err)
	}
	if ioErr.Path != "contributors/kr.json" {
		t.Errorf("Path = %q, want %q", ioErr.Path, "contributors/kr.json")
	}
	if errors.Unwrap(ioErr) != base {
		t.Error("Unwrap() should return the base error")
	}
}

func TestNotifyError(t *testing.T) {
	err := &NotifyError{StatusCode: 500, Message: "Internal Server Error"}
	want := "notification failed (HTTP 500): Internal Server Error"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
