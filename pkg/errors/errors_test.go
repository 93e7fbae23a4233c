package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestLocErrorMessageAndCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewLocError("request failed", CodeAPIError, 502, nil).WithCause(cause)

	if err.Error() != "request failed: connection refused" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected Unwrap to expose the cause")
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	err := NewValidationError("source table is missing required columns: LOCID", "LOCID", "input.csv")

	if err.Field != "LOCID" {
		t.Fatalf("unexpected field: %q", err.Field)
	}
	if err.Code != CodeValidation || err.StatusCode != 400 {
		t.Fatalf("unexpected code/status: %s/%d", err.Code, err.StatusCode)
	}

	var valErr *ValidationError
	if !stderrors.As(error(err), &valErr) {
		t.Fatal("expected errors.As to find ValidationError")
	}
}

func TestGroupErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("all rows in group failed")
	err := NewGroupError("group skipped", "ID7", cause)

	if err.ImageID != "ID7" {
		t.Fatalf("unexpected image id: %q", err.ImageID)
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause")
	}
}

func TestTypedErrorsShareLocErrorCodes(t *testing.T) {
	cases := []struct {
		inner *LocError
		code  string
	}{
		{NewAPIError("x", 502, nil).LocError, CodeAPIError},
		{NewLocalizationError("x", "LEVEL_TEXT_1", nil).LocError, CodeLocalization},
		{NewCharacterDataError("x", "chars.json", nil).LocError, CodeCharacterData},
		{NewCacheError("x", "get", "key", nil).LocError, CodeCache},
	}
	for _, c := range cases {
		if c.inner.Code != c.code {
			t.Fatalf("expected code %q, got %q", c.code, c.inner.Code)
		}
	}
}
