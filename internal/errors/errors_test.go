package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestMissingColumnError(t *testing.T) {
	err := NewMissingColumnError("verticalCover", "squareIcon")

	expected := "unable to find columns verticalCover, squareIcon: wrong delimiter, or images not exported?"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsMissingColumnError(err) {
		t.Fatalf("IsMissingColumnError returned false for MissingColumnError")
	}

	wrapped := fmt.Errorf("loading gameDB.csv: %w", err)
	if !IsMissingColumnError(wrapped) {
		t.Fatalf("IsMissingColumnError returned false for wrapped MissingColumnError")
	}
}

func TestInputNotFoundError(t *testing.T) {
	err := NewInputNotFoundError("gameDB.csv")

	expected := `unable to find "gameDB.csv", make sure to specify the proper path with -i`
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsInputNotFoundError(stdErrors.Join(err)) {
		t.Fatalf("IsInputNotFoundError returned false for wrapped InputNotFoundError")
	}

	if IsMissingColumnError(err) {
		t.Fatalf("IsMissingColumnError returned true for InputNotFoundError")
	}
}

func TestIsHelpers_Nil(t *testing.T) {
	if IsMissingColumnError(nil) || IsInputNotFoundError(nil) {
		t.Fatalf("Is helpers returned true for nil error")
	}
}
