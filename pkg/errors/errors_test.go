package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidShape, "matrix must be square, got %dx%d", 3, 2)

	if err.Code != ErrCodeInvalidShape {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidShape)
	}
	if want := "matrix must be square, got 3x2"; err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if !strings.Contains(err.Error(), "INVALID_SHAPE") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInvalidInput, cause, "parse %s", "matrix.csv")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if got := err.Error(); !strings.Contains(got, "boom") {
		t.Errorf("Error() = %q, want cause included", got)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"Match", New(ErrCodeShapeMismatch, "n"), ErrCodeShapeMismatch, true},
		{"NoMatch", New(ErrCodeShapeMismatch, "n"), ErrCodeInvalidShape, false},
		{"Wrapped", fmt.Errorf("outer: %w", New(ErrCodeInvalidShape, "n")), ErrCodeInvalidShape, true},
		{"Plain", stderrors.New("plain"), ErrCodeInvalidShape, false},
		{"MissingGroupColor", &MissingGroupColorError{Missing: []string{"b"}}, ErrCodeMissingGroupColor, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %q) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidPalette, "x")); got != ErrCodeInvalidPalette {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInvalidPalette)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	if got := GetCode(&MissingGroupColorError{}); got != ErrCodeMissingGroupColor {
		t.Errorf("GetCode(missing) = %q, want %q", got, ErrCodeMissingGroupColor)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidShape, "matrix must be square")
	if got := UserMessage(err); got != "matrix must be square" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestMissingGroupColorError(t *testing.T) {
	err := &MissingGroupColorError{Missing: []string{"b", "c"}}

	got := err.Error()
	for _, want := range []string{"b", "c"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, want %q listed", got, want)
		}
	}
	if err.Code() != ErrCodeMissingGroupColor {
		t.Errorf("Code() = %q", err.Code())
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"Valid", "out/diagram.svg", false},
		{"Empty", "", true},
		{"Traversal", "../etc/passwd", true},
		{"Control", "bad\x00name", true},
		{"TooLong", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRegionName(t *testing.T) {
	if err := ValidateRegionName("Left V1"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if err := ValidateRegionName(""); err == nil {
		t.Error("empty name accepted")
	}
	if err := ValidateRegionName("bad\ttab"); err == nil {
		t.Error("control character accepted")
	}
}
