package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeInvalidConstraint, "unknown kind: %s", "weird"),
			want: "INVALID_CONSTRAINT: unknown kind: weird",
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeInvalidFormat, fmt.Errorf("unexpected EOF"), "decode constraints.json"),
			want: "INVALID_FORMAT: decode constraints.json: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeFileNotFound, "constraints.json does not exist")

	if !Is(err, ErrCodeFileNotFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}
	if got := GetCode(err); got != ErrCodeFileNotFound {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeFileNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUnwrapChain(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeInternal, cause, "something broke")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if Is(fmt.Errorf("outer: %w", err), ErrCodeInternal) != true {
		t.Error("Is should unwrap through fmt.Errorf chains")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad flag")); got != "bad flag" {
		t.Errorf("UserMessage = %q, want %q", got, "bad flag")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain")
	}
}
