package uuidx

import (
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	v4 := MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "invalid length",
			err:  &Error{Kind: KindInvalidLength, Context: ContextBase58, ActualLength: 5},
			want: "uuidx: base58: decoded 5 bytes, expected 16",
		},
		{
			name: "not v7",
			err:  &Error{Kind: KindNotV7, UUID: v4},
			want: "uuidx: cannot extract time from f47ac10b-58cc-4372-a567-0e02b2c3d479: version 4, not 7",
		},
		{
			name: "custom",
			err:  NewCustom("boom"),
			want: "uuidx: boom",
		},
		{
			name: "custom with context",
			err:  &Error{Kind: KindCustom, Context: ContextBase64, Message: "bad padding"},
			want: "uuidx: base64: bad padding",
		},
		{
			name: "io",
			err:  NewIO(io.ErrUnexpectedEOF),
			want: "uuidx: io: unexpected EOF",
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

func TestError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"length matches", &Error{Kind: KindInvalidLength}, ErrInvalidLength, true},
		{"length is not format", &Error{Kind: KindInvalidLength}, ErrInvalidFormat, false},
		{"not v7 matches version", &Error{Kind: KindNotV7}, ErrInvalidVersion, true},
		{"custom matches format", NewCustom("x"), ErrInvalidFormat, true},
		{"io is none of the sentinels", NewIO(io.EOF), ErrInvalidFormat, false},
		{"io unwraps to cause", NewIO(io.EOF), io.EOF, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.want)
			}
		})
	}
}

func TestNewCustomFromErr_KeepsMessage(t *testing.T) {
	_, cause := hex.DecodeString("zz")
	err := NewCustomFromErr(cause)

	if err.Message != cause.Error() {
		t.Errorf("Message = %q, want %q", err.Message, cause.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("NewCustomFromErr() does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), cause.Error()) {
		t.Errorf("Error() = %q does not contain %q", err.Error(), cause.Error())
	}
}

func TestKind_String(t *testing.T) {
	if got := KindInvalidLength.String(); got != "invalid length" {
		t.Errorf("KindInvalidLength.String() = %q", got)
	}
	if got := Kind(42).String(); got != "kind(42)" {
		t.Errorf("Kind(42).String() = %q", got)
	}
}

func TestConstructors_NilErr(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"custom", NewCustomFromErr(nil), "uuidx: "},
		{"io", NewIO(nil), "uuidx: io: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if tt.err.Unwrap() != nil {
				t.Errorf("Unwrap() = %v, want nil", tt.err.Unwrap())
			}
		})
	}
}
