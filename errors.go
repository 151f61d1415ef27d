package uuidx

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat matches errors raised when a text or codec input is malformed
	ErrInvalidFormat = errors.New("uuidx: invalid UUID format")

	// ErrInvalidLength matches errors raised when decoded bytes are not exactly 16 long
	ErrInvalidLength = errors.New("uuidx: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion matches errors raised when a v7-only operation gets another version
	ErrInvalidVersion = errors.New("uuidx: invalid or unsupported UUID version")
)

// Kind tags the variant held by an Error.
type Kind uint8

const (
	// KindCustom wraps an underlying codec or parse failure.
	KindCustom Kind = iota
	// KindInvalidLength reports a decoded buffer that is not 16 bytes.
	KindInvalidLength
	// KindNotV7 reports a timestamp extraction on a non-v7 UUID.
	KindNotV7
	// KindIO passes through a failure of the environment, e.g. the random source.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindInvalidLength:
		return "invalid length"
	case KindNotV7:
		return "not v7"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error is the error type returned by every fallible function in this package.
// Only the fields relevant to Kind are set.
type Error struct {
	Kind Kind

	// Context labels the decoder that failed, e.g. "base58" or "base64url-nopad".
	Context string

	// ActualLength is the number of decoded bytes (KindInvalidLength).
	ActualLength int

	// UUID is the offending identifier (KindNotV7).
	UUID UUID

	// Message is the diagnostic text of the underlying failure (KindCustom).
	Message string

	// Err is the underlying codec or I/O error, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidLength:
		return fmt.Sprintf("uuidx: %s: decoded %d bytes, expected 16", e.Context, e.ActualLength)
	case KindNotV7:
		return fmt.Sprintf("uuidx: cannot extract time from %s: version %d, not 7", e.UUID, e.UUID.Version())
	case KindIO:
		if e.Err != nil {
			return "uuidx: io: " + e.Err.Error()
		}
		return "uuidx: io: " + e.Message
	default:
		if e.Context != "" {
			return fmt.Sprintf("uuidx: %s: %s", e.Context, e.Message)
		}
		return "uuidx: " + e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the package sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidFormat:
		return e.Kind == KindCustom
	case ErrInvalidLength:
		return e.Kind == KindInvalidLength
	case ErrInvalidVersion:
		return e.Kind == KindNotV7
	}
	return false
}

// NewCustom returns a KindCustom error carrying msg.
func NewCustom(msg string) *Error {
	return &Error{Kind: KindCustom, Message: msg}
}

// NewCustomFromErr returns a KindCustom error that keeps err's message and wraps it.
// A nil err yields an error with an empty message.
func NewCustomFromErr(err error) *Error {
	return &Error{Kind: KindCustom, Message: errMessage(err), Err: err}
}

// NewIO returns a KindIO error wrapping err. A nil err yields an error with
// an empty message.
func NewIO(err error) *Error {
	return &Error{Kind: KindIO, Message: errMessage(err), Err: err}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func codecError(context string, err error) *Error {
	e := NewCustomFromErr(err)
	e.Context = context
	return e
}
