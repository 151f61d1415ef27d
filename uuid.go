package uuidx

import (
	"bytes"
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// UUID represents a Universally Unique Identifier as defined by RFC 9562.
// The natural ordering of UUIDs is the lexicographic order of their bytes,
// which is also the order of their big-endian 128-bit integer value.
type UUID [16]byte

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom // UUIDv4
	VersionNameBasedSHA1
	VersionReorderedTime
	VersionTimeSorted // UUIDv7
	VersionCustom     // UUIDv8
)

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Nil is the nil UUID (all zeros)
var Nil UUID

// Version returns the version nibble of the UUID
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (u UUID) String() string {
	return uuid.UUID(u).String()
}

// Google converts u to a github.com/google/uuid value.
func (u UUID) Google() uuid.UUID {
	return uuid.UUID(u)
}

// FromGoogle converts a github.com/google/uuid value.
func FromGoogle(g uuid.UUID) UUID {
	return UUID(g)
}

// Parse parses a UUID from its string representation.
// It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
func Parse(s string) (UUID, error) {
	g, err := uuid.Parse(s)
	if err != nil {
		return Nil, codecError(ContextText, err)
	}
	return UUID(g), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuidx: Parse(%q): %v", s, err))
	}
	return u
}

// Bytes returns the UUID as a byte slice
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	id, err := FromBytesContext(data, ContextBinary)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface. It accepts NULL, the textual
// forms understood by Parse, and 16 raw bytes as stored in BINARY(16) columns.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		if src == "" {
			return nil
		}
		return u.UnmarshalText([]byte(src))
	case []byte:
		switch len(src) {
		case 0:
			return nil
		case 16:
			return u.UnmarshalBinary(src)
		}
		return u.UnmarshalText(src)
	default:
		return NewCustom(fmt.Sprintf("cannot scan type %T into UUID", src))
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	return bytes.Compare(u[:], other[:])
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
