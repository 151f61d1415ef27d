package uuidx

// Decode context labels carried by *Error.Context.
const (
	ContextBase58         = "base58"
	ContextBase64         = "base64"
	ContextBase64URL      = "base64url"
	ContextBase64URLNoPad = "base64url-nopad"
	ContextHex            = "hex"
	ContextText           = "text"
	ContextBinary         = "binary"
	ContextBytes          = "bytes"
)

// FromBytesContext reinterprets b as a UUID. It succeeds only when b is
// exactly 16 bytes long; otherwise the returned *Error has kind
// KindInvalidLength and records len(b) together with context, so callers
// can tell which decoder produced the bad buffer.
func FromBytesContext(b []byte, context string) (UUID, error) {
	var u UUID
	if len(b) != len(u) {
		return u, &Error{Kind: KindInvalidLength, Context: context, ActualLength: len(b)}
	}
	copy(u[:], b)
	return u, nil
}

// FromBytes creates a UUID from a byte slice
func FromBytes(b []byte) (UUID, error) {
	return FromBytesContext(b, ContextBytes)
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	u, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return u
}
