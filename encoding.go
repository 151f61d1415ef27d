package uuidx

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase58 encodes the UUID with the Bitcoin Base58 alphabet.
// Leading zero bytes are kept as leading '1' characters, so the output
// length varies between 16 and 22 characters.
func (u UUID) EncodeToBase58() string {
	return base58.Encode(u[:])
}

// EncodeToBase64 encodes the UUID to a padded standard base64 string (24 chars)
func (u UUID) EncodeToBase64() string {
	return base64.StdEncoding.EncodeToString(u[:])
}

// EncodeToBase64URL encodes the UUID to a padded URL-safe base64 string (24 chars)
func (u UUID) EncodeToBase64URL() string {
	return base64.URLEncoding.EncodeToString(u[:])
}

// EncodeToBase64URLNoPad encodes the UUID to an unpadded URL-safe base64 string (22 chars)
func (u UUID) EncodeToBase64URLNoPad() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// DecodeFromHex decodes a 32 character hexadecimal string to UUID
func DecodeFromHex(s string) (UUID, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Nil, codecError(ContextHex, err)
	}
	return FromBytesContext(data, ContextHex)
}

// DecodeFromBase58 decodes a Base58 string to UUID. The empty string
// decodes to zero bytes and is reported as a length error.
func DecodeFromBase58(s string) (UUID, error) {
	if s == "" {
		return FromBytesContext(nil, ContextBase58)
	}
	data, err := base58.Decode(s)
	if err != nil {
		return Nil, codecError(ContextBase58, err)
	}
	return FromBytesContext(data, ContextBase58)
}

// DecodeFromBase64 decodes a padded standard base64 string to UUID
func DecodeFromBase64(s string) (UUID, error) {
	return decodeBase64(base64.StdEncoding, s, ContextBase64)
}

// DecodeFromBase64URL decodes a padded URL-safe base64 string to UUID
func DecodeFromBase64URL(s string) (UUID, error) {
	return decodeBase64(base64.URLEncoding, s, ContextBase64URL)
}

// DecodeFromBase64URLNoPad decodes an unpadded URL-safe base64 string to UUID
func DecodeFromBase64URLNoPad(s string) (UUID, error) {
	return decodeBase64(base64.RawURLEncoding, s, ContextBase64URLNoPad)
}

func decodeBase64(enc *base64.Encoding, s, context string) (UUID, error) {
	data, err := enc.DecodeString(s)
	if err != nil {
		return Nil, codecError(context, err)
	}
	return FromBytesContext(data, context)
}
