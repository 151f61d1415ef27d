package uuidx

// Generate-and-encode shortcuts. Each returns the encoded form of a fresh
// UUID, or the generation error.

// NewV4B58 returns a fresh UUIDv4 encoded with Base58.
func NewV4B58() (string, error) {
	return encodeNew(NewV4, UUID.EncodeToBase58)
}

// NewV7B58 returns a fresh UUIDv7 encoded with Base58.
func NewV7B58() (string, error) {
	return encodeNew(NewV7, UUID.EncodeToBase58)
}

// NewV4B64 returns a fresh UUIDv4 as padded standard base64.
func NewV4B64() (string, error) {
	return encodeNew(NewV4, UUID.EncodeToBase64)
}

// NewV4B64URL returns a fresh UUIDv4 as padded URL-safe base64.
func NewV4B64URL() (string, error) {
	return encodeNew(NewV4, UUID.EncodeToBase64URL)
}

// NewV4B64URLNoPad returns a fresh UUIDv4 as unpadded URL-safe base64.
func NewV4B64URLNoPad() (string, error) {
	return encodeNew(NewV4, UUID.EncodeToBase64URLNoPad)
}

// NewV7B64 returns a fresh UUIDv7 as padded standard base64.
func NewV7B64() (string, error) {
	return encodeNew(NewV7, UUID.EncodeToBase64)
}

// NewV7B64URL returns a fresh UUIDv7 as padded URL-safe base64.
func NewV7B64URL() (string, error) {
	return encodeNew(NewV7, UUID.EncodeToBase64URL)
}

// NewV7B64URLNoPad returns a fresh UUIDv7 as unpadded URL-safe base64.
func NewV7B64URLNoPad() (string, error) {
	return encodeNew(NewV7, UUID.EncodeToBase64URLNoPad)
}

func encodeNew(gen func() (UUID, error), encode func(UUID) string) (string, error) {
	u, err := gen()
	if err != nil {
		return "", err
	}
	return encode(u), nil
}
