// Package uuidx provides small, allocation-light helpers around UUIDs:
// generation of random (v4) and time-ordered (v7) identifiers, compact text
// encodings, and recovery of the creation time embedded in a UUIDv7.
//
// Basic Usage:
//
//	id, err := uuidx.NewV7()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	short := id.EncodeToBase58()        // e.g. "1BKcnWM7a8sYzLhXXB1FG5"
//	web := id.EncodeToBase64URLNoPad()  // 22 chars, safe in URLs
//
//	back, err := uuidx.DecodeFromBase58(short)
//	ms, err := back.Timestamp()         // Unix epoch milliseconds
//
// Encodings:
//
//	Base58           EncodeToBase58 / DecodeFromBase58
//	Base64           EncodeToBase64 / DecodeFromBase64
//	Base64 URL       EncodeToBase64URL / DecodeFromBase64URL
//	Base64 URL nopad EncodeToBase64URLNoPad / DecodeFromBase64URLNoPad
//	Hex              EncodeToHex / DecodeFromHex
//
// Errors:
//
// Every fallible function returns a *Error. Its Kind tells the failures
// apart: KindInvalidLength when a decoded buffer is not 16 bytes (Context
// names the decoder and ActualLength the observed size), KindNotV7 when a
// timestamp is requested from a non-v7 UUID, KindCustom for codec and parse
// failures, and KindIO when the random source fails. The sentinels
// ErrInvalidLength, ErrInvalidVersion and ErrInvalidFormat work with
// errors.Is.
//
// Thread Safety:
//
// All functions are safe for concurrent use. The package-level v7 generator
// serializes callers with a mutex to keep its output strictly increasing.
//
// The UUIDv7 format includes:
//   - 48-bit timestamp (millisecond precision)
//   - 12-bit counter, reseeded randomly every millisecond
//   - 62-bit random data for uniqueness
//   - Version and variant bits as per RFC 9562
package uuidx
