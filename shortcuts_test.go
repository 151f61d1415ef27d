package uuidx

import (
	"strings"
	"testing"
)

func TestShortcuts(t *testing.T) {
	tests := []struct {
		name     string
		gen      func() (string, error)
		decode   func(string) (UUID, error)
		version  Version
		length   int
		excluded string
	}{
		{"v4 b58", NewV4B58, DecodeFromBase58, VersionRandom, 0, "0OIl+/="},
		{"v7 b58", NewV7B58, DecodeFromBase58, VersionTimeSorted, 0, "0OIl+/="},
		{"v4 b64", NewV4B64, DecodeFromBase64, VersionRandom, 24, "-_"},
		{"v4 b64url", NewV4B64URL, DecodeFromBase64URL, VersionRandom, 24, "+/"},
		{"v4 b64url nopad", NewV4B64URLNoPad, DecodeFromBase64URLNoPad, VersionRandom, 22, "+/="},
		{"v7 b64", NewV7B64, DecodeFromBase64, VersionTimeSorted, 24, "-_"},
		{"v7 b64url", NewV7B64URL, DecodeFromBase64URL, VersionTimeSorted, 24, "+/"},
		{"v7 b64url nopad", NewV7B64URLNoPad, DecodeFromBase64URLNoPad, VersionTimeSorted, 22, "+/="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.gen()
			if err != nil {
				t.Fatalf("generate error = %v", err)
			}
			if tt.length > 0 && len(s) != tt.length {
				t.Errorf("len(%q) = %d, want %d", s, len(s), tt.length)
			}
			if strings.ContainsAny(s, tt.excluded) {
				t.Errorf("%q contains one of %q", s, tt.excluded)
			}

			id, err := tt.decode(s)
			if err != nil {
				t.Fatalf("decode(%q) error = %v", s, err)
			}
			if id.Version() != tt.version {
				t.Errorf("version = %v, want %v", id.Version(), tt.version)
			}
		})
	}
}

func TestShortcuts_V7Ordering(t *testing.T) {
	a, err := NewV7B58()
	if err != nil {
		t.Fatalf("NewV7B58() error = %v", err)
	}
	b, err := NewV7B58()
	if err != nil {
		t.Fatalf("NewV7B58() error = %v", err)
	}

	ua, _ := DecodeFromBase58(a)
	ub, _ := DecodeFromBase58(b)
	if ua.Compare(ub) >= 0 {
		t.Errorf("successive v7 ids not increasing: %v >= %v", ua, ub)
	}
}
