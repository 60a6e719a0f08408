// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestNewID(t *testing.T) {
	id1 := NewID()
	id2 := NewID()

	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("NewID() = %q is not a UUID: %v", id1, err)
	}
	// Test randomness - two IDs should be different
	if id1 == id2 {
		t.Error("NewID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestIssueAndParseToken(t *testing.T) {
	tests := []struct {
		name     string
		username string
		secret   string
		ttl      time.Duration
		wantErr  error
	}{
		{"standard", "alice", "secret", time.Hour, nil},
		{"default ttl", "bob", "secret", 0, nil},
		{"unicode username", "zoë", "secret", time.Minute, nil},
		{"empty secret", "alice", "", time.Hour, ErrEmptySecret},
		{"empty username", "", "secret", time.Hour, ErrMissingUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := IssueToken(tt.username, tt.secret, tt.ttl)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("IssueToken() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("IssueToken() error = %v", err)
			}

			// JWTs have three dot-separated parts
			if parts := strings.Split(token, "."); len(parts) != 3 {
				t.Errorf("IssueToken() produced %d parts, want 3", len(parts))
			}

			username, err := ParseToken(token, tt.secret)
			if err != nil {
				t.Fatalf("ParseToken() error = %v", err)
			}
			if username != tt.username {
				t.Errorf("ParseToken() = %q, want %q", username, tt.username)
			}
		})
	}
}

func TestParseToken_Rejects(t *testing.T) {
	valid, err := IssueToken("alice", "secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	noUsername, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{"wrong secret", valid, "other-secret", ErrInvalidToken},
		{"tampered", valid + "x", "secret", ErrInvalidToken},
		{"garbage", "not-a-token", "secret", ErrInvalidToken},
		{"expired", expired, "secret", ErrInvalidToken},
		{"missing expiry", noExpiry, "secret", ErrInvalidToken},
		{"alg none", unsigned, "secret", ErrInvalidToken},
		{"missing username", noUsername, "secret", ErrMissingUsername},
		{"empty secret", valid, "", ErrEmptySecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.secret)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseToken() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		salt string
	}{
		{"IPv4", "192.168.1.1", "ip-salt"},
		{"IPv6", "2001:0db8:85a3::8a2e:0370:7334", "ip-salt"},
		{"localhost", "127.0.0.1", "ip-salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip, tt.salt)

			// Should not be empty
			if hash == "" {
				t.Error("HashIP() returned empty string")
			}

			// Should be 16 hex characters (8 bytes * 2)
			if len(hash) != 16 {
				t.Errorf("HashIP() length = %d, want 16", len(hash))
			}

			// Should be valid hex
			for _, c := range hash {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashIP() contains invalid hex char: %c", c)
				}
			}

			// Should be deterministic
			hash2 := HashIP(tt.ip, tt.salt)
			if hash != hash2 {
				t.Error("HashIP() is not deterministic")
			}
		})
	}

	// Different IPs should produce different hashes
	hash1 := HashIP("192.168.1.1", "salt")
	hash2 := HashIP("192.168.1.2", "salt")
	if hash1 == hash2 {
		t.Error("HashIP() produced same hash for different IPs")
	}

	// Different salts should produce different hashes
	hash3 := HashIP("192.168.1.1", "salt1")
	hash4 := HashIP("192.168.1.1", "salt2")
	if hash3 == hash4 {
		t.Error("HashIP() produced same hash for different salts")
	}
}

// Benchmark tests
func BenchmarkIssueToken(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IssueToken("alice", "secret", time.Hour)
	}
}

func BenchmarkHashIP(b *testing.B) {
	for i := 0; i < b.N; i++ {
		HashIP("192.168.1.1", "salt")
	}
}
