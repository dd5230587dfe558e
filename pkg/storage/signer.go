// Package storage issues and verifies signed download URLs. The core
// never moves file bodies itself: resources live behind opaque handles
// served by whatever fronts the object store, and the only body served
// in-process is the rendered hash list. A signed URL carries its own
// authorization so agents can hand it straight to a downloader.
package storage

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cipherswarm/cipherswarm/pkg/config"
)

// Signature verification failures. Handlers map both to 404 so probing
// an expired URL and probing a nonexistent one look the same.
var (
	ErrBadSignature = errors.New("storage: signature mismatch")
	ErrExpired      = errors.New("storage: url expired")
)

// Signer mints and checks HMAC-signed download URLs.
type Signer struct {
	baseURL   string
	secret    []byte
	ttl       time.Duration
	ephemeral bool
}

// NewSigner builds a signer from configuration. An empty signing secret
// gets replaced by a random ephemeral one; issued URLs then stop
// verifying across restarts and Ephemeral reports true so the health
// probe can flag it.
func NewSigner(cfg *config.StorageConfig) (*Signer, error) {
	s := &Signer{
		baseURL: cfg.BaseURL,
		ttl:     cfg.URLTTL,
	}
	if cfg.SigningSecret != "" {
		s.secret = []byte(cfg.SigningSecret)
		return s, nil
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate ephemeral signing secret: %w", err)
	}
	s.secret = secret
	s.ephemeral = true
	return s, nil
}

// Ephemeral reports whether the signing secret was generated at startup
// rather than configured.
func (s *Signer) Ephemeral() bool {
	return s.ephemeral
}

// AbsoluteURL returns baseURL+path without signing, for self links.
func (s *Signer) AbsoluteURL(path string) string {
	return s.baseURL + path
}

// SignedURL returns an absolute URL for path, valid for the configured
// TTL. path must start with "/".
func (s *Signer) SignedURL(path string) string {
	expires := time.Now().Add(s.ttl).Unix()
	return fmt.Sprintf("%s%s?expires=%d&signature=%s",
		s.baseURL, path, expires, s.sign(path, expires))
}

// Verify checks the signature and expiry an incoming download request
// presented for path.
func (s *Signer) Verify(path string, expires int64, signature string) error {
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return ErrBadSignature
	}
	want, _ := hex.DecodeString(s.sign(path, expires))
	if !hmac.Equal(sig, want) {
		return ErrBadSignature
	}
	if time.Now().Unix() > expires {
		return ErrExpired
	}
	return nil
}

// VerifyQuery is Verify for raw query parameter values.
func (s *Signer) VerifyQuery(path, expires, signature string) error {
	if expires == "" || signature == "" {
		return ErrBadSignature
	}
	exp, err := strconv.ParseInt(expires, 10, 64)
	if err != nil {
		return ErrBadSignature
	}
	return s.Verify(path, exp, signature)
}

func (s *Signer) sign(path string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s\n%d", path, expires)
	return hex.EncodeToString(mac.Sum(nil))
}
