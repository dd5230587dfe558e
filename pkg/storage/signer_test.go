package storage

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/pkg/config"
)

func newTestSigner(t *testing.T, secret string, ttl time.Duration) *Signer {
	t.Helper()
	s, err := NewSigner(&config.StorageConfig{
		BaseURL:       "https://swarm.example.com",
		SigningSecret: secret,
		URLTTL:        ttl,
	})
	require.NoError(t, err)
	return s
}

func TestSignedURLRoundTrip(t *testing.T) {
	s := newTestSigner(t, "test-secret", 15*time.Minute)

	signed := s.SignedURL("/files/resources/abc/rockyou.txt")
	require.True(t, strings.HasPrefix(signed, "https://swarm.example.com/files/resources/abc/rockyou.txt?"))

	u, err := url.Parse(signed)
	require.NoError(t, err)
	q := u.Query()

	err = s.VerifyQuery(u.Path, q.Get("expires"), q.Get("signature"))
	assert.NoError(t, err)
}

func TestVerifyRejectsTamperedPath(t *testing.T) {
	s := newTestSigner(t, "test-secret", 15*time.Minute)

	u, err := url.Parse(s.SignedURL("/files/resources/abc/rockyou.txt"))
	require.NoError(t, err)
	q := u.Query()

	err = s.VerifyQuery("/files/resources/abc/other.txt", q.Get("expires"), q.Get("signature"))
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyRejectsTamperedExpiry(t *testing.T) {
	s := newTestSigner(t, "test-secret", 15*time.Minute)

	u, err := url.Parse(s.SignedURL("/files/x"))
	require.NoError(t, err)
	q := u.Query()

	// Pushing the expiry out without re-signing breaks the MAC.
	err = s.VerifyQuery(u.Path, "99999999999", q.Get("signature"))
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyRejectsExpired(t *testing.T) {
	s := newTestSigner(t, "test-secret", -1*time.Minute)

	u, err := url.Parse(s.SignedURL("/files/x"))
	require.NoError(t, err)
	q := u.Query()

	err = s.VerifyQuery(u.Path, q.Get("expires"), q.Get("signature"))
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	s := newTestSigner(t, "test-secret", 15*time.Minute)

	assert.ErrorIs(t, s.VerifyQuery("/files/x", "", ""), ErrBadSignature)
	assert.ErrorIs(t, s.VerifyQuery("/files/x", "not-a-number", "aabb"), ErrBadSignature)
	assert.ErrorIs(t, s.VerifyQuery("/files/x", "12345", "zzzz"), ErrBadSignature)
}

func TestEphemeralSecret(t *testing.T) {
	configured := newTestSigner(t, "test-secret", time.Minute)
	assert.False(t, configured.Ephemeral())

	generated := newTestSigner(t, "", time.Minute)
	assert.True(t, generated.Ephemeral())

	// Two ephemeral signers never verify each other's URLs.
	other := newTestSigner(t, "", time.Minute)
	u, err := url.Parse(generated.SignedURL("/files/x"))
	require.NoError(t, err)
	q := u.Query()
	assert.ErrorIs(t, other.VerifyQuery(u.Path, q.Get("expires"), q.Get("signature")), ErrBadSignature)
}
