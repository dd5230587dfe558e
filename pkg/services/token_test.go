package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgentToken(t *testing.T) {
	tok, err := NewAgentToken(42)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tok, "csa_42_"))
	assert.Len(t, tok, len("csa_42_")+48)

	id, ok := ParseAgentToken(tok)
	require.True(t, ok)
	assert.Equal(t, 42, id)

	// Two mints never collide.
	tok2, err := NewAgentToken(42)
	require.NoError(t, err)
	assert.NotEqual(t, tok, tok2)
}

func TestNewRegistrationToken(t *testing.T) {
	tok, err := NewRegistrationToken()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tok, "csi_"))
	assert.Len(t, tok, len("csi_")+48)
}

func TestParseAgentToken_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"wrong prefix", "csi_42_deadbeef"},
		{"no separator", "csa_42deadbeef"},
		{"non-numeric id", "csa_abc_deadbeef"},
		{"zero id", "csa_0_deadbeef"},
		{"negative id", "csa_-3_deadbeef"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ParseAgentToken(tc.token)
			assert.False(t, ok)
		})
	}
}

func TestTokenEqual(t *testing.T) {
	assert.True(t, TokenEqual("csa_1_aa", "csa_1_aa"))
	assert.False(t, TokenEqual("csa_1_aa", "csa_1_ab"))
	assert.False(t, TokenEqual("csa_1_aa", "csa_1_aaa"))
	assert.False(t, TokenEqual("", "csa_1_aa"))
}
