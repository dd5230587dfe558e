package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Token prefixes. Registration tokens are one-time credentials minted by
// an operator; agent tokens are the long-lived bearer credentials issued
// when the registration token is redeemed.
const (
	AgentTokenPrefix        = "csa_"
	RegistrationTokenPrefix = "csi_"
)

const tokenSecretBytes = 24

// NewAgentToken mints a bearer token of the form csa_<agent_id>_<random>.
func NewAgentToken(agentID int) (string, error) {
	secret, err := randomHex(tokenSecretBytes)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d_%s", AgentTokenPrefix, agentID, secret), nil
}

// NewRegistrationToken mints a one-time registration token csi_<random>.
func NewRegistrationToken() (string, error) {
	secret, err := randomHex(tokenSecretBytes)
	if err != nil {
		return "", err
	}
	return RegistrationTokenPrefix + secret, nil
}

// ParseAgentToken extracts the agent id from a csa_ bearer token. The
// secret part is not validated here; callers compare the full token
// against the stored value with TokenEqual.
func ParseAgentToken(token string) (int, bool) {
	rest, found := strings.CutPrefix(token, AgentTokenPrefix)
	if !found {
		return 0, false
	}
	idPart, secret, found := strings.Cut(rest, "_")
	if !found || secret == "" {
		return 0, false
	}
	id, err := strconv.Atoi(idPart)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// TokenEqual compares a presented token against the stored one in
// constant time.
func TokenEqual(presented, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) == 1
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
