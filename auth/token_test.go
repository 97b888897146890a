package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	tm := NewTokenManager("test-secret", "solcraft", time.Hour)

	for _, userID := range []uint{1, 42, 99999} {
		token, err := tm.Issue(userID, "")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := tm.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	}
}

func TestIssueCarriesWalletAddress(t *testing.T) {
	tm := NewTokenManager("test-secret", "solcraft", time.Hour)

	token, err := tm.Issue(7, "So1CraftWa11et")
	require.NoError(t, err)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "So1CraftWa11et", claims.WalletAddress)
}

func TestVerifyExpiredToken(t *testing.T) {
	// A token whose encoded expiry is in the past resolves to Expired,
	// not Invalid.
	now := time.Now()
	claims := Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			Issuer:    "solcraft",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tm := NewTokenManager("test-secret", "solcraft", time.Hour)
	_, err = tm.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTamperedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", "solcraft", time.Hour)
	token, err := tm.Issue(7, "")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a character in the payload; the signature no longer matches.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = tm.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", "solcraft", time.Hour)
	verifier := NewTokenManager("secret-b", "solcraft", time.Hour)

	token, err := issuer.Issue(7, "")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyMalformedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", "solcraft", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c", "ey.ey.ey"} {
		_, err := tm.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid, "input %q", raw)
	}
}

func TestExtractBearer(t *testing.T) {
	token, err := ExtractBearer("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	for _, header := range []string{"", "abc123", "Basic abc123", "Bearer"} {
		_, err := ExtractBearer(header)
		assert.Error(t, err, "header %q", header)
	}
}
