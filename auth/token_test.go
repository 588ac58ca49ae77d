package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestTokens(t *testing.T, secret string, ttl time.Duration) *TokenService {
	t.Helper()
	s, err := NewTokenService(secret, ttl, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return s
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t, "super-secret", 0)

	users := []struct{ id, username string }{
		{"0f8c3d9e-1b2a-4c5d-8e7f-112233445566", "rick"},
		{"a", "ünïcødé"},
		{"id with spaces", "user.name+tag@example.com"},
	}
	for _, u := range users {
		tok, err := tokens.Issue(u.id, u.username)
		require.NoError(t, err)
		assert.Len(t, strings.Split(tok, "."), 3)

		claims, err := tokens.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, u.id, claims.ID)
		assert.Equal(t, u.username, claims.Username)
		assert.True(t, claims.IssuedAt.Equal(fixedNow))
	}
}

func TestIssue_DeterministicForSameInputs(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t, "k", 0)
	a, err := tokens.Issue("1", "rick")
	require.NoError(t, err)
	b, err := tokens.Issue("1", "rick")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestIssue_NoExpiryByDefault(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t, "k", 0)
	tok, err := tokens.Issue("1", "rick")
	require.NoError(t, err)

	payload, err := base64.RawURLEncoding.DecodeString(strings.Split(tok, ".")[1])
	require.NoError(t, err)
	assert.NotContains(t, string(payload), `"exp"`)
	assert.Contains(t, string(payload), `"iat"`)
}

func TestVerify_AnySignatureCharMutationIsInvalidSignature(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t, "super-secret", 0)
	tok, err := tokens.Issue("42", "morty")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	sig := parts[2]
	for i := range sig {
		replacement := byte('A')
		if sig[i] == 'A' {
			replacement = 'B'
		}
		mutated := sig[:i] + string(replacement) + sig[i+1:]

		_, err := tokens.Verify(parts[0] + "." + parts[1] + "." + mutated)
		require.ErrorIs(t, err, ErrInvalidSignature, "mutation at index %d", i)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestTokens(t, "right-secret", 0).Issue("u2", "summer")
	require.NoError(t, err)

	_, err = newTestTokens(t, "wrong-secret", 0).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t, "k", 0)
	claims := tokenClaims{ID: "1", Username: "rick"}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = tokens.Verify(hs512)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.Verify(none)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tokens := newTestTokens(t, "k", 0)
	good, err := tokens.Issue("1", "rick")
	require.NoError(t, err)
	parts := strings.Split(good, ".")

	notJSON := base64.RawURLEncoding.EncodeToString([]byte("not json"))
	noIdentity := base64.RawURLEncoding.EncodeToString([]byte(`{"iat":1}`))
	nullHeader := base64.RawURLEncoding.EncodeToString([]byte(`null`))
	noAlg := base64.RawURLEncoding.EncodeToString([]byte(`{"typ":"JWT"}`))
	numericAlg := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":256,"typ":"JWT"}`))

	tests := map[string]string{
		"empty":              "",
		"one segment":        "abc",
		"two segments":       parts[0] + "." + parts[1],
		"four segments":      good + ".extra",
		"payload not b64":    parts[0] + ".***." + parts[2],
		"payload not json":   parts[0] + "." + notJSON + "." + parts[2],
		"header not json":    notJSON + "." + parts[1] + "." + parts[2],
		"missing identity":   parts[0] + "." + noIdentity + "." + parts[2],
		"null header":        nullHeader + "." + parts[1] + "." + parts[2],
		"header without alg": noAlg + "." + parts[1] + "." + parts[2],
		"non-string alg":     numericAlg + "." + parts[1] + "." + parts[2],
		"classic not a jwt":  "not.a.jwt",
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Verify(tok)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestVerify_ExpiredWhenTTLSet(t *testing.T) {
	t.Parallel()

	issuer := newTestTokens(t, "k", time.Minute)
	tok, err := issuer.Issue("1", "rick")
	require.NoError(t, err)

	later, err := NewTokenService("k", time.Minute, WithClock(func() time.Time { return fixedNow.Add(time.Hour) }))
	require.NoError(t, err)
	_, err = later.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "rick", claims.Username)
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("", 0)
	assert.Error(t, err)
}
