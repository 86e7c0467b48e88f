package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseSession(t *testing.T) {
	token, err := GenerateToken("64f1a2b3c4d5e6f708192a3b", "editor@example.com", "editor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := ParseSession(token)
	require.NoError(t, err)

	assert.Equal(t, "64f1a2b3c4d5e6f708192a3b", session.UserID)
	assert.Equal(t, "editor@example.com", session.Email)
	assert.Equal(t, "editor", session.Role)

	remaining := time.Until(session.ExpiresAt)
	assert.Greater(t, remaining, SessionTTL-time.Minute)
	assert.LessOrEqual(t, remaining, SessionTTL)
}

func TestParseSession_RejectsGarbage(t *testing.T) {
	_, err := ParseSession("not.a.token")
	assert.Error(t, err)
}

func TestParseSession_RejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken("64f1a2b3c4d5e6f708192a3b", "a@b.com", "viewer")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseSession(tampered)
	assert.Error(t, err)
}

func TestHashToken_StableAndOpaque(t *testing.T) {
	h1 := HashToken("some-token")
	h2 := HashToken("some-token")
	h3 := HashToken("other-token")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
	assert.NotContains(t, h1, "some-token")
}
