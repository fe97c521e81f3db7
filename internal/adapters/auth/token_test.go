package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokens_IssueAndVerify(t *testing.T) {
	tokens := NewJWTTokens("test-secret")

	signed, err := tokens.Issue("owner", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	subject, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "owner", subject)
}

func TestJWTTokens_WrongSecret(t *testing.T) {
	signed, err := NewJWTTokens("secret-a").Issue("owner", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTTokens("secret-b").Verify(signed)
	assert.Error(t, err)
}

func TestJWTTokens_Expired(t *testing.T) {
	tokens := NewJWTTokens("test-secret")
	signed, err := tokens.Issue("owner", -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.Error(t, err)
}

func TestJWTTokens_Garbage(t *testing.T) {
	_, err := NewJWTTokens("test-secret").Verify("not.a.token")
	assert.Error(t, err)
}
