// internal/auth/session_test.go
package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndAuthenticateJWT(t *testing.T) {
	require.NoError(t, Init())

	id := uuid.New().String()
	token, err := CreateJWT(id)
	require.NoError(t, err)

	sub, err := AuthenticateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, id, sub)
}

func TestAuthenticateJWTRejectsGarbage(t *testing.T) {
	require.NoError(t, Init())

	_, err := AuthenticateJWT("not-a-token")
	assert.Error(t, err)
}

func TestTokenFromOtherKeyPairRejected(t *testing.T) {
	require.NoError(t, Init())
	token, err := CreateJWT(uuid.New().String())
	require.NoError(t, err)

	// A restart rotates keys; old tokens must fail verification.
	require.NoError(t, Init())
	_, err = AuthenticateJWT(token)
	assert.Error(t, err)
}
