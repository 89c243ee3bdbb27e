// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	SetJWTSecret("unit-test-secret")

	sessionID := uuid.New()
	token, err := GenerateSessionToken(sessionID, 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateSessionToken(token)
	assert.NoError(t, err)
	assert.Equal(t, sessionID.String(), claims.SessionID)
	assert.Equal(t, "boom-backend", claims.Issuer)
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	SetJWTSecret("unit-test-secret")

	_, err := ValidateSessionToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateSessionTokenRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("secret-one")
	token, err := GenerateSessionToken(uuid.New(), 1)
	assert.NoError(t, err)

	SetJWTSecret("secret-two")
	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestExpiredSessionTokenIsRejected(t *testing.T) {
	SetJWTSecret("unit-test-secret")

	token, err := GenerateSessionToken(uuid.New(), -1)
	assert.NoError(t, err)

	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}
