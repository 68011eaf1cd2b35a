package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewTokenService("unit-test-secret", 1)

	token, err := svc.Generate(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	svc := NewTokenService("unit-test-secret", 1)

	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", 1)
	verifier := NewTokenService("secret-b", 1)

	token, err := issuer.Generate(7, "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenService_DefaultsExpiry(t *testing.T) {
	svc := NewTokenService("secret", 0)
	assert.Equal(t, 72, svc.expireHours)
}
