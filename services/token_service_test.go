package services

import (
	"testing"
	"time"

	"storefront/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	userID := uuid.New()

	tokenStr, err := tokens.GenerateSessionToken(userID, "alice@example.com", models.RoleCustomer)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenStr)

	claims, err := tokens.ValidateSessionToken(tokenStr)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, models.RoleCustomer, claims.Role)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	other := NewTokenService("different-secret", time.Hour)

	tokenStr, err := tokens.GenerateSessionToken(uuid.New(), "alice@example.com", models.RoleCustomer)
	assert.NoError(t, err)

	_, err = other.ValidateSessionToken(tokenStr)
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Minute)

	tokenStr, err := tokens.GenerateSessionToken(uuid.New(), "alice@example.com", models.RoleCustomer)
	assert.NoError(t, err)

	_, err = tokens.ValidateSessionToken(tokenStr)
	assert.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	_, err := tokens.ValidateSessionToken("not-a-jwt")
	assert.Error(t, err)
}
