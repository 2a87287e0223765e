package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_CreateAndVerifyToken(t *testing.T) {
	jwt := NewJWT("test-secret", time.Hour)

	token, err := jwt.CreateToken("64f1b2a3c4d5e6f7a8b9c0d1")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := jwt.VerifyToken(token)

	assert.NoError(t, err)
	assert.Equal(t, "64f1b2a3c4d5e6f7a8b9c0d1", userID)
}

func TestJWT_VerifyToken_WrongSecret(t *testing.T) {
	jwt := NewJWT("test-secret", time.Hour)

	token, err := jwt.CreateToken("64f1b2a3c4d5e6f7a8b9c0d1")
	assert.NoError(t, err)

	other := NewJWT("another-secret", time.Hour)

	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWT_VerifyToken_Expired(t *testing.T) {
	jwt := NewJWT("test-secret", -time.Minute)

	token, err := jwt.CreateToken("64f1b2a3c4d5e6f7a8b9c0d1")
	assert.NoError(t, err)

	_, err = jwt.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWT_VerifyToken_Malformed(t *testing.T) {
	jwt := NewJWT("test-secret", time.Hour)

	_, err := jwt.VerifyToken("not-a-token")
	assert.Error(t, err)
}
