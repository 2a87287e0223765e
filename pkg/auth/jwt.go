package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWT issues and verifies the signed identity tokens. Secret and expiry come
// from configuration; tokens are never stored server-side.
type JWT struct {
	Secret string
	Expiry time.Duration
}

func NewJWT(secret string, expiry time.Duration) *JWT {
	return &JWT{Secret: secret, Expiry: expiry}
}

func (j *JWT) CreateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(j.Expiry).Unix(),
	})

	return token.SignedString([]byte(j.Secret))
}

// VerifyToken returns the bound user identifier. Expired tokens fail here;
// jwt/v5 validates the exp claim during Parse.
func (j *JWT) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(j.Secret), nil
	})

	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	id, ok := claims["id"].(string)

	if !ok || id == "" {
		return "", fmt.Errorf("token missing user id")
	}

	return id, nil
}
