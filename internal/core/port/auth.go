package port

import (
	"context"

	"todoapi/internal/core/model/request"
)

type AuthService interface {
	// Register persists a new user and returns a signed token bound to it.
	Register(ctx context.Context, req *request.RegisterRequest) (string, error)

	// Login verifies credentials and returns a signed token. Unknown email
	// and wrong password fail with the same message.
	Login(ctx context.Context, req *request.LoginRequest) (string, error)
}

type TokenService interface {
	CreateToken(userID string) (string, error)
	VerifyToken(token string) (string, error)
}
