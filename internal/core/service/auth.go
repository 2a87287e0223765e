package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	"todoapi/internal/core/util"
)

type AuthService struct {
	users  port.UserRepository
	tokens port.TokenService
}

func NewAuthService(users port.UserRepository, tokens port.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req *request.RegisterRequest) (string, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if len([]rune(name)) < 2 {
		return "", domain.Validation("Name must be at least 2 characters long")
	}

	existing, err := s.users.GetByEmail(ctx, email)

	if err != nil && !domain.IsNotFound(err) {
		return "", err
	}

	if err == nil && !existing.ID.IsZero() {
		return "", domain.Conflict("Email already in use")
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return "", err
	}

	now := time.Now().UTC()

	user := domain.User{
		Name:              name,
		Email:             email,
		EncryptedPassword: encrypted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	saved, err := s.users.Create(ctx, user)

	if err != nil {
		return "", err
	}

	log.Info().Str("email", saved.Email).Msg("user registered")

	return s.tokens.CreateToken(saved.ID.Hex())
}

func (s *AuthService) Login(ctx context.Context, req *request.LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))

	if err != nil {
		if domain.IsNotFound(err) {
			return "", domain.Unauthorized("Invalid credentials")
		}
		return "", err
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		log.Debug().Str("email", user.Email).Msg("password mismatch")
		return "", domain.Unauthorized("Invalid credentials")
	}

	return s.tokens.CreateToken(user.ID.Hex())
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
