// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"

	"devlink/internal/auth"
	"devlink/internal/models"
	"devlink/internal/repository"
	"devlink/internal/validation"
)

// AuthService handles registration, credential login and identity lookup.
type AuthService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthService(userRepo repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// gravatarURL derives a deterministic avatar URL from the email so equal
// emails always map to the same image.
func gravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("//www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}

// Register creates a user with a hashed password and a gravatar-derived
// avatar, and returns a signed token for the new identity.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	var v validation.Violations
	v.Require("name", in.Name, "Name is required")
	v.Email("email", in.Email)
	v.Password("password", in.Password)
	if err := v.Err(); err != nil {
		return "", err
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", models.NewValidationError("User already exists")
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
		Avatar:   gravatarURL(in.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(auth.Claims{UserID: user.ID})
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the same message so callers cannot probe which
// emails are registered.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	var v validation.Violations
	v.Email("email", in.Email)
	v.Require("password", in.Password, "Password is required")
	if err := v.Err(); err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if user == nil || !s.hasher.Verify(in.Password, user.Password) {
		return "", models.NewValidationError("Invalid Credentials")
	}

	token, err := s.tokens.Issue(auth.Claims{UserID: user.ID})
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

// CurrentUser returns the authenticated user's record, password excluded by
// the model's JSON encoding.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
