package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"resepku/internal/auth"
	apperrors "resepku/internal/errors"
	"resepku/internal/model"
	"resepku/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	handles    *HandleGenerator
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, handles *HandleGenerator) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		handles:    handles,
	}
}

// Register creates a new user with a hashed password and a fresh handle.
// The email pre-check gives the common case a clean 409; the unique indexes
// catch whatever races past it. A handle-index violation means another
// registration won the same draw, so the whole allocation is retried.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	for attempt := 0; attempt < 2; attempt++ {
		handle, err := s.handles.Generate(ctx)
		if err != nil {
			return nil, err
		}

		user := &model.User{
			Username:     username,
			Email:        email,
			PasswordHash: string(hashedPassword),
			Handle:       handle,
		}

		err = s.users.Create(ctx, user)
		if err == nil {
			return user, nil
		}
		if repository.IsDuplicateEntryOn(err, model.UserHandleIndex) {
			continue
		}
		if repository.IsDuplicateEntryOn(err, model.UserEmailIndex) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return nil, apperrors.ErrHandleSpaceExhausted
}

// Login authenticates a user and issues a session token. An unknown email
// and a wrong password are reported separately, matching the API contract.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}
