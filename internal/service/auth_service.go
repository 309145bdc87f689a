package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"titlehub/internal/auth"
	apperrors "titlehub/internal/errors"
	"titlehub/internal/model"
	"titlehub/internal/repository"
)

// AuthService handles signup, login and password changes.
type AuthService interface {
	Signup(ctx context.Context, name, email, phone string, role model.Role, password string) (*model.User, string, error)
	Login(ctx context.Context, emailOrPhone, password string) (*model.User, string, error)
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	revocation auth.RevocationStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, revocation auth.RevocationStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		revocation: revocation,
	}
}

// Signup creates a user with a hashed password and issues a token for the new
// identity. Uniqueness of email and phone is delegated to the store's unique
// indexes; a violation surfaces as a conflict rather than being pre-checked.
func (s *authService) Signup(ctx context.Context, name, email, phone string, role model.Role, password string) (*model.User, string, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Role:         role,
		PasswordHash: hashed,
		Status:       model.StatusActive,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", fmt.Errorf("%w: email or phone already registered", apperrors.ErrConflict)
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates by email or phone and returns a fresh token. Unknown
// identifier and wrong password collapse into the same error so the response
// does not leak which one failed.
func (s *authService) Login(ctx context.Context, emailOrPhone, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmailOrPhone(ctx, emailOrPhone)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// ChangePassword verifies the current password, stores the new hash, and
// records a revocation cutoff so tokens issued before the change stop
// verifying at the gate.
func (s *authService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(oldPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.revocation.RevokeBefore(ctx, userID, time.Now()); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}

	return nil
}
