package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"kunstbeheer/internal/auth"
	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/mail"
	"kunstbeheer/internal/model"
	"kunstbeheer/internal/repository"
)

// AuthService handles authentication and user registration.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Register(ctx context.Context, email, name, role string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	mailer     mail.Mailer
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, mailer mail.Mailer) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		mailer:     mailer,
	}
}

// Login verifies credentials and issues a session token. Unknown email, bad
// password and deactivated accounts all fail with 401-mapped errors; unknown
// email and bad password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, "", apperrors.ErrAccountInactive
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Register creates a user with a generated temporary password and mails it.
// The password never leaves the server in a response body.
func (s *authService) Register(ctx context.Context, email, name, role string) (*model.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrNameRequired
	}
	if role == "" {
		role = model.RoleViewer
	}
	if !model.ValidRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	tempPassword, err := auth.GenerateTempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index closes the race the existence check leaves open.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	go func() {
		if err := s.mailer.SendTempPassword(user.Email, user.Name, tempPassword); err != nil {
			log.Printf("mail temp password to %s: %v", user.Email, err)
		}
	}()

	return user, nil
}
