package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"kunstbeheer/internal/auth"
	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("wachtwoord123")
	assert.NoError(t, err)

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name:     "success",
			email:    "jan@example.com",
			password: "wachtwoord123",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "jan@example.com").Return(&model.User{
					ID:           1,
					Email:        "jan@example.com",
					PasswordHash: hash,
					Role:         model.RoleAdmin,
					Active:       true,
				}, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "wachtwoord123",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "jan@example.com",
			password: "fout",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "jan@example.com").Return(&model.User{
					ID:           1,
					Email:        "jan@example.com",
					PasswordHash: hash,
					Active:       true,
				}, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "inactive account",
			email:    "jan@example.com",
			password: "wachtwoord123",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "jan@example.com").Return(&model.User{
					ID:           1,
					Email:        "jan@example.com",
					PasswordHash: hash,
					Active:       false,
				}, nil)
			},
			wantErr: apperrors.ErrAccountInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			svc := NewAuthService(repo, auth.NewJWTService("test-secret"), new(MockMailer))
			user, token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_TokenCarriesClaims(t *testing.T) {
	hash, err := auth.HashPassword("geheim")
	assert.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "admin@example.com").Return(&model.User{
		ID:           42,
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Active:       true,
	}, nil)

	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(repo, jwtService, new(MockMailer))

	_, token, err := svc.Login(context.Background(), "admin@example.com", "geheim")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		userName  string
		role      string
		setupMock func(*MockUserRepository)
		wantErr   error
		wantRole  string
	}{
		{
			name:     "success with explicit role",
			email:    "piet@example.com",
			userName: "Piet",
			role:     model.RoleManager,
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "piet@example.com").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			wantRole: model.RoleManager,
		},
		{
			name:     "empty role defaults to viewer",
			email:    "piet@example.com",
			userName: "Piet",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "piet@example.com").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			wantRole: model.RoleViewer,
		},
		{
			name:      "name required",
			email:     "piet@example.com",
			userName:  "   ",
			setupMock: func(repo *MockUserRepository) {},
			wantErr:   apperrors.ErrNameRequired,
		},
		{
			name:      "unknown role",
			email:     "piet@example.com",
			userName:  "Piet",
			role:      "superuser",
			setupMock: func(repo *MockUserRepository) {},
			wantErr:   apperrors.ErrInvalidRole,
		},
		{
			name:     "email already taken",
			email:    "piet@example.com",
			userName: "Piet",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "piet@example.com").Return(&model.User{ID: 7}, nil)
			},
			wantErr: apperrors.ErrEmailTaken,
		},
		{
			name:     "concurrent create loses to unique index",
			email:    "piet@example.com",
			userName: "Piet",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "piet@example.com").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			wantErr: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			mailer := new(MockMailer)
			mailer.On("SendTempPassword", tt.email, mock.Anything, mock.Anything).Return(nil).Maybe()

			svc := NewAuthService(repo, auth.NewJWTService("test-secret"), mailer)
			user, err := svc.Register(context.Background(), tt.email, tt.userName, tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantRole, user.Role)
				assert.True(t, user.Active)
				assert.NotEmpty(t, user.PasswordHash)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_MailsTempPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "nieuw@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	sent := make(chan string, 1)
	mailer := new(MockMailer)
	mailer.On("SendTempPassword", "nieuw@example.com", "Nieuw", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { sent <- args.String(2) }).
		Return(nil)

	svc := NewAuthService(repo, auth.NewJWTService("test-secret"), mailer)
	user, err := svc.Register(context.Background(), "nieuw@example.com", "Nieuw", "")
	assert.NoError(t, err)

	select {
	case tempPassword := <-sent:
		assert.NotEmpty(t, tempPassword)
		// The stored hash must match the mailed password.
		assert.True(t, auth.VerifyPassword(tempPassword, user.PasswordHash))
	case <-time.After(2 * time.Second):
		t.Fatal("temporary password was never mailed")
	}
	mailer.AssertExpectations(t)
}
