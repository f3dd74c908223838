package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kunstbeheer/internal/auth"
	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/middleware"
	"kunstbeheer/internal/model"
	"kunstbeheer/internal/repository"
)

// UserUpdate carries the mutable user fields. Nil means "leave unchanged".
type UserUpdate struct {
	Name     *string
	Email    *string
	Role     *string
	Active   *bool
	Password *string
}

// UserService exposes user management operations with the self-or-admin
// policy applied.
type UserService interface {
	Get(ctx context.Context, actor *auth.Claims, id uint) (*model.User, error)
	List(ctx context.Context, search string, page, limit int) ([]model.User, int64, error)
	Update(ctx context.Context, actor *auth.Claims, id uint, upd UserUpdate) (*model.User, error)
	Delete(ctx context.Context, actor *auth.Claims, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Get(ctx context.Context, actor *auth.Claims, id uint) (*model.User, error) {
	if !middleware.IsSelfOrAdmin(actor, id) {
		return nil, apperrors.ErrForbidden
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, search string, page, limit int) ([]model.User, int64, error) {
	return s.repo.List(ctx, search, page, limit)
}

// Update applies the self-or-admin policy. A non-admin may only change their
// own name and password; role, active and email in their payload are dropped
// without error so partial client updates keep working.
func (s *userService) Update(ctx context.Context, actor *auth.Claims, id uint, upd UserUpdate) (*model.User, error) {
	if !middleware.IsSelfOrAdmin(actor, id) {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if actor.Role != model.RoleAdmin {
		upd.Email = nil
		upd.Role = nil
		upd.Active = nil
	}

	if upd.Name != nil && *upd.Name != "" {
		user.Name = *upd.Name
	}
	if upd.Email != nil && *upd.Email != "" {
		user.Email = *upd.Email
	}
	if upd.Role != nil {
		if !model.ValidRole(*upd.Role) {
			return nil, apperrors.ErrInvalidRole
		}
		user.Role = *upd.Role
	}
	if upd.Active != nil {
		user.Active = *upd.Active
	}
	if upd.Password != nil && *upd.Password != "" {
		hash, err := auth.HashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes a user. Admin-only at the route level; an admin can never
// remove their own account.
func (s *userService) Delete(ctx context.Context, actor *auth.Claims, id uint) error {
	if actor.UserID == id {
		return apperrors.ErrSelfDelete
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}
