package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/model"
	"kunstbeheer/internal/repository"
)

// ArtworkTypeService manages the artwork type list.
type ArtworkTypeService interface {
	Create(ctx context.Context, name string) (*model.ArtworkType, error)
	List(ctx context.Context) ([]model.ArtworkType, error)
}

type artworkTypeService struct {
	repo repository.ArtworkTypeRepository
}

// NewArtworkTypeService builds an ArtworkTypeService.
func NewArtworkTypeService(repo repository.ArtworkTypeRepository) ArtworkTypeService {
	return &artworkTypeService{repo: repo}
}

// Create adds a type. Names are unique ignoring case: "Schilderij" and
// "schilderij" are the same type. The lookup gives the friendly error, the
// unique index catches concurrent creates.
func (s *artworkTypeService) Create(ctx context.Context, name string) (*model.ArtworkType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrNameRequired
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrTypeExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check type existence: %w", err)
	}

	t := &model.ArtworkType{Name: name}
	if err := s.repo.Create(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTypeExists
		}
		return nil, fmt.Errorf("create type: %w", err)
	}
	return t, nil
}

func (s *artworkTypeService) List(ctx context.Context) ([]model.ArtworkType, error) {
	return s.repo.List(ctx)
}
