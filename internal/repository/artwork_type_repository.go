package repository

import (
	"context"

	"gorm.io/gorm"

	"kunstbeheer/internal/model"
)

// ArtworkTypeRepository defines artwork type persistence operations.
type ArtworkTypeRepository interface {
	Create(ctx context.Context, t *model.ArtworkType) error
	List(ctx context.Context) ([]model.ArtworkType, error)
	FindByName(ctx context.Context, name string) (*model.ArtworkType, error)
}

type artworkTypeRepository struct {
	db *gorm.DB
}

// NewArtworkTypeRepository builds a GORM-backed repository.
func NewArtworkTypeRepository(db *gorm.DB) ArtworkTypeRepository {
	return &artworkTypeRepository{db: db}
}

func (r *artworkTypeRepository) Create(ctx context.Context, t *model.ArtworkType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *artworkTypeRepository) List(ctx context.Context) ([]model.ArtworkType, error) {
	var types []model.ArtworkType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// FindByName matches ignoring case.
func (r *artworkTypeRepository) FindByName(ctx context.Context, name string) (*model.ArtworkType, error) {
	var t model.ArtworkType
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
