package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/model"
)

// LocationRepository defines location persistence operations.
type LocationRepository interface {
	Create(ctx context.Context, location *model.Location) error
	Update(ctx context.Context, location *model.Location) error
	FindByID(ctx context.Context, id uint) (*model.Location, error)
	List(ctx context.Context, search, city string, page, limit int) ([]model.Location, int64, error)
	ListAll(ctx context.Context) ([]model.Location, error)
	DeleteIfUnreferenced(ctx context.Context, id uint) error
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository builds a GORM-backed repository.
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) Update(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *locationRepository) FindByID(ctx context.Context, id uint) (*model.Location, error) {
	var location model.Location
	if err := r.db.WithContext(ctx).First(&location, id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) List(ctx context.Context, search, city string, page, limit int) ([]model.Location, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Location{})
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if city != "" {
		q = q.Where("city = ?", city)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var locations []model.Location
	if err := q.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&locations).Error; err != nil {
		return nil, 0, err
	}
	return locations, total, nil
}

// ListAll returns every location ordered by name, for report fan-out.
func (r *locationRepository) ListAll(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// DeleteIfUnreferenced deletes the location unless artworks are still linked.
// Same transactional guard as the artist repository.
func (r *locationRepository) DeleteIfUnreferenced(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Artwork{}).Where("location_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &apperrors.ReferencedError{ArtworkCount: count}
		}
		res := tx.Delete(&model.Location{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
