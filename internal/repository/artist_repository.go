package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/model"
)

// ArtistRepository defines artist persistence operations.
type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) error
	Update(ctx context.Context, artist *model.Artist) error
	FindByID(ctx context.Context, id uint) (*model.Artist, error)
	List(ctx context.Context, search, country string, page, limit int) ([]model.Artist, int64, error)
	ListAll(ctx context.Context) ([]model.Artist, error)
	DeleteIfUnreferenced(ctx context.Context, id uint) error
}

type artistRepository struct {
	db *gorm.DB
}

// NewArtistRepository builds a GORM-backed repository.
func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *model.Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) Update(ctx context.Context, artist *model.Artist) error {
	return r.db.WithContext(ctx).Save(artist).Error
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*model.Artist, error) {
	var artist model.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) List(ctx context.Context, search, country string, page, limit int) ([]model.Artist, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Artist{})
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if country != "" {
		q = q.Where("country = ?", country)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var artists []model.Artist
	if err := q.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&artists).Error; err != nil {
		return nil, 0, err
	}
	return artists, total, nil
}

// ListAll returns every artist ordered by name, for report fan-out.
func (r *artistRepository) ListAll(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// DeleteIfUnreferenced deletes the artist unless artworks are still linked.
// Count and delete run in one transaction so a concurrent artwork insert
// cannot slip between the check and the delete.
func (r *artistRepository) DeleteIfUnreferenced(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Artwork{}).Where("artist_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &apperrors.ReferencedError{ArtworkCount: count}
		}
		res := tx.Delete(&model.Artist{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
