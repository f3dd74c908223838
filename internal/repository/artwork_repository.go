package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kunstbeheer/internal/model"
)

// ArtworkFilter narrows artwork queries. All set fields combine with AND
// semantics into a single predicate; zero values mean "no constraint".
// The date range applies to the purchase date, the value range to the
// market value.
type ArtworkFilter struct {
	Search     string
	ArtistID   uint
	LocationID uint
	TypeID     uint
	DateFrom   *time.Time
	DateTo     *time.Time
	ValueMin   *decimal.Decimal
	ValueMax   *decimal.Decimal
}

func (f ArtworkFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Search != "" {
		q = q.Where("title LIKE ?", "%"+f.Search+"%")
	}
	if f.ArtistID != 0 {
		q = q.Where("artist_id = ?", f.ArtistID)
	}
	if f.LocationID != 0 {
		q = q.Where("location_id = ?", f.LocationID)
	}
	if f.TypeID != 0 {
		q = q.Where("type_id = ?", f.TypeID)
	}
	if f.DateFrom != nil {
		q = q.Where("purchase_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("purchase_date <= ?", *f.DateTo)
	}
	if f.ValueMin != nil {
		q = q.Where("market_value >= ?", *f.ValueMin)
	}
	if f.ValueMax != nil {
		q = q.Where("market_value <= ?", *f.ValueMax)
	}
	return q
}

// ArtworkRepository defines artwork persistence operations.
type ArtworkRepository interface {
	Create(ctx context.Context, artwork *model.Artwork) error
	Update(ctx context.Context, artwork *model.Artwork) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Artwork, error)
	List(ctx context.Context, filter ArtworkFilter, page, limit int) ([]model.Artwork, int64, error)
	ListFiltered(ctx context.Context, filter ArtworkFilter) ([]model.Artwork, error)
}

type artworkRepository struct {
	db *gorm.DB
}

// NewArtworkRepository builds a GORM-backed repository.
func NewArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &artworkRepository{db: db}
}

func (r *artworkRepository) Create(ctx context.Context, artwork *model.Artwork) error {
	return r.db.WithContext(ctx).Create(artwork).Error
}

func (r *artworkRepository) Update(ctx context.Context, artwork *model.Artwork) error {
	return r.db.WithContext(ctx).Save(artwork).Error
}

// Delete removes the artwork and its image/attachment rows. The artist and
// location records are left untouched.
func (r *artworkRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.Artwork{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *artworkRepository) FindByID(ctx context.Context, id uint) (*model.Artwork, error) {
	var artwork model.Artwork
	if err := r.db.WithContext(ctx).
		Preload("Artist").Preload("Type").Preload("Location").
		Preload("Images").Preload("Attachments").
		First(&artwork, id).Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (r *artworkRepository) List(ctx context.Context, filter ArtworkFilter, page, limit int) ([]model.Artwork, int64, error) {
	q := filter.apply(r.db.WithContext(ctx).Model(&model.Artwork{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var artworks []model.Artwork
	if err := q.Preload("Artist").Preload("Type").Preload("Location").
		Order("title ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&artworks).Error; err != nil {
		return nil, 0, err
	}
	return artworks, total, nil
}

// ListFiltered returns every matching artwork without pagination. Report
// aggregation folds over the full result set.
func (r *artworkRepository) ListFiltered(ctx context.Context, filter ArtworkFilter) ([]model.Artwork, error) {
	var artworks []model.Artwork
	q := filter.apply(r.db.WithContext(ctx).Model(&model.Artwork{}))
	if err := q.Preload("Artist").Preload("Type").Preload("Location").
		Order("title ASC").
		Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}
