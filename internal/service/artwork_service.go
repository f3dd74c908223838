package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"kunstbeheer/internal/cache"
	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/model"
	"kunstbeheer/internal/repository"
)

const artworkCacheTTL = 5 * time.Minute

// ArtworkService exposes artwork CRUD. Single-record reads go through the
// cache; every write invalidates the entry.
type ArtworkService interface {
	Create(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error)
	Get(ctx context.Context, id uint) (*model.Artwork, error)
	List(ctx context.Context, filter repository.ArtworkFilter, page, limit int) ([]model.Artwork, int64, error)
	Update(ctx context.Context, id uint, in *model.Artwork) (*model.Artwork, error)
	Delete(ctx context.Context, id uint) error
}

type artworkService struct {
	repo     repository.ArtworkRepository
	cache    *cache.Client
	notifier Notifier
}

// NewArtworkService builds an ArtworkService with repository and cache.
func NewArtworkService(repo repository.ArtworkRepository, cache *cache.Client, notifier Notifier) ArtworkService {
	return &artworkService{repo: repo, cache: cache, notifier: notifier}
}

func (s *artworkService) cacheKey(id uint) string {
	return fmt.Sprintf("artwork:%d", id)
}

func validateArtwork(artwork *model.Artwork) error {
	artwork.Title = strings.TrimSpace(artwork.Title)
	if artwork.Title == "" {
		return apperrors.ErrTitleRequired
	}
	if artwork.ArtistID == 0 {
		return apperrors.ErrArtistRequired
	}
	if artwork.TypeID == 0 {
		return apperrors.ErrTypeRequired
	}
	return nil
}

func (s *artworkService) Create(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	if err := validateArtwork(artwork); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, artwork); err != nil {
		return nil, err
	}
	s.notifier.EntityChanged("Kunstwerk", artwork.Title, ActionCreated)
	return artwork, nil
}

func (s *artworkService) Get(ctx context.Context, id uint) (*model.Artwork, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Artwork
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	artwork, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(artwork); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, artworkCacheTTL)
	}
	return artwork, nil
}

func (s *artworkService) List(ctx context.Context, filter repository.ArtworkFilter, page, limit int) ([]model.Artwork, int64, error) {
	return s.repo.List(ctx, filter, page, limit)
}

func (s *artworkService) Update(ctx context.Context, id uint, in *model.Artwork) (*model.Artwork, error) {
	artwork, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if err := validateArtwork(in); err != nil {
		return nil, err
	}

	artwork.Title = in.Title
	artwork.ArtistID = in.ArtistID
	artwork.TypeID = in.TypeID
	artwork.LocationID = in.LocationID
	artwork.Year = in.Year
	artwork.Description = in.Description
	artwork.HeightCM = in.HeightCM
	artwork.WidthCM = in.WidthCM
	artwork.DepthCM = in.DepthCM
	artwork.WeightKG = in.WeightKG
	artwork.PurchaseDate = in.PurchaseDate
	artwork.PurchasePrice = in.PurchasePrice
	artwork.Supplier = in.Supplier
	artwork.MarketValue = in.MarketValue
	artwork.InsuredValue = in.InsuredValue

	// Save would also write the preloaded associations; limit to the row.
	artwork.Artist = nil
	artwork.Type = nil
	artwork.Location = nil
	artwork.Images = nil
	artwork.Attachments = nil

	if err := s.repo.Update(ctx, artwork); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	s.notifier.EntityChanged("Kunstwerk", artwork.Title, ActionUpdated)
	return artwork, nil
}

// Delete removes the artwork and cascades to its images and attachments.
func (s *artworkService) Delete(ctx context.Context, id uint) error {
	artwork, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	s.notifier.EntityChanged("Kunstwerk", artwork.Title, ActionDeleted)
	return nil
}
