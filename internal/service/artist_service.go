package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/model"
	"kunstbeheer/internal/repository"
)

// ArtistService exposes artist CRUD with the delete guard.
type ArtistService interface {
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	Get(ctx context.Context, id uint) (*model.Artist, error)
	List(ctx context.Context, search, country string, page, limit int) ([]model.Artist, int64, error)
	Update(ctx context.Context, id uint, in *model.Artist) (*model.Artist, error)
	Delete(ctx context.Context, id uint) error
}

type artistService struct {
	repo     repository.ArtistRepository
	notifier Notifier
}

// NewArtistService builds an ArtistService.
func NewArtistService(repo repository.ArtistRepository, notifier Notifier) ArtistService {
	return &artistService{repo: repo, notifier: notifier}
}

func (s *artistService) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	artist.Name = strings.TrimSpace(artist.Name)
	if artist.Name == "" {
		return nil, apperrors.ErrNameRequired
	}
	if err := s.repo.Create(ctx, artist); err != nil {
		return nil, err
	}
	s.notifier.EntityChanged("Kunstenaar", artist.Name, ActionCreated)
	return artist, nil
}

func (s *artistService) Get(ctx context.Context, id uint) (*model.Artist, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return artist, nil
}

func (s *artistService) List(ctx context.Context, search, country string, page, limit int) ([]model.Artist, int64, error) {
	return s.repo.List(ctx, search, country, page, limit)
}

func (s *artistService) Update(ctx context.Context, id uint, in *model.Artist) (*model.Artist, error) {
	artist, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, apperrors.ErrNameRequired
	}

	artist.Name = in.Name
	artist.Email = in.Email
	artist.Phone = in.Phone
	artist.Website = in.Website
	artist.Biography = in.Biography
	artist.Country = in.Country
	artist.City = in.City
	artist.BirthDate = in.BirthDate
	artist.DeathDate = in.DeathDate

	if err := s.repo.Update(ctx, artist); err != nil {
		return nil, err
	}
	s.notifier.EntityChanged("Kunstenaar", artist.Name, ActionUpdated)
	return artist, nil
}

// Delete removes the artist unless artworks still reference them; the
// repository guard reports the blocking count as a ReferencedError.
func (s *artistService) Delete(ctx context.Context, id uint) error {
	artist, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteIfUnreferenced(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	s.notifier.EntityChanged("Kunstenaar", artist.Name, ActionDeleted)
	return nil
}
