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

// LocationService exposes location CRUD with the delete guard.
type LocationService interface {
	Create(ctx context.Context, location *model.Location) (*model.Location, error)
	Get(ctx context.Context, id uint) (*model.Location, error)
	List(ctx context.Context, search, city string, page, limit int) ([]model.Location, int64, error)
	Update(ctx context.Context, id uint, in *model.Location) (*model.Location, error)
	Delete(ctx context.Context, id uint) error
}

type locationService struct {
	repo     repository.LocationRepository
	notifier Notifier
}

// NewLocationService builds a LocationService.
func NewLocationService(repo repository.LocationRepository, notifier Notifier) LocationService {
	return &locationService{repo: repo, notifier: notifier}
}

func (s *locationService) Create(ctx context.Context, location *model.Location) (*model.Location, error) {
	location.Name = strings.TrimSpace(location.Name)
	if location.Name == "" {
		return nil, apperrors.ErrNameRequired
	}
	if err := s.repo.Create(ctx, location); err != nil {
		return nil, err
	}
	s.notifier.EntityChanged("Locatie", location.Name, ActionCreated)
	return location, nil
}

func (s *locationService) Get(ctx context.Context, id uint) (*model.Location, error) {
	location, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return location, nil
}

func (s *locationService) List(ctx context.Context, search, city string, page, limit int) ([]model.Location, int64, error) {
	return s.repo.List(ctx, search, city, page, limit)
}

func (s *locationService) Update(ctx context.Context, id uint, in *model.Location) (*model.Location, error) {
	location, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, apperrors.ErrNameRequired
	}

	location.Name = in.Name
	location.Address = in.Address
	location.PostalCode = in.PostalCode
	location.City = in.City
	location.Country = in.Country
	location.Type = in.Type
	location.Notes = in.Notes

	if err := s.repo.Update(ctx, location); err != nil {
		return nil, err
	}
	s.notifier.EntityChanged("Locatie", location.Name, ActionUpdated)
	return location, nil
}

// Delete removes the location unless artworks still reference it.
func (s *locationService) Delete(ctx context.Context, id uint) error {
	location, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteIfUnreferenced(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	s.notifier.EntityChanged("Locatie", location.Name, ActionDeleted)
	return nil
}
