package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/model"
)

func TestLocationService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockLocationRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Location")).Return(nil)
		notifier := &recordingNotifier{}

		svc := NewLocationService(repo, notifier)
		location, err := svc.Create(context.Background(), &model.Location{Name: " Depot Noord "})

		assert.NoError(t, err)
		assert.Equal(t, "Depot Noord", location.Name)
		events := notifier.recorded()
		if assert.Len(t, events, 1) {
			assert.Equal(t, "Locatie", events[0].entityType)
			assert.Equal(t, ActionCreated, events[0].action)
		}
		repo.AssertExpectations(t)
	})

	t.Run("empty name", func(t *testing.T) {
		repo := new(MockLocationRepository)
		svc := NewLocationService(repo, &recordingNotifier{})

		_, err := svc.Create(context.Background(), &model.Location{Name: "  "})
		assert.ErrorIs(t, err, apperrors.ErrNameRequired)
		repo.AssertExpectations(t)
	})
}

func TestLocationService_Delete(t *testing.T) {
	t.Run("unreferenced location is deleted", func(t *testing.T) {
		repo := new(MockLocationRepository)
		repo.On("FindByID", mock.Anything, uint(4)).Return(&model.Location{ID: 4, Name: "Depot"}, nil)
		repo.On("DeleteIfUnreferenced", mock.Anything, uint(4)).Return(nil)
		notifier := &recordingNotifier{}

		svc := NewLocationService(repo, notifier)
		err := svc.Delete(context.Background(), 4)

		assert.NoError(t, err)
		events := notifier.recorded()
		if assert.Len(t, events, 1) {
			assert.Equal(t, ActionDeleted, events[0].action)
		}
		repo.AssertExpectations(t)
	})

	t.Run("referenced location is refused", func(t *testing.T) {
		repo := new(MockLocationRepository)
		repo.On("FindByID", mock.Anything, uint(4)).Return(&model.Location{ID: 4, Name: "Depot"}, nil)
		repo.On("DeleteIfUnreferenced", mock.Anything, uint(4)).
			Return(&apperrors.ReferencedError{ArtworkCount: 12})
		notifier := &recordingNotifier{}

		svc := NewLocationService(repo, notifier)
		err := svc.Delete(context.Background(), 4)

		var refErr *apperrors.ReferencedError
		assert.ErrorAs(t, err, &refErr)
		assert.Equal(t, int64(12), refErr.ArtworkCount)
		assert.Empty(t, notifier.recorded())
		repo.AssertExpectations(t)
	})

	t.Run("missing location", func(t *testing.T) {
		repo := new(MockLocationRepository)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewLocationService(repo, &recordingNotifier{})
		err := svc.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		repo.AssertExpectations(t)
	})
}
