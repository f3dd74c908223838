package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/model"
)

func TestArtistService_Create(t *testing.T) {
	tests := []struct {
		name      string
		artist    *model.Artist
		setupMock func(*MockArtistRepository)
		wantErr   error
		wantName  string
	}{
		{
			name:   "success trims the name",
			artist: &model.Artist{Name: "  Vincent van Gogh  "},
			setupMock: func(repo *MockArtistRepository) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Artist")).Return(nil)
			},
			wantName: "Vincent van Gogh",
		},
		{
			name:      "empty name",
			artist:    &model.Artist{Name: ""},
			setupMock: func(repo *MockArtistRepository) {},
			wantErr:   apperrors.ErrNameRequired,
		},
		{
			name:      "whitespace-only name",
			artist:    &model.Artist{Name: "   "},
			setupMock: func(repo *MockArtistRepository) {},
			wantErr:   apperrors.ErrNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockArtistRepository)
			tt.setupMock(repo)
			notifier := &recordingNotifier{}

			svc := NewArtistService(repo, notifier)
			artist, err := svc.Create(context.Background(), tt.artist)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, notifier.recorded())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantName, artist.Name)
				events := notifier.recorded()
				if assert.Len(t, events, 1) {
					assert.Equal(t, "Kunstenaar", events[0].entityType)
					assert.Equal(t, tt.wantName, events[0].entityName)
					assert.Equal(t, ActionCreated, events[0].action)
				}
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestArtistService_Delete(t *testing.T) {
	t.Run("unreferenced artist is deleted and announced", func(t *testing.T) {
		repo := new(MockArtistRepository)
		repo.On("FindByID", mock.Anything, uint(5)).Return(&model.Artist{ID: 5, Name: "Mondriaan"}, nil)
		repo.On("DeleteIfUnreferenced", mock.Anything, uint(5)).Return(nil)
		notifier := &recordingNotifier{}

		svc := NewArtistService(repo, notifier)
		err := svc.Delete(context.Background(), 5)

		assert.NoError(t, err)
		events := notifier.recorded()
		if assert.Len(t, events, 1) {
			assert.Equal(t, ActionDeleted, events[0].action)
			assert.Equal(t, "Mondriaan", events[0].entityName)
		}
		repo.AssertExpectations(t)
	})

	t.Run("referenced artist is refused with the blocking count", func(t *testing.T) {
		repo := new(MockArtistRepository)
		repo.On("FindByID", mock.Anything, uint(5)).Return(&model.Artist{ID: 5, Name: "Mondriaan"}, nil)
		repo.On("DeleteIfUnreferenced", mock.Anything, uint(5)).
			Return(&apperrors.ReferencedError{ArtworkCount: 3})
		notifier := &recordingNotifier{}

		svc := NewArtistService(repo, notifier)
		err := svc.Delete(context.Background(), 5)

		var refErr *apperrors.ReferencedError
		assert.ErrorAs(t, err, &refErr)
		assert.Equal(t, int64(3), refErr.ArtworkCount)
		assert.Empty(t, notifier.recorded())
		repo.AssertExpectations(t)
	})

	t.Run("missing artist", func(t *testing.T) {
		repo := new(MockArtistRepository)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewArtistService(repo, &recordingNotifier{})
		err := svc.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		repo.AssertExpectations(t)
	})

	t.Run("delete losing the race to a concurrent artwork insert", func(t *testing.T) {
		// FindByID sees zero references, but by the time the transactional
		// guard runs an artwork has appeared.
		repo := new(MockArtistRepository)
		repo.On("FindByID", mock.Anything, uint(5)).Return(&model.Artist{ID: 5, Name: "Mondriaan"}, nil)
		repo.On("DeleteIfUnreferenced", mock.Anything, uint(5)).
			Return(&apperrors.ReferencedError{ArtworkCount: 1})

		svc := NewArtistService(repo, &recordingNotifier{})
		err := svc.Delete(context.Background(), 5)

		var refErr *apperrors.ReferencedError
		assert.True(t, errors.As(err, &refErr))
		repo.AssertExpectations(t)
	})
}

func TestArtistService_Update(t *testing.T) {
	repo := new(MockArtistRepository)
	repo.On("FindByID", mock.Anything, uint(5)).Return(&model.Artist{ID: 5, Name: "Oud"}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Artist")).Return(nil)
	notifier := &recordingNotifier{}

	country := "Nederland"
	svc := NewArtistService(repo, notifier)
	artist, err := svc.Update(context.Background(), 5, &model.Artist{Name: "Nieuw", Country: &country})

	assert.NoError(t, err)
	assert.Equal(t, uint(5), artist.ID)
	assert.Equal(t, "Nieuw", artist.Name)
	assert.Equal(t, &country, artist.Country)
	events := notifier.recorded()
	if assert.Len(t, events, 1) {
		assert.Equal(t, ActionUpdated, events[0].action)
	}
	repo.AssertExpectations(t)
}
