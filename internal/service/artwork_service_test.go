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

func TestArtworkService_Create(t *testing.T) {
	tests := []struct {
		name      string
		artwork   *model.Artwork
		setupMock func(*MockArtworkRepository)
		wantErr   error
	}{
		{
			name:    "success",
			artwork: &model.Artwork{Title: "  Compositie II  ", ArtistID: 1, TypeID: 1},
			setupMock: func(repo *MockArtworkRepository) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Artwork")).Return(nil)
			},
		},
		{
			name:      "title required",
			artwork:   &model.Artwork{Title: "   ", ArtistID: 1, TypeID: 1},
			setupMock: func(repo *MockArtworkRepository) {},
			wantErr:   apperrors.ErrTitleRequired,
		},
		{
			name:      "artist required",
			artwork:   &model.Artwork{Title: "Compositie II", TypeID: 1},
			setupMock: func(repo *MockArtworkRepository) {},
			wantErr:   apperrors.ErrArtistRequired,
		},
		{
			name:      "type required",
			artwork:   &model.Artwork{Title: "Compositie II", ArtistID: 1},
			setupMock: func(repo *MockArtworkRepository) {},
			wantErr:   apperrors.ErrTypeRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockArtworkRepository)
			tt.setupMock(repo)
			notifier := &recordingNotifier{}

			svc := NewArtworkService(repo, nil, notifier)
			artwork, err := svc.Create(context.Background(), tt.artwork)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, notifier.recorded())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Compositie II", artwork.Title)
				events := notifier.recorded()
				if assert.Len(t, events, 1) {
					assert.Equal(t, "Kunstwerk", events[0].entityType)
					assert.Equal(t, ActionCreated, events[0].action)
				}
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestArtworkService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(MockArtworkRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(&model.Artwork{ID: 1, Title: "Compositie II"}, nil)

		svc := NewArtworkService(repo, nil, &recordingNotifier{})
		artwork, err := svc.Get(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "Compositie II", artwork.Title)
		repo.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(MockArtworkRepository)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewArtworkService(repo, nil, &recordingNotifier{})
		_, err := svc.Get(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		repo.AssertExpectations(t)
	})
}

func TestArtworkService_Update(t *testing.T) {
	repo := new(MockArtworkRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.Artwork{
		ID:       1,
		Title:    "Oud",
		ArtistID: 1,
		TypeID:   1,
		Artist:   &model.Artist{ID: 1, Name: "Mondriaan"},
		Type:     &model.ArtworkType{ID: 1, Name: "Schilderij"},
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(aw *model.Artwork) bool {
		// The preloaded relations must not ride along into the save.
		return aw.Artist == nil && aw.Type == nil && aw.Location == nil
	})).Return(nil)
	notifier := &recordingNotifier{}

	svc := NewArtworkService(repo, nil, notifier)
	artwork, err := svc.Update(context.Background(), 1, &model.Artwork{
		Title:    "Nieuw",
		ArtistID: 2,
		TypeID:   1,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Nieuw", artwork.Title)
	assert.Equal(t, uint(2), artwork.ArtistID)
	events := notifier.recorded()
	if assert.Len(t, events, 1) {
		assert.Equal(t, ActionUpdated, events[0].action)
	}
	repo.AssertExpectations(t)
}

func TestArtworkService_Delete(t *testing.T) {
	t.Run("success announces the title", func(t *testing.T) {
		repo := new(MockArtworkRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(&model.Artwork{ID: 1, Title: "Compositie II"}, nil)
		repo.On("Delete", mock.Anything, uint(1)).Return(nil)
		notifier := &recordingNotifier{}

		svc := NewArtworkService(repo, nil, notifier)
		err := svc.Delete(context.Background(), 1)

		assert.NoError(t, err)
		events := notifier.recorded()
		if assert.Len(t, events, 1) {
			assert.Equal(t, "Compositie II", events[0].entityName)
			assert.Equal(t, ActionDeleted, events[0].action)
		}
		repo.AssertExpectations(t)
	})

	t.Run("missing artwork", func(t *testing.T) {
		repo := new(MockArtworkRepository)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewArtworkService(repo, nil, &recordingNotifier{})
		err := svc.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		repo.AssertExpectations(t)
	})
}
