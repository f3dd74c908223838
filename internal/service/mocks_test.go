package service

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"kunstbeheer/internal/model"
	"kunstbeheer/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, search string, page, limit int) ([]model.User, int64, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ListActiveAdmins(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockArtistRepository is a mock implementation of repository.ArtistRepository.
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) Create(ctx context.Context, artist *model.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) Update(ctx context.Context, artist *model.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) FindByID(ctx context.Context, id uint) (*model.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *MockArtistRepository) List(ctx context.Context, search, country string, page, limit int) ([]model.Artist, int64, error) {
	args := m.Called(ctx, search, country, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Artist), args.Get(1).(int64), args.Error(2)
}

func (m *MockArtistRepository) ListAll(ctx context.Context) ([]model.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Artist), args.Error(1)
}

func (m *MockArtistRepository) DeleteIfUnreferenced(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLocationRepository is a mock implementation of repository.LocationRepository.
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Create(ctx context.Context, location *model.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, location *model.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id uint) (*model.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockLocationRepository) List(ctx context.Context, search, city string, page, limit int) ([]model.Location, int64, error) {
	args := m.Called(ctx, search, city, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Location), args.Get(1).(int64), args.Error(2)
}

func (m *MockLocationRepository) ListAll(ctx context.Context) ([]model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Location), args.Error(1)
}

func (m *MockLocationRepository) DeleteIfUnreferenced(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockArtworkRepository is a mock implementation of repository.ArtworkRepository.
type MockArtworkRepository struct {
	mock.Mock
}

func (m *MockArtworkRepository) Create(ctx context.Context, artwork *model.Artwork) error {
	args := m.Called(ctx, artwork)
	return args.Error(0)
}

func (m *MockArtworkRepository) Update(ctx context.Context, artwork *model.Artwork) error {
	args := m.Called(ctx, artwork)
	return args.Error(0)
}

func (m *MockArtworkRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArtworkRepository) FindByID(ctx context.Context, id uint) (*model.Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) List(ctx context.Context, filter repository.ArtworkFilter, page, limit int) ([]model.Artwork, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Artwork), args.Get(1).(int64), args.Error(2)
}

func (m *MockArtworkRepository) ListFiltered(ctx context.Context, filter repository.ArtworkFilter) ([]model.Artwork, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Artwork), args.Error(1)
}

// MockArtworkTypeRepository is a mock implementation of repository.ArtworkTypeRepository.
type MockArtworkTypeRepository struct {
	mock.Mock
}

func (m *MockArtworkTypeRepository) Create(ctx context.Context, t *model.ArtworkType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockArtworkTypeRepository) List(ctx context.Context) ([]model.ArtworkType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArtworkType), args.Error(1)
}

func (m *MockArtworkTypeRepository) FindByName(ctx context.Context, name string) (*model.ArtworkType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArtworkType), args.Error(1)
}

// MockMailer is a mock implementation of mail.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendTempPassword(to, name, tempPassword string) error {
	args := m.Called(to, name, tempPassword)
	return args.Error(0)
}

func (m *MockMailer) SendChangeNotification(to, name, entityType, entityName, action string) error {
	args := m.Called(to, name, entityType, entityName, action)
	return args.Error(0)
}

// notifierEvent is one recorded EntityChanged call.
type notifierEvent struct {
	entityType string
	entityName string
	action     string
}

// recordingNotifier captures events synchronously for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notifierEvent
}

func (r *recordingNotifier) EntityChanged(entityType, entityName, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, notifierEvent{entityType, entityName, action})
}

func (r *recordingNotifier) recorded() []notifierEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notifierEvent, len(r.events))
	copy(out, r.events)
	return out
}
