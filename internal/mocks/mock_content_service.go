package mocks

import (
	"context"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// MockContentService implements domain.ContentService interface for testing
type MockContentService struct {
	ListRoomsFunc     func(ctx context.Context, includeInactive bool) ([]domain.Room, error)
	GetRoomFunc       func(ctx context.Context, id uint) (*domain.Room, error)
	SaveRoomFunc      func(ctx context.Context, room *domain.Room) (*domain.Room, error)
	DeleteRoomFunc    func(ctx context.Context, id uint) error
	ListNewsFunc      func(ctx context.Context, includeUnpublished bool) ([]domain.NewsPost, error)
	GetNewsBySlugFunc func(ctx context.Context, slug string) (*domain.NewsPost, error)
	GetNewsFunc       func(ctx context.Context, id uint) (*domain.NewsPost, error)
	SaveNewsFunc      func(ctx context.Context, post *domain.NewsPost) (*domain.NewsPost, error)
	DeleteNewsFunc    func(ctx context.Context, id uint) error
	ListBannersFunc   func(ctx context.Context, includeInactive bool) ([]domain.Banner, error)
	SaveBannerFunc    func(ctx context.Context, banner *domain.Banner) (*domain.Banner, error)
	DeleteBannerFunc  func(ctx context.Context, id uint) error
}

// NewMockContentService creates a new MockContentService with default behaviors
func NewMockContentService() *MockContentService {
	return &MockContentService{}
}

func (m *MockContentService) ListRooms(ctx context.Context, includeInactive bool) ([]domain.Room, error) {
	if m.ListRoomsFunc != nil {
		return m.ListRoomsFunc(ctx, includeInactive)
	}
	// Default behavior: empty
	return nil, nil
}

func (m *MockContentService) GetRoom(ctx context.Context, id uint) (*domain.Room, error) {
	if m.GetRoomFunc != nil {
		return m.GetRoomFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrRoomNotFound
}

func (m *MockContentService) SaveRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	if m.SaveRoomFunc != nil {
		return m.SaveRoomFunc(ctx, room)
	}
	// Default behavior: echo
	return room, nil
}

func (m *MockContentService) DeleteRoom(ctx context.Context, id uint) error {
	if m.DeleteRoomFunc != nil {
		return m.DeleteRoomFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

func (m *MockContentService) ListNews(ctx context.Context, includeUnpublished bool) ([]domain.NewsPost, error) {
	if m.ListNewsFunc != nil {
		return m.ListNewsFunc(ctx, includeUnpublished)
	}
	// Default behavior: empty
	return nil, nil
}

func (m *MockContentService) GetNewsBySlug(ctx context.Context, slug string) (*domain.NewsPost, error) {
	if m.GetNewsBySlugFunc != nil {
		return m.GetNewsBySlugFunc(ctx, slug)
	}
	// Default behavior: not found
	return nil, domain.ErrNewsNotFound
}

func (m *MockContentService) GetNews(ctx context.Context, id uint) (*domain.NewsPost, error) {
	if m.GetNewsFunc != nil {
		return m.GetNewsFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrNewsNotFound
}

func (m *MockContentService) SaveNews(ctx context.Context, post *domain.NewsPost) (*domain.NewsPost, error) {
	if m.SaveNewsFunc != nil {
		return m.SaveNewsFunc(ctx, post)
	}
	// Default behavior: echo
	return post, nil
}

func (m *MockContentService) DeleteNews(ctx context.Context, id uint) error {
	if m.DeleteNewsFunc != nil {
		return m.DeleteNewsFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

func (m *MockContentService) ListBanners(ctx context.Context, includeInactive bool) ([]domain.Banner, error) {
	if m.ListBannersFunc != nil {
		return m.ListBannersFunc(ctx, includeInactive)
	}
	// Default behavior: empty
	return nil, nil
}

func (m *MockContentService) SaveBanner(ctx context.Context, banner *domain.Banner) (*domain.Banner, error) {
	if m.SaveBannerFunc != nil {
		return m.SaveBannerFunc(ctx, banner)
	}
	// Default behavior: echo
	return banner, nil
}

func (m *MockContentService) DeleteBanner(ctx context.Context, id uint) error {
	if m.DeleteBannerFunc != nil {
		return m.DeleteBannerFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ContentService = (*MockContentService)(nil)
