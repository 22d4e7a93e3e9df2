package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// ContentServiceImpl implements domain.ContentService. Content is
// pass-through: the rules live in the repositories and the gate, not here.
type ContentServiceImpl struct {
	roomRepo   domain.RoomRepository
	newsRepo   domain.NewsRepository
	bannerRepo domain.BannerRepository
	logger     *zap.Logger
}

// NewContentService creates a new content service
func NewContentService(
	roomRepo domain.RoomRepository,
	newsRepo domain.NewsRepository,
	bannerRepo domain.BannerRepository,
	logger *zap.Logger,
) domain.ContentService {
	return &ContentServiceImpl{
		roomRepo:   roomRepo,
		newsRepo:   newsRepo,
		bannerRepo: bannerRepo,
		logger:     logger,
	}
}

func (s *ContentServiceImpl) ListRooms(ctx context.Context, includeInactive bool) ([]domain.Room, error) {
	rooms, err := s.roomRepo.List(ctx, !includeInactive)
	if err != nil {
		s.logger.Error("room list failed", zap.Error(err))
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *ContentServiceImpl) GetRoom(ctx context.Context, id uint) (*domain.Room, error) {
	return s.roomRepo.FindByID(ctx, id)
}

func (s *ContentServiceImpl) SaveRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	var err error
	if room.ID == 0 {
		err = s.roomRepo.Create(ctx, room)
	} else {
		err = s.roomRepo.Update(ctx, room)
	}
	if err != nil {
		if err == domain.ErrRoomNotFound {
			return nil, err
		}
		s.logger.Error("room save failed", zap.Uint("id", room.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save room: %w", err)
	}
	return s.roomRepo.FindByID(ctx, room.ID)
}

func (s *ContentServiceImpl) DeleteRoom(ctx context.Context, id uint) error {
	return s.roomRepo.Delete(ctx, id)
}

func (s *ContentServiceImpl) ListNews(ctx context.Context, includeUnpublished bool) ([]domain.NewsPost, error) {
	posts, err := s.newsRepo.List(ctx, !includeUnpublished)
	if err != nil {
		s.logger.Error("news list failed", zap.Error(err))
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return posts, nil
}

func (s *ContentServiceImpl) GetNewsBySlug(ctx context.Context, slug string) (*domain.NewsPost, error) {
	return s.newsRepo.FindBySlug(ctx, slug)
}

func (s *ContentServiceImpl) GetNews(ctx context.Context, id uint) (*domain.NewsPost, error) {
	return s.newsRepo.FindByID(ctx, id)
}

func (s *ContentServiceImpl) SaveNews(ctx context.Context, post *domain.NewsPost) (*domain.NewsPost, error) {
	var err error
	if post.ID == 0 {
		err = s.newsRepo.Create(ctx, post)
	} else {
		err = s.newsRepo.Update(ctx, post)
	}
	if err != nil {
		if err == domain.ErrNewsNotFound {
			return nil, err
		}
		s.logger.Error("news save failed", zap.Uint("id", post.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save news post: %w", err)
	}
	return s.newsRepo.FindByID(ctx, post.ID)
}

func (s *ContentServiceImpl) DeleteNews(ctx context.Context, id uint) error {
	return s.newsRepo.Delete(ctx, id)
}

func (s *ContentServiceImpl) ListBanners(ctx context.Context, includeInactive bool) ([]domain.Banner, error) {
	banners, err := s.bannerRepo.List(ctx, !includeInactive)
	if err != nil {
		s.logger.Error("banner list failed", zap.Error(err))
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}

func (s *ContentServiceImpl) SaveBanner(ctx context.Context, banner *domain.Banner) (*domain.Banner, error) {
	var err error
	if banner.ID == 0 {
		err = s.bannerRepo.Create(ctx, banner)
	} else {
		err = s.bannerRepo.Update(ctx, banner)
	}
	if err != nil {
		if err == domain.ErrBannerNotFound {
			return nil, err
		}
		s.logger.Error("banner save failed", zap.Uint("id", banner.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save banner: %w", err)
	}
	return s.bannerRepo.FindByID(ctx, banner.ID)
}

func (s *ContentServiceImpl) DeleteBanner(ctx context.Context, id uint) error {
	return s.bannerRepo.Delete(ctx, id)
}
