package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// DBRoom represents the database model for Room. Amenities and images are
// stored as JSON-encoded arrays.
type DBRoom struct {
	ID          uint     `gorm:"primaryKey"`
	Name        string   `gorm:"size:255;not null"`
	Slug        string   `gorm:"uniqueIndex;size:255"`
	Description string
	Price       int64
	Capacity    int
	Area        int
	Amenities   []string `gorm:"serializer:json"`
	Images      []string `gorm:"serializer:json"`
	IsActive    bool     `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DBRoom) TableName() string { return "rooms" }

// DBNewsPost represents the database model for NewsPost
type DBNewsPost struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Slug        string `gorm:"uniqueIndex;size:255"`
	Summary     string
	Content     string
	CoverImage  string `gorm:"size:512"`
	Published   bool   `gorm:"index"`
	PublishedAt *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (DBNewsPost) TableName() string { return "news_posts" }

// DBBanner represents the database model for Banner
type DBBanner struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255"`
	ImageURL  string `gorm:"size:512;not null"`
	LinkURL   string `gorm:"size:512"`
	SortOrder int    `gorm:"index"`
	IsActive  bool   `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBBanner) TableName() string { return "banners" }

// RoomRepositoryImpl implements domain.RoomRepository using GORM
type RoomRepositoryImpl struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) domain.RoomRepository {
	return &RoomRepositoryImpl{db: db}
}

func (r *RoomRepositoryImpl) Create(ctx context.Context, room *domain.Room) error {
	dbRoom := roomToDB(room)
	if err := r.db.WithContext(ctx).Create(dbRoom).Error; err != nil {
		return err
	}
	room.ID = dbRoom.ID
	return nil
}

func (r *RoomRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Room, error) {
	var dbRoom DBRoom
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbRoom).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return roomToDomain(&dbRoom), nil
}

func (r *RoomRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	query := r.db.WithContext(ctx).Model(&DBRoom{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var dbRooms []DBRoom
	if err := query.Order("id").Find(&dbRooms).Error; err != nil {
		return nil, err
	}
	rooms := make([]domain.Room, 0, len(dbRooms))
	for i := range dbRooms {
		rooms = append(rooms, *roomToDomain(&dbRooms[i]))
	}
	return rooms, nil
}

func (r *RoomRepositoryImpl) Update(ctx context.Context, room *domain.Room) error {
	result := r.db.WithContext(ctx).Model(&DBRoom{}).Where("id = ?", room.ID).
		Select("*").Omit("id", "created_at").Updates(roomToDB(room))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&DBRoom{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// NewsRepositoryImpl implements domain.NewsRepository using GORM
type NewsRepositoryImpl struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) domain.NewsRepository {
	return &NewsRepositoryImpl{db: db}
}

func (r *NewsRepositoryImpl) Create(ctx context.Context, post *domain.NewsPost) error {
	dbPost := newsToDB(post)
	if err := r.db.WithContext(ctx).Create(dbPost).Error; err != nil {
		return err
	}
	post.ID = dbPost.ID
	return nil
}

func (r *NewsRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.NewsPost, error) {
	var dbPost DBNewsPost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbPost).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, err
	}
	return newsToDomain(&dbPost), nil
}

func (r *NewsRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.NewsPost, error) {
	var dbPost DBNewsPost
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&dbPost).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, err
	}
	return newsToDomain(&dbPost), nil
}

func (r *NewsRepositoryImpl) List(ctx context.Context, publishedOnly bool) ([]domain.NewsPost, error) {
	query := r.db.WithContext(ctx).Model(&DBNewsPost{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	var dbPosts []DBNewsPost
	if err := query.Order("created_at DESC").Find(&dbPosts).Error; err != nil {
		return nil, err
	}
	posts := make([]domain.NewsPost, 0, len(dbPosts))
	for i := range dbPosts {
		posts = append(posts, *newsToDomain(&dbPosts[i]))
	}
	return posts, nil
}

func (r *NewsRepositoryImpl) Update(ctx context.Context, post *domain.NewsPost) error {
	result := r.db.WithContext(ctx).Model(&DBNewsPost{}).Where("id = ?", post.ID).
		Select("*").Omit("id", "created_at").Updates(newsToDB(post))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&DBNewsPost{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

// BannerRepositoryImpl implements domain.BannerRepository using GORM
type BannerRepositoryImpl struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) domain.BannerRepository {
	return &BannerRepositoryImpl{db: db}
}

func (r *BannerRepositoryImpl) Create(ctx context.Context, banner *domain.Banner) error {
	dbBanner := bannerToDB(banner)
	if err := r.db.WithContext(ctx).Create(dbBanner).Error; err != nil {
		return err
	}
	banner.ID = dbBanner.ID
	return nil
}

func (r *BannerRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Banner, error) {
	var dbBanner DBBanner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbBanner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBannerNotFound
		}
		return nil, err
	}
	return bannerToDomain(&dbBanner), nil
}

func (r *BannerRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]domain.Banner, error) {
	query := r.db.WithContext(ctx).Model(&DBBanner{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var dbBanners []DBBanner
	if err := query.Order("sort_order").Find(&dbBanners).Error; err != nil {
		return nil, err
	}
	banners := make([]domain.Banner, 0, len(dbBanners))
	for i := range dbBanners {
		banners = append(banners, *bannerToDomain(&dbBanners[i]))
	}
	return banners, nil
}

func (r *BannerRepositoryImpl) Update(ctx context.Context, banner *domain.Banner) error {
	result := r.db.WithContext(ctx).Model(&DBBanner{}).Where("id = ?", banner.ID).
		Select("*").Omit("id", "created_at").Updates(bannerToDB(banner))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBannerNotFound
	}
	return nil
}

func (r *BannerRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&DBBanner{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBannerNotFound
	}
	return nil
}

func roomToDB(room *domain.Room) *DBRoom {
	return &DBRoom{
		ID:          room.ID,
		Name:        room.Name,
		Slug:        room.Slug,
		Description: room.Description,
		Price:       room.Price,
		Capacity:    room.Capacity,
		Area:        room.Area,
		Amenities:   room.Amenities,
		Images:      room.Images,
		IsActive:    room.IsActive,
	}
}

func roomToDomain(dbRoom *DBRoom) *domain.Room {
	return &domain.Room{
		ID:          dbRoom.ID,
		Name:        dbRoom.Name,
		Slug:        dbRoom.Slug,
		Description: dbRoom.Description,
		Price:       dbRoom.Price,
		Capacity:    dbRoom.Capacity,
		Area:        dbRoom.Area,
		Amenities:   dbRoom.Amenities,
		Images:      dbRoom.Images,
		IsActive:    dbRoom.IsActive,
		CreatedAt:   dbRoom.CreatedAt,
		UpdatedAt:   dbRoom.UpdatedAt,
	}
}

func newsToDB(post *domain.NewsPost) *DBNewsPost {
	return &DBNewsPost{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Summary:     post.Summary,
		Content:     post.Content,
		CoverImage:  post.CoverImage,
		Published:   post.Published,
		PublishedAt: post.PublishedAt,
	}
}

func newsToDomain(dbPost *DBNewsPost) *domain.NewsPost {
	return &domain.NewsPost{
		ID:          dbPost.ID,
		Title:       dbPost.Title,
		Slug:        dbPost.Slug,
		Summary:     dbPost.Summary,
		Content:     dbPost.Content,
		CoverImage:  dbPost.CoverImage,
		Published:   dbPost.Published,
		PublishedAt: dbPost.PublishedAt,
		CreatedAt:   dbPost.CreatedAt,
		UpdatedAt:   dbPost.UpdatedAt,
	}
}

func bannerToDB(banner *domain.Banner) *DBBanner {
	return &DBBanner{
		ID:        banner.ID,
		Title:     banner.Title,
		ImageURL:  banner.ImageURL,
		LinkURL:   banner.LinkURL,
		SortOrder: banner.SortOrder,
		IsActive:  banner.IsActive,
	}
}

func bannerToDomain(dbBanner *DBBanner) *domain.Banner {
	return &domain.Banner{
		ID:        dbBanner.ID,
		Title:     dbBanner.Title,
		ImageURL:  dbBanner.ImageURL,
		LinkURL:   dbBanner.LinkURL,
		SortOrder: dbBanner.SortOrder,
		IsActive:  dbBanner.IsActive,
		CreatedAt: dbBanner.CreatedAt,
		UpdatedAt: dbBanner.UpdatedAt,
	}
}
