package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// ContentHandlers serves the public content pages and their admin CRUD
type ContentHandlers struct {
	contentSvc domain.ContentService
}

func NewContentHandlers(contentSvc domain.ContentService) *ContentHandlers {
	return &ContentHandlers{contentSvc: contentSvc}
}

// RoomRequest represents an admin room write
type RoomRequest struct {
	Name        string   `json:"name" binding:"required"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Capacity    int      `json:"capacity"`
	Area        int      `json:"area"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	IsActive    *bool    `json:"isActive"`
}

// NewsRequest represents an admin news write
type NewsRequest struct {
	Title      string `json:"title" binding:"required"`
	Slug       string `json:"slug" binding:"required"`
	Summary    string `json:"summary"`
	Content    string `json:"content"`
	CoverImage string `json:"coverImage"`
	Published  bool   `json:"published"`
}

// BannerRequest represents an admin banner write
type BannerRequest struct {
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl" binding:"required"`
	LinkURL   string `json:"linkUrl"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

// PublicRooms handles GET /rooms
func (h *ContentHandlers) PublicRooms(c *gin.Context) {
	rooms, err := h.contentSvc.ListRooms(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// PublicRoom handles GET /rooms/:id
func (h *ContentHandlers) PublicRoom(c *gin.Context) {
	id, ok := parseContentID(c)
	if !ok {
		return
	}
	room, err := h.contentSvc.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondContentError(c, err)
		return
	}
	if !room.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

// PublicNews handles GET /news
func (h *ContentHandlers) PublicNews(c *gin.Context) {
	posts, err := h.contentSvc.ListNews(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": posts})
}

// PublicNewsBySlug handles GET /news/:slug
func (h *ContentHandlers) PublicNewsBySlug(c *gin.Context) {
	post, err := h.contentSvc.GetNewsBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondContentError(c, err)
		return
	}
	if !post.Published {
		c.JSON(http.StatusNotFound, gin.H{"error": "News post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// PublicBanners handles GET /banners
func (h *ContentHandlers) PublicBanners(c *gin.Context) {
	banners, err := h.contentSvc.ListBanners(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

// Admin surface

func (h *ContentHandlers) ListRooms(c *gin.Context) {
	rooms, err := h.contentSvc.ListRooms(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func (h *ContentHandlers) SaveRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room := &domain.Room{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Capacity:    req.Capacity,
		Area:        req.Area,
		Amenities:   req.Amenities,
		Images:      req.Images,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	status := http.StatusCreated
	if raw := c.Param("id"); raw != "" {
		id, ok := parseContentID(c)
		if !ok {
			return
		}
		room.ID = id
		status = http.StatusOK
	}
	saved, err := h.contentSvc.SaveRoom(c.Request.Context(), room)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(status, gin.H{"room": saved})
}

func (h *ContentHandlers) DeleteRoom(c *gin.Context) {
	id, ok := parseContentID(c)
	if !ok {
		return
	}
	if err := h.contentSvc.DeleteRoom(c.Request.Context(), id); err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

func (h *ContentHandlers) ListNews(c *gin.Context) {
	posts, err := h.contentSvc.ListNews(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": posts})
}

func (h *ContentHandlers) SaveNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post := &domain.NewsPost{
		Title:      req.Title,
		Slug:       req.Slug,
		Summary:    req.Summary,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Published:  req.Published,
	}
	if req.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	status := http.StatusCreated
	if raw := c.Param("id"); raw != "" {
		id, ok := parseContentID(c)
		if !ok {
			return
		}
		post.ID = id
		status = http.StatusOK
	}
	saved, err := h.contentSvc.SaveNews(c.Request.Context(), post)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(status, gin.H{"post": saved})
}

func (h *ContentHandlers) DeleteNews(c *gin.Context) {
	id, ok := parseContentID(c)
	if !ok {
		return
	}
	if err := h.contentSvc.DeleteNews(c.Request.Context(), id); err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "News post deleted successfully"})
}

func (h *ContentHandlers) ListBanners(c *gin.Context) {
	banners, err := h.contentSvc.ListBanners(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

func (h *ContentHandlers) SaveBanner(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	banner := &domain.Banner{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive == nil || *req.IsActive,
	}
	status := http.StatusCreated
	if raw := c.Param("id"); raw != "" {
		id, ok := parseContentID(c)
		if !ok {
			return
		}
		banner.ID = id
		status = http.StatusOK
	}
	saved, err := h.contentSvc.SaveBanner(c.Request.Context(), banner)
	if err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(status, gin.H{"banner": saved})
}

func (h *ContentHandlers) DeleteBanner(c *gin.Context) {
	id, ok := parseContentID(c)
	if !ok {
		return
	}
	if err := h.contentSvc.DeleteBanner(c.Request.Context(), id); err != nil {
		respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted successfully"})
}

func parseContentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func respondContentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	case errors.Is(err, domain.ErrNewsNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "News post not found"})
	case errors.Is(err, domain.ErrBannerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
