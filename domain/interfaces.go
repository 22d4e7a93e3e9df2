package domain

import (
	"context"
	"time"
)

// UserRepository defines staff account data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
}

// SessionRepository defines session data access operations. FindByToken
// must return ErrSessionNotFound for missing, malformed and expired
// tokens alike.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// CustomerRepository defines lead data access operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]Customer, int64, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error
}

// AuthService defines staff authentication business logic
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
	Authorize(ctx context.Context, token, requiredRole string) (*Principal, error)
	Profile(ctx context.Context, userID uint) (*User, error)
}

// CustomerService owns the lead lifecycle rules: who may call each
// operation is decided upstream by the authorization gate, what
// mutations are legal is decided here.
type CustomerService interface {
	CreateFromIntake(ctx context.Context, req IntakeRequest) (*IntakeResult, error)
	Create(ctx context.Context, req UpdateRequest) (*CustomerDetail, error)
	List(ctx context.Context, filter CustomerFilter) (*CustomerPage, error)
	Get(ctx context.Context, id uint) (*CustomerDetail, error)
	Update(ctx context.Context, id uint, req UpdateRequest) (*CustomerDetail, error)
	Delete(ctx context.Context, id uint) error
}

// IntakeRequest carries the fields a public visitor may submit
type IntakeRequest struct {
	Name         string
	Phone        string
	Email        string
	Province     string
	ProvinceName string
	Ward         string
	WardName     string
	Source       string
	Notes        string
}

// UpdateRequest carries a full-replace customer write. Nil optionals are
// cleared, not kept; source/status/processing fall back to their defaults
// when empty so a lead never lands in an undefined workflow state.
type UpdateRequest struct {
	Name             string
	Phone            string
	Email            *string
	Province         *string
	ProvinceName     *string
	Ward             *string
	WardName         *string
	Source           string
	Status           string
	ProcessingStatus string
	AssignedTo       *uint
	LastContactDate  *time.Time
	NextFollowUpDate *time.Time
	Notes            *string
}

// RoomRepository defines room content data access
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	FindByID(ctx context.Context, id uint) (*Room, error)
	List(ctx context.Context, activeOnly bool) ([]Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id uint) error
}

// NewsRepository defines news content data access
type NewsRepository interface {
	Create(ctx context.Context, post *NewsPost) error
	FindByID(ctx context.Context, id uint) (*NewsPost, error)
	FindBySlug(ctx context.Context, slug string) (*NewsPost, error)
	List(ctx context.Context, publishedOnly bool) ([]NewsPost, error)
	Update(ctx context.Context, post *NewsPost) error
	Delete(ctx context.Context, id uint) error
}

// BannerRepository defines banner content data access
type BannerRepository interface {
	Create(ctx context.Context, banner *Banner) error
	FindByID(ctx context.Context, id uint) (*Banner, error)
	List(ctx context.Context, activeOnly bool) ([]Banner, error)
	Update(ctx context.Context, banner *Banner) error
	Delete(ctx context.Context, id uint) error
}

// ContentService defines the pass-through content operations backing the
// public pages and their admin management surface
type ContentService interface {
	ListRooms(ctx context.Context, includeInactive bool) ([]Room, error)
	GetRoom(ctx context.Context, id uint) (*Room, error)
	SaveRoom(ctx context.Context, room *Room) (*Room, error)
	DeleteRoom(ctx context.Context, id uint) error

	ListNews(ctx context.Context, includeUnpublished bool) ([]NewsPost, error)
	GetNewsBySlug(ctx context.Context, slug string) (*NewsPost, error)
	GetNews(ctx context.Context, id uint) (*NewsPost, error)
	SaveNews(ctx context.Context, post *NewsPost) (*NewsPost, error)
	DeleteNews(ctx context.Context, id uint) error

	ListBanners(ctx context.Context, includeInactive bool) ([]Banner, error)
	SaveBanner(ctx context.Context, banner *Banner) (*Banner, error)
	DeleteBanner(ctx context.Context, id uint) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
