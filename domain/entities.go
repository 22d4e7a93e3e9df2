package domain

import "time"

// Staff roles
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// Customer acquisition sources
const (
	SourceWebsite = "WEBSITE"
	SourceBooking = "BOOKING"
	SourceAdmin   = "ADMIN"
)

// Customer contact statuses
const (
	StatusNew       = "NEW"
	StatusContacted = "CONTACTED"
	StatusConverted = "CONVERTED"
	StatusLost      = "LOST"
)

// Customer processing statuses
const (
	ProcessingPending    = "PENDING"
	ProcessingInProgress = "IN_PROGRESS"
	ProcessingFollowUp   = "FOLLOW_UP"
	ProcessingResolved   = "RESOLVED"
	ProcessingClosed     = "CLOSED"
)

// ValidSource reports whether s is a known acquisition source.
func ValidSource(s string) bool {
	return s == SourceWebsite || s == SourceBooking || s == SourceAdmin
}

// ValidStatus reports whether s is a known contact status.
func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusContacted || s == StatusConverted || s == StatusLost
}

// ValidProcessingStatus reports whether s is a known processing status.
func ValidProcessingStatus(s string) bool {
	switch s {
	case ProcessingPending, ProcessingInProgress, ProcessingFollowUp, ProcessingResolved, ProcessingClosed:
		return true
	}
	return false
}

// User represents a staff account that can sign in to the admin surface
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string `gorm:"column:password"`
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session represents an authenticated staff session. The token is an
// opaque bearer string carried in a cookie; everything needed to build
// a Principal is stored alongside it so validation is a single lookup.
type Session struct {
	Token     string
	UserID    uint
	Email     string
	Role      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Principal is the resolved identity of an authenticated caller,
// rebuilt from the session token on every request and never cached.
type Principal struct {
	UserID uint
	Email  string
	Role   string
}

// AuthResult represents a successful login
type AuthResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// Customer is a sales lead captured from the public site or entered by
// staff. Phone is the natural dedup key. Optional fields are pointers so
// an absent value is distinguishable from an empty one.
type Customer struct {
	ID               uint
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
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Assignee is the resolved identity of the staff member a lead is assigned to
type Assignee struct {
	ID    uint
	Name  string
	Email string
}

// CustomerDetail pairs a customer with its resolved assignee, if any
type CustomerDetail struct {
	Customer
	AssignedUser *Assignee
}

// IntakeResult reports whether the public intake created a new lead or
// returned an existing one matched on phone.
type IntakeResult struct {
	Customer *Customer
	Created  bool
}

// CustomerFilter narrows and pages a customer listing
type CustomerFilter struct {
	Search string
	Status string
	Source string
	Page   int
	Limit  int
}

// CustomerPage is one page of a filtered listing
type CustomerPage struct {
	Customers  []Customer
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// Room is a bookable room presented on the public site
type Room struct {
	ID          uint
	Name        string
	Slug        string
	Description string
	Price       int64
	Capacity    int
	Area        int
	Amenities   []string
	Images      []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewsPost is an article shown on the public news page
type NewsPost struct {
	ID          uint
	Title       string
	Slug        string
	Summary     string
	Content     string
	CoverImage  string
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Banner is a rotating hero image on the public landing page
type Banner struct {
	ID        uint
	Title     string
	ImageURL  string
	LinkURL   string
	SortOrder int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
