package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrUserNotFound       = errors.New("user not found")
)

// Session errors. Absent, malformed, and expired tokens all collapse to
// ErrSessionNotFound on the way out so a caller cannot probe which it was.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)

// Customer errors
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerExists   = errors.New("customer with this phone already exists")
	ErrAssigneeNotFound = errors.New("assigned staff user not found")
)

// Content errors
var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrNewsNotFound   = errors.New("news post not found")
	ErrBannerNotFound = errors.New("banner not found")
)

// ValidationError reports the request fields that failed validation.
// It is always a client error, detected before any repository write.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
