package mocks

import (
	"context"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	LoginFunc     func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	LogoutFunc    func(ctx context.Context, token string) error
	AuthorizeFunc func(ctx context.Context, token, requiredRole string) (*domain.Principal, error)
	ProfileFunc   func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: rejected
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}

func (m *MockAuthService) Authorize(ctx context.Context, token, requiredRole string) (*domain.Principal, error) {
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(ctx, token, requiredRole)
	}
	// Default behavior: unauthenticated
	return nil, domain.ErrSessionNotFound
}

func (m *MockAuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
