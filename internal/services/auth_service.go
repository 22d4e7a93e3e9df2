package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	sessionTTL  time.Duration
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	sessionTTL time.Duration,
	logger *zap.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Login implements domain.AuthService. On success it mints an opaque
// session token and persists the session with the role baked in, so the
// gate can build a Principal from a single store read.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("failed to create session",
			zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

// Authorize implements domain.AuthService. It is the gate every
// privileged operation passes through: resolve the token, check the
// role, hand back a fresh Principal. All resolution failures collapse to
// ErrSessionNotFound so a caller cannot tell a revoked token from one
// that never existed.
func (s *AuthServiceImpl) Authorize(ctx context.Context, token, requiredRole string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		if err != domain.ErrSessionNotFound {
			s.logger.Error("session lookup failed", zap.Error(err))
		}
		return nil, domain.ErrSessionNotFound
	}

	if !roleSatisfies(session.Role, requiredRole) {
		return nil, domain.ErrInsufficientRole
	}

	return &domain.Principal{
		UserID: session.UserID,
		Email:  session.Email,
		Role:   session.Role,
	}, nil
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// roleSatisfies reports whether the held role meets the route's minimum.
// ADMIN satisfies every requirement; other roles must match exactly.
func roleSatisfies(have, want string) bool {
	if want == "" {
		return true
	}
	if have == domain.RoleAdmin {
		return true
	}
	return have == want
}
