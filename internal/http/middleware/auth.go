package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// AuthMW wraps the auth service and cookie name for middleware
type AuthMW struct {
	authSvc domain.AuthService
	cookie  string
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(authSvc domain.AuthService, cookie string) *AuthMW {
	return &AuthMW{
		authSvc: authSvc,
		cookie:  cookie,
	}
}

// WithSession returns the session-cookie middleware function
func (mw *AuthMW) WithSession() gin.HandlerFunc {
	return SessionAuth(mw.authSvc, mw.cookie)
}
